package repository

import (
	"context"
	"fmt"

	"github.com/dharma-pro/temple-booking/internal/domain"
	"github.com/dharma-pro/temple-booking/internal/repository/dao"
)

var (
	ErrPaymentNotFound = dao.ErrPaymentNotFound
	ErrPaymentExists   = dao.ErrPaymentExists
)

type PaymentDAO interface {
	Insert(ctx context.Context, payment dao.Payment) (dao.Payment, error)
	FindByID(ctx context.Context, id uint) (dao.Payment, error)
	FindByBookingID(ctx context.Context, bookingID uint) (dao.Payment, error)
	UpdateLocked(ctx context.Context, id uint, mutate func(p *dao.Payment) (bool, error)) (dao.Payment, error)
}

type PaymentRepository struct {
	dao PaymentDAO
}

func NewPaymentRepository(dao PaymentDAO) *PaymentRepository {
	return &PaymentRepository{
		dao: dao,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	created, err := r.dao.Insert(ctx, dao.Payment{
		BookingID:     payment.BookingID,
		Amount:        payment.Amount,
		PaymentMethod: payment.PaymentMethod,
		TransactionID: payment.TransactionID,
		PaymentDate:   payment.PaymentDate,
		Status:        string(payment.Status),
	})
	if err != nil {
		return domain.Payment{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id uint) (domain.Payment, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *PaymentRepository) FindByBookingID(ctx context.Context, bookingID uint) (domain.Payment, error) {
	found, err := r.dao.FindByBookingID(ctx, bookingID)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("r.dao.FindByBookingID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

// Update locks the payment row for the duration of mutate. The payment is
// written back only when mutate reports a change.
func (r *PaymentRepository) Update(ctx context.Context, id uint, mutate func(p *domain.Payment) (bool, error)) (domain.Payment, error) {
	updated, err := r.dao.UpdateLocked(ctx, id, func(p *dao.Payment) (bool, error) {
		payment := r.daoToDomain(*p)

		changed, err := mutate(&payment)
		if err != nil || !changed {
			return false, err
		}

		p.Amount = payment.Amount
		p.PaymentMethod = payment.PaymentMethod
		p.TransactionID = payment.TransactionID
		p.PaymentDate = payment.PaymentDate
		p.Status = string(payment.Status)

		return true, nil
	})
	if err != nil {
		return domain.Payment{}, fmt.Errorf("r.dao.UpdateLocked -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *PaymentRepository) daoToDomain(p dao.Payment) domain.Payment {
	return domain.Payment{
		ID:            p.ID,
		BookingID:     p.BookingID,
		Amount:        p.Amount,
		PaymentMethod: p.PaymentMethod,
		TransactionID: p.TransactionID,
		PaymentDate:   p.PaymentDate,
		Status:        domain.PaymentStatus(p.Status),
	}
}
