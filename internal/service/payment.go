package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dharma-pro/temple-booking/internal/domain"
	"github.com/dharma-pro/temple-booking/internal/repository"
)

var (
	ErrPaymentNotFound = repository.ErrPaymentNotFound
	ErrPaymentExists   = repository.ErrPaymentExists
	ErrInvalidAmount   = errors.New("amount must be positive")
)

type PaymentRepository interface {
	Create(ctx context.Context, payment domain.Payment) (domain.Payment, error)
	FindByID(ctx context.Context, id uint) (domain.Payment, error)
	FindByBookingID(ctx context.Context, bookingID uint) (domain.Payment, error)
	Update(ctx context.Context, id uint, mutate func(p *domain.Payment) (bool, error)) (domain.Payment, error)
}

type PaymentBookingFinder interface {
	FindByID(ctx context.Context, id uint) (domain.Booking, error)
}

// EventPublisher forwards payment events to the message broker.
type EventPublisher interface {
	PublishPaymentConfirmed(ctx context.Context, event domain.PaymentConfirmedEvent) error
}

type WebhookResult struct {
	Outcome domain.ReconcileOutcome
	Payment domain.Payment
}

type PaymentService struct {
	repo     PaymentRepository
	bookings PaymentBookingFinder
	events   EventPublisher
	now      func() time.Time
}

func NewPaymentService(repo PaymentRepository, bookings PaymentBookingFinder, events EventPublisher) *PaymentService {
	return &PaymentService{
		repo:     repo,
		bookings: bookings,
		events:   events,
		now:      time.Now,
	}
}

func (s *PaymentService) CreatePayment(ctx context.Context, bookingID uint, amount float64, method string) (domain.Payment, error) {
	if _, err := s.bookings.FindByID(ctx, bookingID); err != nil {
		return domain.Payment{}, fmt.Errorf("s.bookings.FindByID -> %w", err)
	}

	if amount <= 0 {
		return domain.Payment{}, ErrInvalidAmount
	}

	_, err := s.repo.FindByBookingID(ctx, bookingID)
	if err == nil {
		return domain.Payment{}, ErrPaymentExists
	}
	if !errors.Is(err, repository.ErrPaymentNotFound) {
		return domain.Payment{}, fmt.Errorf("s.repo.FindByBookingID -> %w", err)
	}

	created, err := s.repo.Create(ctx, domain.Payment{
		BookingID:     bookingID,
		Amount:        amount,
		PaymentMethod: method,
		PaymentDate:   s.now(),
		Status:        domain.PaymentPending,
	})
	if err != nil {
		return domain.Payment{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// ProcessWebhook reconciles a gateway callback with the payment row locked.
// Replays against a confirmed payment are acknowledged without writing.
func (s *PaymentService) ProcessWebhook(ctx context.Context, paymentID uint, gatewayTxnID, status string) (WebhookResult, error) {
	var outcome domain.ReconcileOutcome

	payment, err := s.repo.Update(ctx, paymentID, func(p *domain.Payment) (bool, error) {
		outcome = p.Reconcile(gatewayTxnID, status, s.now())

		return outcome != domain.OutcomeAlreadyConfirmed, nil
	})
	if err != nil {
		return WebhookResult{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	if outcome == domain.OutcomeConfirmed {
		s.publishConfirmed(ctx, payment)
	}

	return WebhookResult{
		Outcome: outcome,
		Payment: payment,
	}, nil
}

func (s *PaymentService) GetPayment(ctx context.Context, id uint) (domain.Payment, error) {
	payment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return payment, nil
}

func (s *PaymentService) publishConfirmed(ctx context.Context, payment domain.Payment) {
	if s.events == nil {
		return
	}

	err := s.events.PublishPaymentConfirmed(ctx, domain.PaymentConfirmedEvent{
		PaymentID:     payment.ID,
		BookingID:     payment.BookingID,
		TransactionID: payment.TransactionID,
		Amount:        payment.Amount,
		ConfirmedAt:   payment.PaymentDate,
	})
	if err != nil {
		zap.L().Warn("payment.confirmed not published", zap.Uint("payment_id", payment.ID), zap.Error(err))
	}
}
