package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrPaymentExists   = errors.New("booking already has a payment")
)

type Payment struct {
	ID uint `gorm:"primaryKey"`

	BookingID uint `gorm:"unique;not null"`

	Amount        float64 `gorm:"not null"`
	PaymentMethod string
	TransactionID string
	PaymentDate   time.Time `gorm:"not null"`
	Status        string    `gorm:"type:varchar(16);not null;index"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type PaymentDAO struct {
	db *gorm.DB
}

func NewPaymentDAO(db *gorm.DB) *PaymentDAO {
	return &PaymentDAO{
		db: db,
	}
}

func (d *PaymentDAO) Insert(ctx context.Context, payment Payment) (Payment, error) {
	result := d.db.WithContext(ctx).Create(&payment)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "uni_payments_booking_id") {
			return Payment{}, ErrPaymentExists
		}

		return Payment{}, result.Error
	}

	return payment, nil
}

func (d *PaymentDAO) FindByID(ctx context.Context, id uint) (Payment, error) {
	var payment Payment

	result := d.db.WithContext(ctx).First(&payment, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Payment{}, ErrPaymentNotFound
		}

		return Payment{}, result.Error
	}

	return payment, nil
}

func (d *PaymentDAO) FindByBookingID(ctx context.Context, bookingID uint) (Payment, error) {
	var payment Payment

	result := d.db.WithContext(ctx).First(&payment, "booking_id = ?", bookingID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Payment{}, ErrPaymentNotFound
		}

		return Payment{}, result.Error
	}

	return payment, nil
}

// UpdateLocked reads the payment with a row lock and lets mutate decide
// whether it changed. Only changed payments are written back.
func (d *PaymentDAO) UpdateLocked(ctx context.Context, id uint, mutate func(p *Payment) (bool, error)) (Payment, error) {
	var payment Payment

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&payment, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaymentNotFound
			}

			return err
		}

		changed, err := mutate(&payment)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}

		return tx.Save(&payment).Error
	})
	if err != nil {
		return Payment{}, err
	}

	return payment, nil
}
