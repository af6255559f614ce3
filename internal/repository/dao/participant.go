package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrParticipantNotFound = errors.New("participant not found")
)

type BookingParticipant struct {
	ID uint `gorm:"primaryKey"`

	BookingID uint `gorm:"not null;index"`

	Name          string `gorm:"not null"`
	Age           int
	Gender        string
	Category      string
	PhotoIDType   string
	PhotoIDNumber string
}

type ParticipantDAO struct {
	db *gorm.DB
}

func NewParticipantDAO(db *gorm.DB) *ParticipantDAO {
	return &ParticipantDAO{
		db: db,
	}
}

func (d *ParticipantDAO) Insert(ctx context.Context, participant BookingParticipant) (BookingParticipant, error) {
	result := d.db.WithContext(ctx).Create(&participant)
	if result.Error != nil {
		return BookingParticipant{}, result.Error
	}

	return participant, nil
}

func (d *ParticipantDAO) FindByID(ctx context.Context, id uint) (BookingParticipant, error) {
	var participant BookingParticipant

	result := d.db.WithContext(ctx).First(&participant, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return BookingParticipant{}, ErrParticipantNotFound
		}

		return BookingParticipant{}, result.Error
	}

	return participant, nil
}

func (d *ParticipantDAO) FindByBookingID(ctx context.Context, bookingID uint) ([]BookingParticipant, error) {
	var participants []BookingParticipant

	result := d.db.WithContext(ctx).Where("booking_id = ?", bookingID).Order("id").Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}

	return participants, nil
}

func (d *ParticipantDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&BookingParticipant{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrParticipantNotFound
	}

	return nil
}
