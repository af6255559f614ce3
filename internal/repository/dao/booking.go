package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
)

type Booking struct {
	ID uint `gorm:"primaryKey"`

	UserID   *uint `gorm:"index"`
	TempleID uint  `gorm:"not null;index"`
	SlotID   *uint `gorm:"index"`

	BookingType          string    `gorm:"type:varchar(16);not null;default:ONLINE"`
	Special              bool      `gorm:"not null;default:false"`
	BookingDate          time.Time `gorm:"not null"`
	MobileNumber         string
	NumberOfParticipants int `gorm:"not null;default:0"`
	Seats                int `gorm:"not null;default:0"`

	Participants []BookingParticipant `gorm:"foreignKey:BookingID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type BookingDAO struct {
	db *gorm.DB
}

func NewBookingDAO(db *gorm.DB) *BookingDAO {
	return &BookingDAO{
		db: db,
	}
}

// Insert writes the booking and its participants. When booking.Seats is
// positive the seats are taken from the slot in the same transaction, and
// ErrSlotFull aborts the whole insert.
func (d *BookingDAO) Insert(ctx context.Context, booking Booking) (Booking, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if booking.SlotID != nil && booking.Seats > 0 {
			if err := consumeSeats(tx, *booking.SlotID, booking.Seats); err != nil {
				return err
			}
		}

		return tx.Create(&booking).Error
	})
	if err != nil {
		return Booking{}, err
	}

	return booking, nil
}

func (d *BookingDAO) FindByID(ctx context.Context, id uint) (Booking, error) {
	var booking Booking

	result := d.db.WithContext(ctx).Preload("Participants").First(&booking, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Booking{}, ErrBookingNotFound
		}

		return Booking{}, result.Error
	}

	return booking, nil
}

func (d *BookingDAO) FindAll(ctx context.Context) ([]Booking, error) {
	var bookings []Booking

	result := d.db.WithContext(ctx).Preload("Participants").Order("id").Find(&bookings)
	if result.Error != nil {
		return nil, result.Error
	}

	return bookings, nil
}

func (d *BookingDAO) FindByUserID(ctx context.Context, userID uint) ([]Booking, error) {
	var bookings []Booking

	result := d.db.WithContext(ctx).Preload("Participants").Where("user_id = ?", userID).Order("id").Find(&bookings)
	if result.Error != nil {
		return nil, result.Error
	}

	return bookings, nil
}

func (d *BookingDAO) FindBySlotIDs(ctx context.Context, slotIDs []uint) ([]Booking, error) {
	var bookings []Booking
	if len(slotIDs) == 0 {
		return bookings, nil
	}

	result := d.db.WithContext(ctx).Where("slot_id IN ?", slotIDs).Order("id").Find(&bookings)
	if result.Error != nil {
		return nil, result.Error
	}

	return bookings, nil
}

// Delete removes the booking with its participants and payment and hands
// its seats back to the slot.
func (d *BookingDAO) Delete(ctx context.Context, id uint) (Booking, error) {
	var booking Booking

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}

			return err
		}

		if booking.SlotID != nil && booking.Seats > 0 {
			if err := releaseSeats(tx, *booking.SlotID, booking.Seats); err != nil {
				return err
			}
		}

		return deleteBookingsTx(tx, []uint{id})
	})
	if err != nil {
		return Booking{}, err
	}

	return booking, nil
}

func deleteBookingsTx(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	if err := tx.Where("booking_id IN ?", ids).Delete(&BookingParticipant{}).Error; err != nil {
		return err
	}
	if err := tx.Where("booking_id IN ?", ids).Delete(&Payment{}).Error; err != nil {
		return err
	}

	return tx.Where("id IN ?", ids).Delete(&Booking{}).Error
}
