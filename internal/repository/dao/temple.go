package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrTempleNotFound = errors.New("temple not found")
)

type Temple struct {
	ID uint `gorm:"primaryKey"`

	Name     string `gorm:"not null"`
	Location string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type TempleDAO struct {
	db *gorm.DB
}

func NewTempleDAO(db *gorm.DB) *TempleDAO {
	return &TempleDAO{
		db: db,
	}
}

func (d *TempleDAO) Insert(ctx context.Context, temple Temple) (Temple, error) {
	result := d.db.WithContext(ctx).Create(&temple)
	if result.Error != nil {
		return Temple{}, result.Error
	}

	return temple, nil
}

func (d *TempleDAO) FindByID(ctx context.Context, id uint) (Temple, error) {
	var temple Temple

	result := d.db.WithContext(ctx).First(&temple, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Temple{}, ErrTempleNotFound
		}

		return Temple{}, result.Error
	}

	return temple, nil
}

func (d *TempleDAO) FindAll(ctx context.Context) ([]Temple, error) {
	var temples []Temple

	result := d.db.WithContext(ctx).Order("id").Find(&temples)
	if result.Error != nil {
		return nil, result.Error
	}

	return temples, nil
}

// Delete removes the temple together with its slots, its parking zones, its
// bookings and everything those bookings own. Bookings of other temples that
// point at one of the deleted slots keep existing with the slot cleared.
func (d *TempleDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var temple Temple
		if err := tx.First(&temple, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTempleNotFound
			}

			return err
		}

		var bookingIDs []uint
		if err := tx.Model(&Booking{}).Where("temple_id = ?", id).Pluck("id", &bookingIDs).Error; err != nil {
			return err
		}
		if err := deleteBookingsTx(tx, bookingIDs); err != nil {
			return err
		}

		var slotIDs []uint
		if err := tx.Model(&Slot{}).Where("temple_id = ?", id).Pluck("id", &slotIDs).Error; err != nil {
			return err
		}
		if len(slotIDs) > 0 {
			if err := tx.Model(&Booking{}).Where("slot_id IN ?", slotIDs).Update("slot_id", nil).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", slotIDs).Delete(&Slot{}).Error; err != nil {
				return err
			}
		}

		if err := deleteTempleParkingTx(tx, id); err != nil {
			return err
		}

		return tx.Delete(&temple).Error
	})
}
