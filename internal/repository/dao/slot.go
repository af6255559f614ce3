package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrSlotNotFound = errors.New("slot not found")
	ErrSlotFull     = errors.New("slot is fully booked")
)

type Slot struct {
	ID uint `gorm:"primaryKey"`

	TempleID uint   `gorm:"not null;index:idx_slots_temple_date"`
	Date     string `gorm:"type:varchar(10);not null;index:idx_slots_temple_date"`

	// Seconds since midnight.
	StartTime int `gorm:"not null"`
	EndTime   int `gorm:"not null"`

	Capacity               int `gorm:"not null"`
	ReservedOfflineTickets int `gorm:"not null;default:0"`
	OnlineTickets          int `gorm:"not null"`
	Remaining              int `gorm:"not null"`
	SlotNumber             int `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null;<-:create"`
}

// SlotBuilder receives the slots already stored for the temple and returns
// the slot to write, or an error to abort the transaction.
type SlotBuilder func(siblings []Slot) (Slot, error)

type SlotDAO struct {
	db *gorm.DB
}

func NewSlotDAO(db *gorm.DB) *SlotDAO {
	return &SlotDAO{
		db: db,
	}
}

// lockTemple takes a row lock on the temple so that concurrent slot writes
// for the same temple are serialized until the transaction ends.
func lockTemple(tx *gorm.DB, templeID uint) error {
	var temple Temple

	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&temple, templeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrTempleNotFound
	}

	return err
}

func (d *SlotDAO) InsertLocked(ctx context.Context, templeID uint, build SlotBuilder) (Slot, error) {
	var created Slot

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockTemple(tx, templeID); err != nil {
			return err
		}

		var siblings []Slot
		if err := tx.Where("temple_id = ?", templeID).Order("slot_number").Find(&siblings).Error; err != nil {
			return err
		}

		slot, err := build(siblings)
		if err != nil {
			return err
		}
		slot.ID = 0
		slot.TempleID = templeID

		if err = tx.Create(&slot).Error; err != nil {
			return err
		}
		created = slot

		return nil
	})
	if err != nil {
		return Slot{}, err
	}

	return created, nil
}

// UpdateLocked hands the current slot and its siblings (excluding itself) to
// build and saves the result under the temple lock.
func (d *SlotDAO) UpdateLocked(ctx context.Context, id uint, build func(current Slot, siblings []Slot) (Slot, error)) (Slot, error) {
	var updated Slot

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current Slot
		if err := tx.First(&current, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSlotNotFound
			}

			return err
		}

		if err := lockTemple(tx, current.TempleID); err != nil {
			return err
		}
		// Re-read under the lock; seats may have moved meanwhile.
		if err := tx.First(&current, id).Error; err != nil {
			return err
		}

		var siblings []Slot
		if err := tx.Where("temple_id = ? AND id <> ?", current.TempleID, id).Find(&siblings).Error; err != nil {
			return err
		}

		slot, err := build(current, siblings)
		if err != nil {
			return err
		}
		slot.ID = current.ID
		slot.TempleID = current.TempleID
		slot.CreatedAt = current.CreatedAt

		if err = tx.Save(&slot).Error; err != nil {
			return err
		}
		updated = slot

		return nil
	})
	if err != nil {
		return Slot{}, err
	}

	return updated, nil
}

func (d *SlotDAO) FindByID(ctx context.Context, id uint) (Slot, error) {
	var slot Slot

	result := d.db.WithContext(ctx).First(&slot, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Slot{}, ErrSlotNotFound
		}

		return Slot{}, result.Error
	}

	return slot, nil
}

// Find lists slots ordered by date and start time. Zero templeID and empty
// date mean no filter.
func (d *SlotDAO) Find(ctx context.Context, templeID uint, date string) ([]Slot, error) {
	var slots []Slot

	query := d.db.WithContext(ctx).Model(&Slot{})
	if templeID != 0 {
		query = query.Where("temple_id = ?", templeID)
	}
	if date != "" {
		query = query.Where("date = ?", date)
	}

	result := query.Order("date").Order("start_time").Find(&slots)
	if result.Error != nil {
		return nil, result.Error
	}

	return slots, nil
}

func (d *SlotDAO) FindByDates(ctx context.Context, dates []string) ([]Slot, error) {
	var slots []Slot

	result := d.db.WithContext(ctx).Where("date IN ?", dates).Order("date").Order("start_time").Find(&slots)
	if result.Error != nil {
		return nil, result.Error
	}

	return slots, nil
}

// Delete removes the slot. Bookings that referenced it keep existing with
// the slot cleared.
func (d *SlotDAO) Delete(ctx context.Context, id uint) (Slot, error) {
	var slot Slot

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&slot, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSlotNotFound
			}

			return err
		}

		if err := tx.Model(&Booking{}).Where("slot_id = ?", id).Update("slot_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&slot).Error
	})
	if err != nil {
		return Slot{}, err
	}

	return slot, nil
}

// consumeSeats decrements remaining only when enough seats are left.
func consumeSeats(tx *gorm.DB, slotID uint, seats int) error {
	result := tx.Model(&Slot{}).
		Where("id = ? AND remaining >= ?", slotID, seats).
		UpdateColumn("remaining", gorm.Expr("remaining - ?", seats))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSlotFull
	}

	return nil
}

// releaseSeats gives seats back to a slot without exceeding its capacity.
func releaseSeats(tx *gorm.DB, slotID uint, seats int) error {
	return tx.Model(&Slot{}).
		Where("id = ?", slotID).
		UpdateColumn("remaining", gorm.Expr("CASE WHEN remaining + ? > capacity THEN capacity ELSE remaining + ? END", seats, seats)).
		Error
}
