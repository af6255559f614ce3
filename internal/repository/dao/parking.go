package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrParkingZoneNotFound = errors.New("parking zone not found")
	ErrParkingSlotNotFound = errors.New("parking slot not found")
)

// Status columns carry no default tag: gorm skips zero values on insert, so
// a default of true would swallow an explicit false.
type ParkingZone struct {
	ID uint `gorm:"primaryKey"`

	TempleID    uint `gorm:"index;not null"`
	TotalSlots  int  `gorm:"not null"`
	FreeSlots   int  `gorm:"not null"`
	FilledSlots int  `gorm:"not null"`
	TwoWheeler  int  `gorm:"not null"`
	FourWheeler int  `gorm:"not null"`
	CCTVCount   int  `gorm:"column:cctv_count;not null"`
	Status      bool `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ParkingSlot struct {
	ID uint `gorm:"primaryKey"`

	ParkingZoneID uint `gorm:"index;not null"`
	Available     bool `gorm:"not null"`
	Status        bool `gorm:"not null"`
	Capacity      int  `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ParkingDAO struct {
	db *gorm.DB
}

func NewParkingDAO(db *gorm.DB) *ParkingDAO {
	return &ParkingDAO{
		db: db,
	}
}

func (d *ParkingDAO) InsertZone(ctx context.Context, zone ParkingZone) (ParkingZone, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockTemple(tx, zone.TempleID); err != nil {
			return err
		}

		return tx.Create(&zone).Error
	})
	if err != nil {
		return ParkingZone{}, err
	}

	return zone, nil
}

func (d *ParkingDAO) FindZoneByID(ctx context.Context, id uint) (ParkingZone, error) {
	var zone ParkingZone

	result := d.db.WithContext(ctx).First(&zone, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ParkingZone{}, ErrParkingZoneNotFound
		}

		return ParkingZone{}, result.Error
	}

	return zone, nil
}

// FindZones lists every zone when templeID is zero.
func (d *ParkingDAO) FindZones(ctx context.Context, templeID uint) ([]ParkingZone, error) {
	var zones []ParkingZone

	query := d.db.WithContext(ctx)
	if templeID != 0 {
		query = query.Where("temple_id = ?", templeID)
	}

	result := query.Order("id").Find(&zones)
	if result.Error != nil {
		return nil, result.Error
	}

	return zones, nil
}

// UpdateZone loads the zone inside a transaction, lets mutate change it and
// saves the result. The owning temple cannot change.
func (d *ParkingDAO) UpdateZone(ctx context.Context, id uint, mutate func(zone *ParkingZone) error) (ParkingZone, error) {
	var zone ParkingZone

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&zone, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrParkingZoneNotFound
			}

			return err
		}

		templeID := zone.TempleID
		if err := mutate(&zone); err != nil {
			return err
		}
		zone.ID = id
		zone.TempleID = templeID

		return tx.Save(&zone).Error
	})
	if err != nil {
		return ParkingZone{}, err
	}

	return zone, nil
}

// DeleteZone removes the zone and its slots.
func (d *ParkingDAO) DeleteZone(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var zone ParkingZone
		if err := tx.First(&zone, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrParkingZoneNotFound
			}

			return err
		}

		if err := tx.Where("parking_zone_id = ?", id).Delete(&ParkingSlot{}).Error; err != nil {
			return err
		}

		return tx.Delete(&zone).Error
	})
}

func (d *ParkingDAO) InsertSlot(ctx context.Context, slot ParkingSlot) (ParkingSlot, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockZone(tx, slot.ParkingZoneID); err != nil {
			return err
		}

		return tx.Create(&slot).Error
	})
	if err != nil {
		return ParkingSlot{}, err
	}

	return slot, nil
}

func (d *ParkingDAO) FindSlotByID(ctx context.Context, id uint) (ParkingSlot, error) {
	var slot ParkingSlot

	result := d.db.WithContext(ctx).First(&slot, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ParkingSlot{}, ErrParkingSlotNotFound
		}

		return ParkingSlot{}, result.Error
	}

	return slot, nil
}

// FindSlots lists every slot when zoneID is zero.
func (d *ParkingDAO) FindSlots(ctx context.Context, zoneID uint) ([]ParkingSlot, error) {
	var slots []ParkingSlot

	query := d.db.WithContext(ctx)
	if zoneID != 0 {
		query = query.Where("parking_zone_id = ?", zoneID)
	}

	result := query.Order("id").Find(&slots)
	if result.Error != nil {
		return nil, result.Error
	}

	return slots, nil
}

// UpdateSlot works like UpdateZone. A slot moved to another zone must land
// in an existing one.
func (d *ParkingDAO) UpdateSlot(ctx context.Context, id uint, mutate func(slot *ParkingSlot) error) (ParkingSlot, error) {
	var slot ParkingSlot

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&slot, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrParkingSlotNotFound
			}

			return err
		}

		zoneID := slot.ParkingZoneID
		if err := mutate(&slot); err != nil {
			return err
		}
		slot.ID = id
		if slot.ParkingZoneID != zoneID {
			if err := lockZone(tx, slot.ParkingZoneID); err != nil {
				return err
			}
		}

		return tx.Save(&slot).Error
	})
	if err != nil {
		return ParkingSlot{}, err
	}

	return slot, nil
}

func (d *ParkingDAO) DeleteSlot(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&ParkingSlot{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrParkingSlotNotFound
	}

	return nil
}

// lockZone keeps the zone from being deleted while a slot is written to it.
func lockZone(tx *gorm.DB, id uint) error {
	var zone ParkingZone

	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&zone, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrParkingZoneNotFound
	}

	return err
}

// deleteTempleParkingTx removes the parking zones of a temple with their slots.
func deleteTempleParkingTx(tx *gorm.DB, templeID uint) error {
	var zoneIDs []uint
	if err := tx.Model(&ParkingZone{}).Where("temple_id = ?", templeID).Pluck("id", &zoneIDs).Error; err != nil {
		return err
	}
	if len(zoneIDs) == 0 {
		return nil
	}

	if err := tx.Where("parking_zone_id IN ?", zoneIDs).Delete(&ParkingSlot{}).Error; err != nil {
		return err
	}

	return tx.Where("id IN ?", zoneIDs).Delete(&ParkingZone{}).Error
}
