package repository

import (
	"context"
	"fmt"

	"github.com/dharma-pro/temple-booking/internal/domain"
	"github.com/dharma-pro/temple-booking/internal/repository/dao"
)

var (
	ErrParkingZoneNotFound = dao.ErrParkingZoneNotFound
	ErrParkingSlotNotFound = dao.ErrParkingSlotNotFound
)

type ParkingDAO interface {
	InsertZone(ctx context.Context, zone dao.ParkingZone) (dao.ParkingZone, error)
	FindZoneByID(ctx context.Context, id uint) (dao.ParkingZone, error)
	FindZones(ctx context.Context, templeID uint) ([]dao.ParkingZone, error)
	UpdateZone(ctx context.Context, id uint, mutate func(zone *dao.ParkingZone) error) (dao.ParkingZone, error)
	DeleteZone(ctx context.Context, id uint) error
	InsertSlot(ctx context.Context, slot dao.ParkingSlot) (dao.ParkingSlot, error)
	FindSlotByID(ctx context.Context, id uint) (dao.ParkingSlot, error)
	FindSlots(ctx context.Context, zoneID uint) ([]dao.ParkingSlot, error)
	UpdateSlot(ctx context.Context, id uint, mutate func(slot *dao.ParkingSlot) error) (dao.ParkingSlot, error)
	DeleteSlot(ctx context.Context, id uint) error
}

type ParkingRepository struct {
	dao ParkingDAO
}

func NewParkingRepository(dao ParkingDAO) *ParkingRepository {
	return &ParkingRepository{
		dao: dao,
	}
}

func (r *ParkingRepository) CreateZone(ctx context.Context, zone domain.ParkingZone) (domain.ParkingZone, error) {
	created, err := r.dao.InsertZone(ctx, zoneDomainToDAO(zone))
	if err != nil {
		return domain.ParkingZone{}, fmt.Errorf("r.dao.InsertZone -> %w", err)
	}

	return zoneDAOToDomain(created), nil
}

func (r *ParkingRepository) FindZoneByID(ctx context.Context, id uint) (domain.ParkingZone, error) {
	found, err := r.dao.FindZoneByID(ctx, id)
	if err != nil {
		return domain.ParkingZone{}, fmt.Errorf("r.dao.FindZoneByID -> %w", err)
	}

	return zoneDAOToDomain(found), nil
}

func (r *ParkingRepository) FindZones(ctx context.Context, templeID uint) ([]domain.ParkingZone, error) {
	found, err := r.dao.FindZones(ctx, templeID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindZones -> %w", err)
	}

	zones := make([]domain.ParkingZone, 0, len(found))
	for _, z := range found {
		zones = append(zones, zoneDAOToDomain(z))
	}

	return zones, nil
}

// UpdateZone hands mutate the stored zone in domain form.
func (r *ParkingRepository) UpdateZone(ctx context.Context, id uint, mutate func(zone *domain.ParkingZone) error) (domain.ParkingZone, error) {
	updated, err := r.dao.UpdateZone(ctx, id, func(stored *dao.ParkingZone) error {
		zone := zoneDAOToDomain(*stored)
		if err := mutate(&zone); err != nil {
			return err
		}
		*stored = zoneDomainToDAO(zone)

		return nil
	})
	if err != nil {
		return domain.ParkingZone{}, fmt.Errorf("r.dao.UpdateZone -> %w", err)
	}

	return zoneDAOToDomain(updated), nil
}

func (r *ParkingRepository) DeleteZone(ctx context.Context, id uint) error {
	if err := r.dao.DeleteZone(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteZone -> %w", err)
	}

	return nil
}

func (r *ParkingRepository) CreateSlot(ctx context.Context, slot domain.ParkingSlot) (domain.ParkingSlot, error) {
	created, err := r.dao.InsertSlot(ctx, parkingSlotDomainToDAO(slot))
	if err != nil {
		return domain.ParkingSlot{}, fmt.Errorf("r.dao.InsertSlot -> %w", err)
	}

	return parkingSlotDAOToDomain(created), nil
}

func (r *ParkingRepository) FindSlotByID(ctx context.Context, id uint) (domain.ParkingSlot, error) {
	found, err := r.dao.FindSlotByID(ctx, id)
	if err != nil {
		return domain.ParkingSlot{}, fmt.Errorf("r.dao.FindSlotByID -> %w", err)
	}

	return parkingSlotDAOToDomain(found), nil
}

func (r *ParkingRepository) FindSlots(ctx context.Context, zoneID uint) ([]domain.ParkingSlot, error) {
	found, err := r.dao.FindSlots(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindSlots -> %w", err)
	}

	slots := make([]domain.ParkingSlot, 0, len(found))
	for _, s := range found {
		slots = append(slots, parkingSlotDAOToDomain(s))
	}

	return slots, nil
}

func (r *ParkingRepository) UpdateSlot(ctx context.Context, id uint, mutate func(slot *domain.ParkingSlot) error) (domain.ParkingSlot, error) {
	updated, err := r.dao.UpdateSlot(ctx, id, func(stored *dao.ParkingSlot) error {
		slot := parkingSlotDAOToDomain(*stored)
		if err := mutate(&slot); err != nil {
			return err
		}
		*stored = parkingSlotDomainToDAO(slot)

		return nil
	})
	if err != nil {
		return domain.ParkingSlot{}, fmt.Errorf("r.dao.UpdateSlot -> %w", err)
	}

	return parkingSlotDAOToDomain(updated), nil
}

func (r *ParkingRepository) DeleteSlot(ctx context.Context, id uint) error {
	if err := r.dao.DeleteSlot(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteSlot -> %w", err)
	}

	return nil
}

func zoneDAOToDomain(z dao.ParkingZone) domain.ParkingZone {
	return domain.ParkingZone{
		ID:          z.ID,
		TempleID:    z.TempleID,
		TotalSlots:  z.TotalSlots,
		FreeSlots:   z.FreeSlots,
		FilledSlots: z.FilledSlots,
		TwoWheeler:  z.TwoWheeler,
		FourWheeler: z.FourWheeler,
		CCTVCount:   z.CCTVCount,
		Status:      z.Status,
		CreatedAt:   z.CreatedAt,
		UpdatedAt:   z.UpdatedAt,
	}
}

func zoneDomainToDAO(z domain.ParkingZone) dao.ParkingZone {
	return dao.ParkingZone{
		ID:          z.ID,
		TempleID:    z.TempleID,
		TotalSlots:  z.TotalSlots,
		FreeSlots:   z.FreeSlots,
		FilledSlots: z.FilledSlots,
		TwoWheeler:  z.TwoWheeler,
		FourWheeler: z.FourWheeler,
		CCTVCount:   z.CCTVCount,
		Status:      z.Status,
		CreatedAt:   z.CreatedAt,
		UpdatedAt:   z.UpdatedAt,
	}
}

func parkingSlotDAOToDomain(s dao.ParkingSlot) domain.ParkingSlot {
	return domain.ParkingSlot{
		ID:            s.ID,
		ParkingZoneID: s.ParkingZoneID,
		Available:     s.Available,
		Status:        s.Status,
		Capacity:      s.Capacity,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func parkingSlotDomainToDAO(s domain.ParkingSlot) dao.ParkingSlot {
	return dao.ParkingSlot{
		ID:            s.ID,
		ParkingZoneID: s.ParkingZoneID,
		Available:     s.Available,
		Status:        s.Status,
		Capacity:      s.Capacity,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
