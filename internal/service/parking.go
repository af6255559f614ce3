package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dharma-pro/temple-booking/internal/domain"
	"github.com/dharma-pro/temple-booking/internal/repository"
)

var (
	ErrParkingZoneNotFound    = repository.ErrParkingZoneNotFound
	ErrParkingSlotNotFound    = repository.ErrParkingSlotNotFound
	ErrParkingCountsExceed    = errors.New("freeSlots and filledSlots cannot exceed totalSlots")
	ErrInvalidParkingCount    = errors.New("parking counts cannot be negative")
	ErrInvalidParkingCapacity = errors.New("slotCapacity must be positive")
)

type ParkingRepository interface {
	CreateZone(ctx context.Context, zone domain.ParkingZone) (domain.ParkingZone, error)
	FindZoneByID(ctx context.Context, id uint) (domain.ParkingZone, error)
	FindZones(ctx context.Context, templeID uint) ([]domain.ParkingZone, error)
	UpdateZone(ctx context.Context, id uint, mutate func(zone *domain.ParkingZone) error) (domain.ParkingZone, error)
	DeleteZone(ctx context.Context, id uint) error
	CreateSlot(ctx context.Context, slot domain.ParkingSlot) (domain.ParkingSlot, error)
	FindSlotByID(ctx context.Context, id uint) (domain.ParkingSlot, error)
	FindSlots(ctx context.Context, zoneID uint) ([]domain.ParkingSlot, error)
	UpdateSlot(ctx context.Context, id uint, mutate func(slot *domain.ParkingSlot) error) (domain.ParkingSlot, error)
	DeleteSlot(ctx context.Context, id uint) error
}

type ParkingService struct {
	repo ParkingRepository
}

func NewParkingService(repo ParkingRepository) *ParkingService {
	return &ParkingService{
		repo: repo,
	}
}

func checkZone(zone domain.ParkingZone) error {
	for _, n := range []int{zone.TotalSlots, zone.FreeSlots, zone.FilledSlots, zone.TwoWheeler, zone.FourWheeler, zone.CCTVCount} {
		if n < 0 {
			return ErrInvalidParkingCount
		}
	}
	if !zone.CountsFit() {
		return ErrParkingCountsExceed
	}

	return nil
}

func checkParkingSlot(slot domain.ParkingSlot) error {
	if slot.Capacity <= 0 {
		return ErrInvalidParkingCapacity
	}

	return nil
}

func (s *ParkingService) CreateZone(ctx context.Context, zone domain.ParkingZone) (domain.ParkingZone, error) {
	if err := checkZone(zone); err != nil {
		return domain.ParkingZone{}, err
	}

	created, err := s.repo.CreateZone(ctx, zone)
	if err != nil {
		return domain.ParkingZone{}, fmt.Errorf("s.repo.CreateZone -> %w", err)
	}

	return created, nil
}

func (s *ParkingService) GetZone(ctx context.Context, id uint) (domain.ParkingZone, error) {
	zone, err := s.repo.FindZoneByID(ctx, id)
	if err != nil {
		return domain.ParkingZone{}, fmt.Errorf("s.repo.FindZoneByID -> %w", err)
	}

	return zone, nil
}

// ListZones returns all zones, or those of one temple when templeID is set.
// An unknown temple yields an empty list.
func (s *ParkingService) ListZones(ctx context.Context, templeID uint) ([]domain.ParkingZone, error) {
	zones, err := s.repo.FindZones(ctx, templeID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindZones -> %w", err)
	}

	return zones, nil
}

func (s *ParkingService) UpdateZone(ctx context.Context, id uint, update domain.ParkingZoneUpdate) (domain.ParkingZone, error) {
	zone, err := s.repo.UpdateZone(ctx, id, func(zone *domain.ParkingZone) error {
		zone.Apply(update)

		return checkZone(*zone)
	})
	if err != nil {
		return domain.ParkingZone{}, fmt.Errorf("s.repo.UpdateZone -> %w", err)
	}

	return zone, nil
}

// DeleteZone removes the zone with its slots.
func (s *ParkingService) DeleteZone(ctx context.Context, id uint) error {
	if err := s.repo.DeleteZone(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteZone -> %w", err)
	}

	return nil
}

func (s *ParkingService) CreateSlot(ctx context.Context, slot domain.ParkingSlot) (domain.ParkingSlot, error) {
	if err := checkParkingSlot(slot); err != nil {
		return domain.ParkingSlot{}, err
	}

	created, err := s.repo.CreateSlot(ctx, slot)
	if err != nil {
		return domain.ParkingSlot{}, fmt.Errorf("s.repo.CreateSlot -> %w", err)
	}

	return created, nil
}

func (s *ParkingService) GetSlot(ctx context.Context, id uint) (domain.ParkingSlot, error) {
	slot, err := s.repo.FindSlotByID(ctx, id)
	if err != nil {
		return domain.ParkingSlot{}, fmt.Errorf("s.repo.FindSlotByID -> %w", err)
	}

	return slot, nil
}

// ListSlots returns all parking slots, or those of one zone when zoneID is set.
func (s *ParkingService) ListSlots(ctx context.Context, zoneID uint) ([]domain.ParkingSlot, error) {
	slots, err := s.repo.FindSlots(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindSlots -> %w", err)
	}

	return slots, nil
}

func (s *ParkingService) UpdateSlot(ctx context.Context, id uint, update domain.ParkingSlotUpdate) (domain.ParkingSlot, error) {
	slot, err := s.repo.UpdateSlot(ctx, id, func(slot *domain.ParkingSlot) error {
		slot.Apply(update)

		return checkParkingSlot(*slot)
	})
	if err != nil {
		return domain.ParkingSlot{}, fmt.Errorf("s.repo.UpdateSlot -> %w", err)
	}

	return slot, nil
}

func (s *ParkingService) DeleteSlot(ctx context.Context, id uint) error {
	if err := s.repo.DeleteSlot(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteSlot -> %w", err)
	}

	return nil
}
