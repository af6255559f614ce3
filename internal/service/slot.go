package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dharma-pro/temple-booking/internal/domain"
	"github.com/dharma-pro/temple-booking/internal/repository"
)

var (
	ErrSlotNotFound            = repository.ErrSlotNotFound
	ErrInvalidTimeRange        = errors.New("endTime must be after startTime")
	ErrSlotOverlap             = errors.New("another slot overlaps with this time range")
	ErrReservedExceedsCapacity = errors.New("reservedOfflineTickets cannot be greater than capacity")
	ErrInvalidCapacity         = errors.New("capacity must be positive")
	ErrInvalidRemaining        = errors.New("remaining must be between 0 and capacity")
)

type SlotRepository interface {
	Create(ctx context.Context, templeID uint, build func(siblings []domain.Slot) (domain.Slot, error)) (domain.Slot, error)
	Update(ctx context.Context, id uint, build func(current domain.Slot, siblings []domain.Slot) (domain.Slot, error)) (domain.Slot, error)
	FindByID(ctx context.Context, id uint) (domain.Slot, error)
	Find(ctx context.Context, templeID uint, date string) ([]domain.Slot, error)
	Delete(ctx context.Context, id uint) (domain.Slot, error)
}

// AvailabilityPublisher receives seat changes for live subscribers.
type AvailabilityPublisher interface {
	Publish(availability domain.SlotAvailability)
}

type CreateSlotParams struct {
	TempleID               uint
	Date                   string
	StartTime              domain.TimeOfDay
	EndTime                domain.TimeOfDay
	Capacity               int
	ReservedOfflineTickets *int
	Remaining              *int
}

type SlotService struct {
	repo      SlotRepository
	publisher AvailabilityPublisher
}

func NewSlotService(repo SlotRepository, publisher AvailabilityPublisher) *SlotService {
	return &SlotService{
		repo:      repo,
		publisher: publisher,
	}
}

// CreateSlot validates and stores a slot while the temple is locked, so the
// overlap check and the slot number cannot race with another writer.
func (s *SlotService) CreateSlot(ctx context.Context, params CreateSlotParams) (domain.Slot, error) {
	created, err := s.repo.Create(ctx, params.TempleID, func(siblings []domain.Slot) (domain.Slot, error) {
		return buildSlot(params, siblings)
	})
	if err != nil {
		return domain.Slot{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	s.publish(created.Availability())

	return created, nil
}

func buildSlot(params CreateSlotParams, siblings []domain.Slot) (domain.Slot, error) {
	slot := domain.Slot{
		TempleID:  params.TempleID,
		Date:      params.Date,
		StartTime: params.StartTime,
		EndTime:   params.EndTime,
		Capacity:  params.Capacity,
	}

	if slot.EndTime <= slot.StartTime {
		return domain.Slot{}, ErrInvalidTimeRange
	}
	for _, other := range siblings {
		if slot.Overlaps(other) {
			return domain.Slot{}, ErrSlotOverlap
		}
	}

	if params.ReservedOfflineTickets != nil {
		slot.ReservedOfflineTickets = *params.ReservedOfflineTickets
	}
	if slot.ReservedOfflineTickets > slot.Capacity {
		return domain.Slot{}, ErrReservedExceedsCapacity
	}
	if slot.Capacity <= 0 || slot.ReservedOfflineTickets < 0 {
		return domain.Slot{}, ErrInvalidCapacity
	}

	slot.OnlineTickets = slot.Capacity - slot.ReservedOfflineTickets
	slot.Remaining = slot.OnlineTickets
	if params.Remaining != nil {
		slot.Remaining = *params.Remaining
	}
	if slot.Remaining < 0 || slot.Remaining > slot.Capacity {
		return domain.Slot{}, ErrInvalidRemaining
	}

	slot.SlotNumber = 1
	for _, other := range siblings {
		if other.SlotNumber >= slot.SlotNumber {
			slot.SlotNumber = other.SlotNumber + 1
		}
	}

	return slot, nil
}

func (s *SlotService) UpdateSlot(ctx context.Context, id uint, update domain.SlotUpdate) (domain.Slot, error) {
	updated, err := s.repo.Update(ctx, id, func(current domain.Slot, siblings []domain.Slot) (domain.Slot, error) {
		if update.Capacity != nil && *update.Capacity <= 0 {
			return domain.Slot{}, ErrInvalidCapacity
		}
		if update.Remaining != nil && *update.Remaining < 0 {
			return domain.Slot{}, ErrInvalidRemaining
		}

		current.Apply(update)

		if current.ReservedOfflineTickets > current.Capacity {
			return domain.Slot{}, ErrReservedExceedsCapacity
		}
		if current.ReservedOfflineTickets < 0 {
			return domain.Slot{}, ErrInvalidCapacity
		}
		if current.EndTime <= current.StartTime {
			return domain.Slot{}, ErrInvalidTimeRange
		}
		if current.Remaining > current.Capacity {
			return domain.Slot{}, ErrInvalidRemaining
		}
		for _, other := range siblings {
			if current.Overlaps(other) {
				return domain.Slot{}, ErrSlotOverlap
			}
		}

		return current, nil
	})
	if err != nil {
		return domain.Slot{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	s.publish(updated.Availability())

	return updated, nil
}

func (s *SlotService) GetSlot(ctx context.Context, id uint) (domain.Slot, error) {
	slot, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Slot{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return slot, nil
}

// ListSlots filters by temple and date when they are non-zero.
func (s *SlotService) ListSlots(ctx context.Context, templeID uint, date string) ([]domain.Slot, error) {
	slots, err := s.repo.Find(ctx, templeID, date)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Find -> %w", err)
	}

	return slots, nil
}

func (s *SlotService) DeleteSlot(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	availability := deleted.Availability()
	availability.Deleted = true
	s.publish(availability)

	return nil
}

func (s *SlotService) publish(availability domain.SlotAvailability) {
	if s.publisher != nil {
		s.publisher.Publish(availability)
	}
}
