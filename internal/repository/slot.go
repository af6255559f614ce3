package repository

import (
	"context"
	"fmt"

	"github.com/dharma-pro/temple-booking/internal/domain"
	"github.com/dharma-pro/temple-booking/internal/repository/dao"
)

var (
	ErrSlotNotFound = dao.ErrSlotNotFound
	ErrSlotFull     = dao.ErrSlotFull
)

type SlotDAO interface {
	InsertLocked(ctx context.Context, templeID uint, build dao.SlotBuilder) (dao.Slot, error)
	UpdateLocked(ctx context.Context, id uint, build func(current dao.Slot, siblings []dao.Slot) (dao.Slot, error)) (dao.Slot, error)
	FindByID(ctx context.Context, id uint) (dao.Slot, error)
	Find(ctx context.Context, templeID uint, date string) ([]dao.Slot, error)
	FindByDates(ctx context.Context, dates []string) ([]dao.Slot, error)
	Delete(ctx context.Context, id uint) (dao.Slot, error)
}

type SlotRepository struct {
	dao SlotDAO
}

func NewSlotRepository(dao SlotDAO) *SlotRepository {
	return &SlotRepository{
		dao: dao,
	}
}

// Create runs build while the temple is locked. build sees every slot the
// temple already has and returns the slot to store.
func (r *SlotRepository) Create(ctx context.Context, templeID uint, build func(siblings []domain.Slot) (domain.Slot, error)) (domain.Slot, error) {
	created, err := r.dao.InsertLocked(ctx, templeID, func(siblings []dao.Slot) (dao.Slot, error) {
		slot, err := build(r.daosToDomain(siblings))
		if err != nil {
			return dao.Slot{}, err
		}

		return r.domainToDAO(slot), nil
	})
	if err != nil {
		return domain.Slot{}, fmt.Errorf("r.dao.InsertLocked -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *SlotRepository) Update(ctx context.Context, id uint, build func(current domain.Slot, siblings []domain.Slot) (domain.Slot, error)) (domain.Slot, error) {
	updated, err := r.dao.UpdateLocked(ctx, id, func(current dao.Slot, siblings []dao.Slot) (dao.Slot, error) {
		slot, err := build(r.daoToDomain(current), r.daosToDomain(siblings))
		if err != nil {
			return dao.Slot{}, err
		}

		return r.domainToDAO(slot), nil
	})
	if err != nil {
		return domain.Slot{}, fmt.Errorf("r.dao.UpdateLocked -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *SlotRepository) FindByID(ctx context.Context, id uint) (domain.Slot, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Slot{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *SlotRepository) Find(ctx context.Context, templeID uint, date string) ([]domain.Slot, error) {
	found, err := r.dao.Find(ctx, templeID, date)
	if err != nil {
		return nil, fmt.Errorf("r.dao.Find -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *SlotRepository) FindByDates(ctx context.Context, dates []string) ([]domain.Slot, error) {
	found, err := r.dao.FindByDates(ctx, dates)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByDates -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *SlotRepository) Delete(ctx context.Context, id uint) (domain.Slot, error) {
	deleted, err := r.dao.Delete(ctx, id)
	if err != nil {
		return domain.Slot{}, fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return r.daoToDomain(deleted), nil
}

func (r *SlotRepository) daosToDomain(slots []dao.Slot) []domain.Slot {
	out := make([]domain.Slot, 0, len(slots))
	for _, s := range slots {
		out = append(out, r.daoToDomain(s))
	}

	return out
}

func (r *SlotRepository) daoToDomain(s dao.Slot) domain.Slot {
	return domain.Slot{
		ID:                     s.ID,
		TempleID:               s.TempleID,
		Date:                   s.Date,
		StartTime:              domain.TimeOfDay(s.StartTime),
		EndTime:                domain.TimeOfDay(s.EndTime),
		Capacity:               s.Capacity,
		ReservedOfflineTickets: s.ReservedOfflineTickets,
		OnlineTickets:          s.OnlineTickets,
		Remaining:              s.Remaining,
		SlotNumber:             s.SlotNumber,
		CreatedAt:              s.CreatedAt,
	}
}

func (r *SlotRepository) domainToDAO(s domain.Slot) dao.Slot {
	return dao.Slot{
		ID:                     s.ID,
		TempleID:               s.TempleID,
		Date:                   s.Date,
		StartTime:              int(s.StartTime),
		EndTime:                int(s.EndTime),
		Capacity:               s.Capacity,
		ReservedOfflineTickets: s.ReservedOfflineTickets,
		OnlineTickets:          s.OnlineTickets,
		Remaining:              s.Remaining,
		SlotNumber:             s.SlotNumber,
		CreatedAt:              s.CreatedAt,
	}
}
