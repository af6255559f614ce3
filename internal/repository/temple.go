package repository

import (
	"context"
	"fmt"

	"github.com/dharma-pro/temple-booking/internal/domain"
	"github.com/dharma-pro/temple-booking/internal/repository/dao"
)

var (
	ErrTempleNotFound = dao.ErrTempleNotFound
)

type TempleDAO interface {
	Insert(ctx context.Context, temple dao.Temple) (dao.Temple, error)
	FindByID(ctx context.Context, id uint) (dao.Temple, error)
	FindAll(ctx context.Context) ([]dao.Temple, error)
	Delete(ctx context.Context, id uint) error
}

type TempleRepository struct {
	dao TempleDAO
}

func NewTempleRepository(dao TempleDAO) *TempleRepository {
	return &TempleRepository{
		dao: dao,
	}
}

func (r *TempleRepository) Create(ctx context.Context, temple domain.Temple) (domain.Temple, error) {
	created, err := r.dao.Insert(ctx, dao.Temple{
		Name:     temple.Name,
		Location: temple.Location,
	})
	if err != nil {
		return domain.Temple{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *TempleRepository) FindByID(ctx context.Context, id uint) (domain.Temple, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Temple{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *TempleRepository) FindAll(ctx context.Context) ([]domain.Temple, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	temples := make([]domain.Temple, 0, len(found))
	for _, t := range found {
		temples = append(temples, r.daoToDomain(t))
	}

	return temples, nil
}

func (r *TempleRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *TempleRepository) daoToDomain(t dao.Temple) domain.Temple {
	return domain.Temple{
		ID:        t.ID,
		Name:      t.Name,
		Location:  t.Location,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
