package service

import (
	"context"
	"fmt"

	"github.com/dharma-pro/temple-booking/internal/domain"
	"github.com/dharma-pro/temple-booking/internal/repository"
)

var (
	ErrTempleNotFound = repository.ErrTempleNotFound
)

type TempleRepository interface {
	Create(ctx context.Context, temple domain.Temple) (domain.Temple, error)
	FindByID(ctx context.Context, id uint) (domain.Temple, error)
	FindAll(ctx context.Context) ([]domain.Temple, error)
	Delete(ctx context.Context, id uint) error
}

type TempleService struct {
	repo TempleRepository
}

func NewTempleService(repo TempleRepository) *TempleService {
	return &TempleService{
		repo: repo,
	}
}

func (s *TempleService) CreateTemple(ctx context.Context, temple domain.Temple) (domain.Temple, error) {
	created, err := s.repo.Create(ctx, temple)
	if err != nil {
		return domain.Temple{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *TempleService) GetTemple(ctx context.Context, id uint) (domain.Temple, error) {
	temple, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Temple{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return temple, nil
}

func (s *TempleService) ListTemples(ctx context.Context) ([]domain.Temple, error) {
	temples, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return temples, nil
}

// DeleteTemple removes the temple with its slots and bookings.
func (s *TempleService) DeleteTemple(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
