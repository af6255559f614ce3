package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/dharma-pro/temple-booking/internal/domain"
	"github.com/dharma-pro/temple-booking/internal/repository"
)

var (
	ErrUserNotFound = repository.ErrUserNotFound
)

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	Update(ctx context.Context, user domain.User) (domain.User, error)
	Delete(ctx context.Context, id uint) ([]uint, error)
}

type UserService struct {
	repo      UserRepository
	slots     BookingSlotFinder
	publisher AvailabilityPublisher
}

// NewUserService accepts a nil publisher; seats released by a deletion are
// then not broadcast.
func NewUserService(repo UserRepository, slots BookingSlotFinder, publisher AvailabilityPublisher) *UserService {
	return &UserService{
		repo:      repo,
		slots:     slots,
		publisher: publisher,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, id uint, update domain.UserUpdate) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if update.Email != nil && *update.Email != user.Email {
		owner, err := s.repo.FindByEmail(ctx, *update.Email)
		switch {
		case err == nil && owner.ID != user.ID:
			return domain.User{}, ErrUserEmailExists
		case err != nil && !errors.Is(err, repository.ErrUserNotFound):
			return domain.User{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
		}
	}

	user.Apply(update)
	if update.Password != nil {
		hashed, err := hashPassword(*update.Password)
		if err != nil {
			return domain.User{}, err
		}
		user.Password = hashed
	}

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// DeleteUser removes the user along with their bookings and returns the
// booked seats to their slots.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	released, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	for _, slotID := range released {
		s.publishSlot(ctx, slotID)
	}

	return nil
}

func (s *UserService) publishSlot(ctx context.Context, slotID uint) {
	if s.publisher == nil || s.slots == nil {
		return
	}

	slot, err := s.slots.FindByID(ctx, slotID)
	if err != nil {
		zap.L().Warn("availability not published", zap.Uint("slot_id", slotID), zap.Error(err))
		return
	}
	s.publisher.Publish(slot.Availability())
}
