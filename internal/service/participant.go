package service

import (
	"context"
	"fmt"

	"github.com/dharma-pro/temple-booking/internal/domain"
	"github.com/dharma-pro/temple-booking/internal/repository"
)

var (
	ErrParticipantNotFound = repository.ErrParticipantNotFound
)

type ParticipantRepository interface {
	Create(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	FindByID(ctx context.Context, id uint) (domain.Participant, error)
	FindByBookingID(ctx context.Context, bookingID uint) ([]domain.Participant, error)
	Delete(ctx context.Context, id uint) error
}

type ParticipantBookingFinder interface {
	FindByID(ctx context.Context, id uint) (domain.Booking, error)
}

type ParticipantService struct {
	repo     ParticipantRepository
	bookings ParticipantBookingFinder
}

func NewParticipantService(repo ParticipantRepository, bookings ParticipantBookingFinder) *ParticipantService {
	return &ParticipantService{
		repo:     repo,
		bookings: bookings,
	}
}

// AddParticipant attaches a named visitor to an existing booking. It does not
// take further seats from the slot.
func (s *ParticipantService) AddParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	if _, err := s.bookings.FindByID(ctx, participant.BookingID); err != nil {
		return domain.Participant{}, fmt.Errorf("s.bookings.FindByID -> %w", err)
	}

	created, err := s.repo.Create(ctx, participant)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ParticipantService) GetParticipant(ctx context.Context, id uint) (domain.Participant, error) {
	participant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return participant, nil
}

func (s *ParticipantService) ListParticipants(ctx context.Context, bookingID uint) ([]domain.Participant, error) {
	if _, err := s.bookings.FindByID(ctx, bookingID); err != nil {
		return nil, fmt.Errorf("s.bookings.FindByID -> %w", err)
	}

	participants, err := s.repo.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByBookingID -> %w", err)
	}

	return participants, nil
}

func (s *ParticipantService) DeleteParticipant(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
