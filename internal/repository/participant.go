package repository

import (
	"context"
	"fmt"

	"github.com/dharma-pro/temple-booking/internal/domain"
	"github.com/dharma-pro/temple-booking/internal/repository/dao"
)

var (
	ErrParticipantNotFound = dao.ErrParticipantNotFound
)

type ParticipantDAO interface {
	Insert(ctx context.Context, participant dao.BookingParticipant) (dao.BookingParticipant, error)
	FindByID(ctx context.Context, id uint) (dao.BookingParticipant, error)
	FindByBookingID(ctx context.Context, bookingID uint) ([]dao.BookingParticipant, error)
	Delete(ctx context.Context, id uint) error
}

type ParticipantRepository struct {
	dao ParticipantDAO
}

func NewParticipantRepository(dao ParticipantDAO) *ParticipantRepository {
	return &ParticipantRepository{
		dao: dao,
	}
}

func (r *ParticipantRepository) Create(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	created, err := r.dao.Insert(ctx, participantDomainToDAO(participant))
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return participantDAOToDomain(created), nil
}

func (r *ParticipantRepository) FindByID(ctx context.Context, id uint) (domain.Participant, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return participantDAOToDomain(found), nil
}

func (r *ParticipantRepository) FindByBookingID(ctx context.Context, bookingID uint) ([]domain.Participant, error) {
	found, err := r.dao.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByBookingID -> %w", err)
	}

	participants := make([]domain.Participant, 0, len(found))
	for _, p := range found {
		participants = append(participants, participantDAOToDomain(p))
	}

	return participants, nil
}

func (r *ParticipantRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func participantDAOToDomain(p dao.BookingParticipant) domain.Participant {
	return domain.Participant{
		ID:            p.ID,
		BookingID:     p.BookingID,
		Name:          p.Name,
		Age:           p.Age,
		Gender:        p.Gender,
		Category:      p.Category,
		PhotoIDType:   p.PhotoIDType,
		PhotoIDNumber: p.PhotoIDNumber,
	}
}

func participantDomainToDAO(p domain.Participant) dao.BookingParticipant {
	return dao.BookingParticipant{
		BookingID:     p.BookingID,
		Name:          p.Name,
		Age:           p.Age,
		Gender:        p.Gender,
		Category:      p.Category,
		PhotoIDType:   p.PhotoIDType,
		PhotoIDNumber: p.PhotoIDNumber,
	}
}
