package repository

import (
	"context"
	"fmt"

	"github.com/dharma-pro/temple-booking/internal/domain"
	"github.com/dharma-pro/temple-booking/internal/repository/dao"
)

var (
	ErrBookingNotFound = dao.ErrBookingNotFound
)

type BookingDAO interface {
	Insert(ctx context.Context, booking dao.Booking) (dao.Booking, error)
	FindByID(ctx context.Context, id uint) (dao.Booking, error)
	FindAll(ctx context.Context) ([]dao.Booking, error)
	FindByUserID(ctx context.Context, userID uint) ([]dao.Booking, error)
	FindBySlotIDs(ctx context.Context, slotIDs []uint) ([]dao.Booking, error)
	Delete(ctx context.Context, id uint) (dao.Booking, error)
}

type BookingRepository struct {
	dao BookingDAO
}

func NewBookingRepository(dao BookingDAO) *BookingRepository {
	return &BookingRepository{
		dao: dao,
	}
}

// Create stores the booking with its participants. A positive Seats value is
// taken from the slot atomically; ErrSlotFull means nothing was stored.
func (r *BookingRepository) Create(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	participants := make([]dao.BookingParticipant, 0, len(booking.Participants))
	for _, p := range booking.Participants {
		participants = append(participants, participantDomainToDAO(p))
	}

	created, err := r.dao.Insert(ctx, dao.Booking{
		UserID:               booking.UserID,
		TempleID:             booking.TempleID,
		SlotID:               booking.SlotID,
		BookingType:          string(booking.BookingType),
		Special:              booking.Special,
		BookingDate:          booking.BookingDate,
		MobileNumber:         booking.MobileNumber,
		NumberOfParticipants: booking.NumberOfParticipants,
		Seats:                booking.Seats,
		Participants:         participants,
	})
	if err != nil {
		return domain.Booking{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uint) (domain.Booking, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *BookingRepository) FindAll(ctx context.Context) ([]domain.Booking, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *BookingRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Booking, error) {
	found, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *BookingRepository) FindBySlotIDs(ctx context.Context, slotIDs []uint) ([]domain.Booking, error) {
	found, err := r.dao.FindBySlotIDs(ctx, slotIDs)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindBySlotIDs -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uint) (domain.Booking, error) {
	deleted, err := r.dao.Delete(ctx, id)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return r.daoToDomain(deleted), nil
}

func (r *BookingRepository) daosToDomain(bookings []dao.Booking) []domain.Booking {
	out := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, r.daoToDomain(b))
	}

	return out
}

func (r *BookingRepository) daoToDomain(b dao.Booking) domain.Booking {
	var participants []domain.Participant
	for _, p := range b.Participants {
		participants = append(participants, participantDAOToDomain(p))
	}

	return domain.Booking{
		ID:                   b.ID,
		UserID:               b.UserID,
		TempleID:             b.TempleID,
		SlotID:               b.SlotID,
		BookingType:          domain.BookingType(b.BookingType),
		Special:              b.Special,
		BookingDate:          b.BookingDate,
		MobileNumber:         b.MobileNumber,
		NumberOfParticipants: b.NumberOfParticipants,
		Seats:                b.Seats,
		Participants:         participants,
		CreatedAt:            b.CreatedAt,
	}
}
