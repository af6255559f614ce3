package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/dharma-pro/temple-booking/internal/domain"
	"github.com/dharma-pro/temple-booking/internal/repository"
)

var (
	ErrBookingNotFound    = repository.ErrBookingNotFound
	ErrSlotFull           = repository.ErrSlotFull
	ErrSlotTempleMismatch = errors.New("slot does not belong to the selected temple")
)

type BookingRepository interface {
	Create(ctx context.Context, booking domain.Booking) (domain.Booking, error)
	FindByID(ctx context.Context, id uint) (domain.Booking, error)
	FindAll(ctx context.Context) ([]domain.Booking, error)
	FindByUserID(ctx context.Context, userID uint) ([]domain.Booking, error)
	Delete(ctx context.Context, id uint) (domain.Booking, error)
}

type BookingUserFinder interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

type BookingTempleFinder interface {
	FindByID(ctx context.Context, id uint) (domain.Temple, error)
}

type BookingSlotFinder interface {
	FindByID(ctx context.Context, id uint) (domain.Slot, error)
}

// Notifier delivers a text message. Callers treat every error as non-fatal.
type Notifier interface {
	Send(ctx context.Context, userID *uint, mobileNumber, message string) error
}

type CreateBookingParams struct {
	UserID       uint
	TempleID     uint
	SlotID       *uint
	BookingDate  time.Time
	Special      bool
	Participants []domain.Participant
}

type KioskBookingParams struct {
	TempleID             uint
	SlotID               *uint
	MobileNumber         string
	NumberOfParticipants int
	BookingDate          time.Time
	Special              bool
}

type BookingService struct {
	repo            BookingRepository
	users           BookingUserFinder
	temples         BookingTempleFinder
	slots           BookingSlotFinder
	notifier        Notifier
	publisher       AvailabilityPublisher
	enforceCapacity bool
}

func NewBookingService(
	repo BookingRepository,
	users BookingUserFinder,
	temples BookingTempleFinder,
	slots BookingSlotFinder,
	notifier Notifier,
	publisher AvailabilityPublisher,
	enforceCapacity bool,
) *BookingService {
	return &BookingService{
		repo:            repo,
		users:           users,
		temples:         temples,
		slots:           slots,
		notifier:        notifier,
		publisher:       publisher,
		enforceCapacity: enforceCapacity,
	}
}

func (s *BookingService) CreateBooking(ctx context.Context, params CreateBookingParams) (domain.Booking, error) {
	user, err := s.users.FindByID(ctx, params.UserID)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("s.users.FindByID -> %w", err)
	}

	temple, err := s.temples.FindByID(ctx, params.TempleID)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("s.temples.FindByID -> %w", err)
	}

	if err = s.checkSlot(ctx, params.TempleID, params.SlotID); err != nil {
		return domain.Booking{}, err
	}

	userID := user.ID
	booking := domain.Booking{
		UserID:               &userID,
		TempleID:             temple.ID,
		SlotID:               params.SlotID,
		BookingType:          domain.BookingOnline,
		Special:              params.Special,
		BookingDate:          params.BookingDate,
		MobileNumber:         user.MobileNumber,
		NumberOfParticipants: len(params.Participants),
		Participants:         params.Participants,
	}
	booking.Seats = s.seatsFor(booking)

	created, err := s.create(ctx, booking)
	if err != nil {
		return domain.Booking{}, err
	}

	s.notify(ctx, created.UserID, created.MobileNumber, onlineConfirmation(user, temple, created))

	return created, nil
}

// CreateKioskBooking records an offline booking taken at the temple counter.
func (s *BookingService) CreateKioskBooking(ctx context.Context, params KioskBookingParams) (domain.Booking, error) {
	temple, err := s.temples.FindByID(ctx, params.TempleID)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("s.temples.FindByID -> %w", err)
	}

	if err = s.checkSlot(ctx, params.TempleID, params.SlotID); err != nil {
		return domain.Booking{}, err
	}

	bookingDate := params.BookingDate
	if bookingDate.IsZero() {
		bookingDate = time.Now()
	}

	booking := domain.Booking{
		TempleID:             temple.ID,
		SlotID:               params.SlotID,
		BookingType:          domain.BookingOffline,
		Special:              params.Special,
		BookingDate:          bookingDate,
		MobileNumber:         params.MobileNumber,
		NumberOfParticipants: params.NumberOfParticipants,
	}
	booking.Seats = s.seatsFor(booking)

	created, err := s.create(ctx, booking)
	if err != nil {
		return domain.Booking{}, err
	}

	s.notify(ctx, nil, created.MobileNumber, kioskConfirmation(temple, created))

	return created, nil
}

func (s *BookingService) GetBooking(ctx context.Context, id uint) (domain.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return booking, nil
}

func (s *BookingService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return bookings, nil
}

func (s *BookingService) ListUserBookings(ctx context.Context, userID uint) ([]domain.Booking, error) {
	bookings, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByUserID -> %w", err)
	}

	return bookings, nil
}

// DeleteBooking removes the booking, its participants and payment, and returns
// its seats to the slot.
func (s *BookingService) DeleteBooking(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	if deleted.Seats > 0 {
		s.publishSlot(ctx, deleted.SlotID)
	}

	return nil
}

func (s *BookingService) checkSlot(ctx context.Context, templeID uint, slotID *uint) error {
	if slotID == nil {
		return nil
	}

	slot, err := s.slots.FindByID(ctx, *slotID)
	if err != nil {
		return fmt.Errorf("s.slots.FindByID -> %w", err)
	}
	if slot.TempleID != templeID {
		return ErrSlotTempleMismatch
	}

	return nil
}

func (s *BookingService) seatsFor(booking domain.Booking) int {
	if !s.enforceCapacity || booking.SlotID == nil {
		return 0
	}

	return domain.SeatsFor(booking.NumberOfParticipants)
}

func (s *BookingService) create(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	created, err := s.repo.Create(ctx, booking)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	if created.Seats > 0 {
		s.publishSlot(ctx, created.SlotID)
	}

	return created, nil
}

func (s *BookingService) publishSlot(ctx context.Context, slotID *uint) {
	if s.publisher == nil || slotID == nil {
		return
	}

	slot, err := s.slots.FindByID(ctx, *slotID)
	if err != nil {
		zap.L().Warn("availability not published", zap.Uint("slot_id", *slotID), zap.Error(err))
		return
	}
	s.publisher.Publish(slot.Availability())
}

func (s *BookingService) notify(ctx context.Context, userID *uint, mobileNumber, message string) {
	if s.notifier == nil {
		return
	}

	if err := s.notifier.Send(ctx, userID, mobileNumber, message); err != nil {
		zap.L().Warn("booking notification failed", zap.String("mobile_number", mobileNumber), zap.Error(err))
	}
}

func onlineConfirmation(user domain.User, temple domain.Temple, booking domain.Booking) string {
	return fmt.Sprintf(
		"Dear %s, your Dharma booking is confirmed!\nBooking ID: %d\nTemple: %s\nDate: %s\nSlot ID: %s\nThank you for using Dharma.",
		user.FirstName,
		booking.ID,
		temple.Name,
		booking.BookingDate.Format("02-01-2006 15:04"),
		slotLabel(booking.SlotID),
	)
}

func kioskConfirmation(temple domain.Temple, booking domain.Booking) string {
	return fmt.Sprintf(
		"Your Dharma kiosk booking is confirmed!\nBooking ID: %d\nTemple: %s\nDate: %s\nSlot ID: %s\nNo. of Participants: %d\nThank you for visiting!",
		booking.ID,
		temple.Name,
		booking.BookingDate.Format("02-01-2006"),
		slotLabel(booking.SlotID),
		booking.NumberOfParticipants,
	)
}

func slotLabel(slotID *uint) string {
	if slotID == nil {
		return "N/A"
	}

	return strconv.FormatUint(uint64(*slotID), 10)
}
