package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dharma-pro/temple-booking/internal/domain"
)

type ReminderSlotFinder interface {
	FindByDates(ctx context.Context, dates []string) ([]domain.Slot, error)
}

type ReminderBookingFinder interface {
	FindBySlotIDs(ctx context.Context, slotIDs []uint) ([]domain.Booking, error)
}

// ReminderService texts visitors whose slot starts within [now+lead, now+lead+window).
// Running it once per window length reminds every booking exactly once.
type ReminderService struct {
	slots    ReminderSlotFinder
	bookings ReminderBookingFinder
	temples  BookingTempleFinder
	notifier Notifier
	lead     time.Duration
	window   time.Duration
	loc      *time.Location
}

func NewReminderService(
	slots ReminderSlotFinder,
	bookings ReminderBookingFinder,
	temples BookingTempleFinder,
	notifier Notifier,
	lead, window time.Duration,
) *ReminderService {
	return &ReminderService{
		slots:    slots,
		bookings: bookings,
		temples:  temples,
		notifier: notifier,
		lead:     lead,
		window:   window,
		loc:      time.Local,
	}
}

// SendReminders returns how many reminders were handed to the notifier.
func (s *ReminderService) SendReminders(ctx context.Context, now time.Time) (int, error) {
	from := now.In(s.loc).Add(s.lead)
	to := from.Add(s.window)

	dates := []string{from.Format(domain.DateLayout)}
	if last := to.Format(domain.DateLayout); last != dates[0] {
		dates = append(dates, last)
	}

	slots, err := s.slots.FindByDates(ctx, dates)
	if err != nil {
		return 0, fmt.Errorf("s.slots.FindByDates -> %w", err)
	}

	due := make(map[uint]time.Time)
	ids := make([]uint, 0, len(slots))
	for _, slot := range slots {
		start, err := slot.StartsAt(s.loc)
		if err != nil {
			zap.L().Warn("slot skipped for reminders", zap.Uint("slot_id", slot.ID), zap.Error(err))
			continue
		}
		if start.Before(from) || !start.Before(to) {
			continue
		}
		due[slot.ID] = start
		ids = append(ids, slot.ID)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	bookings, err := s.bookings.FindBySlotIDs(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("s.bookings.FindBySlotIDs -> %w", err)
	}

	temples := make(map[uint]string)
	sent := 0
	for _, booking := range bookings {
		if booking.MobileNumber == "" || booking.SlotID == nil {
			continue
		}

		name, ok := temples[booking.TempleID]
		if !ok {
			temple, err := s.temples.FindByID(ctx, booking.TempleID)
			if err != nil {
				zap.L().Warn("temple lookup failed", zap.Uint("temple_id", booking.TempleID), zap.Error(err))
				continue
			}
			name = temple.Name
			temples[booking.TempleID] = name
		}

		message := fmt.Sprintf("Reminder: your visit to %s starts at %s on %s.\nBooking ID: %d",
			name, due[*booking.SlotID].Format("15:04"), due[*booking.SlotID].Format("02-01-2006"), booking.ID)
		if err = s.notifier.Send(ctx, booking.UserID, booking.MobileNumber, message); err != nil {
			zap.L().Warn("reminder not sent", zap.Uint("booking_id", booking.ID), zap.Error(err))
			continue
		}
		sent++
	}

	return sent, nil
}
