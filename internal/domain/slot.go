package domain

import (
	"fmt"
	"time"
)

type Slot struct {
	ID                     uint      `json:"slotId"`
	TempleID               uint      `json:"templeId"`
	Date                   string    `json:"date"`
	StartTime              TimeOfDay `json:"startTime"`
	EndTime                TimeOfDay `json:"endTime"`
	Capacity               int       `json:"capacity"`
	ReservedOfflineTickets int       `json:"reservedOfflineTickets"`
	OnlineTickets          int       `json:"onlineTickets"`
	Remaining              int       `json:"remaining"`
	SlotNumber             int       `json:"slotNumber"`
	CreatedAt              time.Time `json:"createdAt"`
}

// Overlaps reports whether two slots of the same temple share the date and
// their [start, end) intervals intersect.
func (s Slot) Overlaps(o Slot) bool {
	return s.Date == o.Date && s.StartTime < o.EndTime && s.EndTime > o.StartTime
}

func (s Slot) StartsAt(loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, s.Date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("time.ParseInLocation -> %w", err)
	}

	return day.Add(s.StartTime.Duration()), nil
}

// SlotUpdate carries the optional fields of a partial slot update.
type SlotUpdate struct {
	Date                   *string
	StartTime              *TimeOfDay
	EndTime                *TimeOfDay
	Capacity               *int
	ReservedOfflineTickets *int
	Remaining              *int
}

// Apply mutates the slot. A capacity change shifts remaining by the capacity
// delta, a reserved-only change shifts it by the negated reserved delta, and an
// explicit remaining wins over both. Remaining never drops below zero here.
func (s *Slot) Apply(u SlotUpdate) {
	if u.Date != nil {
		s.Date = *u.Date
	}
	if u.StartTime != nil {
		s.StartTime = *u.StartTime
	}
	if u.EndTime != nil {
		s.EndTime = *u.EndTime
	}

	switch {
	case u.Capacity != nil:
		diff := *u.Capacity - s.Capacity
		s.Capacity = *u.Capacity
		if u.ReservedOfflineTickets != nil {
			s.ReservedOfflineTickets = *u.ReservedOfflineTickets
		}
		s.Remaining = max(0, s.Remaining+diff)
	case u.ReservedOfflineTickets != nil:
		diff := *u.ReservedOfflineTickets - s.ReservedOfflineTickets
		s.ReservedOfflineTickets = *u.ReservedOfflineTickets
		s.Remaining = max(0, s.Remaining-diff)
	}
	s.OnlineTickets = s.Capacity - s.ReservedOfflineTickets

	if u.Remaining != nil {
		s.Remaining = *u.Remaining
	}
}

// SlotAvailability is pushed to live subscribers whenever seats change.
type SlotAvailability struct {
	SlotID    uint   `json:"slotId"`
	TempleID  uint   `json:"templeId"`
	Date      string `json:"date"`
	Remaining int    `json:"remaining"`
	Deleted   bool   `json:"deleted,omitempty"`
}

func (s Slot) Availability() SlotAvailability {
	return SlotAvailability{
		SlotID:    s.ID,
		TempleID:  s.TempleID,
		Date:      s.Date,
		Remaining: s.Remaining,
	}
}
