package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestSlot_Overlaps(t *testing.T) {
	base := Slot{Date: "2024-01-01", StartTime: NewTimeOfDay(9, 0, 0), EndTime: NewTimeOfDay(10, 0, 0)}

	tests := []struct {
		name  string
		other Slot
		want  bool
	}{
		{"partial overlap", Slot{Date: "2024-01-01", StartTime: NewTimeOfDay(9, 30, 0), EndTime: NewTimeOfDay(10, 30, 0)}, true},
		{"contained", Slot{Date: "2024-01-01", StartTime: NewTimeOfDay(9, 15, 0), EndTime: NewTimeOfDay(9, 45, 0)}, true},
		{"touching end", Slot{Date: "2024-01-01", StartTime: NewTimeOfDay(10, 0, 0), EndTime: NewTimeOfDay(11, 0, 0)}, false},
		{"touching start", Slot{Date: "2024-01-01", StartTime: NewTimeOfDay(8, 0, 0), EndTime: NewTimeOfDay(9, 0, 0)}, false},
		{"other date", Slot{Date: "2024-01-02", StartTime: NewTimeOfDay(9, 0, 0), EndTime: NewTimeOfDay(10, 0, 0)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestSlot_Apply(t *testing.T) {
	newSlot := func() Slot {
		return Slot{Capacity: 100, ReservedOfflineTickets: 20, OnlineTickets: 80, Remaining: 50}
	}

	tests := []struct {
		name          string
		update        SlotUpdate
		wantCapacity  int
		wantReserved  int
		wantOnline    int
		wantRemaining int
	}{
		{"capacity grows", SlotUpdate{Capacity: intPtr(120)}, 120, 20, 100, 70},
		{"capacity shrinks below zero remaining", SlotUpdate{Capacity: intPtr(40)}, 40, 20, 20, 0},
		{"capacity and reserved", SlotUpdate{Capacity: intPtr(110), ReservedOfflineTickets: intPtr(30)}, 110, 30, 80, 60},
		{"reserved only", SlotUpdate{ReservedOfflineTickets: intPtr(30)}, 100, 30, 70, 40},
		{"reserved only lowered", SlotUpdate{ReservedOfflineTickets: intPtr(10)}, 100, 10, 90, 60},
		{"explicit remaining wins", SlotUpdate{Capacity: intPtr(120), Remaining: intPtr(5)}, 120, 20, 100, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSlot()
			s.Apply(tt.update)

			assert.Equal(t, tt.wantCapacity, s.Capacity)
			assert.Equal(t, tt.wantReserved, s.ReservedOfflineTickets)
			assert.Equal(t, tt.wantOnline, s.OnlineTickets)
			assert.Equal(t, tt.wantRemaining, s.Remaining)
		})
	}
}

func TestSlot_StartsAt(t *testing.T) {
	s := Slot{Date: "2024-01-01", StartTime: NewTimeOfDay(9, 30, 0)}

	got, err := s.StartsAt(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC), got)

	_, err = Slot{Date: "01-01-2024"}.StartsAt(time.UTC)
	assert.Error(t, err)
}

func TestTimeOfDay(t *testing.T) {
	got, err := ParseTimeOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, NewTimeOfDay(9, 30, 0), got)
	assert.Equal(t, "09:30", got.String())

	got, err = ParseTimeOfDay("17:05:09")
	require.NoError(t, err)
	assert.Equal(t, "17:05:09", got.String())

	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)

	var decoded struct {
		At TimeOfDay `json:"at"`
	}
	require.NoError(t, decoded.At.UnmarshalJSON([]byte(`"10:00"`)))
	assert.Equal(t, NewTimeOfDay(10, 0, 0), decoded.At)
	assert.Error(t, decoded.At.UnmarshalJSON([]byte(`10`)))
}
