package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharma-pro/temple-booking/internal/domain"
	"github.com/dharma-pro/temple-booking/internal/service"
)

func TestSlotService_CreateSlot(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	publisher := &fakePublisher{}
	svc := service.NewSlotService(r.slots, publisher)
	temple := r.seedTemple(t, "Somnath")

	params := service.CreateSlotParams{
		TempleID:               temple.ID,
		Date:                   "2024-01-01",
		StartTime:              domain.NewTimeOfDay(9, 0, 0),
		EndTime:                domain.NewTimeOfDay(10, 0, 0),
		Capacity:               50,
		ReservedOfflineTickets: intPtr(10),
	}

	first, err := svc.CreateSlot(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, 1, first.SlotNumber)
	assert.Equal(t, 40, first.OnlineTickets)
	assert.Equal(t, 40, first.Remaining)
	assert.Equal(t, first.Availability(), publisher.last())

	// Touching intervals do not overlap.
	params.StartTime = domain.NewTimeOfDay(10, 0, 0)
	params.EndTime = domain.NewTimeOfDay(11, 0, 0)
	params.ReservedOfflineTickets = nil
	params.Remaining = intPtr(5)
	second, err := svc.CreateSlot(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, 2, second.SlotNumber)
	assert.Equal(t, 50, second.OnlineTickets)
	assert.Equal(t, 5, second.Remaining)

	tests := []struct {
		name    string
		mutate  func(p *service.CreateSlotParams)
		wantErr error
	}{
		{
			name: "end before start",
			mutate: func(p *service.CreateSlotParams) {
				p.StartTime, p.EndTime = domain.NewTimeOfDay(12, 0, 0), domain.NewTimeOfDay(11, 0, 0)
			},
			wantErr: service.ErrInvalidTimeRange,
		},
		{
			name: "overlap",
			mutate: func(p *service.CreateSlotParams) {
				p.StartTime, p.EndTime = domain.NewTimeOfDay(9, 30, 0), domain.NewTimeOfDay(10, 30, 0)
			},
			wantErr: service.ErrSlotOverlap,
		},
		{
			name:    "reserved above capacity",
			mutate:  func(p *service.CreateSlotParams) { p.ReservedOfflineTickets = intPtr(60) },
			wantErr: service.ErrReservedExceedsCapacity,
		},
		{
			name:    "zero capacity",
			mutate:  func(p *service.CreateSlotParams) { p.Capacity = 0 },
			wantErr: service.ErrInvalidCapacity,
		},
		{
			name:    "remaining above capacity",
			mutate:  func(p *service.CreateSlotParams) { p.Remaining = intPtr(51) },
			wantErr: service.ErrInvalidRemaining,
		},
		{
			name:    "unknown temple",
			mutate:  func(p *service.CreateSlotParams) { p.TempleID = 999 },
			wantErr: service.ErrTempleNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := service.CreateSlotParams{
				TempleID:  temple.ID,
				Date:      "2024-01-01",
				StartTime: domain.NewTimeOfDay(14, 0, 0),
				EndTime:   domain.NewTimeOfDay(15, 0, 0),
				Capacity:  50,
			}
			tt.mutate(&p)

			_, err := svc.CreateSlot(ctx, p)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// Same hours on another day are fine and keep numbering per temple.
	params.Date = "2024-01-02"
	params.Remaining = nil
	third, err := svc.CreateSlot(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, 3, third.SlotNumber)
}

func TestSlotService_UpdateSlot(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	publisher := &fakePublisher{}
	svc := service.NewSlotService(r.slots, publisher)
	temple := r.seedTemple(t, "Somnath")
	slot := r.seedSlot(t, temple.ID, "2024-01-01", 9, 10)
	other := r.seedSlot(t, temple.ID, "2024-01-01", 11, 10)

	updated, err := svc.UpdateSlot(ctx, slot.ID, domain.SlotUpdate{Capacity: intPtr(15)})
	require.NoError(t, err)
	assert.Equal(t, 15, updated.Capacity)
	assert.Equal(t, 15, updated.Remaining)
	assert.Equal(t, 15, updated.OnlineTickets)
	assert.Equal(t, updated.Availability(), publisher.last())

	updated, err = svc.UpdateSlot(ctx, slot.ID, domain.SlotUpdate{ReservedOfflineTickets: intPtr(5)})
	require.NoError(t, err)
	assert.Equal(t, 10, updated.Remaining)
	assert.Equal(t, 10, updated.OnlineTickets)

	// Moving a slot onto itself is not an overlap.
	end := domain.NewTimeOfDay(9, 30, 0)
	updated, err = svc.UpdateSlot(ctx, slot.ID, domain.SlotUpdate{EndTime: &end})
	require.NoError(t, err)
	assert.Equal(t, end, updated.EndTime)

	start := domain.NewTimeOfDay(10, 30, 0)
	_, err = svc.UpdateSlot(ctx, other.ID, domain.SlotUpdate{StartTime: &start, EndTime: &end})
	assert.ErrorIs(t, err, service.ErrInvalidTimeRange)

	start = domain.NewTimeOfDay(9, 0, 0)
	_, err = svc.UpdateSlot(ctx, other.ID, domain.SlotUpdate{StartTime: &start})
	assert.ErrorIs(t, err, service.ErrSlotOverlap)

	_, err = svc.UpdateSlot(ctx, slot.ID, domain.SlotUpdate{ReservedOfflineTickets: intPtr(20)})
	assert.ErrorIs(t, err, service.ErrReservedExceedsCapacity)

	_, err = svc.UpdateSlot(ctx, slot.ID, domain.SlotUpdate{Capacity: intPtr(0)})
	assert.ErrorIs(t, err, service.ErrInvalidCapacity)

	_, err = svc.UpdateSlot(ctx, slot.ID, domain.SlotUpdate{Remaining: intPtr(16)})
	assert.ErrorIs(t, err, service.ErrInvalidRemaining)

	_, err = svc.UpdateSlot(ctx, 999, domain.SlotUpdate{Capacity: intPtr(5)})
	assert.ErrorIs(t, err, service.ErrSlotNotFound)

	got, err := svc.GetSlot(ctx, slot.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, got.Capacity)
	assert.Equal(t, 5, got.ReservedOfflineTickets)
}

func TestSlotService_ListAndDelete(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	publisher := &fakePublisher{}
	svc := service.NewSlotService(r.slots, publisher)
	somnath := r.seedTemple(t, "Somnath")
	dwarka := r.seedTemple(t, "Dwarka")

	slot := r.seedSlot(t, somnath.ID, "2024-01-01", 9, 10)
	r.seedSlot(t, somnath.ID, "2024-01-02", 9, 10)
	r.seedSlot(t, dwarka.ID, "2024-01-01", 9, 10)

	slots, err := svc.ListSlots(ctx, somnath.ID, "2024-01-01")
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, slot.ID, slots[0].ID)

	slots, err = svc.ListSlots(ctx, somnath.ID, "")
	require.NoError(t, err)
	assert.Len(t, slots, 2)

	require.NoError(t, svc.DeleteSlot(ctx, slot.ID))
	deleted := publisher.last()
	assert.True(t, deleted.Deleted)
	assert.Equal(t, slot.ID, deleted.SlotID)

	_, err = svc.GetSlot(ctx, slot.ID)
	assert.ErrorIs(t, err, service.ErrSlotNotFound)
	assert.ErrorIs(t, svc.DeleteSlot(ctx, slot.ID), service.ErrSlotNotFound)
}
