package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharma-pro/temple-booking/internal/domain"
	"github.com/dharma-pro/temple-booking/internal/service"
)

func boolPtr(b bool) *bool { return &b }

func TestParkingService_Zones(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	svc := service.NewParkingService(r.parking)
	somnath := r.seedTemple(t, "Somnath")
	dwarka := r.seedTemple(t, "Dwarka")

	_, err := svc.CreateZone(ctx, domain.ParkingZone{TempleID: 999, TotalSlots: 10})
	assert.ErrorIs(t, err, service.ErrTempleNotFound)

	_, err = svc.CreateZone(ctx, domain.ParkingZone{TempleID: somnath.ID, TotalSlots: 10, FreeSlots: 8, FilledSlots: 3})
	assert.ErrorIs(t, err, service.ErrParkingCountsExceed)

	_, err = svc.CreateZone(ctx, domain.ParkingZone{TempleID: somnath.ID, TotalSlots: 10, CCTVCount: -1})
	assert.ErrorIs(t, err, service.ErrInvalidParkingCount)

	zone, err := svc.CreateZone(ctx, domain.ParkingZone{
		TempleID: somnath.ID, TotalSlots: 40, FreeSlots: 30, FilledSlots: 10, TwoWheeler: 25, FourWheeler: 15, CCTVCount: 4,
	})
	require.NoError(t, err)
	assert.NotZero(t, zone.ID)
	assert.False(t, zone.Status)

	active, err := svc.CreateZone(ctx, domain.ParkingZone{TempleID: dwarka.ID, TotalSlots: 5, Status: true})
	require.NoError(t, err)
	assert.True(t, active.Status)

	all, err := svc.ListZones(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byTemple, err := svc.ListZones(ctx, somnath.ID)
	require.NoError(t, err)
	require.Len(t, byTemple, 1)
	assert.Equal(t, zone.ID, byTemple[0].ID)

	none, err := svc.ListZones(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, none)

	updated, err := svc.UpdateZone(ctx, zone.ID, domain.ParkingZoneUpdate{FreeSlots: intPtr(29), FilledSlots: intPtr(11), Status: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, 29, updated.FreeSlots)
	assert.Equal(t, 11, updated.FilledSlots)
	assert.Equal(t, 40, updated.TotalSlots)
	assert.True(t, updated.Status)
	assert.Equal(t, somnath.ID, updated.TempleID)

	_, err = svc.UpdateZone(ctx, zone.ID, domain.ParkingZoneUpdate{TotalSlots: intPtr(20)})
	assert.ErrorIs(t, err, service.ErrParkingCountsExceed)

	got, err := svc.GetZone(ctx, zone.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, got.TotalSlots, "a rejected update must not be stored")

	_, err = svc.UpdateZone(ctx, 999, domain.ParkingZoneUpdate{})
	assert.ErrorIs(t, err, service.ErrParkingZoneNotFound)
	_, err = svc.GetZone(ctx, 999)
	assert.ErrorIs(t, err, service.ErrParkingZoneNotFound)
}

func TestParkingService_Slots(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	svc := service.NewParkingService(r.parking)
	temple := r.seedTemple(t, "Somnath")

	north, err := svc.CreateZone(ctx, domain.ParkingZone{TempleID: temple.ID, TotalSlots: 10})
	require.NoError(t, err)
	south, err := svc.CreateZone(ctx, domain.ParkingZone{TempleID: temple.ID, TotalSlots: 10})
	require.NoError(t, err)

	_, err = svc.CreateSlot(ctx, domain.ParkingSlot{ParkingZoneID: 999, Capacity: 1})
	assert.ErrorIs(t, err, service.ErrParkingZoneNotFound)

	_, err = svc.CreateSlot(ctx, domain.ParkingSlot{ParkingZoneID: north.ID})
	assert.ErrorIs(t, err, service.ErrInvalidParkingCapacity)

	slot, err := svc.CreateSlot(ctx, domain.ParkingSlot{ParkingZoneID: north.ID, Available: true, Status: true, Capacity: 2})
	require.NoError(t, err)
	_, err = svc.CreateSlot(ctx, domain.ParkingSlot{ParkingZoneID: north.ID, Status: true, Capacity: 1})
	require.NoError(t, err)

	inNorth, err := svc.ListSlots(ctx, north.ID)
	require.NoError(t, err)
	assert.Len(t, inNorth, 2)

	moved, err := svc.UpdateSlot(ctx, slot.ID, domain.ParkingSlotUpdate{ParkingZoneID: &south.ID, Available: boolPtr(false)})
	require.NoError(t, err)
	assert.Equal(t, south.ID, moved.ParkingZoneID)
	assert.False(t, moved.Available)
	assert.True(t, moved.Status)
	assert.Equal(t, 2, moved.Capacity)

	_, err = svc.UpdateSlot(ctx, slot.ID, domain.ParkingSlotUpdate{ParkingZoneID: uintPtr(999)})
	assert.ErrorIs(t, err, service.ErrParkingZoneNotFound)
	_, err = svc.UpdateSlot(ctx, slot.ID, domain.ParkingSlotUpdate{Capacity: intPtr(0)})
	assert.ErrorIs(t, err, service.ErrInvalidParkingCapacity)
	_, err = svc.UpdateSlot(ctx, 999, domain.ParkingSlotUpdate{})
	assert.ErrorIs(t, err, service.ErrParkingSlotNotFound)

	// Deleting a zone takes its slots along.
	require.NoError(t, svc.DeleteZone(ctx, north.ID))
	all, err := svc.ListSlots(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, slot.ID, all[0].ID)
	assert.ErrorIs(t, svc.DeleteZone(ctx, north.ID), service.ErrParkingZoneNotFound)

	require.NoError(t, svc.DeleteSlot(ctx, slot.ID))
	_, err = svc.GetSlot(ctx, slot.ID)
	assert.ErrorIs(t, err, service.ErrParkingSlotNotFound)
	assert.ErrorIs(t, svc.DeleteSlot(ctx, slot.ID), service.ErrParkingSlotNotFound)
}

func TestTempleService_DeleteRemovesParking(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	parking := service.NewParkingService(r.parking)
	temple := r.seedTemple(t, "Somnath")
	other := r.seedTemple(t, "Dwarka")

	zone, err := parking.CreateZone(ctx, domain.ParkingZone{TempleID: temple.ID, TotalSlots: 5})
	require.NoError(t, err)
	slot, err := parking.CreateSlot(ctx, domain.ParkingSlot{ParkingZoneID: zone.ID, Capacity: 1})
	require.NoError(t, err)
	kept, err := parking.CreateZone(ctx, domain.ParkingZone{TempleID: other.ID, TotalSlots: 5})
	require.NoError(t, err)

	require.NoError(t, service.NewTempleService(r.temples).DeleteTemple(ctx, temple.ID))

	_, err = parking.GetZone(ctx, zone.ID)
	assert.ErrorIs(t, err, service.ErrParkingZoneNotFound)
	_, err = parking.GetSlot(ctx, slot.ID)
	assert.ErrorIs(t, err, service.ErrParkingSlotNotFound)
	_, err = parking.GetZone(ctx, kept.ID)
	assert.NoError(t, err)
}
