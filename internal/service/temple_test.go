package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharma-pro/temple-booking/internal/service"
)

func TestTempleService(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	svc := service.NewTempleService(r.temples)

	somnath := r.seedTemple(t, "Somnath")
	r.seedTemple(t, "Dwarka")

	got, err := svc.GetTemple(ctx, somnath.ID)
	require.NoError(t, err)
	assert.Equal(t, "Somnath", got.Name)

	all, err := svc.ListTemples(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.GetTemple(ctx, 999)
	assert.ErrorIs(t, err, service.ErrTempleNotFound)
}

func TestTempleService_DeleteTempleCascades(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	svc := service.NewTempleService(r.temples)

	temple := r.seedTemple(t, "Somnath")
	slot := r.seedSlot(t, temple.ID, "2024-01-01", 9, 10)

	require.NoError(t, svc.DeleteTemple(ctx, temple.ID))

	_, err := svc.GetTemple(ctx, temple.ID)
	assert.ErrorIs(t, err, service.ErrTempleNotFound)

	_, err = r.slots.FindByID(ctx, slot.ID)
	assert.ErrorIs(t, err, service.ErrSlotNotFound)

	assert.ErrorIs(t, svc.DeleteTemple(ctx, temple.ID), service.ErrTempleNotFound)
}
