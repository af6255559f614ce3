package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharma-pro/temple-booking/internal/config"
)

type reminderFunc func(ctx context.Context, now time.Time) (int, error)

func (f reminderFunc) SendReminders(ctx context.Context, now time.Time) (int, error) {
	return f(ctx, now)
}

func TestReminderJob(t *testing.T) {
	fixed := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	var calls int
	job := ReminderJob(reminderFunc(func(_ context.Context, now time.Time) (int, error) {
		calls++
		assert.Equal(t, fixed, now)
		return 2, nil
	}), func() time.Time { return fixed })

	job()
	assert.Equal(t, 1, calls)

	failing := ReminderJob(reminderFunc(func(context.Context, time.Time) (int, error) {
		return 0, errors.New("db down")
	}), time.Now)
	assert.NotPanics(t, failing)
}

func TestNewScheduler(t *testing.T) {
	noop := reminderFunc(func(context.Context, time.Time) (int, error) { return 0, nil })

	s, err := NewScheduler(&config.JobsConfig{ReminderSchedule: "*/5 * * * *"}, noop)
	require.NoError(t, err)
	s.Start()
	s.Stop()

	_, err = NewScheduler(&config.JobsConfig{ReminderSchedule: "every now and then"}, noop)
	assert.Error(t, err)
}
