package job

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/dharma-pro/temple-booking/internal/config"
)

type ReminderSender interface {
	SendReminders(ctx context.Context, now time.Time) (int, error)
}

type Scheduler struct {
	cron *cron.Cron
}

// NewScheduler registers the visit reminder job on the configured schedule.
func NewScheduler(conf *config.JobsConfig, reminders ReminderSender) (*Scheduler, error) {
	c := cron.New()

	if _, err := c.AddFunc(conf.ReminderSchedule, ReminderJob(reminders, time.Now)); err != nil {
		return nil, fmt.Errorf("c.AddFunc -> %w", err)
	}

	return &Scheduler{cron: c}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	zap.L().Info("cron scheduler started", zap.Int("jobs", len(s.cron.Entries())))
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func ReminderJob(reminders ReminderSender, now func() time.Time) func() {
	return func() {
		sent, err := reminders.SendReminders(context.Background(), now())
		if err != nil {
			zap.L().Error("reminder job failed", zap.Error(err))
			return
		}
		zap.L().Info("reminder job finished", zap.Int("sent", sent))
	}
}
