package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/diegoclair/attendance-reminder-bot/internal/config"
	"github.com/diegoclair/attendance-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/attendance-reminder-bot/internal/domain/entity"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// spacingSamples is how many upcoming activations are inspected when
// measuring the widest gap of a cron spec.
const spacingSamples = 500

// scheduler drives both reminder runs from a cron spec inside the process.
// Deployments with an external cron trigger leave it disabled.
type scheduler struct {
	reminder  contract.ReminderService
	spec      string
	tolerance time.Duration
	loc       *time.Location
	log       *zap.Logger
	now       func() time.Time

	mu      sync.Mutex
	cron    *cron.Cron
	running bool
}

func newScheduler(reminder contract.ReminderService, cfg config.Scheduler, reminderCfg config.Reminder, log *zap.Logger) *scheduler {
	return &scheduler{
		reminder:  reminder,
		spec:      cfg.Spec,
		tolerance: reminderCfg.Tolerance,
		loc:       reminderCfg.Location(),
		log:       log.Named("scheduler"),
		now:       time.Now,
	}
}

func (s *scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	schedule, err := cron.ParseStandard(s.spec)
	if err != nil {
		return fmt.Errorf("invalid scheduler spec %q: %w", s.spec, err)
	}
	if gap := maxSpacing(schedule, s.now().In(s.loc), spacingSamples); gap > 2*s.tolerance {
		s.log.Warn("scheduler ticks are further apart than twice the tolerance, reminders can be missed",
			zap.String("spec", s.spec),
			zap.Duration("max_spacing", gap),
			zap.Duration("tolerance", s.tolerance),
		)
	}

	cronLog := cron.PrintfLogger(zap.NewStdLog(s.log))
	c := cron.New(
		cron.WithLocation(s.loc),
		cron.WithLogger(cronLog),
		cron.WithChain(cron.SkipIfStillRunning(cronLog), cron.Recover(cronLog)),
	)
	c.Schedule(schedule, cron.FuncJob(func() { s.tick("checkin-reminder", s.reminder.RunCheckInReminder) }))
	c.Schedule(schedule, cron.FuncJob(func() { s.tick("checkout-reminder", s.reminder.RunCheckoutReminder) }))

	s.log.Info("scheduler starting", zap.String("spec", s.spec), zap.String("zone", s.loc.String()))
	c.Start()

	s.cron = c
	s.running = true
	return nil
}

// Stop waits for running jobs to finish.
func (s *scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.log.Info("scheduler stopping")
	<-s.cron.Stop().Done()
	s.running = false
}

func (s *scheduler) tick(job string, run func(ctx context.Context, now time.Time) (*entity.RunResult, error)) {
	result, err := run(context.Background(), s.now())
	if err != nil {
		s.log.Error("scheduled run failed", zap.String("job", job), zap.Error(err))
		return
	}
	if !result.Success {
		s.log.Warn("scheduled run reported failures",
			zap.String("job", job),
			zap.String("run_id", result.RunID),
			zap.Int("failed", result.FailedCount),
		)
	}
}

// maxSpacing returns the widest gap between consecutive activations of
// schedule over the next samples activations after from.
func maxSpacing(schedule cron.Schedule, from time.Time, samples int) time.Duration {
	var widest time.Duration

	prev := schedule.Next(from)
	if prev.IsZero() {
		return 0
	}
	for i := 0; i < samples; i++ {
		next := schedule.Next(prev)
		if next.IsZero() {
			break
		}
		if gap := next.Sub(prev); gap > widest {
			widest = gap
		}
		prev = next
	}
	return widest
}
