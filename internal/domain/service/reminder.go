package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/diegoclair/attendance-reminder-bot/internal/config"
	"github.com/diegoclair/attendance-reminder-bot/internal/domain"
	"github.com/diegoclair/attendance-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/attendance-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/attendance-reminder-bot/internal/domain/worktime"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type reminderService struct {
	dm       contract.DataManager
	notifier contract.Notifier
	cfg      config.Reminder
	loc      *time.Location
	log      *zap.Logger
	clock    func() time.Time

	// keys whose sink call is in progress in this process
	inflight sync.Map
}

func newReminder(dm contract.DataManager, notifier contract.Notifier, cfg config.Reminder, log *zap.Logger) *reminderService {
	return &reminderService{
		dm:       dm,
		notifier: notifier,
		cfg:      cfg,
		loc:      cfg.Location(),
		log:      log.Named("reminder"),
		clock:    time.Now,
	}
}

// dispatchJob is one (recipient, kind) pair that is due and not yet recorded.
type dispatchJob struct {
	key     worktime.DispatchKey
	outcome *entity.Outcome
	send    func(ctx context.Context) error
}

// RunCheckoutReminder evaluates every open session against the pre-completion
// and completion instants and messages the users whose reminder is due.
//
// The returned error is set only when a collaborator the run cannot do
// without failed. The result is never nil.
func (s *reminderService) RunCheckoutReminder(ctx context.Context, now time.Time) (*entity.RunResult, error) {
	now = now.UTC()
	result, log := s.newRun("checkout-reminder")
	date := worktime.LocalDate(now, s.loc)

	if working, detail := s.gate(ctx, log, date); !working {
		result.Detail = detail
		return s.finish(log, result, domain.ReasonNotWorkingDay), nil
	}

	targets, err := s.dm.Session().ListOpenWithRemindersEnabled(ctx)
	if err != nil {
		log.Error("failed to load reminder targets", zap.Error(err))
		return s.abort(log, result, domain.ReasonUserStoreError), fmt.Errorf("failed to load reminder targets: %w", err)
	}

	jobs, err := s.evaluate(ctx, result, targets, now)
	if err != nil {
		log.Error("failed to read dispatch records", zap.Error(err))
		return s.abort(log, result, domain.ReasonLedgerStoreError), err
	}

	if len(result.Outcomes) == 0 {
		return s.finish(log, result, domain.ReasonNothingDue), nil
	}

	s.dispatch(ctx, log, jobs)
	return s.finish(log, result, domain.ReasonCompleted), nil
}

// RunCheckInReminder broadcasts the check-in call once per working day,
// during the configured local hour.
func (s *reminderService) RunCheckInReminder(ctx context.Context, now time.Time) (*entity.RunResult, error) {
	now = now.UTC()
	result, log := s.newRun("checkin-reminder")
	local := worktime.ToLocal(now, s.loc)
	date := worktime.DateOf(local)

	if working, detail := s.gate(ctx, log, date); !working {
		result.Detail = detail
		return s.finish(log, result, domain.ReasonNotWorkingDay), nil
	}
	if !s.cfg.CheckInWindow.Contains(local) {
		result.Detail = s.cfg.CheckInWindow.String()
		return s.finish(log, result, domain.ReasonOutsideWindow), nil
	}
	if !worktime.MatchesHour(local, s.cfg.BroadcastHour) {
		result.Detail = fmt.Sprintf("broadcast hour is %02d:00", s.cfg.BroadcastHour)
		return s.finish(log, result, domain.ReasonOutsideMatchingHour), nil
	}

	key := worktime.BroadcastKey(date)
	outcome := &entity.Outcome{Kind: domain.KindCheckInBroadcast}
	result.Outcomes = append(result.Outcomes, outcome)

	exists, err := s.dm.Dispatch().Exists(ctx, key)
	if err != nil {
		log.Error("failed to read dispatch records", zap.Stringer("key", key), zap.Error(err))
		result.Outcomes = result.Outcomes[:0]
		return s.abort(log, result, domain.ReasonLedgerStoreError), fmt.Errorf("failed to check dispatch record %s: %w", key, err)
	}
	if exists {
		skip(outcome, domain.ReasonAlreadyDispatched)
		return s.finish(log, result, domain.ReasonAlreadyDispatched), nil
	}

	message := checkInBroadcastMessage(date, s.cfg.CheckInWindow)
	s.deliver(ctx, log, &dispatchJob{
		key:     key,
		outcome: outcome,
		send: func(ctx context.Context) error {
			return s.notifier.Broadcast(ctx, message)
		},
	})

	return s.finish(log, result, domain.ReasonCompleted), nil
}

func (s *reminderService) newRun(job string) (*entity.RunResult, *zap.Logger) {
	runID := uuid.NewString()
	result := &entity.RunResult{
		RunID:    runID,
		Outcomes: []*entity.Outcome{},
	}
	return result, s.log.With(zap.String("run_id", runID), zap.String("job", job))
}

// gate classifies the local date. A failing holiday calendar does not stop the
// run: the weekday-only answer is used and the failure is logged.
func (s *reminderService) gate(ctx context.Context, log *zap.Logger, date worktime.Date) (bool, string) {
	working, err := worktime.IsWorkingDay(ctx, s.dm.Holiday(), date)
	if err != nil {
		log.Warn("holiday calendar unavailable, using weekday-only classification",
			zap.Stringer("date", date), zap.Error(err))
	}
	if working {
		return true, ""
	}

	if worktime.IsWeekend(date) {
		return false, domain.WeekdayNames[domain.ISOWeekday(date.Weekday())]
	}

	// best effort, only used for the human readable detail
	info, err := s.dm.Holiday().GetHolidayInfo(ctx, date)
	if err != nil || info == nil {
		return false, date.String()
	}
	log.Info("skipping holiday", zap.Stringer("date", date), zap.String("holiday", info.DisplayName()))
	return false, info.DisplayName()
}

// evaluate decides, per target and personal reminder kind, whether a reminder
// is due now and not yet recorded. Every ledger read happens here, before any
// message goes out, so an unavailable ledger aborts the run without a partial
// dispatch.
func (s *reminderService) evaluate(ctx context.Context, result *entity.RunResult, targets []*entity.ReminderTarget, now time.Time) ([]*dispatchJob, error) {
	var jobs []*dispatchJob

	for _, target := range targets {
		schedule := worktime.ComputeSchedule(target.CheckInAt, s.cfg.CompletionDuration, s.cfg.PreOffset)

		for _, kind := range domain.PersonalReminderKinds {
			at, _ := schedule.Target(kind)
			if !worktime.ShouldFire(at, now, s.cfg.Tolerance) {
				continue
			}

			key := worktime.DedupKey(target.SlackUserID, target.WorkDate, kind)
			exists, err := s.dm.Dispatch().Exists(ctx, key)
			if err != nil {
				result.Outcomes = result.Outcomes[:0]
				return nil, fmt.Errorf("failed to check dispatch record %s: %w", key, err)
			}

			outcome := &entity.Outcome{
				UserID:      target.SlackUserID,
				DisplayName: target.DisplayName,
				Kind:        kind,
			}
			result.Outcomes = append(result.Outcomes, outcome)

			if exists {
				skip(outcome, domain.ReasonAlreadyDispatched)
				continue
			}

			message := reminderMessage(kind, target, schedule, s.loc)
			userID := target.SlackUserID
			jobs = append(jobs, &dispatchJob{
				key:     key,
				outcome: outcome,
				send: func(ctx context.Context) error {
					return s.notifier.PushToUser(ctx, userID, message)
				},
			})
		}
	}

	return jobs, nil
}

// dispatch runs the jobs on a bounded pool. Jobs never fail the group, so one
// recipient's failure does not cancel the others.
func (s *reminderService) dispatch(ctx context.Context, log *zap.Logger, jobs []*dispatchJob) {
	g := new(errgroup.Group)
	g.SetLimit(s.cfg.Workers)

	for _, job := range jobs {
		g.Go(func() error {
			s.deliver(ctx, log, job)
			return nil
		})
	}

	_ = g.Wait()
}

// deliver sends one reminder and records it. The send and the record write are
// one unit: once the sink accepted the message the record is written even if
// ctx was canceled meanwhile.
func (s *reminderService) deliver(ctx context.Context, log *zap.Logger, job *dispatchJob) {
	log = log.With(zap.Stringer("key", job.key))

	if ctx.Err() != nil {
		fail(job.outcome, domain.ReasonRunCanceled)
		return
	}

	if _, busy := s.inflight.LoadOrStore(job.key, struct{}{}); busy {
		skip(job.outcome, domain.ReasonAlreadyDispatched)
		return
	}
	defer s.inflight.Delete(job.key)

	// An overlapping run may have finished this key since evaluate looked.
	exists, err := s.dm.Dispatch().Exists(ctx, job.key)
	if err != nil {
		log.Error("failed to recheck dispatch record", zap.Error(err))
		fail(job.outcome, domain.ReasonLedgerError)
		return
	}
	if exists {
		skip(job.outcome, domain.ReasonAlreadyDispatched)
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, s.cfg.SinkTimeout)
	err = job.send(sendCtx)
	cancel()
	if err != nil {
		log.Warn("reminder dispatch failed", zap.Error(err))
		fail(job.outcome, domain.ReasonSinkError)
		return
	}

	// sent_at is when the sink accepted the message, not the tick instant
	inserted, err := s.dm.Dispatch().InsertIfAbsent(context.WithoutCancel(ctx), job.key, s.clock().UTC())
	if err != nil {
		log.Error("reminder sent but not recorded", zap.Error(err))
		fail(job.outcome, domain.ReasonLedgerError)
		return
	}
	if !inserted {
		log.Warn("reminder was recorded by another run first")
		skip(job.outcome, domain.ReasonAlreadyDispatched)
		return
	}

	job.outcome.Status = domain.StatusSent
	log.Debug("reminder sent")
}

func (s *reminderService) finish(log *zap.Logger, result *entity.RunResult, message string) *entity.RunResult {
	result.Tally()
	result.Message = message
	result.Success = result.FailedCount == 0

	log.Info("reminder run finished",
		zap.String("message", message),
		zap.Bool("success", result.Success),
		zap.Int("sent", result.SentCount),
		zap.Int("skipped", result.SkippedCount),
		zap.Int("failed", result.FailedCount),
	)
	return result
}

func (s *reminderService) abort(log *zap.Logger, result *entity.RunResult, reason string) *entity.RunResult {
	result.Tally()
	result.Message = reason
	result.Success = false

	log.Error("reminder run aborted", zap.String("reason", reason))
	return result
}

func skip(o *entity.Outcome, reason string) {
	o.Status = domain.StatusSkipped
	o.Reason = reason
}

func fail(o *entity.Outcome, reason string) {
	o.Status = domain.StatusFailed
	o.Reason = reason
}
