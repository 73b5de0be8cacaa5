package contract

//go:generate mockgen -source=service.go -destination=../../../mocks/service_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/diegoclair/attendance-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/attendance-reminder-bot/internal/domain/worktime"
)

// ReminderService runs one scheduler tick. Both runs are safe to repeat with
// overlapping now values.
type ReminderService interface {
	RunCheckInReminder(ctx context.Context, now time.Time) (*entity.RunResult, error)
	RunCheckoutReminder(ctx context.Context, now time.Time) (*entity.RunResult, error)
}

// Scheduler triggers the reminder runs from inside the process.
type Scheduler interface {
	Start() error
	// Stop waits for running jobs to finish.
	Stop()
}

// AttendanceStatus is a user's view of today.
type AttendanceStatus struct {
	User     *entity.User
	Session  *entity.WorkSession
	Schedule *worktime.Schedule
}

type AttendanceService interface {
	CheckIn(ctx context.Context, slackUserID string, now time.Time) (*entity.WorkSession, worktime.Schedule, error)
	CheckOut(ctx context.Context, slackUserID string, now time.Time) (*entity.WorkSession, error)
	SetReminders(ctx context.Context, slackUserID string, enabled bool) error
	Status(ctx context.Context, slackUserID string) (*AttendanceStatus, error)
	Location() *time.Location
}
