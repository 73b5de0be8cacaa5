package contract

//go:generate mockgen -source=repo.go -destination=../../../mocks/repo_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/diegoclair/attendance-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/attendance-reminder-bot/internal/domain/worktime"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	User() UserRepo
	Session() SessionRepo
	Dispatch() DispatchRepo
	Holiday() HolidayRepo
}

// UserRepo defines the contract for user repository
type UserRepo interface {
	Create(ctx context.Context, user *entity.User) error
	GetBySlackID(ctx context.Context, slackUserID string) (*entity.User, error)
	SetRemindersEnabled(ctx context.Context, userID int64, enabled bool) error
}

// SessionRepo defines the contract for work session repository
type SessionRepo interface {
	Create(ctx context.Context, session *entity.WorkSession) error
	GetOpenByUser(ctx context.Context, userID int64) (*entity.WorkSession, error)
	Close(ctx context.Context, sessionID int64, checkOutAt time.Time) error
	ListOpenWithRemindersEnabled(ctx context.Context) ([]*entity.ReminderTarget, error)
}

// DispatchRepo is the idempotency ledger of sent reminders
type DispatchRepo interface {
	// InsertIfAbsent returns false when the key was already recorded.
	InsertIfAbsent(ctx context.Context, key worktime.DispatchKey, sentAt time.Time) (bool, error)
	Exists(ctx context.Context, key worktime.DispatchKey) (bool, error)
}

// HolidayRepo defines the contract for the holiday calendar
type HolidayRepo interface {
	IsPublicHoliday(ctx context.Context, date worktime.Date) (bool, error)
	GetHolidayInfo(ctx context.Context, date worktime.Date) (*entity.Holiday, error)
	Upsert(ctx context.Context, holiday *entity.Holiday) error
}
