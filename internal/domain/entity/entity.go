package entity

import (
	"time"

	"github.com/diegoclair/attendance-reminder-bot/internal/domain/worktime"
)

type User struct {
	ID               int64
	SlackUserID      string
	DisplayName      string
	RemindersEnabled bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// WorkSession is one user's attendance for one local work date.
// CheckOutAt is nil while the user is still working.
type WorkSession struct {
	ID         int64
	UserID     int64
	CheckInAt  time.Time
	CheckOutAt *time.Time
	WorkDate   worktime.Date
	CreatedAt  time.Time
}

func (s *WorkSession) IsOpen() bool {
	return s.CheckOutAt == nil
}

// ReminderTarget is an open session of a user who wants reminders.
type ReminderTarget struct {
	SessionID   int64
	UserID      int64
	SlackUserID string
	DisplayName string
	CheckInAt   time.Time
	WorkDate    worktime.Date
}

type Holiday struct {
	Date        worktime.Date
	NameLocal   string
	NameEnglish string
	Kind        string
}

// DisplayName prefers the English name for log and API output.
func (h *Holiday) DisplayName() string {
	if h.NameEnglish != "" {
		return h.NameEnglish
	}
	return h.NameLocal
}
