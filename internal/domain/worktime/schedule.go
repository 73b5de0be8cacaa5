package worktime

import (
	"time"

	"github.com/diegoclair/attendance-reminder-bot/internal/domain"
)

// Schedule holds the reminder instants derived from one check-in.
type Schedule struct {
	CheckInAt    time.Time
	ReminderAt   time.Time
	CompletionAt time.Time
}

// ComputeSchedule works on absolute instants only, so a work day that crosses
// local midnight, a month end or a year end needs no special casing.
func ComputeSchedule(checkIn time.Time, completion, preOffset time.Duration) Schedule {
	completionAt := checkIn.Add(completion)
	return Schedule{
		CheckInAt:    checkIn,
		ReminderAt:   completionAt.Add(-preOffset),
		CompletionAt: completionAt,
	}
}

// Target returns the instant a personal reminder kind fires at.
func (s Schedule) Target(kind domain.ReminderKind) (time.Time, bool) {
	switch kind {
	case domain.KindPreCompletion:
		return s.ReminderAt, true
	case domain.KindCompletion:
		return s.CompletionAt, true
	default:
		return time.Time{}, false
	}
}
