package domain

import "time"

// ISO 8601 weekday constants and mappings
const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
	Sunday    = 7
)

// WeekdayNames maps ISO 8601 weekday numbers to their English names
var WeekdayNames = map[int]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// ISOWeekday converts Go's Sunday=0 weekday to ISO 8601 (Monday=1 ... Sunday=7)
func ISOWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return Sunday
	}
	return int(d)
}

// ReminderKind identifies which reminder a dispatch belongs to.
type ReminderKind string

const (
	KindPreCompletion    ReminderKind = "PRE_COMPLETION"
	KindCompletion       ReminderKind = "COMPLETION"
	KindCheckInBroadcast ReminderKind = "CHECKIN_BROADCAST"
)

// PersonalReminderKinds are evaluated for every open session on each checkout tick.
var PersonalReminderKinds = []ReminderKind{KindPreCompletion, KindCompletion}

// Run and outcome reasons. These are the only strings cron callers ever see.
const (
	ReasonCompleted           = "completed"
	ReasonNotWorkingDay       = "not a working day"
	ReasonOutsideWindow       = "outside check-in window"
	ReasonOutsideMatchingHour = "outside matching hour"
	ReasonAlreadyDispatched   = "already dispatched"
	ReasonNothingDue          = "nothing due"
	ReasonSinkError           = "sink error"
	ReasonLedgerError         = "ledger error"
	ReasonRunCanceled         = "run canceled"
	ReasonUserStoreError      = "user store unavailable"
	ReasonLedgerStoreError    = "dispatch store unavailable"
)

// Outcome statuses
const (
	StatusSent    = "sent"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
)

// DefaultHolidayKind is used when an imported holiday carries no category.
const DefaultHolidayKind = "public"
