package worktime

import (
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/attendance-reminder-bot/internal/domain"
)

// TimeOfDay is a local wall-clock time with minute precision.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay accepts HH:MM in 24-hour format.
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(value))
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time %q, use HH:MM (24-hour format)", value)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) minutes() int {
	return t.Hour*60 + t.Minute
}

// Window is the inclusive range of local times a check-in may happen in.
type Window struct {
	Earliest TimeOfDay
	Latest   TimeOfDay
}

func NewWindow(earliest, latest string) (Window, error) {
	from, err := ParseTimeOfDay(earliest)
	if err != nil {
		return Window{}, err
	}
	to, err := ParseTimeOfDay(latest)
	if err != nil {
		return Window{}, err
	}
	if from.minutes() > to.minutes() {
		return Window{}, fmt.Errorf("check-in window start %s is after its end %s", from, to)
	}
	return Window{Earliest: from, Latest: to}, nil
}

func (w Window) String() string {
	return w.Earliest.String() + "-" + w.Latest.String()
}

// CheckInValidation is the verdict of the check-in window validator.
type CheckInValidation struct {
	Valid  bool
	Reason string
}

// Validate checks the wall-clock time of local against the window. Seconds are
// ignored, so with a window ending 11:00 the whole 11:00 minute is accepted.
func (w Window) Validate(local time.Time) CheckInValidation {
	m := local.Hour()*60 + local.Minute()
	if m < w.Earliest.minutes() || m > w.Latest.minutes() {
		return CheckInValidation{Valid: false, Reason: domain.ReasonOutsideWindow}
	}
	return CheckInValidation{Valid: true}
}

func (w Window) Contains(local time.Time) bool {
	return w.Validate(local).Valid
}

// OverlapsHour reports whether any minute of the local hour falls inside the
// window.
func (w Window) OverlapsHour(hour int) bool {
	start, end := hour*60, hour*60+59
	return end >= w.Earliest.minutes() && start <= w.Latest.minutes()
}
