package worktime

import (
	"time"

	"github.com/diegoclair/attendance-reminder-bot/internal/domain"
)

// ShouldFire reports whether a tick at now lands within tolerance of target,
// on either side. A scheduler ticking less often than every 2*tolerance can
// step over a target entirely.
func ShouldFire(target, now time.Time, tolerance time.Duration) bool {
	diff := now.Sub(target)
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance
}

// MatchesHour is the coarse matcher of the check-in broadcast.
func MatchesHour(local time.Time, hour int) bool {
	return local.Hour() == hour
}

// DispatchKey identifies one logical reminder. At most one dispatch record
// exists per key.
type DispatchKey struct {
	UserID   string
	WorkDate Date
	Kind     domain.ReminderKind
}

func DedupKey(userID string, workDate Date, kind domain.ReminderKind) DispatchKey {
	return DispatchKey{UserID: userID, WorkDate: workDate, Kind: kind}
}

// BroadcastKey has no user component: one broadcast per local date.
func BroadcastKey(date Date) DispatchKey {
	return DispatchKey{WorkDate: date, Kind: domain.KindCheckInBroadcast}
}

func (k DispatchKey) String() string {
	user := k.UserID
	if user == "" {
		user = "*"
	}
	return user + "/" + k.WorkDate.String() + "/" + string(k.Kind)
}
