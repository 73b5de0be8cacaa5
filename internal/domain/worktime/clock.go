// Package worktime holds the pure time arithmetic behind attendance reminders:
// local/UTC conversion in a fixed offset, working-day classification, the
// check-in window, reminder schedules and tick matching.
//
// Nothing in this package reads the wall clock. Every function takes the
// instant it reasons about as an argument.
package worktime

import (
	"fmt"
	"time"
)

// DefaultOffset is Indochina Time (UTC+7). The zone has no DST.
const DefaultOffset = 7 * time.Hour

// FixedZone returns a location pinned to offset from UTC.
func FixedZone(offset time.Duration) *time.Location {
	return time.FixedZone(zoneName(offset), int(offset/time.Second))
}

func zoneName(offset time.Duration) string {
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	h := int(offset / time.Hour)
	m := int((offset % time.Hour) / time.Minute)
	return fmt.Sprintf("UTC%c%02d:%02d", sign, h, m)
}

// ToLocal returns the same instant expressed in loc.
func ToLocal(utc time.Time, loc *time.Location) time.Time {
	return utc.In(loc)
}

// ToUTC returns the same instant expressed in UTC.
func ToUTC(local time.Time) time.Time {
	return local.UTC()
}

// LocalDate is the calendar date of utc as seen in loc.
func LocalDate(utc time.Time, loc *time.Location) Date {
	return DateOf(ToLocal(utc, loc))
}
