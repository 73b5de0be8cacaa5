package worktime

import (
	"context"
	"fmt"
	"time"
)

// HolidayCalendar answers whether a local date is a public holiday.
type HolidayCalendar interface {
	IsPublicHoliday(ctx context.Context, date Date) (bool, error)
}

func IsWeekend(d Date) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsWorkingDay classifies a local date. Weekends are never working days.
//
// When the calendar lookup fails the error is returned together with the
// weekday-only classification, so callers can log and carry on instead of
// suppressing reminders on what may be a business day.
func IsWorkingDay(ctx context.Context, cal HolidayCalendar, d Date) (bool, error) {
	if IsWeekend(d) {
		return false, nil
	}
	if cal == nil {
		return true, nil
	}

	holiday, err := cal.IsPublicHoliday(ctx, d)
	if err != nil {
		return true, fmt.Errorf("holiday lookup for %s: %w", d, err)
	}
	return !holiday, nil
}
