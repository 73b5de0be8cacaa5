package service

import (
	"fmt"
	"time"

	"github.com/diegoclair/attendance-reminder-bot/internal/domain"
	"github.com/diegoclair/attendance-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/attendance-reminder-bot/internal/domain/worktime"
)

const clockLayout = "15:04"

// reminderMessage renders the direct message for a personal reminder kind.
func reminderMessage(kind domain.ReminderKind, target *entity.ReminderTarget, schedule worktime.Schedule, loc *time.Location) string {
	checkIn := worktime.ToLocal(schedule.CheckInAt, loc).Format(clockLayout)
	completion := worktime.ToLocal(schedule.CompletionAt, loc).Format(clockLayout)

	switch kind {
	case domain.KindPreCompletion:
		return fmt.Sprintf("⏰ *Attendance Reminder*\n\n<@%s>, your work day completes at *%s* (checked in at %s).\n\nRemember to check out with `/attendance out`.",
			target.SlackUserID, completion, checkIn)
	default:
		return fmt.Sprintf("✅ *Attendance Reminder*\n\n<@%s>, you have completed your work day (checked in at %s).\n\nDon't forget to check out with `/attendance out`.",
			target.SlackUserID, checkIn)
	}
}

func checkInBroadcastMessage(date worktime.Date, window worktime.Window) string {
	return fmt.Sprintf("☀️ *Good morning!* %s, %s\n\nCheck-in is open until *%s*. Use `/attendance in` to start your day.",
		date.Weekday(), date, window.Latest)
}
