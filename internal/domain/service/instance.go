package service

import (
	"github.com/diegoclair/attendance-reminder-bot/internal/config"
	"github.com/diegoclair/attendance-reminder-bot/internal/domain/contract"
	"go.uber.org/zap"
)

type Instance struct {
	Reminder   contract.ReminderService
	Attendance contract.AttendanceService
	Scheduler  contract.Scheduler
}

func NewInstance(dm contract.DataManager, slackClient contract.SlackClient, cfg *config.Config, log *zap.Logger) *Instance {
	notifier := NewNotifier(slackClient, cfg.SlackBroadcastChannel)
	reminderService := newReminder(dm, notifier, cfg.Reminder, log)

	return &Instance{
		Reminder:   reminderService,
		Attendance: newAttendance(dm, slackClient, cfg.Reminder, log),
		Scheduler:  newScheduler(reminderService, cfg.Scheduler, cfg.Reminder, log),
	}
}
