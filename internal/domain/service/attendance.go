package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/attendance-reminder-bot/internal/config"
	"github.com/diegoclair/attendance-reminder-bot/internal/domain"
	"github.com/diegoclair/attendance-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/attendance-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/attendance-reminder-bot/internal/domain/worktime"
	"go.uber.org/zap"
)

type attendanceService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	cfg         config.Reminder
	loc         *time.Location
	log         *zap.Logger
}

func newAttendance(dm contract.DataManager, slackClient contract.SlackClient, cfg config.Reminder, log *zap.Logger) *attendanceService {
	return &attendanceService{
		dm:          dm,
		slackClient: slackClient,
		cfg:         cfg,
		loc:         cfg.Location(),
		log:         log.Named("attendance"),
	}
}

func (s *attendanceService) Location() *time.Location {
	return s.loc
}

// CheckIn opens today's work session. The first check-in of an unknown Slack
// user registers them with reminders enabled.
func (s *attendanceService) CheckIn(ctx context.Context, slackUserID string, now time.Time) (*entity.WorkSession, worktime.Schedule, error) {
	now = now.UTC()
	local := worktime.ToLocal(now, s.loc)

	if v := s.cfg.CheckInWindow.Validate(local); !v.Valid {
		return nil, worktime.Schedule{}, domain.ErrOutsideCheckInWindow
	}

	user, err := s.ensureUser(ctx, slackUserID)
	if err != nil {
		return nil, worktime.Schedule{}, err
	}

	open, err := s.dm.Session().GetOpenByUser(ctx, user.ID)
	if err != nil {
		return nil, worktime.Schedule{}, fmt.Errorf("failed to check open session: %w", err)
	}
	if open != nil {
		return nil, worktime.Schedule{}, domain.ErrSessionAlreadyOpen
	}

	session := &entity.WorkSession{
		UserID:    user.ID,
		CheckInAt: now,
		WorkDate:  worktime.DateOf(local),
	}
	if err := s.dm.Session().Create(ctx, session); err != nil {
		if errors.Is(err, domain.ErrSessionAlreadyOpen) {
			return nil, worktime.Schedule{}, err
		}
		return nil, worktime.Schedule{}, fmt.Errorf("failed to create session: %w", err)
	}

	s.log.Info("checked in",
		zap.String("slack_user_id", slackUserID),
		zap.Stringer("work_date", session.WorkDate),
		zap.Time("check_in_at", now),
	)

	return session, worktime.ComputeSchedule(now, s.cfg.CompletionDuration, s.cfg.PreOffset), nil
}

func (s *attendanceService) CheckOut(ctx context.Context, slackUserID string, now time.Time) (*entity.WorkSession, error) {
	now = now.UTC()

	user, err := s.dm.User().GetBySlackID(ctx, slackUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrNoOpenSession
	}

	session, err := s.dm.Session().GetOpenByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find open session: %w", err)
	}
	if session == nil {
		return nil, domain.ErrNoOpenSession
	}

	if err := s.dm.Session().Close(ctx, session.ID, now); err != nil {
		if errors.Is(err, domain.ErrNoOpenSession) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to close session: %w", err)
	}
	session.CheckOutAt = &now

	s.log.Info("checked out",
		zap.String("slack_user_id", slackUserID),
		zap.Stringer("work_date", session.WorkDate),
		zap.Duration("worked", now.Sub(session.CheckInAt)),
	)
	return session, nil
}

func (s *attendanceService) SetReminders(ctx context.Context, slackUserID string, enabled bool) error {
	user, err := s.ensureUser(ctx, slackUserID)
	if err != nil {
		return err
	}
	if user.RemindersEnabled == enabled {
		return nil
	}

	if err := s.dm.User().SetRemindersEnabled(ctx, user.ID, enabled); err != nil {
		return fmt.Errorf("failed to update reminder preference: %w", err)
	}
	return nil
}

func (s *attendanceService) Status(ctx context.Context, slackUserID string) (*contract.AttendanceStatus, error) {
	user, err := s.dm.User().GetBySlackID(ctx, slackUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	session, err := s.dm.Session().GetOpenByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find open session: %w", err)
	}

	status := &contract.AttendanceStatus{User: user, Session: session}
	if session != nil {
		schedule := worktime.ComputeSchedule(session.CheckInAt, s.cfg.CompletionDuration, s.cfg.PreOffset)
		status.Schedule = &schedule
	}
	return status, nil
}

func (s *attendanceService) ensureUser(ctx context.Context, slackUserID string) (*entity.User, error) {
	user, err := s.dm.User().GetBySlackID(ctx, slackUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if user != nil {
		return user, nil
	}

	userInfo, err := s.slackClient.GetUserInfoContext(ctx, slackUserID)
	if err != nil {
		s.log.Error("failed to get user info from Slack", zap.String("slack_user_id", slackUserID), zap.Error(err))
		return nil, fmt.Errorf("failed to get user info from Slack: %w", err)
	}

	user = &entity.User{
		SlackUserID:      slackUserID,
		DisplayName:      displayName(userInfo.Name, userInfo.Profile.RealName, userInfo.Profile.DisplayName),
		RemindersEnabled: true,
	}
	if err := s.dm.User().Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.Info("registered user", zap.String("slack_user_id", slackUserID), zap.String("display_name", user.DisplayName))
	return user, nil
}

func displayName(name, realName, profileName string) string {
	switch {
	case realName != "":
		return realName
	case profileName != "":
		return profileName
	default:
		return name
	}
}
