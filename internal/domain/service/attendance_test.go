package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/attendance-reminder-bot/internal/domain"
	"github.com/diegoclair/attendance-reminder-bot/internal/domain/entity"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func Test_attendanceService_CheckIn(t *testing.T) {
	type args struct {
		slackUserID string
		now         time.Time
	}
	tests := []struct {
		name      string
		args      args
		buildMock func(mocks allMocks, args args)
		wantErr   error
	}{
		{
			name: "Should check in a known user",
			args: args{slackUserID: "U1", now: checkIn},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockUserRepo.EXPECT().GetBySlackID(gomock.Any(), args.slackUserID).
					Return(&entity.User{ID: 7, SlackUserID: args.slackUserID, RemindersEnabled: true}, nil).Times(1)
				mocks.mockSessionRepo.EXPECT().GetOpenByUser(gomock.Any(), int64(7)).Return(nil, nil).Times(1)
				mocks.mockSessionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, session *entity.WorkSession) error {
						require.Equal(t, int64(7), session.UserID)
						require.Equal(t, checkIn, session.CheckInAt)
						require.Equal(t, workDay, session.WorkDate)
						require.True(t, session.IsOpen())
						session.ID = 1
						return nil
					}).Times(1)
			},
		},
		{
			name: "Should register an unknown user from Slack on first check-in",
			args: args{slackUserID: "U2", now: checkIn.Add(30 * time.Minute)},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockUserRepo.EXPECT().GetBySlackID(gomock.Any(), args.slackUserID).Return(nil, nil).Times(1)
				mocks.mockSlackClient.EXPECT().GetUserInfoContext(gomock.Any(), args.slackUserID).
					Return(&slack.User{
						ID:      args.slackUserID,
						Name:    "somchai",
						Profile: slack.UserProfile{RealName: "Somchai P.", DisplayName: "som"},
					}, nil).Times(1)
				mocks.mockUserRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, user *entity.User) error {
						require.Equal(t, "Somchai P.", user.DisplayName)
						require.True(t, user.RemindersEnabled)
						user.ID = 8
						return nil
					}).Times(1)
				mocks.mockSessionRepo.EXPECT().GetOpenByUser(gomock.Any(), int64(8)).Return(nil, nil).Times(1)
				mocks.mockSessionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
			},
		},
		{
			name:    "Should reject a check-in before the window opens",
			args:    args{slackUserID: "U1", now: time.Date(2025, 6, 30, 0, 59, 0, 0, time.UTC)}, // 07:59 local
			wantErr: domain.ErrOutsideCheckInWindow,
		},
		{
			name:    "Should reject a check-in after the window closes",
			args:    args{slackUserID: "U1", now: time.Date(2025, 6, 30, 4, 1, 0, 0, time.UTC)}, // 11:01 local
			wantErr: domain.ErrOutsideCheckInWindow,
		},
		{
			name: "Should accept a check-in on the closing minute",
			args: args{slackUserID: "U1", now: time.Date(2025, 6, 30, 4, 0, 59, 0, time.UTC)}, // 11:00:59 local
			buildMock: func(mocks allMocks, args args) {
				mocks.mockUserRepo.EXPECT().GetBySlackID(gomock.Any(), args.slackUserID).
					Return(&entity.User{ID: 7, SlackUserID: args.slackUserID}, nil).Times(1)
				mocks.mockSessionRepo.EXPECT().GetOpenByUser(gomock.Any(), int64(7)).Return(nil, nil).Times(1)
				mocks.mockSessionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
			},
		},
		{
			name: "Should reject a second open session",
			args: args{slackUserID: "U1", now: checkIn},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockUserRepo.EXPECT().GetBySlackID(gomock.Any(), args.slackUserID).
					Return(&entity.User{ID: 7, SlackUserID: args.slackUserID}, nil).Times(1)
				mocks.mockSessionRepo.EXPECT().GetOpenByUser(gomock.Any(), int64(7)).
					Return(&entity.WorkSession{ID: 1, UserID: 7, CheckInAt: checkIn}, nil).Times(1)
			},
			wantErr: domain.ErrSessionAlreadyOpen,
		},
		{
			name: "Should surface the open session race from the store",
			args: args{slackUserID: "U1", now: checkIn},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockUserRepo.EXPECT().GetBySlackID(gomock.Any(), args.slackUserID).
					Return(&entity.User{ID: 7, SlackUserID: args.slackUserID}, nil).Times(1)
				mocks.mockSessionRepo.EXPECT().GetOpenByUser(gomock.Any(), int64(7)).Return(nil, nil).Times(1)
				mocks.mockSessionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrSessionAlreadyOpen).Times(1)
			},
			wantErr: domain.ErrSessionAlreadyOpen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			if tt.buildMock != nil {
				tt.buildMock(m, tt.args)
			}

			s := newAttendance(m.mockDataManager, m.mockSlackClient, testReminderConfig(), zap.NewNop())
			session, schedule, err := s.CheckIn(context.Background(), tt.args.slackUserID, tt.args.now)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, session)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, session)
			assert.Equal(t, tt.args.now, schedule.CheckInAt)
			assert.Equal(t, tt.args.now.Add(9*time.Hour), schedule.CompletionAt)
			assert.Equal(t, 10*time.Minute, schedule.CompletionAt.Sub(schedule.ReminderAt))
		})
	}
}

func Test_attendanceService_CheckOut(t *testing.T) {
	checkOut := checkIn.Add(9 * time.Hour)

	tests := []struct {
		name      string
		buildMock func(mocks allMocks)
		wantErr   error
	}{
		{
			name: "Should close the open session",
			buildMock: func(mocks allMocks) {
				mocks.mockUserRepo.EXPECT().GetBySlackID(gomock.Any(), "U1").Return(&entity.User{ID: 7}, nil).Times(1)
				mocks.mockSessionRepo.EXPECT().GetOpenByUser(gomock.Any(), int64(7)).
					Return(&entity.WorkSession{ID: 3, UserID: 7, CheckInAt: checkIn, WorkDate: workDay}, nil).Times(1)
				mocks.mockSessionRepo.EXPECT().Close(gomock.Any(), int64(3), checkOut).Return(nil).Times(1)
			},
		},
		{
			name: "Should fail for an unknown user",
			buildMock: func(mocks allMocks) {
				mocks.mockUserRepo.EXPECT().GetBySlackID(gomock.Any(), "U1").Return(nil, nil).Times(1)
			},
			wantErr: domain.ErrNoOpenSession,
		},
		{
			name: "Should fail without an open session",
			buildMock: func(mocks allMocks) {
				mocks.mockUserRepo.EXPECT().GetBySlackID(gomock.Any(), "U1").Return(&entity.User{ID: 7}, nil).Times(1)
				mocks.mockSessionRepo.EXPECT().GetOpenByUser(gomock.Any(), int64(7)).Return(nil, nil).Times(1)
			},
			wantErr: domain.ErrNoOpenSession,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			s := newAttendance(m.mockDataManager, m.mockSlackClient, testReminderConfig(), zap.NewNop())
			session, err := s.CheckOut(context.Background(), "U1", checkOut)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, session.CheckOutAt)
			assert.Equal(t, checkOut, *session.CheckOutAt)
			assert.False(t, session.IsOpen())
		})
	}
}

func Test_attendanceService_SetReminders(t *testing.T) {
	t.Run("Should disable reminders", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockUserRepo.EXPECT().GetBySlackID(gomock.Any(), "U1").
			Return(&entity.User{ID: 7, RemindersEnabled: true}, nil).Times(1)
		m.mockUserRepo.EXPECT().SetRemindersEnabled(gomock.Any(), int64(7), false).Return(nil).Times(1)

		s := newAttendance(m.mockDataManager, m.mockSlackClient, testReminderConfig(), zap.NewNop())
		assert.NoError(t, s.SetReminders(context.Background(), "U1", false))
	})

	t.Run("Should not write an unchanged preference", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockUserRepo.EXPECT().GetBySlackID(gomock.Any(), "U1").
			Return(&entity.User{ID: 7, RemindersEnabled: true}, nil).Times(1)

		s := newAttendance(m.mockDataManager, m.mockSlackClient, testReminderConfig(), zap.NewNop())
		assert.NoError(t, s.SetReminders(context.Background(), "U1", true))
	})

	t.Run("Should fail when Slack cannot resolve a new user", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockUserRepo.EXPECT().GetBySlackID(gomock.Any(), "U9").Return(nil, nil).Times(1)
		m.mockSlackClient.EXPECT().GetUserInfoContext(gomock.Any(), "U9").Return(nil, errors.New("user_not_found")).Times(1)

		s := newAttendance(m.mockDataManager, m.mockSlackClient, testReminderConfig(), zap.NewNop())
		assert.Error(t, s.SetReminders(context.Background(), "U9", false))
	})
}

func Test_attendanceService_Status(t *testing.T) {
	t.Run("Should return the schedule of the open session", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockUserRepo.EXPECT().GetBySlackID(gomock.Any(), "U1").
			Return(&entity.User{ID: 7, RemindersEnabled: true}, nil).Times(1)
		m.mockSessionRepo.EXPECT().GetOpenByUser(gomock.Any(), int64(7)).
			Return(&entity.WorkSession{ID: 3, UserID: 7, CheckInAt: checkIn, WorkDate: workDay}, nil).Times(1)

		s := newAttendance(m.mockDataManager, m.mockSlackClient, testReminderConfig(), zap.NewNop())
		status, err := s.Status(context.Background(), "U1")
		require.NoError(t, err)
		require.NotNil(t, status.Schedule)
		assert.Equal(t, time.Date(2025, 6, 30, 9, 50, 0, 0, time.UTC), status.Schedule.ReminderAt)
		assert.Equal(t, time.Date(2025, 6, 30, 10, 0, 0, 0, time.UTC), status.Schedule.CompletionAt)
	})

	t.Run("Should have no schedule without an open session", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockUserRepo.EXPECT().GetBySlackID(gomock.Any(), "U1").Return(&entity.User{ID: 7}, nil).Times(1)
		m.mockSessionRepo.EXPECT().GetOpenByUser(gomock.Any(), int64(7)).Return(nil, nil).Times(1)

		s := newAttendance(m.mockDataManager, m.mockSlackClient, testReminderConfig(), zap.NewNop())
		status, err := s.Status(context.Background(), "U1")
		require.NoError(t, err)
		assert.Nil(t, status.Session)
		assert.Nil(t, status.Schedule)
	})

	t.Run("Should report an unknown user", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockUserRepo.EXPECT().GetBySlackID(gomock.Any(), "U1").Return(nil, nil).Times(1)

		s := newAttendance(m.mockDataManager, m.mockSlackClient, testReminderConfig(), zap.NewNop())
		_, err := s.Status(context.Background(), "U1")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
