package service

import (
	"testing"
	"time"

	"github.com/diegoclair/attendance-reminder-bot/internal/config"
	"github.com/diegoclair/attendance-reminder-bot/internal/domain/worktime"
	"github.com/diegoclair/attendance-reminder-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type allMocks struct {
	mockDataManager  *mocks.MockDataManager
	mockUserRepo     *mocks.MockUserRepo
	mockSessionRepo  *mocks.MockSessionRepo
	mockDispatchRepo *mocks.MockDispatchRepo
	mockHolidayRepo  *mocks.MockHolidayRepo
	mockSlackClient  *mocks.MockSlackClient
	mockNotifier     *mocks.MockNotifier
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	userRepo := mocks.NewMockUserRepo(ctrl)
	dm.EXPECT().User().Return(userRepo).AnyTimes()

	sessionRepo := mocks.NewMockSessionRepo(ctrl)
	dm.EXPECT().Session().Return(sessionRepo).AnyTimes()

	dispatchRepo := mocks.NewMockDispatchRepo(ctrl)
	dm.EXPECT().Dispatch().Return(dispatchRepo).AnyTimes()

	holidayRepo := mocks.NewMockHolidayRepo(ctrl)
	dm.EXPECT().Holiday().Return(holidayRepo).AnyTimes()

	m = allMocks{
		mockDataManager:  dm,
		mockUserRepo:     userRepo,
		mockSessionRepo:  sessionRepo,
		mockDispatchRepo: dispatchRepo,
		mockHolidayRepo:  holidayRepo,
		mockSlackClient:  mocks.NewMockSlackClient(ctrl),
		mockNotifier:     mocks.NewMockNotifier(ctrl),
	}

	// validate service creation
	require.NotNil(t, newReminder(dm, m.mockNotifier, testReminderConfig(), zap.NewNop()))
	require.NotNil(t, newAttendance(dm, m.mockSlackClient, testReminderConfig(), zap.NewNop()))

	return
}

func testReminderConfig() config.Reminder {
	window, err := worktime.NewWindow("08:00", "11:00")
	if err != nil {
		panic(err)
	}
	return config.Reminder{
		UTCOffset:          worktime.DefaultOffset,
		CheckInWindow:      window,
		CompletionDuration: 9 * time.Hour,
		PreOffset:          10 * time.Minute,
		Tolerance:          2 * time.Minute,
		SinkTimeout:        time.Second,
		Workers:            4,
		BroadcastHour:      8,
	}
}
