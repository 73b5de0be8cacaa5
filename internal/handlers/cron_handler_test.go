package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/diegoclair/attendance-reminder-bot/internal/domain"
	"github.com/diegoclair/attendance-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/attendance-reminder-bot/internal/handlers/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func decodeResult(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestCronHandler(t *testing.T) {
	replay := time.Date(2025, 6, 30, 9, 51, 0, 0, time.UTC)

	tests := []struct {
		name          string
		path          string
		token         string
		now           string
		buildMocks    func(m test.ServiceMocks)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:  "Should run the checkout reminder at the requested instant",
			path:  "/cron/checkout-reminder",
			token: test.CronSecret,
			now:   "2025-06-30T09:51:00Z",
			buildMocks: func(m test.ServiceMocks) {
				m.ReminderServiceMock.EXPECT().RunCheckoutReminder(gomock.Any(), replay).
					Return(&entity.RunResult{
						Success:   true,
						Message:   domain.ReasonCompleted,
						RunID:     "run-1",
						SentCount: 1,
						Outcomes: []*entity.Outcome{
							{UserID: "U1", Kind: domain.KindPreCompletion, Status: domain.StatusSent},
						},
					}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, recorder.Code)
				body := decodeResult(t, recorder)
				assert.Equal(t, true, body["success"])
				assert.Equal(t, "completed", body["message"])
				assert.Equal(t, "run-1", body["runId"])
				assert.Equal(t, float64(1), body["sentCount"])
				assert.Equal(t, float64(0), body["skippedCount"])
				assert.Equal(t, float64(0), body["failedCount"])
				require.Len(t, body["outcomes"], 1)
			},
		},
		{
			name:  "Should return a skipped run as success",
			path:  "/cron/checkin-reminder",
			token: test.CronSecret,
			buildMocks: func(m test.ServiceMocks) {
				m.ReminderServiceMock.EXPECT().RunCheckInReminder(gomock.Any(), gomock.Any()).
					Return(&entity.RunResult{Success: true, Message: domain.ReasonNotWorkingDay, Outcomes: []*entity.Outcome{}}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, recorder.Code)
				body := decodeResult(t, recorder)
				assert.Equal(t, "not a working day", body["message"])
				assert.Empty(t, body["outcomes"])
			},
		},
		{
			name:  "Should answer 500 with the result when a collaborator failed",
			path:  "/cron/checkout-reminder",
			token: test.CronSecret,
			buildMocks: func(m test.ServiceMocks) {
				m.ReminderServiceMock.EXPECT().RunCheckoutReminder(gomock.Any(), gomock.Any()).
					Return(&entity.RunResult{Success: false, Message: domain.ReasonUserStoreError, Outcomes: []*entity.Outcome{}},
						errors.New("failed to load reminder targets: database is locked")).Times(1)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, recorder.Code)
				body := decodeResult(t, recorder)
				assert.Equal(t, false, body["success"])
				assert.Equal(t, "user store unavailable", body["message"])
				assert.NotContains(t, recorder.Body.String(), "database is locked")
			},
		},
		{
			name:       "Should reject a missing token",
			path:       "/cron/checkout-reminder",
			buildMocks: func(m test.ServiceMocks) {},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			},
		},
		{
			name:       "Should reject a wrong token",
			path:       "/cron/checkin-reminder",
			token:      "guess",
			buildMocks: func(m test.ServiceMocks) {},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, recorder.Code)
				assert.Equal(t, false, decodeResult(t, recorder)["success"])
			},
		},
		{
			name:       "Should reject a malformed now",
			path:       "/cron/checkin-reminder",
			token:      test.CronSecret,
			now:        "yesterday",
			buildMocks: func(m test.ServiceMocks) {},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, router, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			tt.buildMocks(m)

			recorder := test.CreateTestRecorder()
			router.ServeHTTP(recorder, test.CreateCronRequest(t, tt.path, tt.token, tt.now))

			tt.checkResponse(t, recorder)
		})
	}
}

func TestRouter(t *testing.T) {
	_, router, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	t.Run("Should report health", func(t *testing.T) {
		recorder := test.CreateTestRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "OK", recorder.Body.String())
	})

	t.Run("Should only accept POST on cron routes", func(t *testing.T) {
		recorder := test.CreateTestRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/cron/checkout-reminder", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
	})
}
