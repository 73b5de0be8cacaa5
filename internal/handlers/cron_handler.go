package handlers

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/diegoclair/attendance-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/attendance-reminder-bot/internal/domain/entity"
	"go.uber.org/zap"
)

type runFunc func(ctx context.Context, now time.Time) (*entity.RunResult, error)

// CronHandler exposes the reminder runs to an external cron trigger.
type CronHandler struct {
	reminder contract.ReminderService
	secret   string
	log      *zap.Logger
	now      func() time.Time
}

// NewCronHandler returns a handler that rejects every request when secret is
// empty.
func NewCronHandler(reminder contract.ReminderService, secret string, log *zap.Logger) *CronHandler {
	return &CronHandler{
		reminder: reminder,
		secret:   secret,
		log:      log.Named("cron"),
		now:      time.Now,
	}
}

func (h *CronHandler) HandleCheckInReminder(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, "checkin-reminder", h.reminder.RunCheckInReminder)
}

func (h *CronHandler) HandleCheckoutReminder(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, "checkout-reminder", h.reminder.RunCheckoutReminder)
}

func (h *CronHandler) run(w http.ResponseWriter, r *http.Request, job string, fn runFunc) {
	if !h.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, &entity.RunResult{Message: "unauthorized", Outcomes: []*entity.Outcome{}})
		return
	}

	now := h.now()
	if raw := r.URL.Query().Get("now"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, &entity.RunResult{Message: "invalid now, use RFC3339", Outcomes: []*entity.Outcome{}})
			return
		}
		now = parsed
	}

	result, err := fn(r.Context(), now)
	if result == nil {
		result = &entity.RunResult{Outcomes: []*entity.Outcome{}}
	}
	if err != nil {
		h.log.Error("reminder run failed", zap.String("job", job), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, result)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *CronHandler) authorized(r *http.Request) bool {
	if h.secret == "" {
		return false
	}
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) == 1
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
