package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/diegoclair/attendance-reminder-bot/internal/domain"
	"github.com/diegoclair/attendance-reminder-bot/internal/domain/contract"
	slackcmd "github.com/diegoclair/attendance-reminder-bot/internal/domain/slack"
	"github.com/diegoclair/attendance-reminder-bot/internal/domain/worktime"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

const clockLayout = "15:04"

type SlackHandler struct {
	attendance    contract.AttendanceService
	signingSecret string
	log           *zap.Logger
	now           func() time.Time
}

func NewSlackHandler(attendance contract.AttendanceService, signingSecret string, log *zap.Logger) *SlackHandler {
	return &SlackHandler{
		attendance:    attendance,
		signingSecret: signingSecret,
		log:           log.Named("slack"),
		now:           time.Now,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		h.log.Warn("rejected slash command with a bad signature", zap.Error(err))
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	response := h.handleCommand(r, cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdIn:
		return h.handleCheckIn(r, slashCmd)
	case slackcmd.CmdOut:
		return h.handleCheckOut(r, slashCmd)
	case slackcmd.CmdStatus:
		return h.handleStatus(r, slashCmd)
	case slackcmd.CmdReminders:
		return h.handleReminders(r, cmd, slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleCheckIn(r *http.Request, slashCmd *slack.SlashCommand) *slack.Msg {
	session, schedule, err := h.attendance.CheckIn(r.Context(), slashCmd.UserID, h.now())
	switch {
	case errors.Is(err, domain.ErrOutsideCheckInWindow):
		return h.createErrorResponse("You can't check in right now: " + domain.ReasonOutsideWindow)
	case errors.Is(err, domain.ErrSessionAlreadyOpen):
		return h.createErrorResponse("You are already checked in. Use `/attendance out` to close your session first.")
	case err != nil:
		return h.internalError("check-in", slashCmd, err)
	}

	loc := h.attendance.Location()
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text: fmt.Sprintf("✅ Checked in at *%s* (%s).\n\nReminder at %s, your work day completes at *%s*.",
			localClock(schedule.CheckInAt, loc), session.WorkDate,
			localClock(schedule.ReminderAt, loc), localClock(schedule.CompletionAt, loc)),
	}
}

func (h *SlackHandler) handleCheckOut(r *http.Request, slashCmd *slack.SlashCommand) *slack.Msg {
	session, err := h.attendance.CheckOut(r.Context(), slashCmd.UserID, h.now())
	if errors.Is(err, domain.ErrNoOpenSession) {
		return h.createErrorResponse("You are not checked in. Use `/attendance in` to start your day.")
	}
	if err != nil {
		return h.internalError("check-out", slashCmd, err)
	}

	loc := h.attendance.Location()
	worked := session.CheckOutAt.Sub(session.CheckInAt).Round(time.Minute)
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text: fmt.Sprintf("👋 Checked out at *%s*. You worked %s today.",
			localClock(*session.CheckOutAt, loc), formatWorked(worked)),
	}
}

func (h *SlackHandler) handleStatus(r *http.Request, slashCmd *slack.SlashCommand) *slack.Msg {
	status, err := h.attendance.Status(r.Context(), slashCmd.UserID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "You haven't checked in yet. Use `/attendance in` to start your day.",
		}
	}
	if err != nil {
		return h.internalError("status", slashCmd, err)
	}

	reminders := "off"
	if status.User.RemindersEnabled {
		reminders = "on"
	}

	var text strings.Builder
	text.WriteString("*Attendance Status:*\n")
	if status.Session == nil || status.Schedule == nil {
		text.WriteString("• Not checked in\n")
	} else {
		loc := h.attendance.Location()
		text.WriteString(fmt.Sprintf("• Checked in: %s (%s)\n", localClock(status.Schedule.CheckInAt, loc), status.Session.WorkDate))
		text.WriteString(fmt.Sprintf("• Reminder: %s\n", localClock(status.Schedule.ReminderAt, loc)))
		text.WriteString(fmt.Sprintf("• Work day completes: %s\n", localClock(status.Schedule.CompletionAt, loc)))
	}
	text.WriteString(fmt.Sprintf("• Reminders: %s", reminders))

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text.String(),
	}
}

func (h *SlackHandler) handleReminders(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	enabled, err := slackcmd.ParseToggle(cmd.Args)
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	if err := h.attendance.SetReminders(r.Context(), slashCmd.UserID, enabled); err != nil {
		return h.internalError("reminders", slashCmd, err)
	}

	text := "🔔 Reminders are on. You'll get a DM before and when your work day completes."
	if !enabled {
		text = "🔕 Reminders are off."
	}
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) internalError(command string, slashCmd *slack.SlashCommand, err error) *slack.Msg {
	h.log.Error("slash command failed",
		zap.String("command", command),
		zap.String("user_id", slashCmd.UserID),
		zap.Error(err),
	)
	return h.createErrorResponse("Something went wrong, please try again")
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func localClock(t time.Time, loc *time.Location) string {
	return worktime.ToLocal(t, loc).Format(clockLayout)
}

func formatWorked(d time.Duration) string {
	h := int(d / time.Hour)
	m := int((d % time.Hour) / time.Minute)
	return fmt.Sprintf("%dh%02dm", h, m)
}
