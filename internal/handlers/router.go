package handlers

import (
	"fmt"
	"net/http"
)

func NewRouter(slackHandler *SlackHandler, cronHandler *CronHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /slack/commands", slackHandler.HandleSlashCommand)
	mux.HandleFunc("POST /cron/checkin-reminder", cronHandler.HandleCheckInReminder)
	mux.HandleFunc("POST /cron/checkout-reminder", cronHandler.HandleCheckoutReminder)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	return mux
}
