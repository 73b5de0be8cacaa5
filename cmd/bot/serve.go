package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/attendance-reminder-bot/internal/handlers"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server for slash commands and cron triggers",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			if a.cfg.HolidayFile != "" {
				if _, err := a.importHolidays(ctx, a.cfg.HolidayFile); err != nil {
					return fmt.Errorf("failed to import holidays: %w", err)
				}
			}

			svc := a.services()

			if a.cfg.Scheduler.Enabled {
				if err := svc.Scheduler.Start(); err != nil {
					return err
				}
				defer svc.Scheduler.Stop()
			}
			if a.cfg.CronSecret == "" {
				a.log.Warn("CRON_SECRET is empty, cron endpoints will reject every call")
			}

			slackHandler := handlers.NewSlackHandler(svc.Attendance, a.cfg.SlackSigningSecret, a.log)
			cronHandler := handlers.NewCronHandler(svc.Reminder, a.cfg.CronSecret, a.log)

			server := &http.Server{
				Addr:              ":" + a.cfg.Port,
				Handler:           handlers.NewRouter(slackHandler, cronHandler),
				ReadHeaderTimeout: 10 * time.Second,
			}

			serverErr := make(chan error, 1)
			go func() {
				a.log.Info("server starting", zap.String("port", a.cfg.Port))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
				close(serverErr)
			}()

			select {
			case err := <-serverErr:
				if err != nil {
					return fmt.Errorf("failed to start server: %w", err)
				}
			case <-ctx.Done():
			}

			a.log.Info("shutting down")
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer shutdownCancel()

			return server.Shutdown(shutdownCtx)
		},
	}
}
