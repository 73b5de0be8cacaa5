package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/diegoclair/attendance-reminder-bot/internal/domain/entity"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:       "run checkin|checkout",
		Short:     "Run one reminder tick and print the result as JSON",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"checkin", "checkout"},
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if at != "" {
				parsed, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("invalid --at (want RFC3339): %w", err)
				}
				now = parsed
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			svc := a.services()
			ctx := context.Background()

			var (
				result *entity.RunResult
				runErr error
			)
			switch args[0] {
			case "checkin":
				result, runErr = svc.Reminder.RunCheckInReminder(ctx, now)
			case "checkout":
				result, runErr = svc.Reminder.RunCheckoutReminder(ctx, now)
			}

			if result != nil {
				out, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
			}
			return runErr
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "evaluate the tick at this instant (RFC3339) instead of now")
	return cmd
}
