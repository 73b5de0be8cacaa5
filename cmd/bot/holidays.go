package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newHolidaysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "Manage the holiday calendar",
	}
	cmd.AddCommand(newHolidaysImportCmd())
	return cmd
}

func newHolidaysImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.ics|file.yaml>",
		Short: "Upsert holidays from an ICS or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			n, err := a.importHolidays(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d holidays from %s\n", n, args[0])
			return nil
		},
	}
}
