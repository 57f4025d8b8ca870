package cli

import (
	"context"
	"fmt"

	"github.com/ebarlowe/gradplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAuditCmd(app *App) *cobra.Command {
	var includePlanned bool

	cmd := &cobra.Command{
		Use:   "audit PROGRAM",
		Short: "Audit the plan against a degree program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			student, err := currentStudent(ctx, app)
			if err != nil {
				return err
			}
			report, err := app.Audit.AuditProgram(ctx, student.ID, args[0], includePlanned)
			if err != nil {
				return err
			}
			codes, err := catalogCodes(ctx, app)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatAudit(report, codes))
			return nil
		},
	}

	cmd.Flags().BoolVar(&includePlanned, "include-planned", false,
		"Count planned and in-progress courses, not just completed ones")

	return cmd
}

func newProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress PROGRAM",
		Short: "Show per-group completion counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			student, err := currentStudent(ctx, app)
			if err != nil {
				return err
			}
			groups, err := app.Audit.ProgressSummary(ctx, student.ID, args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProgress(args[0], groups))
			return nil
		},
	}
}
