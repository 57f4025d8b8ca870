package cli

import (
	"context"
	"fmt"

	"github.com/ebarlowe/gradplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newRequirementsCmd(app *App) *cobra.Command {
	var query, semester string

	cmd := &cobra.Command{
		Use:   "requirements [PROGRAM]",
		Short: "Browse a program's requirement groups and candidate courses",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if len(args) == 0 {
				return listPrograms(ctx, cmd, app)
			}

			student, err := currentStudent(ctx, app)
			if err != nil {
				return err
			}
			anchorID := ""
			if semester != "" {
				view, err := resolveSemester(ctx, app, student.ID, semester)
				if err != nil {
					return err
				}
				anchorID = view.Semester.ID
			}

			report, err := app.Requirements.Evaluate(ctx, student.ID, args[0], query, anchorID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAvailability(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Filter courses by code or title")
	semesterFlag(cmd.Flags(), &semester, "Anchor semester for prerequisite gating (default: end of plan)")

	return cmd
}

func listPrograms(ctx context.Context, cmd *cobra.Command, app *App) error {
	programs, err := app.Requirements.ListPrograms(ctx)
	if err != nil {
		return err
	}
	if len(programs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No degree programs loaded. Run `gradplan seed` first.")
		return nil
	}

	headers := []string{"CODE", "NAME", "CREDITS"}
	rows := make([][]string, 0, len(programs))
	for _, p := range programs {
		rows = append(rows, []string{
			formatter.Bold(p.Code),
			p.Name,
			fmt.Sprintf("%d", p.TotalCredits),
		})
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(headers, rows))
	return nil
}
