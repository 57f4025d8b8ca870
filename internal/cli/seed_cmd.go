package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the reference catalog, programs, and demo plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Seeder.Run(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"Seeded %d courses, %d offerings, %d prereq rules, %d programs (%d groups), %d new semesters\n",
				res.Courses, res.Offerings, res.PrereqRules, res.Programs, res.Groups, res.Semesters)
			return nil
		},
	}
}
