package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/ebarlowe/gradplan/internal/cli/formatter"
	"github.com/ebarlowe/gradplan/internal/domain"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newSemesterCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "semester",
		Short: "Manage planning semesters",
	}

	cmd.AddCommand(
		newSemesterListCmd(app),
		newSemesterAddCmd(app),
		newSemesterRemoveCmd(app),
		newSemesterReorderCmd(app),
	)

	return cmd
}

func newSemesterListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the plan in timeline order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			student, err := currentStudent(ctx, app)
			if err != nil {
				return err
			}
			views, err := app.Semesters.List(ctx, student.ID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlan(views))
			return nil
		},
	}
}

func newSemesterAddCmd(app *App) *cobra.Command {
	var name, term, year string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a planning semester",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			student, err := currentStudent(ctx, app)
			if err != nil {
				return err
			}

			// Prompt on a terminal when the name was not given as a flag.
			if name == "" && app.IsInteractive != nil && app.IsInteractive() {
				if err := semesterForm(&name, &term, &year).Run(); err != nil {
					return err
				}
			}

			sem := &domain.Semester{
				ID:        uuid.New().String(),
				StudentID: student.ID,
				Name:      strings.TrimSpace(name),
				CreatedAt: time.Now().UTC(),
				UpdatedAt: time.Now().UTC(),
			}
			if term != "" {
				parsed, err := parseTerm(term)
				if err != nil {
					return err
				}
				sem.Term = parsed
			}
			if year != "" {
				y, err := strconv.Atoi(year)
				if err != nil {
					return fmt.Errorf("invalid year %q", year)
				}
				sem.Year = y
			}

			if err := app.Semesters.Create(ctx, sem); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created semester %s\n", sem.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Semester name (e.g. \"Fall 2026\")")
	cmd.Flags().StringVar(&term, "term", "", "Term (spring|summer|fall)")
	cmd.Flags().StringVar(&year, "year", "", "Calendar year")

	return cmd
}

func semesterForm(name, term, year *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Semester Name").
				Placeholder("Fall 2026").
				Value(name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Term").
				Options(
					huh.NewOption("(none)", ""),
					huh.NewOption("Spring", "spring"),
					huh.NewOption("Summer", "summer"),
					huh.NewOption("Fall", "fall"),
				).
				Value(term),
			huh.NewInput().
				Title("Year (blank for none)").
				Placeholder("2026").
				Value(year).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					if _, err := strconv.Atoi(s); err != nil {
						return fmt.Errorf("year must be a number")
					}
					return nil
				}),
		),
	).WithTheme(gradplanHuhTheme()).WithShowHelp(false)
}

func parseTerm(input string) (domain.Term, error) {
	upper := strings.ToUpper(strings.TrimSpace(input))
	if !domain.ValidTerms[upper] {
		return "", fmt.Errorf("invalid term %q (spring|summer|fall)", input)
	}
	return domain.Term(upper), nil
}

func newSemesterRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a semester and its planned courses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			student, err := currentStudent(ctx, app)
			if err != nil {
				return err
			}
			view, err := resolveSemester(ctx, app, student.ID, args[0])
			if err != nil {
				return err
			}
			if err := app.Semesters.Delete(ctx, student.ID, view.Semester.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed semester %s\n", view.Semester.Name)
			return nil
		},
	}
}

func newSemesterReorderCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reorder NAME...",
		Short: "Pin semesters to the head of the timeline in the given order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			student, err := currentStudent(ctx, app)
			if err != nil {
				return err
			}
			ids := make([]string, 0, len(args))
			for _, arg := range args {
				view, err := resolveSemester(ctx, app, student.ID, arg)
				if err != nil {
					return err
				}
				ids = append(ids, view.Semester.ID)
			}
			if err := app.Semesters.Reorder(ctx, student.ID, ids); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reordered %d semesters\n", len(ids))
			return nil
		},
	}
}
