package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/ebarlowe/gradplan/internal/cli/formatter"
	"github.com/ebarlowe/gradplan/internal/domain"
	"github.com/spf13/cobra"
)

func newCourseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Search the catalog and manage planned courses",
	}

	cmd.AddCommand(
		newCourseSearchCmd(app),
		newCourseAddCmd(app),
		newCourseRemoveCmd(app),
		newCourseMoveCmd(app),
		newCourseStatusCmd(app),
	)

	return cmd
}

func newCourseSearchCmd(app *App) *cobra.Command {
	var unassigned bool

	cmd := &cobra.Command{
		Use:   "search [QUERY]",
		Short: "Search the catalog by code or title",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			query := ""
			if len(args) == 1 {
				query = args[0]
			}

			studentFilter := ""
			if unassigned {
				student, err := currentStudent(ctx, app)
				if err != nil {
					return err
				}
				studentFilter = student.ID
			}

			courses, err := app.Catalog.Search(ctx, query, studentFilter)
			if err != nil {
				return err
			}
			if len(courses) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No courses found.")
				return nil
			}

			headers := []string{"CODE", "TITLE", "CR", "DEPT"}
			rows := make([][]string, 0, len(courses))
			for _, c := range courses {
				rows = append(rows, []string{
					formatter.Bold(c.Code),
					c.Title,
					formatter.FormatCredits(c.Credits),
					formatter.Dim(c.Department),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&unassigned, "unassigned", false, "Only courses not already in the plan")

	return cmd
}

func newCourseAddCmd(app *App) *cobra.Command {
	var semester string

	cmd := &cobra.Command{
		Use:   "add CODE",
		Short: "Add a catalog course to a semester",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			student, err := currentStudent(ctx, app)
			if err != nil {
				return err
			}
			course, err := app.Catalog.GetByCode(ctx, args[0])
			if err != nil {
				return err
			}
			view, err := resolveSemester(ctx, app, student.ID, semester)
			if err != nil {
				return err
			}

			pc, err := app.Roster.AddCourse(ctx, student.ID, view.Semester.ID, course.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s (%s credits)\n",
				course.Code, view.Semester.Name, formatter.FormatCredits(pc.Credits))
			return nil
		},
	}

	semesterFlag(cmd.Flags(), &semester, "Target semester name or ID")
	_ = cmd.MarkFlagRequired("semester")

	return cmd
}

func newCourseRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove CODE",
		Short: "Remove a planned course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			student, err := currentStudent(ctx, app)
			if err != nil {
				return err
			}
			pc, err := resolvePlannedCourse(ctx, app, student.ID, args[0])
			if err != nil {
				return err
			}
			if err := app.Roster.RemoveCourse(ctx, student.ID, pc.Planned.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", pc.Code)
			return nil
		},
	}
}

func newCourseMoveCmd(app *App) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "move CODE",
		Short: "Move a planned course to another semester",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			student, err := currentStudent(ctx, app)
			if err != nil {
				return err
			}
			pc, err := resolvePlannedCourse(ctx, app, student.ID, args[0])
			if err != nil {
				return err
			}
			target, err := resolveSemester(ctx, app, student.ID, to)
			if err != nil {
				return err
			}
			if err := app.Roster.MoveCourse(ctx, student.ID, pc.Planned.ID, target.Semester.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Moved %s to %s\n", pc.Code, target.Semester.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Target semester name or ID")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newCourseStatusCmd(app *App) *cobra.Command {
	var grade string

	cmd := &cobra.Command{
		Use:   "status CODE STATUS",
		Short: "Set a planned course's progress (planned|in_progress|completed)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			student, err := currentStudent(ctx, app)
			if err != nil {
				return err
			}
			pc, err := resolvePlannedCourse(ctx, app, student.ID, args[0])
			if err != nil {
				return err
			}

			status := domain.CourseStatus(strings.ToUpper(strings.TrimSpace(args[1])))
			if err := app.Roster.SetStatus(ctx, student.ID, pc.Planned.ID, status, strings.TrimSpace(grade)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Marked %s %s\n", pc.Code, strings.ToLower(string(status)))
			return nil
		},
	}

	cmd.Flags().StringVar(&grade, "grade", "", "Letter grade (e.g. B+)")

	return cmd
}
