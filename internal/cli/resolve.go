package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/ebarlowe/gradplan/internal/domain"
	"github.com/ebarlowe/gradplan/internal/service"
)

// currentStudent resolves the acting identity. Single-user tool: the demo
// student is created on first use.
func currentStudent(ctx context.Context, app *App) (*domain.Student, error) {
	return app.Students.GetOrCreateDemo(ctx)
}

// resolveSemester matches user input against the student's semesters by name
// (case-insensitive), exact id, then unambiguous id prefix.
func resolveSemester(ctx context.Context, app *App, studentID, input string) (*service.SemesterView, error) {
	if input == "" {
		return nil, fmt.Errorf("semester name or ID is required")
	}
	views, err := app.Semesters.List(ctx, studentID)
	if err != nil {
		return nil, err
	}

	for _, v := range views {
		if strings.EqualFold(v.Semester.Name, input) {
			return v, nil
		}
	}
	for _, v := range views {
		if v.Semester.ID == input {
			return v, nil
		}
	}

	var matches []*service.SemesterView
	for _, v := range views {
		if strings.HasPrefix(v.Semester.ID, input) {
			matches = append(matches, v)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("semester not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("semester %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolvePlannedCourse finds the student's planned course by catalog code.
func resolvePlannedCourse(ctx context.Context, app *App, studentID, code string) (*service.PlannedCourseView, error) {
	views, err := app.Semesters.List(ctx, studentID)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		for _, c := range v.Courses {
			if strings.EqualFold(c.Code, strings.TrimSpace(code)) {
				return c, nil
			}
		}
	}
	return nil, fmt.Errorf("course %q is not in the plan", code)
}

// catalogCodes maps course ids to display codes for report formatting.
func catalogCodes(ctx context.Context, app *App) (map[string]string, error) {
	all, err := app.Catalog.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	codes := make(map[string]string, len(all))
	for _, c := range all {
		codes[c.ID] = c.Code
	}
	return codes, nil
}
