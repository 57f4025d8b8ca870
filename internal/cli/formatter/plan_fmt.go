package formatter

import (
	"fmt"
	"strings"

	"github.com/ebarlowe/gradplan/internal/domain"
	"github.com/ebarlowe/gradplan/internal/service"
)

// FormatPlan renders the student's full semester plan: one section per
// semester in timeline order with its courses in position order.
func FormatPlan(views []*service.SemesterView) string {
	if len(views) == 0 {
		return Dim("No semesters planned. Add one with `gradplan semester add`.")
	}

	var b strings.Builder
	for i, view := range views {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(formatSemesterSection(view))
	}
	return b.String()
}

func formatSemesterSection(view *service.SemesterView) string {
	var b strings.Builder

	sem := view.Semester
	title := sem.Name
	if sem.Term != "" && sem.Year > 0 {
		title = fmt.Sprintf("%s  %s %d", sem.Name, termLabel(sem.Term), sem.Year)
	}
	b.WriteString(Header(title))
	b.WriteByte('\n')

	if len(view.Courses) == 0 {
		b.WriteString(Dim("  (empty)") + "\n")
		return b.String()
	}

	headers := []string{"CODE", "TITLE", "CR", "STATUS", "GRADE"}
	rows := make([][]string, 0, len(view.Courses))
	for _, c := range view.Courses {
		rows = append(rows, []string{
			Bold(c.Code),
			StyleFg.Render(c.Title),
			FormatCredits(c.Planned.Credits),
			StatusPill(c.Planned.Status),
			Grade(c.Planned.Grade),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString(Dim(fmt.Sprintf("%d courses, %s credits",
		len(view.Courses), FormatCredits(view.Credits))) + "\n")
	return b.String()
}

func termLabel(term domain.Term) string {
	switch term {
	case domain.TermSpring:
		return "Spring"
	case domain.TermSummer:
		return "Summer"
	case domain.TermFall:
		return "Fall"
	default:
		return string(term)
	}
}
