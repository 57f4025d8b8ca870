package formatter

import (
	"fmt"
	"strings"

	"github.com/ebarlowe/gradplan/internal/planner"
)

// FormatAvailability renders the requirements browser listing: every group's
// candidate courses with offering and prerequisite standing. Rows a student
// cannot add are dimmed with the blocking prerequisites spelled out.
func FormatAvailability(report *planner.AvailabilityReport) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n\n", Bold(report.ProgramName), Dim("["+report.ProgramCode+"]")))

	for i, g := range report.Groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(formatGroupAvailability(g))
	}
	return b.String()
}

func formatGroupAvailability(g *planner.GroupAvailability) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("%s  %s", g.Title, CountFraction(g.CompletedCount, g.RequiredCount))))
	b.WriteByte('\n')

	if len(g.Courses) == 0 {
		b.WriteString(Dim("  no matching courses") + "\n")
		return b.String()
	}

	headers := []string{"", "CODE", "TITLE", "CR", "OFFERED", "PREREQS"}
	rows := make([][]string, 0, len(g.Courses))
	for _, c := range g.Courses {
		rows = append(rows, availabilityRow(c))
	}
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}

func availabilityRow(c *planner.CourseAvailability) []string {
	code := Bold(c.Code)
	title := StyleFg.Render(c.Title)
	if c.Disabled && !c.Taken && !c.Assigned {
		code = Dim(c.Code)
		title = Dim(c.Title)
	}

	offered := TermList(c.OfferedTerms)
	if c.OfferedThisTerm {
		offered += " " + StyleGreen.Render("•")
	}

	return []string{
		standingIcon(c),
		code,
		title,
		FormatCredits(c.Credits),
		offered,
		prereqCell(c),
	}
}

func standingIcon(c *planner.CourseAvailability) string {
	switch {
	case c.Taken:
		return StyleGreen.Render("✔")
	case c.Assigned:
		return StyleBlue.Render("●")
	case !c.PlannedPrereqOK:
		return StyleRed.Render("✘")
	default:
		return " "
	}
}

func prereqCell(c *planner.CourseAvailability) string {
	if c.PrereqGroupCount == 0 {
		return Dim("none")
	}
	if c.PlannedPrereqOK {
		if c.CompletedPrereqOK {
			return StyleGreen.Render("met")
		}
		return StyleYellow.Render("planned")
	}
	return StyleRed.Render("needs ") + Dim(strings.Join(c.PlannedMissingCodes, ", "))
}
