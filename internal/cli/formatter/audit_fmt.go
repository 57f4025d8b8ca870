package formatter

import (
	"fmt"
	"strings"

	"github.com/ebarlowe/gradplan/internal/planner"
	"github.com/ebarlowe/gradplan/internal/service"
)

// FormatAudit renders a degree audit report. codes maps course ids to catalog
// codes for display; unknown ids fall back to the raw id.
func FormatAudit(report *planner.ProgramReport, codes map[string]string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n", Bold(report.ProgramName), Dim("["+report.ProgramCode+"]")))
	b.WriteString(SatisfiedPill(report.Satisfied) + "\n\n")

	for _, g := range report.Groups {
		b.WriteString(formatGroupReport(g, codes))
		b.WriteByte('\n')
	}

	summary := fmt.Sprintf("%d courses applied, %s credits", report.CoursesApplied, FormatCredits(report.CreditsApplied))
	if report.TotalCredits > 0 {
		summary += fmt.Sprintf(" of %d required", report.TotalCredits)
	}
	b.WriteString(Dim(summary) + "\n")

	return RenderBox("Degree Audit", strings.TrimRight(b.String(), "\n"))
}

func formatGroupReport(g *planner.GroupReport, codes map[string]string) string {
	var b strings.Builder

	mark := StyleRed.Render("✘")
	if g.Satisfied {
		mark = StyleGreen.Render("✔")
	}
	b.WriteString(fmt.Sprintf("%s %s %s %s\n",
		mark, Bold(g.Title), Dim(string(g.Kind)),
		CountFraction(len(g.AppliedCourseIDs), g.RequiredCount)))

	if len(g.AppliedCourseIDs) > 0 {
		b.WriteString("  " + StyleGreen.Render("applied: ") + codeList(g.AppliedCourseIDs, codes) + "\n")
	}
	if len(g.MissingCourseIDs) > 0 {
		b.WriteString("  " + StyleYellow.Render("missing: ") + codeList(g.MissingCourseIDs, codes) + "\n")
	}
	if g.CreditsApplied > 0 {
		b.WriteString("  " + Dim(FormatCredits(g.CreditsApplied)+" credits") + "\n")
	}
	return b.String()
}

func codeList(ids []string, codes map[string]string) string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if code, ok := codes[id]; ok {
			out = append(out, code)
		} else {
			out = append(out, id)
		}
	}
	return StyleFg.Render(strings.Join(out, ", "))
}

// FormatProgress renders the compact per-group progress summary.
func FormatProgress(programName string, groups []service.GroupProgress) string {
	var b strings.Builder
	b.WriteString(Header(programName))
	b.WriteByte('\n')

	for _, g := range groups {
		pct := 0.0
		if g.Required > 0 {
			pct = float64(g.Completed) / float64(g.Required)
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s\n",
			RenderBar(pct, 10),
			CountFraction(g.Completed, g.Required),
			Bold(g.Title),
			Dim(string(g.Kind))))
	}
	return b.String()
}
