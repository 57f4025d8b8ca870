package formatter

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ebarlowe/gradplan/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// FormatCredits prints a credit value without a trailing ".0" for whole
// numbers, matching catalog convention ("3", "4.5").
func FormatCredits(credits float64) string {
	return strconv.FormatFloat(credits, 'f', -1, 64)
}

// TermList renders a course's typical offerings as compact badges, or a dim
// placeholder when none are recorded.
func TermList(terms []domain.Term) string {
	if len(terms) == 0 {
		return Dim("--")
	}
	badges := make([]string, 0, len(terms))
	for _, t := range terms {
		badges = append(badges, TermBadge(t))
	}
	return strings.Join(badges, " ")
}

// CountFraction renders "done/total" colored by completeness.
func CountFraction(done, total int) string {
	s := strconv.Itoa(done) + "/" + strconv.Itoa(total)
	if total > 0 && done >= total {
		return StyleGreen.Render(s)
	}
	if done > 0 {
		return StyleYellow.Render(s)
	}
	return StyleDim.Render(s)
}

// Grade renders a grade, dimming the placeholder when none is recorded.
func Grade(grade string) string {
	if grade == "" {
		return Dim("--")
	}
	return StyleFg.Render(grade)
}
