package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ebarlowe/gradplan/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusPill returns a colored indicator for a planned course's progress state.
func StatusPill(status domain.CourseStatus) string {
	switch status {
	case domain.StatusCompleted:
		return StyleGreen.Render("✔ Completed")
	case domain.StatusInProgress:
		return StyleYellow.Render("● In Progress")
	case domain.StatusPlanned:
		return StyleBlue.Render("○ Planned")
	default:
		return StyleDim.Render(string(status))
	}
}

// SatisfiedPill renders a requirement group's overall verdict.
func SatisfiedPill(satisfied bool) string {
	if satisfied {
		return StyleGreen.Render("✔ SATISFIED")
	}
	return StyleRed.Render("✘ NOT SATISFIED")
}

// TermBadge returns a short colored label for an academic term.
func TermBadge(term domain.Term) string {
	switch term {
	case domain.TermSpring:
		return StyleGreen.Render("Sp")
	case domain.TermSummer:
		return StyleYellow.Render("Su")
	case domain.TermFall:
		return StylePurple.Render("Fa")
	default:
		return StyleDim.Render("--")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
