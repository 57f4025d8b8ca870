package formatter

import (
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderBar renders a colored progress bar of the given width. Green when
// complete, yellow when started, red otherwise.
func RenderBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleRed
	if pct >= 1 {
		style = StyleGreen
	} else if pct > 0 {
		style = StyleYellow
	}
	return "[" + style.Render(bar) + "]"
}
