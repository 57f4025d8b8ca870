package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"CODE", "TITLE"},
		[][]string{
			{"CSCI 111", "Intro"},
			{"MATH 161", "Calculus for Scientists"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4, "header, separator, two rows")
	assert.Contains(t, lines[0], "CODE")
	assert.Contains(t, lines[1], "─")
	assert.Contains(t, lines[2], "CSCI 111")
	assert.Contains(t, lines[3], "Calculus for Scientists")
}

func TestRenderTable_ShortRowsPadded(t *testing.T) {
	out := RenderTable([]string{"A", "B", "C"}, [][]string{{"only"}})
	assert.Contains(t, out, "only")
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestRenderBar_Clamps(t *testing.T) {
	full := RenderBar(1.5, 4)
	assert.Contains(t, full, strings.Repeat(filledBlock, 4))
	assert.NotContains(t, full, emptyBlock)

	none := RenderBar(-0.5, 4)
	assert.Contains(t, none, strings.Repeat(emptyBlock, 4))
	assert.NotContains(t, none, filledBlock)
}

func TestFormatCredits(t *testing.T) {
	assert.Equal(t, "3", FormatCredits(3.0))
	assert.Equal(t, "4.5", FormatCredits(4.5))
	assert.Equal(t, "0", FormatCredits(0))
}
