package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// RenderBoard renders all columns side by side, centered in g.Width.
// Every line of the result starts at terminal column 0, so cell positions
// match BoardLayout exactly.
func RenderBoard(cols []ColumnView, g Geometry, drag DragView) string {
	if len(cols) == 0 {
		return ""
	}

	parts := make([]string, 0, len(cols)*2)
	gap := strings.Repeat(" ", columnGap)
	for i, col := range cols {
		if i > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, RenderColumn(col, g, drag))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, parts...)

	indent := strings.Repeat(" ", g.BoardLeft(len(cols)))
	lines := strings.Split(board, "\n")
	for i, line := range lines {
		lines[i] = indent + line
	}
	return strings.Join(lines, "\n")
}

// RenderTitle renders the board title centered in width
func RenderTitle(title string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, TitleStyle.Render(title))
}
