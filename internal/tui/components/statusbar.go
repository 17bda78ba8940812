package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

type StatusBarProps struct {
	Width   int
	Message string
	Warning bool // Render the message in the warning color
	Moves   int
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: the last action or the drag in progress
// Right side: number of moves applied this session
func RenderStatusBar(props StatusBarProps) string {
	leftStyle := StatusBarStyle
	if props.Warning {
		leftStyle = StatusBarWarningStyle
	}

	leftRendered := leftStyle.Render(" " + props.Message)
	rightRendered := StatusBarStyle.Render(fmt.Sprintf("moves: %d ", props.Moves))

	// Calculate space between left and right text
	leftWidth := lipgloss.Width(leftRendered)
	rightWidth := lipgloss.Width(rightRendered)
	gapWidth := props.Width - leftWidth - rightWidth
	if gapWidth < 1 {
		gapWidth = 1
	}

	gap := StatusBarStyle.Render(strings.Repeat(" ", gapWidth))

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
