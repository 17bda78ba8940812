// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/quadro/internal/config/colors"
	"github.com/thenoetrevino/quadro/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// ColumnStyle defines the appearance of board columns
	ColumnStyle lipgloss.Style

	// HoverColumnStyle is a column with a dragged card over it
	HoverColumnStyle lipgloss.Style

	// TaskStyle defines the appearance of individual tasks as cards
	TaskStyle lipgloss.Style

	// DraggedTaskStyle is the card currently being dragged
	DraggedTaskStyle lipgloss.Style

	// TaskTextStyle colors the text inside a card
	TaskTextStyle lipgloss.Style

	// DraggedTextStyle dims the text of the card being dragged
	DraggedTextStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (column names, board header)
	TitleStyle lipgloss.Style

	// DropMarkerStyle draws the insertion line
	DropMarkerStyle lipgloss.Style

	// IndicatorStyle defines the appearance of overflow indicators
	IndicatorStyle lipgloss.Style

	// HelpBoxStyle defines the base style for help screen
	HelpBoxStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style

	// StatusBarWarningStyle is used for cancelled drops
	StatusBarWarningStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(scheme colors.ColorScheme) {
	theme.Init(scheme)

	// No Width/Height on bordered styles: content is fitted by hand so the
	// rendered geometry matches the hit-test layout cell for cell.
	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ColumnBorder))

	HoverColumnStyle = ColumnStyle.
		BorderForeground(lipgloss.Color(theme.HoverBorder))

	TaskStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.TaskBorder)).
		Background(lipgloss.Color(theme.TaskBg))

	DraggedTaskStyle = TaskStyle.
		BorderForeground(lipgloss.Color(theme.DragBorder))

	TaskTextStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal)).
		Background(lipgloss.Color(theme.TaskBg))

	DraggedTextStyle = TaskTextStyle.
		Foreground(lipgloss.Color(theme.Subtle)).
		Italic(true)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	DropMarkerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.DropMarker))

	IndicatorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(theme.StatusBarBg)).
		Foreground(lipgloss.Color(theme.StatusBarText))

	StatusBarWarningStyle = StatusBarStyle.
		Foreground(lipgloss.Color(theme.WarningFg)).
		Bold(true)
}
