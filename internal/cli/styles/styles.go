// Package styles holds the lipgloss styles used by human-readable CLI output
package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/quadro/internal/config/colors"
)

var (
	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	HeaderStyle   lipgloss.Style // Column headers like "Requested (5)"
	ValueStyle    lipgloss.Style // Task content
	LabelStyle    lipgloss.Style // Task IDs

	// Status styles
	SuccessStyle lipgloss.Style
	WarningStyle lipgloss.Style
)

// Init initializes all CLI styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	LabelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.WarningFg))
}
