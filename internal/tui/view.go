package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/quadro/internal/config"
	"github.com/thenoetrevino/quadro/internal/tui/components"
	"github.com/thenoetrevino/quadro/internal/tui/layers"
	"github.com/thenoetrevino/quadro/internal/tui/state"
	"github.com/thenoetrevino/quadro/internal/tui/theme"
)

// maxHelpWidth caps the width the help text wraps at
const maxHelpWidth = 60

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	if theme.Background != "" {
		view.BackgroundColor = lipgloss.Color(theme.Background)
	}

	// Wait for terminal size to be initialized
	if !m.UiState.Ready() {
		view.Content = "Loading..."
		return view
	}

	content := m.viewBoard()
	if m.UiState.Mode() == state.HelpMode {
		helpWidth := min(maxHelpWidth, max(m.UiState.Width()-6, 10))
		overlay := components.RenderHelp(helpMarkdown(m.Config.KeyMappings), helpWidth)
		content = layers.Compose(content, layers.CreateCenteredLayer(overlay, m.UiState.Width(), m.UiState.Height()))
	}

	view.Content = content
	return view
}

// viewBoard renders the title, the columns, the status bar and the key help.
// Rows line up with components.BoardTop and components.FooterLines.
func (m Model) viewBoard() string {
	g := m.geometry()

	drag := components.DragView{}
	if m.Drag.Active() {
		drag = components.DragView{TaskID: m.Drag.TaskID(), Hover: m.Drag.Hover()}
	}

	message, warning := m.UiState.Status()
	if m.Drag.Active() {
		message, warning = m.dragStatus(), false
	}

	rows := []string{
		components.RenderTitle(m.Config.Board.Title, g.Width),
		"",
		components.RenderBoard(m.columnViews(), g, drag),
		components.RenderStatusBar(components.StatusBarProps{
			Width:   g.Width,
			Message: message,
			Warning: warning,
			Moves:   m.Source.Moves(),
		}),
		m.Help.View(m.Keys),
	}
	return strings.Join(rows, "\n")
}

// helpMarkdown is the text of the help overlay
func helpMarkdown(km config.KeyMappings) string {
	var b strings.Builder
	b.WriteString("# Quadro\n\n")
	b.WriteString("Press a card with the left mouse button, drag it, and release it ")
	b.WriteString("over a column. The marker line shows where it will land.\n\n")
	b.WriteString("Releasing outside every column leaves the board unchanged.\n\n")
	b.WriteString("| Key | Action |\n")
	b.WriteString("|-----|--------|\n")
	fmt.Fprintf(&b, "| `%s` | cancel the drag in progress |\n", km.CancelDrag)
	fmt.Fprintf(&b, "| `%s` | toggle this help |\n", km.ShowHelp)
	fmt.Fprintf(&b, "| `%s` | quit |\n", km.Quit)
	b.WriteString("| `ctrl+c` | quit |\n")
	return b.String()
}
