package tui

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Context cancelled means the program is shutting down
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		return m, nil

	case BoardChangedMsg:
		m.Board = msg.Board
		// Keep listening for the next change
		return m, waitForBoard(m.Ctx, m.boardChan)

	case tea.KeyPressMsg:
		return m, m.handleKey(msg)

	case tea.MouseClickMsg:
		if m.UiState.Mode() == state.NormalMode && msg.Button == tea.MouseLeft {
			m.Drag.Begin(m.Layout(), msg.X, msg.Y)
		}
		return m, nil

	case tea.MouseMotionMsg:
		m.Drag.Move(m.Layout(), msg.X, msg.Y)
		return m, nil

	case tea.MouseReleaseMsg:
		// Terminals in cell motion mode often report no button on release
		if result, ok := m.Drag.End(m.Layout(), msg.X, msg.Y); ok {
			m.finishDrag(result)
		}
		return m, nil
	}

	return m, nil
}

// handleKey dispatches key presses by mode
func (m Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if key.Matches(msg, m.Keys.ForceQuit) {
		return tea.Quit
	}

	if m.UiState.Mode() == state.HelpMode {
		switch {
		case key.Matches(msg, m.Keys.ShowHelp, m.Keys.Quit, m.Keys.CancelDrag):
			m.UiState.SetMode(state.NormalMode)
		case msg.String() == "enter":
			m.UiState.SetMode(state.NormalMode)
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.Keys.CancelDrag):
		m.cancelDrag()
	case key.Matches(msg, m.Keys.ShowHelp):
		m.cancelDrag()
		m.UiState.SetMode(state.HelpMode)
	case key.Matches(msg, m.Keys.Quit):
		return tea.Quit
	}
	return nil
}

// cancelDrag abandons the drag in progress, if any.
// The handler still hears about it, with no destination.
func (m Model) cancelDrag() {
	if result, ok := m.Drag.Cancel(); ok {
		m.finishDrag(result)
	}
}

// finishDrag hands a completed gesture to the handler and reports it
func (m Model) finishDrag(result models.DragResult) {
	m.Handler.OnMoveRequested(result)

	if !result.Dropped() {
		m.UiState.SetWarning("drop cancelled")
		return
	}
	m.UiState.SetStatus(fmt.Sprintf("moved %s -> %s #%d",
		result.DraggableID,
		m.columnName(result.Destination.ColumnID),
		result.Destination.Index))
}

// dragStatus describes the drag in progress for the status bar
func (m Model) dragStatus() string {
	hover := m.Drag.Hover()
	if hover == nil {
		return fmt.Sprintf("dragging %s (release outside to cancel)", m.Drag.TaskID())
	}
	return fmt.Sprintf("dragging %s over %s #%d", m.Drag.TaskID(), m.columnName(hover.ColumnID), hover.Index)
}
