package tui

import (
	"context"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/quadro/internal/config"
	"github.com/thenoetrevino/quadro/internal/dnd"
	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/tui/components"
	"github.com/thenoetrevino/quadro/internal/tui/state"
)

// Model represents the application state for the TUI.
//
// The board itself lives in the store. Model keeps the last published
// snapshot for column order and names, and asks Handler for the items of
// each column when drawing.
type Model struct {
	Ctx     context.Context
	Config  *config.Config
	Source  BoardSource
	Handler dnd.Handler

	// Board is the last board published by Source
	Board models.Board

	UiState *state.UIState
	Drag    *dnd.Tracker
	Keys    KeyMap
	Help    help.Model

	boardChan <-chan models.Board
}

// InitialModel creates the TUI model for a board.
// It subscribes to source for as long as ctx lives.
func InitialModel(ctx context.Context, source BoardSource, handler dnd.Handler, cfg *config.Config) Model {
	return Model{
		Ctx:       ctx,
		Config:    cfg,
		Source:    source,
		Handler:   handler,
		Board:     source.State(),
		UiState:   state.NewUIState(),
		Drag:      &dnd.Tracker{},
		Keys:      NewKeyMap(cfg.KeyMappings),
		Help:      help.New(),
		boardChan: WatchBoard(ctx, source),
	}
}

// Init starts listening for board changes.
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return waitForBoard(m.Ctx, m.boardChan)
}

// geometry returns the sizes the board is drawn and hit-tested with
func (m Model) geometry() components.Geometry {
	return components.Geometry{
		Width:       m.UiState.Width(),
		Height:      m.UiState.Height(),
		ColumnWidth: m.Config.Board.ColumnWidth,
	}
}

// columnViews returns the columns in display order with their current items
func (m Model) columnViews() []components.ColumnView {
	return components.ColumnViews(m.Board, m.Handler.ItemsForContainer)
}

// Layout returns the hit-test map of the board as it is currently drawn
func (m Model) Layout() dnd.Layout {
	return components.BoardLayout(m.columnViews(), m.geometry())
}

// columnName returns the display name of a column, or its ID if unknown
func (m Model) columnName(columnID string) string {
	if col := m.Board.Column(columnID); col != nil {
		return col.Name
	}
	return columnID
}
