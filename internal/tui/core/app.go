// Package core wires the board TUI to a store and exposes it as a tea.Model.
package core

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/quadro/internal/config"
	"github.com/thenoetrevino/quadro/internal/store"
	"github.com/thenoetrevino/quadro/internal/tui"
	"github.com/thenoetrevino/quadro/internal/tui/components"
)

// App wraps the TUI Model and implements the tea.Model interface.
// This is the single entry point for the Bubble Tea application.
type App struct {
	model *tui.Model
}

// New creates an App drawing the board held by s.
// Gestures are applied to s through a store.Binding, and styles are
// initialized from the configured theme.
func New(ctx context.Context, s *store.Store, cfg *config.Config) *App {
	components.InitStyles(cfg.ColorScheme)

	model := tui.InitialModel(ctx, s, store.NewBinding(s), cfg)
	return &App{model: &model}
}

// Init initializes the Bubble Tea application.
// Implements tea.Model interface.
func (a *App) Init() tea.Cmd {
	return a.model.Init()
}

// Update handles all messages and updates the model.
// Implements tea.Model interface.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedModel, cmd := a.model.Update(msg)
	// Unwrap the updated Model and store it back
	if m, ok := updatedModel.(tui.Model); ok {
		*a.model = m
	}
	return a, cmd
}

// View renders the current state of the application.
// Implements tea.Model interface.
func (a *App) View() tea.View {
	return a.model.View()
}

// GetModel returns the underlying Model.
// This is primarily useful for testing purposes.
func (a *App) GetModel() *tui.Model {
	return a.model
}

