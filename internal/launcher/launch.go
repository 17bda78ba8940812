// Package launcher starts the interactive board
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/quadro/internal/config"
	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/store"
	"github.com/thenoetrevino/quadro/internal/tui/core"
)

// Launch runs the board in the terminal until the user quits or the process
// is interrupted. The board starts from the seed data every time.
func Launch(ctx context.Context, cfg *config.Config) error {
	// Cancel on SIGINT/SIGTERM for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	s := store.New(models.SeedBoard())
	slog.Info("starting board",
		"columns", len(s.State().Order),
		"tasks", s.State().Len(),
		"theme", cfg.ColorScheme.Preset)

	p := tea.NewProgram(core.New(ctx, s, cfg), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			slog.Info("shutdown signal received")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}

	slog.Info("board closed", "moves", s.Moves())
	return nil
}
