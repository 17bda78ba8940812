package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/store"
)

// BoardSource is the observable board the TUI draws.
// *store.Store satisfies it.
type BoardSource interface {
	State() models.Board
	Subscribe(l store.Listener) (unsubscribe func())
	Moves() int
}

var _ BoardSource = (*store.Store)(nil)

// WatchBoard forwards every board the source publishes into the returned
// channel until ctx is done.
//
// The channel holds one board. Publishing never blocks the store: when the
// reader is behind, the pending board is replaced by the newer one. The
// channel is never closed, so readers must also watch ctx.
func WatchBoard(ctx context.Context, source BoardSource) <-chan models.Board {
	ch := make(chan models.Board, 1)

	unsubscribe := source.Subscribe(func(board models.Board) {
		for {
			select {
			case ch <- board:
				return
			default:
			}
			// Full: drop the stale board and retry
			select {
			case <-ch:
			default:
			}
		}
	})
	context.AfterFunc(ctx, unsubscribe)

	return ch
}

// waitForBoard returns a command that waits for the next published board.
// Returns nil if there is nothing to wait on.
func waitForBoard(ctx context.Context, ch <-chan models.Board) tea.Cmd {
	if ch == nil {
		return nil
	}

	return func() tea.Msg {
		select {
		case board := <-ch:
			return BoardChangedMsg{Board: board}
		case <-ctx.Done():
			return nil
		}
	}
}
