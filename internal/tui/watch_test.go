package tui

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/store"
	"go.uber.org/goleak"
)

func moveFirstToDo() models.DragResult {
	return models.DragResult{
		Source:      models.Location{ColumnID: models.ColumnRequested, Index: 0},
		Destination: &models.Location{ColumnID: models.ColumnToDo, Index: 0},
	}
}

func TestWatchBoard_ForwardsPublishedBoards(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := store.New(models.SeedBoard())
	ch := WatchBoard(ctx, s)

	s.Dispatch(moveFirstToDo())

	select {
	case board := <-ch:
		assert.Equal(t, 1, board.Column(models.ColumnToDo).Len())
	case <-time.After(time.Second):
		t.Fatal("no board received")
	}
}

func TestWatchBoard_KeepsLatestBoard(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := store.New(models.SeedBoard())
	ch := WatchBoard(ctx, s)

	// Nobody reads between the two publications; neither blocks
	s.Dispatch(moveFirstToDo())
	s.Dispatch(moveFirstToDo())

	board := <-ch
	assert.Equal(t, 2, board.Column(models.ColumnToDo).Len())

	select {
	case <-ch:
		t.Fatal("stale board left in channel")
	default:
	}
}

func TestWatchBoard_UnsubscribesOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	s := store.New(models.SeedBoard())
	ch := WatchBoard(ctx, s)
	cancel()

	// Once unsubscribed, publishing no longer reaches the channel
	require.Eventually(t, func() bool {
		s.SetState(s.State())
		select {
		case <-ch:
			return false
		default:
			return true
		}
	}, time.Second, 10*time.Millisecond)
}

func TestWaitForBoard(t *testing.T) {
	defer goleak.VerifyNone(t)

	assert.Nil(t, waitForBoard(context.Background(), nil))

	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan models.Board)
	cmd := waitForBoard(ctx, ch)
	cancel()

	assert.Nil(t, cmd(), "a cancelled wait produces no message")
}
