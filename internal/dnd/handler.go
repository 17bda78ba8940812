// Package dnd turns pointer input into drag results for the board.
//
// It owns the gesture side of drag and drop: hit-testing the rendered
// columns and cards, tracking a card while the pointer moves, and working out
// the insertion point on release. It knows nothing about how a board changes;
// completed gestures are handed to a Handler.
package dnd

import "github.com/thenoetrevino/quadro/internal/models"

// Handler is what the gesture layer needs from the board.
//
// OnMoveRequested is called synchronously, exactly once per completed
// gesture, including gestures that end outside every column (the result
// then has a nil Destination). ItemsForContainer supplies the ordered tasks
// of a column so they can be drawn and tracked by ID.
type Handler interface {
	OnMoveRequested(result models.DragResult)
	ItemsForContainer(columnID string) []models.Task
}
