package dnd

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/thenoetrevino/quadro/internal/models"
)

// Tracker follows a single drag gesture from press to release.
// The zero value is ready to use and idle.
type Tracker struct {
	active bool

	// id correlates the log lines of one gesture
	id string

	taskID string
	source models.Location

	// hover is the drop target under the pointer, nil when outside the board
	hover *models.Location
}

// Begin starts a drag if (x, y) is on a card.
// It returns false, and stays idle, for presses on empty space or while
// another drag is already in progress.
func (t *Tracker) Begin(layout Layout, x, y int) bool {
	if t.active {
		return false
	}

	col, card, ok := layout.CardAt(x, y)
	if !ok {
		return false
	}

	t.active = true
	t.id = uuid.NewString()
	t.taskID = card.TaskID
	t.source = models.Location{ColumnID: col.ColumnID, Index: card.Index}
	t.hover = layout.DropTarget(x, y, card.TaskID)

	slog.Debug("drag started",
		"gesture_id", t.id,
		"task_id", t.taskID,
		"from", t.source.String())
	return true
}

// Move updates the drop target while a drag is in progress
func (t *Tracker) Move(layout Layout, x, y int) {
	if !t.active {
		return
	}
	t.hover = layout.DropTarget(x, y, t.taskID)
}

// End finishes the drag at (x, y) and returns its result.
// ok is false when no drag was in progress.
func (t *Tracker) End(layout Layout, x, y int) (result models.DragResult, ok bool) {
	if !t.active {
		return models.DragResult{}, false
	}
	t.hover = layout.DropTarget(x, y, t.taskID)
	return t.finish(), true
}

// Cancel abandons the drag. The result has no destination, so applying it
// leaves the board as it was. ok is false when no drag was in progress.
func (t *Tracker) Cancel() (result models.DragResult, ok bool) {
	if !t.active {
		return models.DragResult{}, false
	}
	t.hover = nil
	return t.finish(), true
}

func (t *Tracker) finish() models.DragResult {
	result := models.DragResult{
		DraggableID: t.taskID,
		Source:      t.source,
		Destination: t.hover,
	}

	to := "none"
	if t.hover != nil {
		to = t.hover.String()
	}
	slog.Debug("drag ended",
		"gesture_id", t.id,
		"task_id", t.taskID,
		"from", t.source.String(),
		"to", to)

	*t = Tracker{}
	return result
}

// Active reports whether a drag is in progress
func (t *Tracker) Active() bool {
	return t.active
}

// TaskID returns the ID of the task being dragged, or "" when idle
func (t *Tracker) TaskID() string {
	return t.taskID
}

// Source returns where the dragged task was picked up
func (t *Tracker) Source() models.Location {
	return t.source
}

// Hover returns the current drop target, nil when idle or off the board
func (t *Tracker) Hover() *models.Location {
	return t.hover
}
