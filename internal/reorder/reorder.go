// Package reorder computes the next board after a drag gesture completes.
//
// Apply is a pure function: it never mutates the board it is given and has
// no side effects. Indices in a DragResult are trusted to come from the
// gesture layer, which only reports positions it has rendered; Apply does
// not check them and an out-of-range index panics like any slice access.
// Callers holding moves from an untrusted source run Validate first.
package reorder

import (
	"fmt"
	"slices"

	"github.com/thenoetrevino/quadro/internal/models"
)

// Apply returns the board that results from dropping a task as described by
// result. A result without a destination returns board unchanged.
//
// Only the touched columns are replaced in the returned board; every other
// column is the same *models.Column as in board.
func Apply(result models.DragResult, board models.Board) models.Board {
	if result.Destination == nil {
		return board
	}

	src := result.Source
	dst := *result.Destination

	if src.ColumnID == dst.ColumnID {
		items := slices.Clone(board.Column(src.ColumnID).Items)
		removed := items[src.Index]
		items = slices.Delete(items, src.Index, src.Index+1)
		items = slices.Insert(items, dst.Index, removed)

		return board.WithColumnItems(map[string][]models.Task{
			src.ColumnID: items,
		})
	}

	srcItems := slices.Clone(board.Column(src.ColumnID).Items)
	dstItems := slices.Clone(board.Column(dst.ColumnID).Items)
	removed := srcItems[src.Index]
	srcItems = slices.Delete(srcItems, src.Index, src.Index+1)
	dstItems = slices.Insert(dstItems, dst.Index, removed)

	return board.WithColumnItems(map[string][]models.Task{
		src.ColumnID: srcItems,
		dst.ColumnID: dstItems,
	})
}

// Validate reports whether result can be applied to board.
// A result without a destination is always valid.
//
// The destination bound depends on the move: within one column the task is
// removed before it is inserted, so the last valid index is len-1; across
// columns it may be appended, so len is valid.
func Validate(result models.DragResult, board models.Board) error {
	src := board.Column(result.Source.ColumnID)
	if src == nil {
		return fmt.Errorf("source %q: %w", result.Source.ColumnID, models.ErrColumnNotFound)
	}
	if result.Source.Index < 0 || result.Source.Index >= src.Len() {
		return fmt.Errorf("source %s (column has %d tasks): %w",
			result.Source, src.Len(), models.ErrIndexOutOfRange)
	}

	if result.Destination == nil {
		return nil
	}

	dst := board.Column(result.Destination.ColumnID)
	if dst == nil {
		return fmt.Errorf("destination %q: %w", result.Destination.ColumnID, models.ErrColumnNotFound)
	}

	limit := dst.Len()
	if result.SameColumn() {
		limit = dst.Len() - 1
	}
	if result.Destination.Index < 0 || result.Destination.Index > limit {
		return fmt.Errorf("destination %s (last valid index %d): %w",
			result.Destination, limit, models.ErrIndexOutOfRange)
	}

	return nil
}
