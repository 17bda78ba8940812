package dnd

import "github.com/thenoetrevino/quadro/internal/models"

// Rect is a screen area in terminal cells
type Rect struct {
	X, Y int // Top-left cell
	W, H int // Size in cells
}

// Contains reports whether the cell (x, y) lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// MidY is the row splitting the rectangle into its top and bottom halves
func (r Rect) MidY() int {
	return r.Y + r.H/2
}

// CardArea is where one task card is drawn
type CardArea struct {
	TaskID string
	Index  int // Position of the task in its column
	Rect   Rect
}

// ColumnArea is where one column is drawn, with the cards inside it
type ColumnArea struct {
	ColumnID string
	Rect     Rect
	Cards    []CardArea // In column order
}

// Layout is the hit-test map of everything drawn on the board.
// It must be built from the same geometry the view renders with.
type Layout struct {
	Columns []ColumnArea
}

// ColumnAt returns the column under the cell (x, y)
func (l Layout) ColumnAt(x, y int) (*ColumnArea, bool) {
	for i := range l.Columns {
		if l.Columns[i].Rect.Contains(x, y) {
			return &l.Columns[i], true
		}
	}
	return nil, false
}

// CardAt returns the card under the cell (x, y) and the column holding it
func (l Layout) CardAt(x, y int) (*ColumnArea, CardArea, bool) {
	col, ok := l.ColumnAt(x, y)
	if !ok {
		return nil, CardArea{}, false
	}
	for _, card := range col.Cards {
		if card.Rect.Contains(x, y) {
			return col, card, true
		}
	}
	return nil, CardArea{}, false
}

// DropTarget works out where a dragged task would land if released at (x, y).
//
// The insertion index counts the cards whose middle row is above y. The
// dragged task itself is skipped, so within its own column the index is a
// position in the column as it looks once the task is lifted out. Returns
// nil when (x, y) is outside every column.
func (l Layout) DropTarget(x, y int, draggedID string) *models.Location {
	col, ok := l.ColumnAt(x, y)
	if !ok {
		return nil
	}

	index := 0
	for _, card := range col.Cards {
		if card.TaskID == draggedID {
			continue
		}
		if card.Rect.MidY() < y {
			index++
		}
	}

	return &models.Location{ColumnID: col.ColumnID, Index: index}
}
