package models

import "fmt"

// Location is a position inside a column
type Location struct {
	ColumnID string `json:"column_id"`
	Index    int    `json:"index"`
}

// String formats the location as column:index
func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.ColumnID, l.Index)
}

// DragResult is the outcome of a completed drag gesture.
// Destination is nil when the card was released outside every drop target.
type DragResult struct {
	DraggableID string    `json:"draggable_id,omitempty"`
	Source      Location  `json:"source"`
	Destination *Location `json:"destination"`
}

// Dropped reports whether the gesture ended over a drop target
func (r DragResult) Dropped() bool {
	return r.Destination != nil
}

// SameColumn reports whether the task stays in its source column
func (r DragResult) SameColumn() bool {
	return r.Destination != nil && r.Destination.ColumnID == r.Source.ColumnID
}
