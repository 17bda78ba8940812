package models

// Board is the full set of columns and their ordered tasks at a point in time.
//
// Columns are keyed by Column.ID. Order records the left-to-right display
// order, since map iteration order is unspecified.
//
// A Board is treated as a value: operations that change it return a new Board
// and never touch the receiver. Unchanged columns are shared by pointer
// between the old and the new board.
type Board struct {
	Columns map[string]*Column
	Order   []string
}

// NewBoard builds a board from columns, keeping their order for display
func NewBoard(columns ...*Column) Board {
	b := Board{
		Columns: make(map[string]*Column, len(columns)),
		Order:   make([]string, 0, len(columns)),
	}
	for _, col := range columns {
		b.Columns[col.ID] = col
		b.Order = append(b.Order, col.ID)
	}
	return b
}

// Column returns the column with the given ID, or nil if it does not exist
func (b Board) Column(id string) *Column {
	return b.Columns[id]
}

// OrderedColumns returns the columns in display order.
// Columns missing from Order are skipped.
func (b Board) OrderedColumns() []*Column {
	cols := make([]*Column, 0, len(b.Order))
	for _, id := range b.Order {
		if col, ok := b.Columns[id]; ok {
			cols = append(cols, col)
		}
	}
	return cols
}

// Len returns the total number of tasks on the board
func (b Board) Len() int {
	total := 0
	for _, col := range b.Columns {
		total += col.Len()
	}
	return total
}

// TaskIDs returns the set of task IDs on the board
func (b Board) TaskIDs() map[string]struct{} {
	ids := make(map[string]struct{}, b.Len())
	for _, col := range b.Columns {
		for _, task := range col.Items {
			ids[task.ID] = struct{}{}
		}
	}
	return ids
}

// Locate finds the column and index of a task.
// ok is false if no column holds the task.
func (b Board) Locate(taskID string) (loc Location, ok bool) {
	for _, id := range b.Order {
		if idx := b.Columns[id].IndexOf(taskID); idx >= 0 {
			return Location{ColumnID: id, Index: idx}, true
		}
	}
	return Location{}, false
}

// WithColumnItems returns a new board where the given columns hold new items.
// Every other column is shared with b. The receiver is left untouched.
func (b Board) WithColumnItems(items map[string][]Task) Board {
	next := Board{
		Columns: make(map[string]*Column, len(b.Columns)),
		Order:   b.Order,
	}
	for id, col := range b.Columns {
		if newItems, ok := items[id]; ok {
			next.Columns[id] = col.withItems(newItems)
			continue
		}
		next.Columns[id] = col
	}
	return next
}
