package models

// ============================================================================
// COLUMN IDS
// ============================================================================

// Column identifiers of the seed board
const (
	ColumnRequested = "requested"
	ColumnToDo      = "toDo"
)

// ============================================================================
// SEED DATA
// ============================================================================

// SeedTasks returns the five tasks the board starts with
func SeedTasks() []Task {
	return []Task{
		{ID: "1", Content: "First task"},
		{ID: "2", Content: "Second task"},
		{ID: "3", Content: "Third task"},
		{ID: "4", Content: "Fourth task"},
		{ID: "5", Content: "Fifth task"},
	}
}

// SeedBoard returns the initial board: every seed task in "Requested",
// and an empty "To Do" column.
func SeedBoard() Board {
	return NewBoard(
		&Column{ID: ColumnRequested, Name: "Requested", Items: SeedTasks()},
		&Column{ID: ColumnToDo, Name: "To Do", Items: []Task{}},
	)
}
