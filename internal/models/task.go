package models

// Task is a single card on the board.
// Tasks are never edited after creation, only relocated between columns.
type Task struct {
	ID      string `json:"id"`      // Unique across the whole board
	Content string `json:"content"` // Display text of the card
}
