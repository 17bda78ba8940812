package models

// Column is a named, ordered bucket of tasks (e.g., "Requested", "To Do").
// Items are ordered top to bottom as they are drawn.
type Column struct {
	ID    string `json:"id"`   // Key of the column in the board
	Name  string `json:"name"` // Display label
	Items []Task `json:"items"`
}

// Len returns the number of tasks in the column
func (c *Column) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Items)
}

// IndexOf returns the position of the task with the given ID, or -1
func (c *Column) IndexOf(taskID string) int {
	if c == nil {
		return -1
	}
	for i, task := range c.Items {
		if task.ID == taskID {
			return i
		}
	}
	return -1
}

// withItems returns a shallow copy of the column holding the given items
func (c *Column) withItems(items []Task) *Column {
	return &Column{
		ID:    c.ID,
		Name:  c.Name,
		Items: items,
	}
}
