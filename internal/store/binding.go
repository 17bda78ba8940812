package store

import (
	"github.com/thenoetrevino/quadro/internal/dnd"
	"github.com/thenoetrevino/quadro/internal/models"
)

// Binding connects the gesture layer to a Store
type Binding struct {
	store *Store
}

// Compile-time verification that *Binding implements dnd.Handler
var _ dnd.Handler = (*Binding)(nil)

// NewBinding creates a dnd.Handler backed by s
func NewBinding(s *Store) *Binding {
	return &Binding{store: s}
}

// OnMoveRequested applies the finished gesture to the store
func (b *Binding) OnMoveRequested(result models.DragResult) {
	b.store.Dispatch(result)
}

// ItemsForContainer returns the tasks of a column in display order.
// Unknown columns have no items.
func (b *Binding) ItemsForContainer(columnID string) []models.Task {
	col := b.store.State().Column(columnID)
	if col == nil {
		return []models.Task{}
	}
	return col.Items
}
