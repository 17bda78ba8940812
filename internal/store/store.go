// Package store holds the board for the running session.
//
// A Store is the single owner of the current board. It replaces the board
// wholesale on every change and publishes the new value to subscribers.
// Nothing is persisted; the board lives as long as the process.
package store

import (
	"log/slog"
	"sync"

	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/reorder"
)

// Listener receives every board published by a Store
type Listener func(board models.Board)

// Store is an observable container for the board.
// Subscribers run synchronously, in the order they subscribed, on the
// goroutine that called SetState.
type Store struct {
	mu        sync.RWMutex
	board     models.Board
	moves     int
	listeners map[int]Listener
	order     []int
	nextID    int
}

// New creates a store holding the given board
func New(initial models.Board) *Store {
	return &Store{
		board:     initial,
		listeners: make(map[int]Listener),
	}
}

// State returns the current board
func (s *Store) State() models.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board
}

// SetState replaces the board and notifies every subscriber
func (s *Store) SetState(board models.Board) {
	s.mu.Lock()
	s.board = board
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	for _, l := range listeners {
		l(board)
	}
}

// Subscribe registers a listener and returns a function that removes it.
// Calling the returned function more than once is safe.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.order = append(s.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.listeners, id)
			for i, existing := range s.order {
				if existing == id {
					s.order = append(s.order[:i], s.order[i+1:]...)
					break
				}
			}
		})
	}
}

// Dispatch applies a completed drag to the board.
// A drag without a destination changes nothing and publishes nothing.
func (s *Store) Dispatch(result models.DragResult) {
	if !result.Dropped() {
		slog.Info("drop cancelled",
			"task_id", result.DraggableID,
			"from", result.Source.String())
		return
	}

	next := reorder.Apply(result, s.State())

	s.mu.Lock()
	s.moves++
	s.mu.Unlock()

	slog.Info("task moved",
		"task_id", result.DraggableID,
		"from", result.Source.String(),
		"to", result.Destination.String())

	s.SetState(next)
}

// Moves returns how many drops have been applied since the store was created
func (s *Store) Moves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.moves
}

// snapshotListeners copies the listeners in subscription order.
// Must be called with s.mu held.
func (s *Store) snapshotListeners() []Listener {
	out := make([]Listener, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.listeners[id])
	}
	return out
}
