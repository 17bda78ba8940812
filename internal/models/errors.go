package models

import "errors"

// Errors reported when a drag result does not fit the board it targets.
// The reorder engine never returns these; they are for callers that
// receive moves from an untrusted source.
var (
	// ErrColumnNotFound indicates a location names a column the board does not have
	ErrColumnNotFound = errors.New("column not found")

	// ErrIndexOutOfRange indicates a location index outside the column bounds
	ErrIndexOutOfRange = errors.New("index out of range")
)
