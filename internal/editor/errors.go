package editor

import "errors"

// Editor errors.
var (
	// ErrNothingToUndo is returned by Undo when the history is empty.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNoCursor is returned when an edit needs a cursor and none exists.
	ErrNoCursor = errors.New("no cursor")

	// ErrNotTable is returned when a session is created over a matrix
	// whose rank is not 2.
	ErrNotTable = errors.New("matrix is not two-dimensional")
)
