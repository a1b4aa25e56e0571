package matrix

import (
	"errors"
	"fmt"
)

// Errors returned by matrix operations.
var (
	// ErrRankMismatch indicates a coordinate vector whose length differs from the rank.
	ErrRankMismatch = errors.New("coordinate rank mismatch")

	// ErrIndexOutOfRange indicates a coordinate at or beyond its axis size.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrShapeMismatch indicates a reshape whose element count does not match.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrAxisOutOfRange indicates an axis number at or beyond the rank.
	ErrAxisOutOfRange = errors.New("axis out of range")
)

// IndexError describes a failed element access.
type IndexError struct {
	Coord      []int
	Dimensions []int
	Err        error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("matrix index %v with dimensions %v: %v", e.Coord, e.Dimensions, e.Err)
}

func (e *IndexError) Unwrap() error {
	return e.Err
}

// ShapeError describes a failed shape change.
type ShapeError struct {
	Have []int
	Want []int
	Err  error
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("matrix shape %v to %v: %v", e.Have, e.Want, e.Err)
}

func (e *ShapeError) Unwrap() error {
	return e.Err
}
