package source

import (
	"errors"
	"fmt"
)

// Source errors.
var (
	// ErrInvalidTrim is returned by ParseTrim for an unknown policy name.
	ErrInvalidTrim = errors.New("invalid trim policy")

	// ErrInvalidOptions is returned when separator and comment cannot be
	// used together.
	ErrInvalidOptions = errors.New("invalid parser options")
)

// ParseError reports malformed input.
type ParseError struct {
	// Path is the file being read, or "<stdin>".
	Path string
	// Line is the 1-based line where the error was detected, or 0.
	Line int
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
