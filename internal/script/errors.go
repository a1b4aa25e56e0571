package script

import "errors"

// Errors returned by the script host.
var (
	// ErrHostClosed is returned when operating on a closed host.
	ErrHostClosed = errors.New("script host is closed")

	// ErrNoState is returned by the greg API outside of a command call.
	ErrNoState = errors.New("no editor state outside a command")
)
