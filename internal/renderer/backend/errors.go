package backend

import "errors"

// ErrEventQueueFull is returned when the event queue is full.
var ErrEventQueueFull = errors.New("event queue full")
