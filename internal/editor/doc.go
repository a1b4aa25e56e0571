// Package editor holds the session state of a greg editing session.
//
// A State owns exactly one two-dimensional string matrix together with the
// viewport, the cursor collection, the current mode, the command/search
// input buffer, a transient status message and a snapshot undo history.
//
// Movement operations clamp every coordinate into the data region:
//
//	HeaderRows <= row < rows
//	0 <= column < cols
//
// so a cursor or view never addresses the header block or a cell outside
// the matrix, as long as the matrix has at least one data row.
//
// State is owned by a single event loop and is not safe for concurrent use.
package editor
