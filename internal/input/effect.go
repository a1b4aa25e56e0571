package input

import "github.com/dshills/greg/internal/editor"

// Effect is a side effect produced by a transition.
type Effect interface {
	effect()
}

// Quit asks the loop to end the session.
type Quit struct{}

// ModeChanged reports a mode transition.
type ModeChanged struct {
	From editor.Mode
	To   editor.Mode
}

// CommandRun reports a committed ex command, whatever its outcome.
type CommandRun struct {
	Line string
}

// Edited reports a change to the matrix contents or shape.
type Edited struct{}

// SearchCommitted reports a committed search term.
type SearchCommitted struct {
	Term string
}

func (Quit) effect()            {}
func (ModeChanged) effect()     {}
func (CommandRun) effect()      {}
func (Edited) effect()          {}
func (SearchCommitted) effect() {}

// HasQuit reports whether effects contains a Quit.
func HasQuit(effects []Effect) bool {
	for _, e := range effects {
		if _, ok := e.(Quit); ok {
			return true
		}
	}
	return false
}
