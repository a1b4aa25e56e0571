package input

import (
	"unicode"

	"github.com/dshills/greg/internal/editor"
)

// CommandRunner executes ex commands that are not built in.
// It returns false when it does not know the command.
type CommandRunner interface {
	RunCommand(st *editor.State, name string, args []string) (bool, error)
}

// Machine dispatches events to the transition function of the current mode.
type Machine struct {
	runner CommandRunner
}

// NewMachine creates a machine. runner may be nil.
func NewMachine(runner CommandRunner) *Machine {
	return &Machine{runner: runner}
}

// Dispatch applies ev to st and returns the resulting effects.
func (m *Machine) Dispatch(st *editor.State, ev Event) []Effect {
	switch ev.Kind {
	case KindResize, KindMouse:
		return nil
	}

	switch st.Mode {
	case editor.ModeNormal:
		return Normal(st, ev)
	case editor.ModeView:
		return View(st, ev)
	case editor.ModeInsert:
		return Insert(st, ev)
	case editor.ModeCommand:
		return m.Command(st, ev)
	case editor.ModeSearch:
		return Search(st, ev)
	default:
		return nil
	}
}

// direction maps hjkl to a (dy, dx) delta.
func direction(r rune) (dy, dx int, ok bool) {
	switch r {
	case 'h':
		return 0, -1, true
	case 'j':
		return 1, 0, true
	case 'k':
		return -1, 0, true
	case 'l':
		return 0, 1, true
	}
	return 0, 0, false
}

// switchMode changes mode and reports it.
func switchMode(st *editor.State, to editor.Mode) []Effect {
	from := st.SetMode(to)
	if from == to {
		return nil
	}
	return []Effect{ModeChanged{From: from, To: to}}
}

// openPrompt clears the buffer and enters Command or Search.
func openPrompt(st *editor.State, r rune) ([]Effect, bool) {
	switch r {
	case ':':
		st.Buffer = ""
		return switchMode(st, editor.ModeCommand), true
	case '/':
		st.Buffer = ""
		return switchMode(st, editor.ModeSearch), true
	}
	return nil, false
}

// Normal is the transition function for Normal mode.
func Normal(st *editor.State, ev Event) []Effect {
	st.Status = ""

	if ev.Kind == KindRune {
		if effects, ok := openPrompt(st, ev.Rune); ok {
			return effects
		}
		switch ev.Rune {
		case 'i':
			return switchMode(st, editor.ModeInsert)
		case 'v':
			return switchMode(st, editor.ModeView)
		}
		if dy, dx, ok := direction(ev.Rune); ok {
			st.MoveCursors(dy, dx)
			return nil
		}
	}

	st.Status = "received " + ev.String()
	return nil
}

// View is the transition function for View mode.
func View(st *editor.State, ev Event) []Effect {
	st.Status = ""

	switch ev.Kind {
	case KindEscape:
		return switchMode(st, editor.ModeNormal)
	case KindRune:
		if effects, ok := openPrompt(st, ev.Rune); ok {
			return effects
		}
		if dy, dx, ok := direction(ev.Rune); ok {
			st.MoveView(dy, dx)
		}
	}
	return nil
}

// Insert is the transition function for Insert mode.
func Insert(st *editor.State, ev Event) []Effect {
	st.Status = ""

	switch ev.Kind {
	case KindEscape:
		return switchMode(st, editor.ModeNormal)
	case KindRune:
		if !unicode.IsGraphic(ev.Rune) {
			return nil
		}
		if err := st.WriteRune(ev.Rune); err != nil {
			st.Status = err.Error()
			return nil
		}
		return []Effect{Edited{}}
	}
	return nil
}

// editPrompt handles the keys shared by Command and Search.
// It reports false for Enter, which each mode commits differently.
func editPrompt(st *editor.State, ev Event) ([]Effect, bool) {
	switch ev.Kind {
	case KindRune:
		if unicode.IsGraphic(ev.Rune) {
			st.Buffer += string(ev.Rune)
		}
	case KindBackspace:
		if r := []rune(st.Buffer); len(r) > 0 {
			st.Buffer = string(r[:len(r)-1])
		}
	case KindEscape:
		st.Buffer = ""
		return switchMode(st, editor.ModeNormal), true
	case KindEnter:
		return nil, false
	}
	return nil, true
}

// Command is the transition function for Command mode.
func (m *Machine) Command(st *editor.State, ev Event) []Effect {
	if effects, handled := editPrompt(st, ev); handled {
		return effects
	}

	line := st.Buffer
	st.Buffer = ""
	effects := switchMode(st, editor.ModeNormal)
	effects = append(effects, CommandRun{Line: line})
	return append(effects, m.execute(st, line)...)
}

// Search is the transition function for Search mode.
func Search(st *editor.State, ev Event) []Effect {
	if effects, handled := editPrompt(st, ev); handled {
		return effects
	}

	term := st.Buffer
	st.Buffer = ""
	st.SearchTerm = term
	st.Status = "search: " + term
	effects := switchMode(st, editor.ModeNormal)
	return append(effects, SearchCommitted{Term: term})
}
