package input

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/greg/internal/editor"
)

// execute runs a committed command line.
// Mistakes are reported through the status message, never returned.
func (m *Machine) execute(st *editor.State, line string) []Effect {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		st.Status = unknownCommand(line)
		return nil
	}
	name, args := fields[0], fields[1:]

	// Built-ins take no arguments. Anything after the name makes it a
	// different command, which scripts may still claim.
	if len(args) == 0 {
		switch name {
		case "quit", "q":
			return []Effect{Quit{}}
		case "undo", "u":
			if err := st.Undo(); err != nil {
				st.Status = err.Error()
				return nil
			}
			return []Effect{Edited{}}
		case "addrow":
			return edited(st, st.InsertRow())
		case "addcol":
			return edited(st, st.InsertColumn())
		}

		if n, err := strconv.Atoi(name); err == nil {
			st.GotoLine(n + st.Settings.HeaderRows)
			return nil
		}
	}

	if m.runner != nil {
		handled, err := m.runner.RunCommand(st, name, args)
		if err != nil {
			st.Status = fmt.Sprintf("%s: %v", name, err)
			return nil
		}
		if handled {
			return nil
		}
	}

	st.Status = unknownCommand(line)
	return nil
}

func edited(st *editor.State, err error) []Effect {
	if err != nil {
		st.Status = err.Error()
		return nil
	}
	return []Effect{Edited{}}
}

func unknownCommand(line string) string {
	return fmt.Sprintf("unknown command '%s'", line)
}
