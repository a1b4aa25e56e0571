package editor

import (
	"fmt"

	"github.com/dshills/greg/internal/matrix"
)

// Settings are fixed for the lifetime of a session.
type Settings struct {
	ColumnWidthMin int
	ColumnWidthMax int
	HeaderRows     int
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		ColumnWidthMin: 5,
		ColumnWidthMax: 40,
		HeaderRows:     0,
	}
}

// View is the coordinate of the top-left visible data cell.
type View struct {
	Row    int
	Column int
}

// State is the complete editing session.
type State struct {
	Settings Settings

	// Data is the table being edited. It is replaced wholesale by Undo.
	Data *matrix.Matrix[string]

	View    View
	Cursors *CursorSet
	Mode    Mode

	// Buffer collects Command and Search input.
	Buffer string
	// Status is the transient message shown on the status line.
	Status string
	// SearchTerm is the last committed search.
	SearchTerm string

	history *History
	// editing is set once the current Insert session has taken its snapshot.
	editing bool
}

// New creates a session over a two-dimensional matrix. View and the single
// initial cursor start at the first data row below the headers.
func New(data *matrix.Matrix[string], settings Settings) (*State, error) {
	if data.Rank() != 2 {
		return nil, fmt.Errorf("new session with dimensions %v: %w", data.Dimensions(), ErrNotTable)
	}

	s := &State{
		Settings: settings,
		Data:     data,
		View:     View{Row: settings.HeaderRows},
		Cursors:  NewCursorSet(Cursor{Row: settings.HeaderRows}),
		Mode:     ModeNormal,
		history:  NewHistory(DefaultHistorySize),
	}
	s.Clamp()
	return s, nil
}

// Rows returns the number of matrix rows, including header rows.
func (s *State) Rows() int {
	return s.Data.Dimension(0)
}

// Cols returns the number of matrix columns.
func (s *State) Cols() int {
	return s.Data.Dimension(1)
}

// History returns the undo history.
func (s *State) History() *History {
	return s.history
}

// SetMode switches modes. Leaving Insert closes the current edit group so the
// next Insert session takes a fresh snapshot.
func (s *State) SetMode(m Mode) Mode {
	prev := s.Mode
	if prev == ModeInsert && m != ModeInsert {
		s.editing = false
	}
	s.Mode = m
	return prev
}

// clampRow keeps row inside the data rows below the header block.
func (s *State) clampRow(row int) int {
	return clamp(s.Settings.HeaderRows, s.Rows()-1, row)
}

// clampColumn keeps column inside the matrix columns.
func (s *State) clampColumn(col int) int {
	return clamp(0, s.Cols()-1, col)
}

// MoveView scrolls the viewport, never above the header block.
func (s *State) MoveView(dy, dx int) {
	s.View.Row = s.clampRow(s.View.Row + dy)
	s.View.Column = s.clampColumn(s.View.Column + dx)
}

// MoveCursors moves every unpinned cursor by the same delta, clamping each
// independently. A cursor that lands on another cell restarts at position 0.
func (s *State) MoveCursors(dy, dx int) {
	s.Cursors.update(func(c Cursor) bool { return !c.Pinned }, func(c *Cursor) {
		row := s.clampRow(c.Row + dy)
		col := s.clampColumn(c.Column + dx)
		if row != c.Row || col != c.Column {
			c.Position = 0
		}
		c.Row, c.Column = row, col
	})
}

// GotoLine replaces all cursors with one unpinned cursor at (line, 0).
// The line is clamped into the data rows.
func (s *State) GotoLine(line int) {
	s.Cursors.Reset(Cursor{Row: s.clampRow(line)})
}

// Clamp brings the view and every cursor, pinned or not, back inside the
// matrix. It is called after any change of shape.
func (s *State) Clamp() {
	s.View.Row = s.clampRow(s.View.Row)
	s.View.Column = s.clampColumn(s.View.Column)
	s.Cursors.update(func(Cursor) bool { return true }, func(c *Cursor) {
		c.Row = s.clampRow(c.Row)
		c.Column = s.clampColumn(c.Column)
	})
}

// clamp returns v limited to [lo, hi]. When hi < lo the lower bound wins.
func clamp(lo, hi, v int) int {
	return max(lo, min(hi, v))
}
