package editor

import (
	"github.com/rivo/uniseg"
)

// Snapshot pushes a copy of the current matrix onto the undo history.
func (s *State) Snapshot() {
	s.history.Push(s.Data)
}

// Undo restores the most recent snapshot and clamps cursors and view to it.
func (s *State) Undo() error {
	prev, err := s.history.Pop()
	if err != nil {
		return err
	}
	s.Data = prev
	s.editing = false
	s.Clamp()
	return nil
}

// InsertRow appends an empty row after taking a snapshot.
func (s *State) InsertRow() error {
	return s.insertAxis(0)
}

// InsertColumn appends an empty column after taking a snapshot.
func (s *State) InsertColumn() error {
	return s.insertAxis(1)
}

func (s *State) insertAxis(axis int) error {
	before := s.Data.Clone()
	if err := s.Data.InsertAxisSliceDefault(axis); err != nil {
		return err
	}
	s.history.Push(before)
	s.Clamp()
	return nil
}

// Cell returns the text at (row, col).
func (s *State) Cell(row, col int) (string, error) {
	return s.Data.Get(row, col)
}

// WriteRune inserts r into the cell under the primary cursor at the cursor's
// grapheme position and advances the position by one. A position past the
// end of the cell appends. The first write of an Insert session snapshots
// the matrix so the whole session undoes as one step.
//
// The cursor coordinate is used as is; a stale coordinate left behind by a
// shape change fails with matrix.ErrIndexOutOfRange and nothing is written.
func (s *State) WriteRune(r rune) error {
	if s.Cursors == nil || s.Cursors.Len() == 0 {
		return ErrNoCursor
	}
	c := s.Cursors.primary()

	cell, err := s.Data.Ref(c.Row, c.Column)
	if err != nil {
		return err
	}

	if !s.editing {
		s.history.Push(s.Data)
		s.editing = true
	}

	offset := graphemeOffset(*cell, c.Position)
	*cell = (*cell)[:offset] + string(r) + (*cell)[offset:]
	c.Position++
	return nil
}

// graphemeOffset returns the byte offset of the n-th grapheme cluster of s,
// or len(s) when s has n or fewer clusters.
func graphemeOffset(s string, n int) int {
	if n <= 0 {
		return 0
	}
	g := uniseg.NewGraphemes(s)
	for i := 0; g.Next(); i++ {
		if i == n {
			start, _ := g.Positions()
			return start
		}
	}
	return len(s)
}
