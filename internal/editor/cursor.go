package editor

import "fmt"

// Cursor is an addressable position in the matrix.
// Position is the grapheme offset inside the cell used by Insert mode.
// Pinned cursors are skipped by bulk movement.
type Cursor struct {
	Row      int
	Column   int
	Position int
	Pinned   bool
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	if c.Pinned {
		return fmt.Sprintf("Cursor(%d:%d+%d pinned)", c.Row, c.Column, c.Position)
	}
	return fmt.Sprintf("Cursor(%d:%d+%d)", c.Row, c.Column, c.Position)
}

// CursorSet is an ordered, never empty collection of cursors.
// Insertion order is the draw order; the first cursor is the primary one.
type CursorSet struct {
	cursors []Cursor
}

// NewCursorSet creates a set holding a single cursor.
func NewCursorSet(c Cursor) *CursorSet {
	return &CursorSet{cursors: []Cursor{c}}
}

// Len returns the number of cursors, counting coincident ones.
func (s *CursorSet) Len() int {
	return len(s.cursors)
}

// Primary returns the first cursor.
func (s *CursorSet) Primary() Cursor {
	return s.cursors[0]
}

// At returns the cursor at index i.
func (s *CursorSet) At(i int) (Cursor, bool) {
	if i < 0 || i >= len(s.cursors) {
		return Cursor{}, false
	}
	return s.cursors[i], true
}

// All returns a copy of the cursors in order.
func (s *CursorSet) All() []Cursor {
	out := make([]Cursor, len(s.cursors))
	copy(out, s.cursors)
	return out
}

// Add appends a cursor.
func (s *CursorSet) Add(c Cursor) {
	s.cursors = append(s.cursors, c)
}

// Reset replaces the whole collection with a single cursor.
func (s *CursorSet) Reset(c Cursor) {
	s.cursors = append(s.cursors[:0], c)
}

// SetPinned changes the pin state of the cursor at index i.
func (s *CursorSet) SetPinned(i int, pinned bool) bool {
	if i < 0 || i >= len(s.cursors) {
		return false
	}
	s.cursors[i].Pinned = pinned
	return true
}

// update applies fn to every cursor selected by keep.
func (s *CursorSet) update(keep func(Cursor) bool, fn func(*Cursor)) {
	for i := range s.cursors {
		if keep(s.cursors[i]) {
			fn(&s.cursors[i])
		}
	}
}

// primary returns a pointer to the first cursor for in-place edits.
func (s *CursorSet) primary() *Cursor {
	return &s.cursors[0]
}
