// Package layout computes the draw instructions for one frame of the grid.
//
// Compute is a pure function of the session state and the terminal size.
// It never mutates the state and never indexes the matrix outside its
// dimensions; every row and column is clamped before it is read.
package layout

import (
	"fmt"

	"github.com/dshills/greg/internal/renderer/core"
)

// Kind identifies the type of a draw instruction.
type Kind int

const (
	// KindText writes Text starting at (Row, Col).
	KindText Kind = iota
	// KindHLine repeats Glyph Length times to the right of (Row, Col).
	KindHLine
	// KindVLine repeats Glyph Length times downward from (Row, Col).
	KindVLine
)

// Instruction is a single drawing operation on the terminal surface.
type Instruction struct {
	Kind   Kind
	Row    int
	Col    int
	Text   string
	Attr   core.Attribute
	Glyph  rune
	Length int
}

// String returns a compact description for test failures and debug logs.
func (in Instruction) String() string {
	switch in.Kind {
	case KindText:
		return fmt.Sprintf("text(%d,%d %q %v)", in.Row, in.Col, in.Text, in.Attr)
	case KindHLine:
		return fmt.Sprintf("hline(%d,%d %q x%d)", in.Row, in.Col, in.Glyph, in.Length)
	case KindVLine:
		return fmt.Sprintf("vline(%d,%d %q x%d)", in.Row, in.Col, in.Glyph, in.Length)
	default:
		return fmt.Sprintf("instruction(%d)", int(in.Kind))
	}
}

// Column describes where one matrix column was placed.
type Column struct {
	Index int // matrix column
	X     int // first screen column of the cell text
	Width int // cell text width
}

// Frame is the complete result of a layout pass.
type Frame struct {
	Rows, Cols int

	Instructions []Instruction

	// Gutter is the width of the row number labels.
	Gutter int
	// RowsShown is the number of data rows drawn.
	RowsShown int
	// Columns are the drawn matrix columns, left to right.
	Columns []Column

	// Cursor is where the terminal cursor should be shown.
	Cursor        core.ScreenPos
	CursorVisible bool
}

func text(row, col int, s string, attr core.Attribute) Instruction {
	return Instruction{Kind: KindText, Row: row, Col: col, Text: s, Attr: attr}
}

func vline(row, col, length int, glyph rune) Instruction {
	return Instruction{Kind: KindVLine, Row: row, Col: col, Glyph: glyph, Length: length}
}
