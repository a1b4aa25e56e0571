// Package core provides shared types for the renderer subsystem.
// This package breaks import cycles between renderer, layout and backend.
package core

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Attribute represents text attributes (bold, reverse, etc.).
type Attribute uint16

// Text attribute flags.
const (
	AttrNone      Attribute = 0
	AttrBold      Attribute = 1 << iota
	AttrDim                 // Faint/dim text
	AttrUnderline           // Underlined text
	AttrReverse             // Reverse video (swap fg/bg)
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Without returns a new attribute set with the given attribute removed.
func (a Attribute) Without(attr Attribute) Attribute {
	return a &^ attr
}

// String returns the attribute names joined with '|'.
func (a Attribute) String() string {
	if a == AttrNone {
		return "none"
	}
	var names []string
	for _, n := range []struct {
		attr Attribute
		name string
	}{
		{AttrBold, "bold"},
		{AttrDim, "dim"},
		{AttrUnderline, "underline"},
		{AttrReverse, "reverse"},
	} {
		if a.Has(n.attr) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}

// Style is the visual style of a cell. Colors are left to the terminal.
type Style struct {
	Attributes Attribute
}

// DefaultStyle returns the terminal's default style.
func DefaultStyle() Style {
	return Style{}
}

// Bold returns the style with bold added.
func (s Style) Bold() Style {
	s.Attributes = s.Attributes.With(AttrBold)
	return s
}

// Reverse returns the style with reverse video added.
func (s Style) Reverse() Style {
	s.Attributes = s.Attributes.With(AttrReverse)
	return s
}

// IsDefault returns true if no attribute is set.
func (s Style) IsDefault() bool {
	return s.Attributes == AttrNone
}

// Cell represents a single terminal cell.
type Cell struct {
	// Rune is the character to display.
	Rune rune

	// Width is the display width of this cell.
	Width int

	// Style is the visual style for this cell.
	Style Style
}

// EmptyCell returns an empty cell with default style.
func EmptyCell() Cell {
	return Cell{
		Rune:  ' ',
		Width: 1,
		Style: DefaultStyle(),
	}
}

// NewStyledCell creates a cell with the given rune and style.
func NewStyledCell(r rune, style Style) Cell {
	return Cell{
		Rune:  r,
		Width: RuneWidth(r),
		Style: style,
	}
}

// IsContinuation returns true if this is the trailing half of a wide rune.
func (c Cell) IsContinuation() bool {
	return c.Width == 0 && c.Rune == 0
}

// ContinuationCell returns a continuation cell for wide characters.
func ContinuationCell() Cell {
	return Cell{
		Rune:  0,
		Width: 0,
		Style: DefaultStyle(),
	}
}

// RuneWidth returns the display width of a rune.
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// StringWidth returns the display width of s.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// CellsFromString creates cells from a string. Wide runes are followed by a
// continuation cell and zero-width runes are dropped.
func CellsFromString(s string, style Style) []Cell {
	cells := make([]Cell, 0, len(s))
	for _, r := range s {
		width := RuneWidth(r)
		if width == 0 {
			continue
		}
		cells = append(cells, Cell{
			Rune:  r,
			Width: width,
			Style: style,
		})
		if width == 2 {
			cells = append(cells, ContinuationCell())
		}
	}
	return cells
}

// StringFromCells converts cells back to a string.
func StringFromCells(cells []Cell) string {
	var sb strings.Builder
	for _, c := range cells {
		if !c.IsContinuation() && c.Rune != 0 {
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}

// ScreenPos represents a position on screen (0-indexed).
type ScreenPos struct {
	Row int
	Col int
}

// String returns a string representation of the position.
func (p ScreenPos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
