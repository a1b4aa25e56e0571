package layout

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// sanitize replaces control characters so a cell always occupies one
// terminal row.
func sanitize(s string) string {
	if strings.IndexFunc(s, unicode.IsControl) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
}

// truncate cuts s to at most width display columns.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "")
}

// fit truncates s to width and pads it with spaces to exactly width.
func fit(s string, width int) string {
	return runewidth.FillRight(truncate(s, width), width)
}

// prefixWidth returns the display width of the first n grapheme clusters
// of s.
func prefixWidth(s string, n int) int {
	width := 0
	g := uniseg.NewGraphemes(s)
	for i := 0; i < n && g.Next(); i++ {
		width += g.Width()
	}
	return width
}

// digits returns the number of decimal digits in n, at least 1.
func digits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}
