package layout

import (
	"fmt"

	"github.com/dshills/greg/internal/editor"
	"github.com/dshills/greg/internal/renderer/core"
)

// Reserved is the number of terminal rows kept free below the grid: a blank
// separator row and the status line.
const Reserved = 2

// Grid glyphs.
const (
	glyphV = '│'
)

// boundary holds the glyphs of one horizontal grid line.
type boundary struct {
	left, cross, right, fill rune
}

var (
	headerBoundary = boundary{'╞', '╪', '╡', '═'}
	rowBoundary    = boundary{'├', '┼', '┤', '─'}
	bottomBoundary = boundary{'└', '┴', '┘', '─'}
)

// Compute lays out st on a terminal of rows x cols cells.
func Compute(st *editor.State, rows, cols int) Frame {
	f := Frame{Rows: rows, Cols: cols}
	if rows <= 0 || cols <= 0 {
		return f
	}

	p := newPass(st, rows, cols)
	p.labels()
	p.columns()
	p.grid()
	p.statusLine()
	p.cursor()

	f.Instructions = p.out
	f.Gutter = p.gutter
	f.RowsShown = p.shown
	f.Columns = p.placed
	f.Cursor = p.cur
	f.CursorVisible = p.curVisible
	return f
}

// pass carries the intermediate values of one Compute call.
type pass struct {
	st         *editor.State
	rows, cols int

	headers  int // header rows that exist in the matrix
	dataRows int
	dataCols int

	area   int // screen rows above the reserved ones
	top    int // screen row of the first data row
	shown  int
	gutter int

	placed []Column
	vlines []int

	out        []Instruction
	cur        core.ScreenPos
	curVisible bool
}

func newPass(st *editor.State, rows, cols int) *pass {
	p := &pass{
		st:       st,
		rows:     rows,
		cols:     cols,
		dataRows: st.Rows(),
		dataCols: st.Cols(),
	}
	h := st.Settings.HeaderRows
	p.headers = min(h, p.dataRows)

	p.area = max(rows-Reserved, 0)
	p.shown = max(0, min(p.dataRows-st.View.Row, p.area/2-h))
	if h > 0 {
		p.top = h + 1
	}
	p.gutter = digits(max(p.shown+st.View.Row-1, 0))
	return p
}

// screenRow returns the content row of the i-th visible data row.
func (p *pass) screenRow(i int) int {
	return p.top + 2*i
}

// cell reads a matrix cell that the caller has already bounded.
func (p *pass) cell(row, col int) string {
	s, err := p.st.Data.Get(row, col)
	if err != nil {
		return ""
	}
	return sanitize(s)
}

// labels emits the right-aligned row number labels.
func (p *pass) labels() {
	for i := 0; i < p.shown; i++ {
		label := fmt.Sprintf("%*d", p.gutter, p.st.View.Row+i)
		p.out = append(p.out, text(p.screenRow(i), 0, label, core.AttrNone))
	}
}

// columns places matrix columns from the view column rightwards until the
// terminal is full.
func (p *pass) columns() {
	s := p.st.Settings
	x := p.gutter + 2
	p.vlines = append(p.vlines, x-2)

	for col := p.st.View.Column; col < p.dataCols && x < p.cols; col++ {
		width := s.ColumnWidthMin
		for r := 0; r < p.headers; r++ {
			width = max(width, core.StringWidth(truncate(p.cell(r, col), s.ColumnWidthMax)))
		}
		for i := 0; i < p.shown; i++ {
			width = max(width, core.StringWidth(truncate(p.cell(p.st.View.Row+i, col), s.ColumnWidthMax)))
		}

		// The right separator must fit. Only the first column may be
		// narrowed to make it fit.
		if x+width+1 >= p.cols {
			if len(p.placed) > 0 {
				break
			}
			width = p.cols - x - 2
			if width < 1 {
				break
			}
		}

		for r := 0; r < min(p.headers, p.area); r++ {
			p.out = append(p.out, text(r, x, fit(p.cell(r, col), width), core.AttrBold))
		}
		for i := 0; i < p.shown; i++ {
			row := p.st.View.Row + i
			attr := core.AttrNone
			if p.underCursor(row, col) {
				attr = core.AttrReverse
			}
			p.out = append(p.out, text(p.screenRow(i), x, fit(p.cell(row, col), width), attr))
		}

		p.placed = append(p.placed, Column{Index: col, X: x, Width: width})
		x += width + 3
		p.vlines = append(p.vlines, x-2)
	}
}

func (p *pass) underCursor(row, col int) bool {
	for _, c := range p.st.Cursors.All() {
		if c.Row == row && c.Column == col {
			return true
		}
	}
	return false
}

// grid emits the separators. Vertical lines come first so the horizontal
// boundaries drawn after them own the crossing cells.
func (p *pass) grid() {
	if len(p.placed) == 0 {
		return
	}
	// On short terminals the header rows alone may not fit above the
	// status line.
	bottom := min(p.top+2*p.shown, p.area)
	if bottom > 0 {
		for _, x := range p.vlines {
			p.out = append(p.out, vline(0, x, bottom, glyphV))
		}
	}

	if h := p.st.Settings.HeaderRows; h > 0 && h < p.area {
		p.hline(p.st.Settings.HeaderRows, headerBoundary)
	}
	for i := 0; i < p.shown; i++ {
		b := rowBoundary
		if i == p.shown-1 {
			b = bottomBoundary
		}
		p.hline(p.screenRow(i)+1, b)
	}
}

// hline draws one horizontal boundary with cross glyphs at every column
// separator.
func (p *pass) hline(row int, b boundary) {
	first, last := p.vlines[0], p.vlines[len(p.vlines)-1]
	p.out = append(p.out, Instruction{Kind: KindHLine, Row: row, Col: first, Glyph: b.fill, Length: last - first + 1})

	for i, x := range p.vlines {
		glyph := b.cross
		switch i {
		case 0:
			glyph = b.left
		case len(p.vlines) - 1:
			glyph = b.right
		}
		p.out = append(p.out, text(row, x, string(glyph), core.AttrNone))
	}
}

// statusLine emits the mode-dependent message on the left and the position
// summary on the right of the last row.
func (p *pass) statusLine() {
	st := p.st
	h := st.Settings.HeaderRows
	row := p.rows - 1

	c := st.Cursors.Primary()
	right := fmt.Sprintf("%s Mode. %d:%d/%d:%d. %d cursors.",
		st.Mode, c.Row-h, c.Column, max(p.dataRows-h, 0), p.dataCols, st.Cursors.Len())
	right = truncate(right, p.cols)
	rightCol := max(p.cols-core.StringWidth(right)-1, 0)

	left := sanitize(p.prompt())
	left = truncate(left, max(rightCol-1, 0))

	if left != "" {
		p.out = append(p.out, text(row, 0, left, core.AttrNone))
	}
	p.out = append(p.out, text(row, rightCol, right, core.AttrNone))
}

// prompt returns the left side of the status line.
func (p *pass) prompt() string {
	switch p.st.Mode {
	case editor.ModeCommand:
		return ":" + p.st.Buffer
	case editor.ModeSearch:
		return "?" + p.st.Buffer
	default:
		return p.st.Status
	}
}

// cursor places the terminal cursor on the prompt while typing a command,
// otherwise on the primary cursor's cell when it is visible.
func (p *pass) cursor() {
	st := p.st
	if st.Mode.IsPrompt() {
		p.cur = core.ScreenPos{Row: p.rows - 1, Col: min(core.StringWidth(sanitize(p.prompt())), p.cols-1)}
		p.curVisible = true
		return
	}

	c := st.Cursors.Primary()
	i := c.Row - st.View.Row
	if i < 0 || i >= p.shown {
		return
	}
	for _, col := range p.placed {
		if col.Index != c.Column {
			continue
		}
		offset := 0
		if st.Mode == editor.ModeInsert {
			offset = min(prefixWidth(p.cell(c.Row, c.Column), c.Position), col.Width)
		}
		p.cur = core.ScreenPos{Row: p.screenRow(i), Col: min(col.X+offset, p.cols-1)}
		p.curVisible = true
		return
	}
}
