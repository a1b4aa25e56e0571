package layout

import (
	"slices"
	"strings"
	"testing"

	"github.com/dshills/greg/internal/editor"
	"github.com/dshills/greg/internal/matrix"
	"github.com/dshills/greg/internal/renderer/core"
)

func newState(t *testing.T, rows [][]string, settings editor.Settings) *editor.State {
	t.Helper()
	st, err := editor.New(matrix.FromRows(rows), settings)
	if err != nil {
		t.Fatalf("editor.New unexpected error: %v", err)
	}
	return st
}

func narrow(headers int) editor.Settings {
	return editor.Settings{ColumnWidthMin: 3, ColumnWidthMax: 10, HeaderRows: headers}
}

// paint applies a frame to a blank character grid. Wide runes are not
// handled; tests that need them inspect Columns instead.
func paint(f Frame) []string {
	grid := make([][]rune, f.Rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", f.Cols))
	}
	put := func(row, col int, r rune) {
		if row >= 0 && row < f.Rows && col >= 0 && col < f.Cols {
			grid[row][col] = r
		}
	}
	for _, in := range f.Instructions {
		switch in.Kind {
		case KindText:
			col := in.Col
			for _, r := range in.Text {
				put(in.Row, col, r)
				col++
			}
		case KindHLine:
			for i := 0; i < in.Length; i++ {
				put(in.Row, in.Col+i, in.Glyph)
			}
		case KindVLine:
			for i := 0; i < in.Length; i++ {
				put(in.Row+i, in.Col, in.Glyph)
			}
		}
	}
	lines := make([]string, f.Rows)
	for i, row := range grid {
		lines[i] = strings.TrimRight(string(row), " ")
	}
	return lines
}

func assertLines(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(got), len(want), strings.Join(got, "\n"))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d:\n got %q\nwant %q", i, got[i], want[i])
		}
	}
}

func findText(f Frame, row, col int) (Instruction, bool) {
	for _, in := range f.Instructions {
		if in.Kind == KindText && in.Row == row && in.Col == col {
			return in, true
		}
	}
	return Instruction{}, false
}

func TestComputeNoHeaders(t *testing.T) {
	st := newState(t, [][]string{{"a", "b"}, {"c"}}, narrow(0))
	f := Compute(st, 8, 40)

	assertLines(t, paint(f), []string{
		"0│ a   │ b   │",
		" ├─────┼─────┤",
		"1│ c   │     │",
		" └─────┴─────┘",
		"",
		"",
		"",
		"       Normal Mode. 0:0/2:2. 1 cursors.",
	})

	if f.Gutter != 1 || f.RowsShown != 2 {
		t.Errorf("gutter %d rows %d, want 1 and 2", f.Gutter, f.RowsShown)
	}
	want := []Column{{Index: 0, X: 3, Width: 3}, {Index: 1, X: 9, Width: 3}}
	if !slices.Equal(f.Columns, want) {
		t.Errorf("Columns = %v, want %v", f.Columns, want)
	}
}

func TestComputeHeaders(t *testing.T) {
	rows := [][]string{{"name", "qty"}, {"apple", "3"}, {"kiwi", "12"}}
	st := newState(t, rows, narrow(1))
	f := Compute(st, 10, 40)

	assertLines(t, paint(f), []string{
		" │ name  │ qty │",
		" ╞═══════╪═════╡",
		"1│ apple │ 3   │",
		" ├───────┼─────┤",
		"2│ kiwi  │ 12  │",
		" └───────┴─────┘",
		"",
		"",
		"",
		"       Normal Mode. 0:0/2:2. 1 cursors.",
	})

	header, ok := findText(f, 0, 3)
	if !ok || !header.Attr.Has(core.AttrBold) {
		t.Errorf("header instruction = %v, want bold", header)
	}
	cell, ok := findText(f, 2, 3)
	if !ok || !cell.Attr.Has(core.AttrReverse) {
		t.Errorf("cursor cell instruction = %v, want reverse", cell)
	}
	other, _ := findText(f, 4, 3)
	if other.Attr != core.AttrNone {
		t.Errorf("plain cell attr = %v, want none", other.Attr)
	}
}

func tall(n, cols int) [][]string {
	rows := make([][]string, n)
	for i := range rows {
		rows[i] = make([]string, cols)
	}
	return rows
}

func TestRowsToShow(t *testing.T) {
	tests := []struct {
		name     string
		rows     int
		headers  int
		viewRow  int
		termRows int
		want     int
	}{
		{"limited by terminal", 100, 0, 0, 10, 4},
		{"headers take space", 100, 1, 1, 10, 3},
		{"limited by data", 3, 0, 0, 40, 3},
		{"scrolled near end", 10, 0, 8, 40, 2},
		{"tiny terminal", 10, 0, 0, 2, 0},
		{"headers exceed space", 10, 5, 5, 8, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newState(t, tall(tt.rows, 2), narrow(tt.headers))
			st.MoveView(tt.viewRow-st.View.Row, 0)
			f := Compute(st, tt.termRows, 80)
			if f.RowsShown != tt.want {
				t.Errorf("RowsShown = %d, want %d", f.RowsShown, tt.want)
			}
		})
	}
}

func TestGutterWidth(t *testing.T) {
	tests := []struct {
		viewRow int
		want    int
		labels  []string
	}{
		{0, 1, []string{"0", "1", "2", "3", "4"}},
		{5, 1, []string{"5", "6", "7", "8", "9"}},
		{6, 2, []string{" 6", " 7", " 8", " 9", "10"}},
		{96, 3, []string{" 96", " 97", " 98", " 99", "100"}},
	}
	for _, tt := range tests {
		st := newState(t, tall(200, 1), narrow(0))
		st.MoveView(tt.viewRow, 0)
		f := Compute(st, 12, 80)

		if f.Gutter != tt.want {
			t.Errorf("view %d: gutter = %d, want %d", tt.viewRow, f.Gutter, tt.want)
		}
		for i, want := range tt.labels {
			in, ok := findText(f, 2*i, 0)
			if !ok || in.Text != want {
				t.Errorf("view %d: label %d = %q, want %q", tt.viewRow, i, in.Text, want)
			}
		}
	}
}

func TestColumnsStopAtTerminalEdge(t *testing.T) {
	st := newState(t, tall(2, 10), editor.Settings{ColumnWidthMin: 5, ColumnWidthMax: 40})
	f := Compute(st, 10, 30)

	if len(f.Columns) != 3 {
		t.Fatalf("placed %d columns, want 3: %v", len(f.Columns), f.Columns)
	}
	for _, c := range f.Columns {
		if c.X+c.Width+1 >= 30 {
			t.Errorf("column %v overflows", c)
		}
	}
}

func TestFirstColumnTruncated(t *testing.T) {
	st := newState(t, [][]string{{"abcdefghijklmnop", "x"}}, editor.Settings{ColumnWidthMin: 5, ColumnWidthMax: 40})
	f := Compute(st, 6, 12)

	if len(f.Columns) != 1 {
		t.Fatalf("placed %d columns, want 1", len(f.Columns))
	}
	if f.Columns[0].Width != 7 {
		t.Errorf("width = %d, want 7", f.Columns[0].Width)
	}
	lines := paint(f)
	if lines[0] != "0│ abcdefg │" {
		t.Errorf("line 0 = %q", lines[0])
	}
}

func TestColumnWidthBounds(t *testing.T) {
	long := strings.Repeat("x", 50)
	st := newState(t, [][]string{{long, "y", "日本語"}}, editor.Settings{ColumnWidthMin: 4, ColumnWidthMax: 10})
	f := Compute(st, 6, 80)

	widths := make([]int, len(f.Columns))
	for i, c := range f.Columns {
		widths[i] = c.Width
	}
	if !slices.Equal(widths, []int{10, 4, 6}) {
		t.Errorf("widths = %v, want [10 4 6]", widths)
	}
	in, _ := findText(f, 0, f.Columns[0].X)
	if in.Text != strings.Repeat("x", 10) {
		t.Errorf("truncated text = %q", in.Text)
	}
}

func TestHeaderWidensColumn(t *testing.T) {
	st := newState(t, [][]string{{"a long header"}, {"v"}}, editor.Settings{ColumnWidthMin: 1, ColumnWidthMax: 40, HeaderRows: 1})
	f := Compute(st, 10, 80)
	if f.Columns[0].Width != 13 {
		t.Errorf("width = %d, want 13", f.Columns[0].Width)
	}
}

func TestControlCharactersSanitized(t *testing.T) {
	st := newState(t, [][]string{{"a\nb\tc"}}, narrow(0))
	f := Compute(st, 6, 40)
	in, _ := findText(f, 0, 3)
	if in.Text != "a b c" {
		t.Errorf("text = %q, want %q", in.Text, "a b c")
	}
}

func TestStatusLine(t *testing.T) {
	tests := []struct {
		name     string
		mode     editor.Mode
		buffer   string
		status   string
		wantLeft string
	}{
		{"command", editor.ModeCommand, "quit", "ignored", ":quit"},
		{"search", editor.ModeSearch, "foo", "ignored", "?foo"},
		{"normal status", editor.ModeNormal, "", "unknown command 'x'", "unknown command 'x'"},
		{"view", editor.ModeView, "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newState(t, [][]string{{"a"}}, narrow(0))
			st.SetMode(tt.mode)
			st.Buffer = tt.buffer
			st.Status = tt.status

			lines := paint(Compute(st, 5, 60))
			last := lines[4]
			if !strings.HasPrefix(last, tt.wantLeft) {
				t.Errorf("status line %q should start with %q", last, tt.wantLeft)
			}
			wantRight := tt.mode.String() + " Mode. 0:0/1:1. 1 cursors."
			if !strings.HasSuffix(last, wantRight) {
				t.Errorf("status line %q should end with %q", last, wantRight)
			}
		})
	}
}

func TestStatusLineCountsCursors(t *testing.T) {
	st := newState(t, tall(5, 3), narrow(1))
	st.MoveCursors(2, 1)
	st.Cursors.Add(editor.Cursor{Row: 1, Column: 0})
	st.Cursors.Add(editor.Cursor{Row: 1, Column: 0})

	lines := paint(Compute(st, 12, 60))
	if !strings.HasSuffix(lines[11], "Normal Mode. 2:1/4:3. 3 cursors.") {
		t.Errorf("status = %q", lines[11])
	}
}

func TestEveryCursorHighlighted(t *testing.T) {
	st := newState(t, tall(3, 3), narrow(0))
	st.Cursors.Add(editor.Cursor{Row: 2, Column: 2, Pinned: true})
	f := Compute(st, 10, 60)

	var reversed int
	for _, in := range f.Instructions {
		if in.Kind == KindText && in.Attr.Has(core.AttrReverse) {
			reversed++
		}
	}
	if reversed != 2 {
		t.Errorf("reversed cells = %d, want 2", reversed)
	}
}

func TestTerminalCursor(t *testing.T) {
	st := newState(t, [][]string{{"abc", "xyz"}, {"d", "e"}}, narrow(0))
	st.MoveCursors(1, 1)

	f := Compute(st, 8, 40)
	if !f.CursorVisible || f.Cursor != (core.ScreenPos{Row: 2, Col: 9}) {
		t.Errorf("cursor = %v visible=%v, want (2,9)", f.Cursor, f.CursorVisible)
	}

	st.SetMode(editor.ModeInsert)
	_ = st.WriteRune('Z')
	f = Compute(st, 8, 40)
	if f.Cursor != (core.ScreenPos{Row: 2, Col: 10}) {
		t.Errorf("insert cursor = %v, want (2,10)", f.Cursor)
	}

	st.SetMode(editor.ModeCommand)
	st.Buffer = "ab"
	f = Compute(st, 8, 40)
	if f.Cursor != (core.ScreenPos{Row: 7, Col: 3}) {
		t.Errorf("prompt cursor = %v, want (7,3)", f.Cursor)
	}
}

func TestCursorOffscreenHidden(t *testing.T) {
	st := newState(t, tall(50, 1), narrow(0))
	st.MoveView(30, 0)
	f := Compute(st, 10, 40)
	if f.CursorVisible {
		t.Errorf("cursor above the view should be hidden, got %v", f.Cursor)
	}
}

func TestComputeDoesNotMutate(t *testing.T) {
	rows := [][]string{{"h1", "h2"}, {"a", "b"}, {"c", "d"}}
	st := newState(t, rows, narrow(1))
	st.Cursors.Add(editor.Cursor{Row: 2, Column: 1, Pinned: true})
	st.Status = "status"

	view := st.View
	cursors := st.Cursors.All()
	elements := st.Data.Elements()
	dims := st.Data.Dimensions()

	for _, size := range [][2]int{{1, 1}, {3, 10}, {24, 80}, {100, 300}} {
		Compute(st, size[0], size[1])
	}

	if st.View != view || !slices.Equal(st.Cursors.All(), cursors) {
		t.Error("Compute changed view or cursors")
	}
	if !slices.Equal(st.Data.Elements(), elements) || !slices.Equal(st.Data.Dimensions(), dims) {
		t.Error("Compute changed the matrix")
	}
	if st.Status != "status" || st.Mode != editor.ModeNormal {
		t.Error("Compute changed status or mode")
	}
}

func TestShortTerminalKeepsGridAboveStatus(t *testing.T) {
	rows := [][]string{{"h1"}, {"h2"}, {"a"}, {"b"}}
	for termRows := 1; termRows <= 6; termRows++ {
		for _, headers := range []int{1, 2} {
			st := newState(t, rows, narrow(headers))
			f := Compute(st, termRows, 40)
			status := termRows - 1
			for _, in := range f.Instructions {
				if in.Kind == KindText && in.Row == status && (in.Col == 0 || strings.Contains(in.Text, "Mode.")) {
					continue
				}
				last := in.Row
				if in.Kind == KindVLine {
					last = in.Row + in.Length - 1
				}
				if last >= termRows-Reserved {
					t.Errorf("rows=%d headers=%d: %v reaches row %d", termRows, headers, in, last)
				}
			}
		}
	}

	// Three rows leave one for the grid: the header text, no boundary.
	st := newState(t, rows, narrow(1))
	got := paint(Compute(st, 3, 40))
	if !strings.Contains(got[0], "h1") {
		t.Errorf("row 0 = %q, want header text", got[0])
	}
	if got[1] != "" {
		t.Errorf("row 1 = %q, want blank separator", got[1])
	}
}

func TestComputeDegenerateInputs(t *testing.T) {
	tests := []struct {
		name       string
		rows       [][]string
		headers    int
		termRows   int
		termCols   int
		wantShown  int
		wantColumn bool
	}{
		{"empty matrix", nil, 0, 10, 40, 0, true},
		{"headers only", [][]string{{"h"}}, 1, 10, 40, 0, true},
		{"more headers than rows", [][]string{{"h"}}, 3, 10, 40, 0, true},
		{"zero size terminal", [][]string{{"a"}}, 0, 0, 0, 0, false},
		{"one cell terminal", [][]string{{"a"}}, 0, 1, 1, 0, false},
		{"narrow terminal", [][]string{{"abc"}}, 0, 10, 4, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newState(t, tt.rows, narrow(tt.headers))
			f := Compute(st, tt.termRows, tt.termCols)
			if f.RowsShown != tt.wantShown {
				t.Errorf("RowsShown = %d, want %d", f.RowsShown, tt.wantShown)
			}
			if (len(f.Columns) > 0) != tt.wantColumn {
				t.Errorf("Columns = %v", f.Columns)
			}
			for _, in := range f.Instructions {
				if in.Row < 0 || in.Col < 0 {
					t.Errorf("negative instruction position: %v", in)
				}
			}
		})
	}
}
