package renderer

import (
	"sync"

	"github.com/dshills/greg/internal/editor"
	"github.com/dshills/greg/internal/renderer/backend"
	"github.com/dshills/greg/internal/renderer/core"
	"github.com/dshills/greg/internal/renderer/layout"
)

// Renderer draws full frames onto a backend.
// Every frame is recomputed from scratch; there is no dirty tracking.
type Renderer struct {
	mu sync.Mutex

	backend backend.Backend
	last    layout.Frame
	frames  int
}

// New creates a renderer for the given backend.
func New(b backend.Backend) *Renderer {
	return &Renderer{backend: b}
}

// Render lays out st at the current terminal size, draws it and flushes.
func (r *Renderer) Render(st *editor.State) layout.Frame {
	width, height := r.backend.Size()
	frame := layout.Compute(st, height, width)
	r.Draw(frame)
	return frame
}

// Resize resynchronizes the backend after a terminal size change.
func (r *Renderer) Resize() {
	r.backend.Sync()
}

// Draw erases the screen, applies every instruction and flushes.
func (r *Renderer) Draw(frame layout.Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.backend.Clear()
	for _, in := range frame.Instructions {
		r.apply(in, frame.Cols, frame.Rows)
	}

	if frame.CursorVisible {
		r.backend.ShowCursor(frame.Cursor.Col, frame.Cursor.Row)
	} else {
		r.backend.HideCursor()
	}
	r.backend.Show()

	r.last = frame
	r.frames++
}

// apply draws a single instruction clipped to the screen.
func (r *Renderer) apply(in layout.Instruction, width, height int) {
	style := core.Style{Attributes: in.Attr}

	switch in.Kind {
	case layout.KindText:
		x := in.Col
		for _, cell := range core.CellsFromString(in.Text, style) {
			if x >= width {
				break
			}
			r.backend.SetCell(x, in.Row, cell)
			x++
		}

	case layout.KindHLine:
		cell := core.NewStyledCell(in.Glyph, style)
		for i := 0; i < in.Length && in.Col+i < width; i++ {
			r.backend.SetCell(in.Col+i, in.Row, cell)
		}

	case layout.KindVLine:
		cell := core.NewStyledCell(in.Glyph, style)
		for i := 0; i < in.Length && in.Row+i < height; i++ {
			r.backend.SetCell(in.Col, in.Row+i, cell)
		}
	}
}

// LastFrame returns the most recently drawn frame.
func (r *Renderer) LastFrame() layout.Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

// FrameCount returns the number of frames drawn.
func (r *Renderer) FrameCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}
