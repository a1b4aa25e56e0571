// Package backend provides the terminal surface used by the renderer.
package backend

import (
	"fmt"

	"github.com/dshills/greg/internal/renderer/core"
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	// EventInterrupt carries a value posted from outside the input stream,
	// such as a file watcher notice or a quit request.
	EventInterrupt
)

// Event is one item from the terminal input stream.
type Event struct {
	Type EventType

	// Key events; Rune is set when Key is KeyRune.
	Key  Key
	Rune rune

	// Resize events
	Width, Height int

	// Interrupt payload
	Data any
}

// Key represents a keyboard key.
type Key int

// Key constants for special keys.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
)

var keyNames = map[Key]string{
	KeyNone:      "None",
	KeyRune:      "Rune",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyInsert:    "Insert",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PgUp",
	KeyPageDown:  "PgDn",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyCtrlC:     "Ctrl-C",
}

// String returns the key name.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// Backend is the surface the renderer draws on and the application reads
// input from.
type Backend interface {
	// Init takes over the terminal and turns on mouse button reporting.
	// Must be called before any other methods.
	Init() error

	// Shutdown restores the terminal.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetCell sets a single cell. Positions outside the terminal are
	// ignored.
	SetCell(x, y int, cell core.Cell)

	Clear()

	// Show flushes pending changes to the display.
	Show()

	// Sync resizes internal state to the terminal and redraws everything.
	Sync()

	ShowCursor(x, y int)
	HideCursor()

	// PollEvent blocks until the next event.
	PollEvent() Event

	// PostInterrupt queues an EventInterrupt carrying data. It is safe to
	// call from any goroutine.
	PostInterrupt(data any) error
}

// NullBackend is an in-memory backend for testing.
type NullBackend struct {
	width, height int
	cells         [][]core.Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	shows         int
	syncs         int
	mouse         bool
	events        chan Event
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 100),
	}
}

func (b *NullBackend) Init() error {
	b.allocate()
	b.mouse = true
	return nil
}

func (b *NullBackend) allocate() {
	b.cells = make([][]core.Cell, b.height)
	for i := range b.cells {
		b.cells[i] = make([]core.Cell, b.width)
		for j := range b.cells[i] {
			b.cells[i][j] = core.EmptyCell()
		}
	}
}

func (b *NullBackend) Shutdown() {}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
	}
}

// GetCell returns the cell at x, y, or an empty cell outside the surface.
func (b *NullBackend) GetCell(x, y int) core.Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

func (b *NullBackend) Clear() {
	empty := core.EmptyCell()
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = empty
		}
	}
}

func (b *NullBackend) Show() { b.shows++ }

func (b *NullBackend) Sync() { b.syncs++ }

func (b *NullBackend) ShowCursor(x, y int) {
	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

func (b *NullBackend) HideCursor() {
	b.cursorVisible = false
}

func (b *NullBackend) PollEvent() Event {
	return <-b.events
}

// PostEvent queues any event, so tests can script keys and mouse clicks.
func (b *NullBackend) PostEvent(event Event) error {
	select {
	case b.events <- event:
		return nil
	default:
		return ErrEventQueueFull
	}
}

func (b *NullBackend) PostInterrupt(data any) error {
	return b.PostEvent(Event{Type: EventInterrupt, Data: data})
}

// MouseEnabled reports whether Init has turned on mouse reporting.
func (b *NullBackend) MouseEnabled() bool {
	return b.mouse
}

// CursorPosition returns the current cursor position for testing.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

// ShowCount returns how many frames were flushed.
func (b *NullBackend) ShowCount() int {
	return b.shows
}

// SyncCount returns how many times Sync was called.
func (b *NullBackend) SyncCount() int {
	return b.syncs
}

// Resize simulates a terminal resize and queues the resize event.
func (b *NullBackend) Resize(width, height int) {
	b.width = width
	b.height = height
	b.allocate()
	_ = b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}

// Row returns the text of screen row y with continuation cells removed.
func (b *NullBackend) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	return core.StringFromCells(b.cells[y])
}

// Lines returns every screen row as text.
func (b *NullBackend) Lines() []string {
	lines := make([]string, b.height)
	for y := range lines {
		lines[y] = b.Row(y)
	}
	return lines
}
