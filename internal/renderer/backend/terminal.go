package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/greg/internal/renderer/core"
)

// Terminal implements Backend on a tcell screen.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
}

// NewTerminal creates a backend for the controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen wraps an existing screen, such as a
// tcell.SimulationScreen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Init initializes the screen and asks for button and wheel reports.
// Motion tracking stays off; every report costs a full redraw.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse(tcell.MouseButtonEvents)
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.DisableMouse()
	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	// tcell fills the trailing half of a wide rune itself.
	if cell.IsContinuation() {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, cell.Rune, nil, tcellStyle(cell.Style))
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) Sync() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Sync()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

// PollEvent skips tcell events greg has no use for, such as focus or
// paste markers, so callers only see the kinds listed in EventType.
func (t *Terminal) PollEvent() Event {
	for {
		tev := t.screen.PollEvent()
		if tev == nil {
			// Screen finalized.
			return Event{Type: EventNone}
		}
		if ev, ok := fromTcell(tev); ok {
			return ev
		}
	}
}

func (t *Terminal) PostInterrupt(data any) error {
	return t.screen.PostEvent(tcell.NewEventInterrupt(data))
}

func tcellStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault
	attrs := s.Attributes
	return style.
		Bold(attrs.Has(core.AttrBold)).
		Dim(attrs.Has(core.AttrDim)).
		Underline(attrs.Has(core.AttrUnderline)).
		Reverse(attrs.Has(core.AttrReverse))
}

func fromTcell(tev tcell.Event) (Event, bool) {
	switch e := tev.(type) {
	case *tcell.EventKey:
		if e.Key() == tcell.KeyRune {
			return Event{Type: EventKey, Key: KeyRune, Rune: e.Rune()}, true
		}
		return Event{Type: EventKey, Key: tcellKeys[e.Key()]}, true
	case *tcell.EventMouse:
		// Releases arrive with no buttons held and are not a click.
		if e.Buttons()&(tcell.ButtonPrimary|tcell.ButtonSecondary|tcell.ButtonMiddle|tcell.WheelUp|tcell.WheelDown) == 0 {
			return Event{}, false
		}
		return Event{Type: EventMouse}, true
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true
	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt, Data: e.Data()}, true
	}
	return Event{}, false
}

// tcellKeys maps the special keys greg distinguishes. Anything missing
// becomes KeyNone.
var tcellKeys = map[tcell.Key]Key{
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyInsert:     KeyInsert,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyCtrlC:      KeyCtrlC,
}
