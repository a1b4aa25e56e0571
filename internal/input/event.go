package input

import "fmt"

// Kind identifies the type of an input event.
type Kind int

const (
	// KindRune is a character key; the Rune field holds the character.
	KindRune Kind = iota
	KindEscape
	KindEnter
	KindBackspace
	KindResize
	KindMouse
	// KindOther is any named key without a transition of its own.
	KindOther
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindRune:
		return "Rune"
	case KindEscape:
		return "Escape"
	case KindEnter:
		return "Enter"
	case KindBackspace:
		return "Backspace"
	case KindResize:
		return "Resize"
	case KindMouse:
		return "Mouse"
	case KindOther:
		return "Other"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Event is a single input event.
type Event struct {
	Kind Kind
	Rune rune
	// Name describes a KindOther key for status messages, e.g. "Up".
	Name string
}

// Rune returns a character event. Control characters that double as named
// keys are mapped to those keys.
func Rune(r rune) Event {
	switch r {
	case '\r', '\n':
		return Event{Kind: KindEnter}
	case 0x1b:
		return Event{Kind: KindEscape}
	case '\b', 0x7f:
		return Event{Kind: KindBackspace}
	}
	return Event{Kind: KindRune, Rune: r}
}

// Key returns a named-key event.
func Key(kind Kind) Event {
	return Event{Kind: kind}
}

// Named returns a KindOther event carrying a key name.
func Named(name string) Event {
	return Event{Kind: KindOther, Name: name}
}

// Runes converts text into one event per character.
func Runes(s string) []Event {
	events := make([]Event, 0, len(s))
	for _, r := range s {
		events = append(events, Rune(r))
	}
	return events
}

// String returns the text used in "received <input>" messages.
func (e Event) String() string {
	switch e.Kind {
	case KindRune:
		return string(e.Rune)
	case KindOther:
		if e.Name != "" {
			return e.Name
		}
	}
	return e.Kind.String()
}
