package editor

// Mode identifies the modal state of a session.
type Mode int

const (
	// ModeNormal is the initial mode; hjkl move the cursors.
	ModeNormal Mode = iota
	// ModeInsert writes typed characters into the active cell.
	ModeInsert
	// ModeCommand collects an ex command after ':'.
	ModeCommand
	// ModeSearch collects a search term after '/'.
	ModeSearch
	// ModeView scrolls the viewport with hjkl.
	ModeView
)

// String returns the display name used in the status line.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeInsert:
		return "Insert"
	case ModeCommand:
		return "Command"
	case ModeSearch:
		return "Search"
	case ModeView:
		return "View"
	default:
		return "Unknown"
	}
}

// IsPrompt reports whether the mode collects text into the input buffer.
func (m Mode) IsPrompt() bool {
	return m == ModeCommand || m == ModeSearch
}
