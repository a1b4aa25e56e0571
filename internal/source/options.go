package source

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Trim selects which records have surrounding whitespace removed from their
// fields.
type Trim int

const (
	TrimNone Trim = iota
	// TrimHeaders trims only the header records.
	TrimHeaders
	// TrimFields trims only the records below the headers.
	TrimFields
	// TrimAll trims every record.
	TrimAll
)

// String returns the canonical policy name.
func (t Trim) String() string {
	switch t {
	case TrimNone:
		return "none"
	case TrimHeaders:
		return "headers"
	case TrimFields:
		return "fields"
	case TrimAll:
		return "all"
	default:
		return fmt.Sprintf("Trim(%d)", int(t))
	}
}

// ParseTrim parses a policy name. Short forms h, f, hf, fh and both are
// accepted; the empty string means none.
func ParseTrim(s string) (Trim, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return TrimNone, nil
	case "headers", "h":
		return TrimHeaders, nil
	case "fields", "f":
		return TrimFields, nil
	case "all", "both", "hf", "fh":
		return TrimAll, nil
	}
	return TrimNone, fmt.Errorf("%w: %q", ErrInvalidTrim, s)
}

// Options configures Read.
type Options struct {
	// Separator is the field delimiter.
	Separator rune
	// Comment starts a comment line when it is the first character. Zero
	// disables comments.
	Comment rune
	// Trim selects records whose fields are trimmed of whitespace.
	Trim Trim
	// LazyQuotes allows quotes inside unquoted fields and bare quotes in
	// quoted fields.
	LazyQuotes bool
	// HeaderRows is the number of leading records treated as headers.
	HeaderRows int
	// Terminator ends a record in place of a line break. Zero keeps the
	// default of \n or \r\n. Line breaks then become ordinary field text.
	Terminator rune
}

// DefaultOptions returns comma separated parsing with no comments or trim.
func DefaultOptions() Options {
	return Options{Separator: ','}
}

// Validate reports whether the options can drive the parser.
func (o Options) Validate() error {
	if !validDelim(o.Separator) {
		return fmt.Errorf("%w: separator %q", ErrInvalidOptions, o.Separator)
	}
	if o.Comment != 0 && (!validDelim(o.Comment) || o.Comment == o.Separator) {
		return fmt.Errorf("%w: comment %q", ErrInvalidOptions, o.Comment)
	}
	if o.Terminator != 0 && (!validDelim(o.Terminator) || o.Terminator == o.Separator || o.Terminator == o.Comment) {
		return fmt.Errorf("%w: terminator %q", ErrInvalidOptions, o.Terminator)
	}
	if o.HeaderRows < 0 {
		return fmt.Errorf("%w: negative header rows %d", ErrInvalidOptions, o.HeaderRows)
	}
	return nil
}

func validDelim(r rune) bool {
	return r != 0 && r != '"' && r != '\r' && r != '\n' && utf8.ValidRune(r) && r != utf8.RuneError
}
