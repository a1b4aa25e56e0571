package config

import (
	"fmt"
	"strings"
)

// delimiterNames maps three-letter names to the ASCII characters they stand
// for. Control characters use their ASCII mnemonics; "tab" is accepted as an
// alias for "ht".
var delimiterNames = map[string]rune{
	"nul": 0x00, "soh": 0x01, "stx": 0x02, "etx": 0x03,
	"eot": 0x04, "enq": 0x05, "ack": 0x06, "bel": 0x07,
	"bs": 0x08, "ht": 0x09, "tab": 0x09, "lf": 0x0a, "vt": 0x0b,
	"ff": 0x0c, "cr": 0x0d, "so": 0x0e, "si": 0x0f,
	"dle": 0x10, "dc1": 0x11, "dc2": 0x12, "dc3": 0x13,
	"dc4": 0x14, "nak": 0x15, "syn": 0x16, "etb": 0x17,
	"can": 0x18, "em": 0x19, "sub": 0x1a, "esc": 0x1b,
	"fs": 0x1c, "gs": 0x1d, "rs": 0x1e, "us": 0x1f,

	"sp": ' ', "exc": '!', "quo": '"', "hsh": '#', "dol": '$',
	"pct": '%', "amp": '&', "squ": '\'', "lpr": '(', "rpr": ')',
	"ast": '*', "plu": '+', "com": ',', "hyp": '-', "dot": '.',
	"sl": '/', "col": ':', "sem": ';', "lt": '<', "eq": '=',
	"gt": '>', "que": '?', "at": '@', "lbr": '[', "bsl": '\\',
	"rbr": ']', "car": '^', "und": '_', "tic": '`', "lbc": '{',
	"pip": '|', "rbc": '}', "til": '~', "del": 0x7f,
}

// ParseDelimiter returns the character named by s. s is either exactly one
// ASCII character or a name from the delimiter table, matched without
// regard to case.
func ParseDelimiter(s string) (rune, error) {
	if len(s) == 1 && s[0] < 0x80 {
		return rune(s[0]), nil
	}
	if r, ok := delimiterNames[strings.ToLower(s)]; ok {
		return r, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDelimiter, s)
}

// DelimiterName returns the table name for r, or the character itself when
// it is printable.
func DelimiterName(r rune) string {
	if r > ' ' && r < 0x7f {
		return string(r)
	}
	switch r {
	case '\t':
		return "tab"
	case ' ':
		return "sp"
	}
	for name, v := range delimiterNames {
		if v == r && name != "tab" {
			return name
		}
	}
	return fmt.Sprintf("%U", r)
}
