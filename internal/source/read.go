package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// StdinPath is the path used in errors for data read from standard input.
const StdinPath = "<stdin>"

// Read parses all records from r. path is used for error messages only.
func Read(r io.Reader, path string, opts Options) ([][]string, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	// encoding/csv only splits records on line breaks, so a custom
	// terminator trades places with '\n' on the way in and back again in
	// each field.
	var restore func(rune) rune
	if opts.Terminator != 0 {
		restore = swap(opts.Terminator, '\n')
		r = transform.NewReader(r, runes.Map(restore))
	}

	cr := csv.NewReader(r)
	cr.Comma = opts.Separator
	cr.Comment = opts.Comment
	cr.LazyQuotes = opts.LazyQuotes
	cr.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, wrapParseError(path, err)
		}
		if restore != nil {
			for i := range record {
				record[i] = strings.Map(restore, record[i])
			}
		}
		if trimRecord(opts, len(rows)) {
			for i := range record {
				record[i] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, record)
	}
	return rows, nil
}

// ReadFile opens and parses the file at path. "-" reads standard input.
func ReadFile(path string, opts Options) ([][]string, error) {
	if path == "-" {
		return Read(os.Stdin, StdinPath, opts)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return Read(f, path, opts)
}

// swap returns a mapping that exchanges a and b.
func swap(a, b rune) func(rune) rune {
	return func(r rune) rune {
		switch r {
		case a:
			return b
		case b:
			return a
		}
		return r
	}
}

// trimRecord reports whether record n is trimmed under opts.
func trimRecord(opts Options, n int) bool {
	header := n < opts.HeaderRows
	switch opts.Trim {
	case TrimAll:
		return true
	case TrimHeaders:
		return header
	case TrimFields:
		return !header
	default:
		return false
	}
}

func wrapParseError(path string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &ParseError{Path: path, Line: pe.Line, Err: pe.Err}
	}
	return &ParseError{Path: path, Err: err}
}
