// Package source reads delimited text into rows of fields and watches the
// file it came from.
//
// Records may be ragged; the matrix constructor pads them. Parse failures
// are reported as *ParseError with the file and line, and are fatal at
// startup.
package source
