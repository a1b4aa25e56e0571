package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrInvalidDelimiter indicates a separator, comment or quote option that
	// is neither a single ASCII character nor a known name.
	ErrInvalidDelimiter = errors.New("invalid delimiter")

	// ErrInvalidSetting indicates a setting value outside its allowed range.
	ErrInvalidSetting = errors.New("invalid setting")

	// ErrFileNotFound indicates an explicitly named config file is missing.
	ErrFileNotFound = errors.New("config file not found")

	// ErrUnsupportedFormat indicates a config file extension with no decoder.
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

// ParseError represents an error while decoding a configuration file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Line is the line number where the error occurred (if available).
	Line int
	// Column is the column number where the error occurred (if available).
	Column int
	// Err is the underlying decoder error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %v", e.Path, e.Line, e.Column, e.Err)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError describes a setting that failed validation.
type ValidationError struct {
	// Field is the setting name, as written in the config file.
	Field string
	// Value is the rejected value.
	Value any
	// Reason describes the constraint that was violated.
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s = %v: %s", e.Field, e.Value, e.Reason)
}

// Unwrap returns ErrInvalidSetting so callers can match with errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidSetting
}
