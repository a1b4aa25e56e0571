package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/greg/internal/editor"
	"github.com/dshills/greg/internal/source"
)

// Config holds every user-tunable setting.
type Config struct {
	Editor EditorConfig `toml:"editor" yaml:"editor"`
	Source SourceConfig `toml:"source" yaml:"source"`
	Log    LogConfig    `toml:"log" yaml:"log"`

	// Script is a Lua file loaded at startup to register user commands.
	Script string `toml:"script" yaml:"script"`

	// File is the config file that was read, if any.
	File string `toml:"-" yaml:"-"`
}

// EditorConfig configures layout and the initial view.
type EditorConfig struct {
	ColumnWidthMin int `toml:"column_width_min" yaml:"column_width_min"`
	ColumnWidthMax int `toml:"column_width_max" yaml:"column_width_max"`
	HeaderRows     int `toml:"header_row_count" yaml:"header_row_count"`
}

// SourceConfig configures the delimited-text parser. Delimiters are kept
// as written so that names like "tab" survive until validation.
type SourceConfig struct {
	Separator  string `toml:"separator" yaml:"separator"`
	Comment    string `toml:"comment" yaml:"comment"`
	Quote      string `toml:"quote" yaml:"quote"`
	Terminator string `toml:"terminator" yaml:"terminator"`
	Trim       string `toml:"trim" yaml:"trim"`
	LazyQuotes bool   `toml:"lazy_quotes" yaml:"lazy_quotes"`
}

// LogConfig configures the log sink. An empty File discards log output.
type LogConfig struct {
	File  string `toml:"file" yaml:"file"`
	Level string `toml:"level" yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	s := editor.DefaultSettings()
	return &Config{
		Editor: EditorConfig{
			ColumnWidthMin: s.ColumnWidthMin,
			ColumnWidthMax: s.ColumnWidthMax,
			HeaderRows:     s.HeaderRows,
		},
		Source: SourceConfig{
			Separator: ",",
			Quote:     `"`,
			Trim:      "none",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks every setting and returns all failures joined.
func (c *Config) Validate() error {
	var errs []error
	add := func(field string, value any, reason string) {
		errs = append(errs, &ValidationError{Field: field, Value: value, Reason: reason})
	}

	e := c.Editor
	if e.ColumnWidthMin < 1 {
		add("editor.column_width_min", e.ColumnWidthMin, "must be at least 1")
	}
	if e.ColumnWidthMax < e.ColumnWidthMin {
		add("editor.column_width_max", e.ColumnWidthMax, fmt.Sprintf("must be at least column_width_min (%d)", e.ColumnWidthMin))
	}
	if e.HeaderRows < 0 {
		add("editor.header_row_count", e.HeaderRows, "must not be negative")
	}

	if _, err := c.SourceOptions(); err != nil {
		errs = append(errs, err)
	}

	if !validLevel(c.Log.Level) {
		add("log.level", c.Log.Level, "must be one of debug, info, warn, error")
	}

	return errors.Join(errs...)
}

// Settings returns the editor settings.
func (c *Config) Settings() editor.Settings {
	return editor.Settings{
		ColumnWidthMin: c.Editor.ColumnWidthMin,
		ColumnWidthMax: c.Editor.ColumnWidthMax,
		HeaderRows:     c.Editor.HeaderRows,
	}
}

// SourceOptions converts the source section into parser options.
func (c *Config) SourceOptions() (source.Options, error) {
	s := c.Source
	opts := source.Options{
		LazyQuotes: s.LazyQuotes,
		HeaderRows: c.Editor.HeaderRows,
	}

	sep, err := ParseDelimiter(s.Separator)
	if err != nil {
		return opts, &ValidationError{Field: "source.separator", Value: s.Separator, Reason: err.Error()}
	}
	opts.Separator = sep

	if s.Comment != "" {
		com, err := ParseDelimiter(s.Comment)
		if err != nil {
			return opts, &ValidationError{Field: "source.comment", Value: s.Comment, Reason: err.Error()}
		}
		opts.Comment = com
	}

	if s.Quote != "" {
		q, err := ParseDelimiter(s.Quote)
		if err != nil {
			return opts, &ValidationError{Field: "source.quote", Value: s.Quote, Reason: err.Error()}
		}
		if q != '"' {
			return opts, &ValidationError{Field: "source.quote", Value: s.Quote, Reason: `only " is supported`}
		}
	}

	// "lf" names the default and needs no remapping.
	if s.Terminator != "" {
		term, err := ParseDelimiter(s.Terminator)
		if err != nil {
			return opts, &ValidationError{Field: "source.terminator", Value: s.Terminator, Reason: err.Error()}
		}
		if term != '\n' {
			opts.Terminator = term
		}
	}

	trim, err := source.ParseTrim(s.Trim)
	if err != nil {
		return opts, &ValidationError{Field: "source.trim", Value: s.Trim, Reason: err.Error()}
	}
	opts.Trim = trim

	if err := opts.Validate(); err != nil {
		return opts, &ValidationError{Field: "source", Value: DelimiterName(sep), Reason: err.Error()}
	}
	return opts, nil
}

func validLevel(s string) bool {
	switch strings.ToLower(s) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}
