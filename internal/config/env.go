package config

import (
	"strconv"
	"strings"
)

// Environment variables read by ApplyEnv.
const (
	EnvColumnWidthMin = "GREG_COLUMN_WIDTH_MIN"
	EnvColumnWidthMax = "GREG_COLUMN_WIDTH_MAX"
	EnvHeaders        = "GREG_HEADERS"
	EnvSeparator      = "GREG_SEPARATOR"
	EnvLogLevel       = "GREG_LOG_LEVEL"
)

// ApplyEnv overlays GREG_* variables onto cfg. Empty values are treated as
// set. Integers that do not parse are reported as validation errors.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	ints := []struct {
		env   string
		field string
		dst   *int
	}{
		{EnvColumnWidthMin, "editor.column_width_min", &cfg.Editor.ColumnWidthMin},
		{EnvColumnWidthMax, "editor.column_width_max", &cfg.Editor.ColumnWidthMax},
		{EnvHeaders, "editor.header_row_count", &cfg.Editor.HeaderRows},
	}
	for _, v := range ints {
		s, ok := lookup(v.env)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return &ValidationError{Field: v.field, Value: s, Reason: v.env + " is not an integer"}
		}
		*v.dst = n
	}

	if s, ok := lookup(EnvSeparator); ok {
		cfg.Source.Separator = s
	}
	if s, ok := lookup(EnvLogLevel); ok {
		cfg.Log.Level = s
	}
	return nil
}
