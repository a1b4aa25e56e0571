package config

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/dshills/greg/internal/source"
)

// MemFS is an in-memory file system for testing.
type MemFS struct {
	files map[string][]byte
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(path string, content string) {
	m.files[path] = []byte(content)
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func env(vars map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	s := cfg.Settings()
	if s.ColumnWidthMin != 5 || s.ColumnWidthMax != 40 || s.HeaderRows != 0 {
		t.Errorf("Settings() = %+v", s)
	}

	opts, err := cfg.SourceOptions()
	if err != nil {
		t.Fatalf("SourceOptions: %v", err)
	}
	if opts.Separator != ',' || opts.Comment != 0 || opts.Trim != source.TrimNone {
		t.Errorf("SourceOptions() = %+v", opts)
	}
}

func TestLoadTOML(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/etc/greg.toml", `
script = "init.lua"

[editor]
column_width_min = 3
column_width_max = 20
header_row_count = 1

[source]
separator = "tab"
comment = "hsh"
terminator = "rs"
trim = "hf"
lazy_quotes = true

[log]
level = "debug"
`)

	cfg, err := NewLoaderWithFS(memfs, nil).Load("/etc/greg.toml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if cfg.File != "/etc/greg.toml" {
		t.Errorf("File = %q", cfg.File)
	}
	if cfg.Script != "init.lua" {
		t.Errorf("Script = %q", cfg.Script)
	}
	if cfg.Editor.ColumnWidthMin != 3 || cfg.Editor.ColumnWidthMax != 20 || cfg.Editor.HeaderRows != 1 {
		t.Errorf("Editor = %+v", cfg.Editor)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}

	opts, err := cfg.SourceOptions()
	if err != nil {
		t.Fatalf("SourceOptions: %v", err)
	}
	want := source.Options{Separator: '\t', Comment: '#', Trim: source.TrimAll, LazyQuotes: true, HeaderRows: 1, Terminator: 0x1e}
	if opts != want {
		t.Errorf("SourceOptions() = %+v, want %+v", opts, want)
	}
}

func TestLoadYAML(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/c/config.yaml", `
editor:
  column_width_max: 12
source:
  separator: ";"
`)

	cfg, err := NewLoaderWithFS(memfs, nil).Load("/c/config.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Editor.ColumnWidthMax != 12 {
		t.Errorf("ColumnWidthMax = %d, want 12", cfg.Editor.ColumnWidthMax)
	}
	if cfg.Editor.ColumnWidthMin != 5 {
		t.Errorf("ColumnWidthMin = %d, want default 5", cfg.Editor.ColumnWidthMin)
	}
	if cfg.Source.Separator != ";" {
		t.Errorf("Separator = %q", cfg.Source.Separator)
	}
}

func TestLoadEmptyYAML(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/c/config.yml", "")

	cfg, err := NewLoaderWithFS(memfs, nil).Load("/c/config.yml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Editor.ColumnWidthMax != 40 {
		t.Errorf("ColumnWidthMax = %d, want 40", cfg.Editor.ColumnWidthMax)
	}
}

func TestLoadDefaultPaths(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/xdg/greg/config.yaml", "editor:\n  header_row_count: 2\n")

	l := NewLoaderWithFS(memfs, env(map[string]string{"XDG_CONFIG_HOME": "/xdg"}))
	cfg, err := l.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Editor.HeaderRows != 2 {
		t.Errorf("HeaderRows = %d, want 2", cfg.Editor.HeaderRows)
	}
	if cfg.File != "/xdg/greg/config.yaml" {
		t.Errorf("File = %q", cfg.File)
	}
}

func TestLoadDefaultPathsMissing(t *testing.T) {
	l := NewLoaderWithFS(NewMemFS(), env(map[string]string{"HOME": "/home/u"}))
	cfg, err := l.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.File != "" {
		t.Errorf("File = %q, want empty", cfg.File)
	}

	paths := l.DefaultPaths()
	if len(paths) == 0 || paths[0] != "/home/u/.config/greg/config.toml" {
		t.Errorf("DefaultPaths() = %v", paths)
	}
}

func TestLoadExplicitMissing(t *testing.T) {
	_, err := NewLoaderWithFS(NewMemFS(), nil).Load("/nope.toml")
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("err = %v, want ErrFileNotFound", err)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
		check   func(error) bool
	}{
		{
			name:    "toml syntax",
			path:    "/c.toml",
			content: "[editor\ncolumn_width_min = 1\n",
			check: func(err error) bool {
				var pe *ParseError
				return errors.As(err, &pe) && pe.Line > 0
			},
		},
		{
			name:    "toml unknown key",
			path:    "/c.toml",
			content: "[editor]\ncolumn_wdith_min = 1\n",
			check: func(err error) bool {
				var pe *ParseError
				return errors.As(err, &pe)
			},
		},
		{
			name:    "yaml unknown key",
			path:    "/c.yaml",
			content: "editor:\n  colour: red\n",
			check: func(err error) bool {
				var pe *ParseError
				return errors.As(err, &pe)
			},
		},
		{
			name:    "unsupported extension",
			path:    "/c.ini",
			content: "x=1",
			check: func(err error) bool {
				return errors.Is(err, ErrUnsupportedFormat)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			memfs := NewMemFS()
			memfs.AddFile(tt.path, tt.content)
			_, err := NewLoaderWithFS(memfs, nil).Load(tt.path)
			if err == nil || !tt.check(err) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := ApplyEnv(cfg, env(map[string]string{
		EnvColumnWidthMin: "2",
		EnvColumnWidthMax: " 9 ",
		EnvHeaders:        "1",
		EnvSeparator:      "pip",
		EnvLogLevel:       "warn",
	}))
	if err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}

	if cfg.Editor.ColumnWidthMin != 2 || cfg.Editor.ColumnWidthMax != 9 || cfg.Editor.HeaderRows != 1 {
		t.Errorf("Editor = %+v", cfg.Editor)
	}
	if cfg.Source.Separator != "pip" || cfg.Log.Level != "warn" {
		t.Errorf("Source.Separator = %q, Log.Level = %q", cfg.Source.Separator, cfg.Log.Level)
	}

	opts, err := cfg.SourceOptions()
	if err != nil {
		t.Fatalf("SourceOptions: %v", err)
	}
	if opts.Separator != '|' {
		t.Errorf("Separator = %q, want |", opts.Separator)
	}
}

func TestApplyEnvOverridesFile(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/c.toml", "[editor]\ncolumn_width_max = 10\n")

	cfg, err := NewLoaderWithFS(memfs, env(map[string]string{EnvColumnWidthMax: "30"})).Load("/c.toml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Editor.ColumnWidthMax != 30 {
		t.Errorf("ColumnWidthMax = %d, want 30", cfg.Editor.ColumnWidthMax)
	}
}

func TestApplyEnvBadInt(t *testing.T) {
	err := ApplyEnv(Default(), env(map[string]string{EnvHeaders: "two"}))
	if !errors.Is(err, ErrInvalidSetting) {
		t.Errorf("err = %v, want ErrInvalidSetting", err)
	}
}

func TestSourceOptionsTerminator(t *testing.T) {
	tests := []struct {
		in   string
		want rune
	}{
		{"", 0},
		{"lf", 0},
		{"sem", ';'},
		{"rs", 0x1e},
		{"|", '|'},
	}
	for _, tt := range tests {
		cfg := Default()
		cfg.Source.Terminator = tt.in
		opts, err := cfg.SourceOptions()
		if err != nil {
			t.Fatalf("terminator %q: %v", tt.in, err)
		}
		if opts.Terminator != tt.want {
			t.Errorf("terminator %q = %q, want %q", tt.in, opts.Terminator, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"min zero", func(c *Config) { c.Editor.ColumnWidthMin = 0 }, "editor.column_width_min"},
		{"max below min", func(c *Config) { c.Editor.ColumnWidthMax = 4 }, "editor.column_width_max"},
		{"negative headers", func(c *Config) { c.Editor.HeaderRows = -1 }, "editor.header_row_count"},
		{"bad separator", func(c *Config) { c.Source.Separator = "xyz" }, "source.separator"},
		{"empty separator", func(c *Config) { c.Source.Separator = "" }, "source.separator"},
		{"bad comment", func(c *Config) { c.Source.Comment = "##" }, "source.comment"},
		{"custom quote", func(c *Config) { c.Source.Quote = "squ" }, "source.quote"},
		{"bad trim", func(c *Config) { c.Source.Trim = "middle" }, "source.trim"},
		{"bad terminator", func(c *Config) { c.Source.Terminator = "eol" }, "source.terminator"},
		{"terminator equals separator", func(c *Config) { c.Source.Terminator = "," }, "source"},
		{"quote separator", func(c *Config) { c.Source.Separator = "quo" }, "source"},
		{"comment equals separator", func(c *Config) { c.Source.Comment = "com" }, "source"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidSetting) {
				t.Fatalf("err = %v, want ErrInvalidSetting", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if ve.Field != tt.field {
				t.Errorf("Field = %q, want %q", ve.Field, tt.field)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Editor.ColumnWidthMin = 0
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "column_width_min") || !strings.Contains(msg, "log.level") {
		t.Errorf("Error() = %q, want both fields", msg)
	}
}
