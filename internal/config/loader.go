package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileSystem is an abstraction for file system operations.
// This allows for easy testing with in-memory file systems.
type FileSystem interface {
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Loader resolves a Config from defaults, a file and the environment.
type Loader struct {
	fs     FileSystem
	lookup func(string) (string, bool)
}

// NewLoader creates a loader reading the OS file system and environment.
func NewLoader() *Loader {
	return &Loader{fs: OSFS{}, lookup: os.LookupEnv}
}

// NewLoaderWithFS creates a loader with a custom file system and
// environment lookup.
func NewLoaderWithFS(fsys FileSystem, lookup func(string) (string, bool)) *Loader {
	if lookup == nil {
		lookup = func(string) (string, bool) { return "", false }
	}
	return &Loader{fs: fsys, lookup: lookup}
}

// Load returns defaults overlaid with the config file and environment.
// When path is empty the default locations are tried and a missing file is
// skipped. The result is not validated; callers apply flags first.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := l.loadFile(cfg, path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
			}
			return nil, err
		}
	} else {
		for _, p := range l.DefaultPaths() {
			err := l.loadFile(cfg, p)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return nil, err
			}
			break
		}
	}

	if err := ApplyEnv(cfg, l.lookup); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPaths returns the candidate config files in search order.
func (l *Loader) DefaultPaths() []string {
	dir, ok := l.lookup("XDG_CONFIG_HOME")
	if !ok || dir == "" {
		home, ok := l.lookup("HOME")
		if !ok || home == "" {
			return nil
		}
		dir = filepath.Join(home, ".config")
	}
	base := filepath.Join(dir, "greg")
	return []string{
		filepath.Join(base, "config.toml"),
		filepath.Join(base, "config.yaml"),
		filepath.Join(base, "config.yml"),
	}
}

func (l *Loader) loadFile(cfg *Config, path string) error {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := Decode(cfg, path, data); err != nil {
		return err
	}
	cfg.File = path
	return nil
}

// Decode overlays data onto cfg. The format is chosen from the extension of
// path. Unknown keys are rejected.
func Decode(cfg *Config, path string, data []byte) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			pe := &ParseError{Path: path, Err: err}
			var de *toml.DecodeError
			if errors.As(err, &de) {
				pe.Line, pe.Column = de.Position()
			}
			return pe
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return &ParseError{Path: path, Err: err}
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return nil
}
