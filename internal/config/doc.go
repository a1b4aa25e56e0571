// Package config assembles greg's settings.
//
// Values are resolved in four layers, each overriding the one before:
//
//	┌──────────────────────────┐
//	│  4. Command-line flags   │  ← applied by cmd/greg
//	├──────────────────────────┤
//	│  3. GREG_* environment   │
//	├──────────────────────────┤
//	│  2. Config file          │  ← config.toml or config.yaml
//	├──────────────────────────┤
//	│  1. Built-in defaults    │
//	└──────────────────────────┘
//
// The file format is chosen by extension. A missing file at the default
// location is not an error; a missing file named with --config is.
//
// Single-character options (separator, comment, quote) accept either the
// character itself or a three-letter name such as "tab", "com" or "pip".
// See ParseDelimiter.
package config
