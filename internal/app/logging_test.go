package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("LogLevel(%d).String() = %q, want %q", tt.level, got, tt.expected)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"Warn", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"unknown", LogLevelInfo},
		{"", LogLevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &buf, Prefix: "greg"})

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn %d", 1)
	logger.Error("error")

	out := buf.String()
	for _, absent := range []string{"[DEBUG]", "[INFO]"} {
		if strings.Contains(out, absent) {
			t.Errorf("expected %s to be filtered out:\n%s", absent, out)
		}
	}
	for _, want := range []string{"[WARN] greg: warn 1", "[ERROR] greg: error"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q:\n%s", want, out)
		}
	}

	if logger.Enabled(LogLevelInfo) || !logger.Enabled(LogLevelError) {
		t.Error("Enabled() disagrees with the configured level")
	}
}

func TestLogger_FieldsSorted(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf})

	logger.WithFields(map[string]any{"zeta": 1, "alpha": "a"}).
		WithComponent("loop").
		Info("tick")

	if !strings.HasSuffix(buf.String(), "tick {alpha=a, component=loop, zeta=1}\n") {
		t.Errorf("unexpected line: %q", buf.String())
	}
}

func TestLogger_DeriveDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf})
	_ = parent.WithField("key", "value")

	parent.Info("plain")
	if strings.Contains(buf.String(), "key=value") {
		t.Errorf("parent gained child field: %q", buf.String())
	}
}

func TestLogger_NilOutputDiscards(t *testing.T) {
	logger := NewLogger(LoggerConfig{Level: LogLevelDebug})
	logger.Info("nowhere")
}

func TestNullLogger(t *testing.T) {
	NullLogger.Debug("test")
	NullLogger.WithComponent("x").Error("test")
	if NullLogger.Enabled(LogLevelError) {
		t.Error("NullLogger should be disabled")
	}
}

func TestOpenLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "greg.log")

	for i := 0; i < 2; i++ {
		f, err := OpenLogFile(path)
		if err != nil {
			t.Fatalf("OpenLogFile: %v", err)
		}
		NewLogger(LoggerConfig{Level: LogLevelInfo, Output: f}).Info("line %d", i)
		if err := f.Close(); err != nil {
			t.Fatal(err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(data), "\n"); n != 2 {
		t.Errorf("got %d lines, want 2 appended lines:\n%s", n, data)
	}
}
