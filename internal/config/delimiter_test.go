package config

import (
	"errors"
	"testing"
)

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		in   string
		want rune
	}{
		{",", ','},
		{"|", '|'},
		{"\t", '\t'},
		{"tab", '\t'},
		{"ht", '\t'},
		{"TAB", '\t'},
		{"com", ','},
		{"sem", ';'},
		{"pip", '|'},
		{"sp", ' '},
		{"quo", '"'},
		{"squ", '\''},
		{"bsl", '\\'},
		{"us", 0x1f},
		{"rs", 0x1e},
		{"nul", 0},
		{"del", 0x7f},
		{"til", '~'},
	}

	for _, tt := range tests {
		got, err := ParseDelimiter(tt.in)
		if err != nil {
			t.Errorf("ParseDelimiter(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDelimiter(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDelimiterInvalid(t *testing.T) {
	for _, in := range []string{"", "ab", "xyz", "é", "comma"} {
		if _, err := ParseDelimiter(in); !errors.Is(err, ErrInvalidDelimiter) {
			t.Errorf("ParseDelimiter(%q) err = %v, want ErrInvalidDelimiter", in, err)
		}
	}
}

func TestDelimiterName(t *testing.T) {
	tests := []struct {
		in   rune
		want string
	}{
		{',', ","},
		{'\t', "tab"},
		{' ', "sp"},
		{0x1f, "us"},
		{0x7f, "del"},
		{'é', "U+00E9"},
	}
	for _, tt := range tests {
		if got := DelimiterName(tt.in); got != tt.want {
			t.Errorf("DelimiterName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
