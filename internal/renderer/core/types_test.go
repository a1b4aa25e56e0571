package core

import (
	"testing"
)

func TestAttributeFlags(t *testing.T) {
	a := AttrNone.With(AttrBold).With(AttrReverse)

	if !a.Has(AttrBold) || !a.Has(AttrReverse) {
		t.Errorf("expected bold and reverse in %v", a)
	}
	if a.Has(AttrDim) {
		t.Error("dim should not be set")
	}
	a = a.Without(AttrBold)
	if a.Has(AttrBold) {
		t.Error("bold should be removed")
	}
	if got := a.String(); got != "reverse" {
		t.Errorf("String() = %q, want %q", got, "reverse")
	}
	if got := AttrNone.String(); got != "none" {
		t.Errorf("AttrNone.String() = %q", got)
	}
}

func TestStyleBuilders(t *testing.T) {
	s := DefaultStyle()
	if !s.IsDefault() {
		t.Error("DefaultStyle should be default")
	}
	s = s.Bold().Reverse()
	if !s.Attributes.Has(AttrBold) || !s.Attributes.Has(AttrReverse) {
		t.Errorf("attributes = %v", s.Attributes)
	}
}

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{' ', 1},
		{'日', 2},
		{'한', 2},
		{'́', 0},
		{0, 0},
	}
	for _, tt := range tests {
		if got := RuneWidth(tt.r); got != tt.want {
			t.Errorf("RuneWidth(%U) = %d, want %d", tt.r, got, tt.want)
		}
	}
	if got := StringWidth("ab日"); got != 4 {
		t.Errorf("StringWidth = %d, want 4", got)
	}
}

func TestCellsFromString(t *testing.T) {
	style := DefaultStyle().Bold()
	cells := CellsFromString("a日b", style)

	if len(cells) != 4 {
		t.Fatalf("expected 4 cells, got %d", len(cells))
	}
	if cells[0].Rune != 'a' || cells[1].Rune != '日' || cells[3].Rune != 'b' {
		t.Errorf("unexpected runes: %v", cells)
	}
	if !cells[2].IsContinuation() {
		t.Error("expected continuation after wide rune")
	}
	if !cells[0].Style.Attributes.Has(AttrBold) {
		t.Error("style not applied")
	}
	if got := StringFromCells(cells); got != "a日b" {
		t.Errorf("StringFromCells = %q", got)
	}
}

func TestEmptyCell(t *testing.T) {
	c := EmptyCell()
	if c.Rune != ' ' || c.Width != 1 || !c.Style.IsDefault() {
		t.Errorf("unexpected empty cell %+v", c)
	}
	if c.IsContinuation() {
		t.Error("empty cell is not a continuation")
	}
	if !ContinuationCell().IsContinuation() {
		t.Error("ContinuationCell should be a continuation")
	}
}

func TestScreenPosString(t *testing.T) {
	if got := (ScreenPos{Row: 2, Col: 5}).String(); got != "(2,5)" {
		t.Errorf("String() = %q", got)
	}
}
