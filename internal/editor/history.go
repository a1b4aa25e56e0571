package editor

import "github.com/dshills/greg/internal/matrix"

// DefaultHistorySize is the number of snapshots kept when none is configured.
const DefaultHistorySize = 100

// History is a bounded stack of full matrix snapshots.
// Each entry is an independent copy taken before a mutating command.
type History struct {
	snapshots  []*matrix.Matrix[string]
	maxEntries int
}

// NewHistory creates a history that keeps at most maxEntries snapshots.
func NewHistory(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultHistorySize
	}
	return &History{maxEntries: maxEntries}
}

// Push stores a copy of m, dropping the oldest entry when full.
func (h *History) Push(m *matrix.Matrix[string]) {
	h.snapshots = append(h.snapshots, m.Clone())

	if len(h.snapshots) > h.maxEntries {
		excess := len(h.snapshots) - h.maxEntries
		clear(h.snapshots[:excess])
		h.snapshots = h.snapshots[excess:]
	}
}

// Pop removes and returns the most recent snapshot.
func (h *History) Pop() (*matrix.Matrix[string], error) {
	if len(h.snapshots) == 0 {
		return nil, ErrNothingToUndo
	}
	last := h.snapshots[len(h.snapshots)-1]
	h.snapshots[len(h.snapshots)-1] = nil
	h.snapshots = h.snapshots[:len(h.snapshots)-1]
	return last, nil
}

// CanUndo returns true if a snapshot is available.
func (h *History) CanUndo() bool {
	return len(h.snapshots) > 0
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return len(h.snapshots)
}
