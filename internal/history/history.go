// Package history keeps the undo history of one editing session.
//
// The history is linear and holds whole snapshots. Record is called with the
// state being replaced, right before a new state is committed. Recording
// after an undo discards every entry past the current position; there is no
// redo.
//
// CanUndo requires currentIndex > 0, so the first recorded state can never be
// restored: a session's first edit is not undoable. This is the established
// behavior of the planner and is kept as is.
package history

import "github.com/saulo-duarte/rpm-planner/internal/planning"

// MaxHistory bounds the number of retained snapshots.
const MaxHistory = 50

type History struct {
	entries      []planning.Snapshot
	currentIndex int
}

func New() *History {
	return &History{currentIndex: -1}
}

// Record appends previous after dropping any entries beyond the current
// position, keeping at most MaxHistory snapshots.
func (h *History) Record(previous planning.Snapshot) {
	entries := append(h.entries[:h.currentIndex+1:h.currentIndex+1], previous.Clone())
	if len(entries) > MaxHistory {
		entries = entries[len(entries)-MaxHistory:]
	}
	h.entries = entries
	h.currentIndex = len(entries) - 1
}

func (h *History) CanUndo() bool {
	return h.currentIndex > 0
}

// Undo steps back one entry and returns it. ok is false when there is
// nothing to undo, in which case the history is unchanged.
func (h *History) Undo() (snap planning.Snapshot, ok bool) {
	if !h.CanUndo() {
		return planning.Snapshot{}, false
	}
	h.currentIndex--
	return h.entries[h.currentIndex].Clone(), true
}

// Len returns the number of retained entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Reset empties the history, as when a new session starts.
func (h *History) Reset() {
	h.entries = nil
	h.currentIndex = -1
}
