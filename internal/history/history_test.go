package history_test

import (
	"fmt"
	"testing"

	"github.com/saulo-duarte/rpm-planner/internal/history"
	"github.com/saulo-duarte/rpm-planner/internal/planning"
)

func snap(label string) planning.Snapshot {
	s := planning.Empty("2024-01-01")
	s.CaptureItems = append(s.CaptureItems, planning.Item{ID: label, Text: label})
	return s
}

func label(s planning.Snapshot) string {
	if len(s.CaptureItems) == 0 {
		return ""
	}
	return s.CaptureItems[0].ID
}

func TestEmptyHistory(t *testing.T) {
	h := history.New()
	if h.CanUndo() {
		t.Error("empty history should not be undoable")
	}
	if _, ok := h.Undo(); ok {
		t.Error("Undo on empty history should report nothing")
	}
}

func TestFirstRecordIsNotUndoable(t *testing.T) {
	h := history.New()
	h.Record(snap("A"))

	if h.CanUndo() {
		t.Error("CanUndo should be false after a single record")
	}
	if _, ok := h.Undo(); ok {
		t.Error("Undo should be a no-op after a single record")
	}
}

func TestUndoRestoresPreviousRecord(t *testing.T) {
	h := history.New()
	h.Record(snap("A"))
	h.Record(snap("B"))

	if !h.CanUndo() {
		t.Fatal("CanUndo should be true after two records")
	}

	got, ok := h.Undo()
	if !ok {
		t.Fatal("Undo should succeed")
	}
	if label(got) != "A" {
		t.Errorf("expected A, got %q", label(got))
	}

	if _, ok := h.Undo(); ok {
		t.Error("second Undo should be a no-op")
	}
	if h.CanUndo() {
		t.Error("CanUndo should be false at the first entry")
	}
	if h.Len() != 2 {
		t.Errorf("undo must not drop entries, got len %d", h.Len())
	}
}

func TestRecordAfterUndoDiscardsBranch(t *testing.T) {
	h := history.New()
	h.Record(snap("A"))
	h.Record(snap("B"))
	h.Record(snap("C"))

	if got, _ := h.Undo(); label(got) != "B" {
		t.Fatalf("expected B, got %q", label(got))
	}

	h.Record(snap("D"))
	if h.Len() != 3 {
		t.Fatalf("expected [A B D], got len %d", h.Len())
	}

	if got, _ := h.Undo(); label(got) != "B" {
		t.Errorf("expected B after branch discard, got %q", label(got))
	}
	if got, _ := h.Undo(); label(got) != "A" {
		t.Errorf("expected A, got %q", label(got))
	}
}

func TestHistoryBound(t *testing.T) {
	h := history.New()
	for i := 0; i < 60; i++ {
		h.Record(snap(fmt.Sprintf("s%02d", i)))
	}

	if h.Len() != history.MaxHistory {
		t.Fatalf("expected %d retained entries, got %d", history.MaxHistory, h.Len())
	}

	var seen []string
	for {
		got, ok := h.Undo()
		if !ok {
			break
		}
		seen = append(seen, label(got))
	}

	if len(seen) != history.MaxHistory-1 {
		t.Fatalf("expected %d undo steps, got %d", history.MaxHistory-1, len(seen))
	}
	if last := seen[len(seen)-1]; last != "s10" {
		t.Errorf("oldest reachable entry should be s10, got %s", last)
	}
	for _, l := range seen {
		var n int
		fmt.Sscanf(l, "s%d", &n)
		if n < 10 {
			t.Errorf("entry %s should have been dropped", l)
		}
	}
}

func TestRecordCopiesSnapshot(t *testing.T) {
	h := history.New()
	a := snap("A")
	h.Record(a)
	h.Record(snap("B"))

	a.CaptureItems[0].Text = "mutated"

	got, _ := h.Undo()
	if got.CaptureItems[0].Text != "A" {
		t.Errorf("history entry changed through caller's slice: %q", got.CaptureItems[0].Text)
	}
}
