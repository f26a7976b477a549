package planner_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/saulo-duarte/rpm-planner/internal/datestore"
	"github.com/saulo-duarte/rpm-planner/internal/planner"
	"github.com/saulo-duarte/rpm-planner/internal/planning"
	"github.com/saulo-duarte/rpm-planner/internal/registry"
	"github.com/saulo-duarte/rpm-planner/internal/storage"
)

var now = time.Date(2024, 6, 10, 14, 30, 0, 0, time.UTC)

type fixture struct {
	planner  *planner.Planner
	store    *datestore.Store
	registry *registry.Registry
	kv       *failingKV
}

// failingKV rejects writes while fail is set.
type failingKV struct {
	storage.KV
	fail bool
}

var errDiskFull = errors.New("disk full")

func (f *failingKV) Write(key string, val []byte) error {
	if f.fail {
		return errDiskFull
	}
	return f.KV.Write(key, val)
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	kv := &failingKV{KV: storage.Open(t.TempDir())}
	store := datestore.New(kv)
	reg := registry.New(kv, registry.WithClock(func() time.Time { return now }))

	n := 0
	p, err := planner.New(store, reg,
		planner.WithLocation(time.UTC),
		planner.WithClock(func() time.Time { return now }),
		planner.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
	)
	if err != nil {
		t.Fatalf("planner.New failed: %v", err)
	}
	return fixture{planner: p, store: store, registry: reg, kv: kv}
}

func captureTexts(s planning.Snapshot) []string {
	out := []string{}
	for _, it := range s.CaptureItems {
		out = append(out, it.Text)
	}
	return out
}

func TestNewOpensToday(t *testing.T) {
	f := newFixture(t)
	if f.planner.Date() != "2024-06-10" {
		t.Errorf("expected today's date, got %s", f.planner.Date())
	}
	if len(f.store.Dates()) != 0 {
		t.Errorf("opening a day must not persist it, got %v", f.store.Dates())
	}
}

func TestAddCapturePersists(t *testing.T) {
	f := newFixture(t)

	item, err := f.planner.AddCapture("  call mom ")
	if err != nil {
		t.Fatalf("AddCapture failed: %v", err)
	}
	if item.Text != "call mom" || item.Completed {
		t.Errorf("unexpected item: %+v", item)
	}

	stored, err := f.store.Load("2024-06-10")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff([]string{"call mom"}, captureTexts(stored)); diff != "" {
		t.Errorf("stored items mismatch (-want +got):\n%s", diff)
	}

	if _, err := f.planner.AddCapture("   "); !errors.Is(err, planner.ErrEmptyText) {
		t.Errorf("expected ErrEmptyText, got %v", err)
	}
}

func TestUndo(t *testing.T) {
	t.Run("FirstEditIsNotUndoable", func(t *testing.T) {
		f := newFixture(t)
		if _, err := f.planner.AddCapture("a"); err != nil {
			t.Fatalf("AddCapture: %v", err)
		}
		if f.planner.CanUndo() {
			t.Error("first edit should not be undoable")
		}
		undone, err := f.planner.Undo()
		if err != nil || undone {
			t.Errorf("expected no-op undo, got %v / %v", undone, err)
		}
		if diff := cmp.Diff([]string{"a"}, captureTexts(f.planner.Current())); diff != "" {
			t.Errorf("state changed (-want +got):\n%s", diff)
		}
	})

	t.Run("RestoresPreviousRecordedPoint", func(t *testing.T) {
		f := newFixture(t)
		for _, text := range []string{"a", "b", "c"} {
			if _, err := f.planner.AddCapture(text); err != nil {
				t.Fatalf("AddCapture(%s): %v", text, err)
			}
		}

		undone, err := f.planner.Undo()
		if err != nil || !undone {
			t.Fatalf("expected undo, got %v / %v", undone, err)
		}
		if diff := cmp.Diff([]string{"a"}, captureTexts(f.planner.Current())); diff != "" {
			t.Errorf("current mismatch (-want +got):\n%s", diff)
		}

		stored, _ := f.store.Load("2024-06-10")
		if diff := cmp.Diff([]string{"a"}, captureTexts(stored)); diff != "" {
			t.Errorf("undo result not persisted (-want +got):\n%s", diff)
		}

		if undone, _ := f.planner.Undo(); !undone {
			t.Fatal("second undo should reach the initial state")
		}
		if got := captureTexts(f.planner.Current()); len(got) != 0 {
			t.Errorf("expected initial empty state, got %v", got)
		}
		if f.planner.CanUndo() {
			t.Error("nothing left to undo")
		}
	})
}

func TestMoveCaptureToGoal(t *testing.T) {
	f := newFixture(t)
	item, _ := f.planner.AddCapture("draft outline")
	goal, _ := f.planner.NewGoal()

	t.Run("UnknownGoalLeavesStateUntouched", func(t *testing.T) {
		before := f.planner.Current()
		if err := f.planner.MoveCaptureToGoal(item.ID, "nope"); !errors.Is(err, planner.ErrGoalNotFound) {
			t.Fatalf("expected ErrGoalNotFound, got %v", err)
		}
		if diff := cmp.Diff(before, f.planner.Current()); diff != "" {
			t.Errorf("state changed (-before +after):\n%s", diff)
		}
	})

	t.Run("MovesItem", func(t *testing.T) {
		cur := f.planner.Current()
		cur.CaptureItems[0].Completed = true
		if err := f.planner.Update(cur); err != nil {
			t.Fatalf("Update: %v", err)
		}

		if err := f.planner.MoveCaptureToGoal(item.ID, goal.ID); err != nil {
			t.Fatalf("MoveCaptureToGoal failed: %v", err)
		}
		snap := f.planner.Current()
		if len(snap.CaptureItems) != 0 {
			t.Errorf("item should leave the capture list, got %v", snap.CaptureItems)
		}
		want := []planning.Item{{ID: item.ID, Text: "draft outline", Completed: false}}
		if diff := cmp.Diff(want, snap.Goals[0].MassiveActions); diff != "" {
			t.Errorf("massive actions mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("UnknownItem", func(t *testing.T) {
		if err := f.planner.MoveCaptureToGoal("ghost", goal.ID); !errors.Is(err, planner.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestGoalLifecycle(t *testing.T) {
	f := newFixture(t)
	goal, err := f.planner.NewGoal()
	if err != nil {
		t.Fatalf("NewGoal failed: %v", err)
	}

	goal.UltimateGoal = "Ship v1"
	goal.UltimatePurpose = "Users get value"
	goal.MassiveActions = []planning.Item{{ID: "a1", Text: "write tests"}}
	if err := f.planner.UpdateGoal(goal); err != nil {
		t.Fatalf("UpdateGoal failed: %v", err)
	}

	got, err := f.planner.Goal(goal.ID)
	if err != nil {
		t.Fatalf("Goal failed: %v", err)
	}
	if diff := cmp.Diff(goal, got); diff != "" {
		t.Errorf("goal mismatch (-want +got):\n%s", diff)
	}

	if err := f.planner.SetActionCompleted(goal.ID, "a1", true); err != nil {
		t.Fatalf("SetActionCompleted failed: %v", err)
	}
	got, _ = f.planner.Goal(goal.ID)
	if !got.MassiveActions[0].Completed {
		t.Error("action should be completed")
	}

	if err := f.planner.UpdateGoal(planning.Goal{ID: "missing"}); !errors.Is(err, planner.ErrGoalNotFound) {
		t.Errorf("expected ErrGoalNotFound, got %v", err)
	}

	if err := f.planner.DeleteGoal(goal.ID); err != nil {
		t.Fatalf("DeleteGoal failed: %v", err)
	}
	if len(f.planner.Current().Goals) != 0 {
		t.Error("goal should be gone")
	}
}

func TestScheduling(t *testing.T) {
	f := newFixture(t)
	goal, _ := f.planner.NewGoal()
	goal.MassiveActions = []planning.Item{{ID: "a1", Text: "gym"}}
	if err := f.planner.UpdateGoal(goal); err != nil {
		t.Fatalf("UpdateGoal: %v", err)
	}

	at := time.Date(2024, 6, 10, 18, 0, 0, 0, time.UTC)
	rec, err := f.planner.ScheduleAction(goal.ID, "a1", at)
	if err != nil {
		t.Fatalf("ScheduleAction failed: %v", err)
	}
	if rec.ItemID != "a1" || rec.Text != "gym" || !rec.ScheduledFor.Equal(at) {
		t.Errorf("unexpected record: %+v", rec)
	}

	got, _ := f.planner.Goal(goal.ID)
	if !got.MassiveActions[0].Scheduled {
		t.Error("action should be flagged as scheduled")
	}

	today, err := f.planner.SchedulesForDay()
	if err != nil {
		t.Fatalf("SchedulesForDay: %v", err)
	}
	if len(today) != 1 {
		t.Errorf("expected one schedule today, got %d", len(today))
	}

	t.Run("DeletingGoalKeepsRecord", func(t *testing.T) {
		if err := f.planner.DeleteGoal(goal.ID); err != nil {
			t.Fatalf("DeleteGoal: %v", err)
		}
		all, _ := f.planner.Schedules()
		if len(all) != 1 {
			t.Errorf("schedule record should survive goal deletion")
		}
	})

	t.Run("UnscheduleRemovesRecord", func(t *testing.T) {
		if err := f.planner.Unschedule(rec.ID); err != nil {
			t.Fatalf("Unschedule: %v", err)
		}
		all, _ := f.planner.Schedules()
		if len(all) != 0 {
			t.Errorf("expected no records, got %d", len(all))
		}
	})
}

func TestNavigation(t *testing.T) {
	f := newFixture(t)

	if err := f.planner.PlanNextDay(); err != nil {
		t.Fatalf("PlanNextDay: %v", err)
	}
	if f.planner.Date() != "2024-06-11" {
		t.Fatalf("expected 2024-06-11, got %s", f.planner.Date())
	}
	if len(f.store.Dates()) != 0 {
		t.Error("planning the next day must not create data")
	}
	if _, err := f.planner.AddCapture("prep"); err != nil {
		t.Fatalf("AddCapture: %v", err)
	}

	if err := f.store.Save(planning.Empty("2024-06-01")); err != nil {
		t.Fatalf("seed: %v", err)
	}

	moved, err := f.planner.Previous()
	if err != nil || !moved {
		t.Fatalf("expected to move back, got %v / %v", moved, err)
	}
	if f.planner.Date() != "2024-06-01" {
		t.Errorf("expected 2024-06-01, got %s", f.planner.Date())
	}

	if moved, _ := f.planner.Previous(); moved {
		t.Error("no earlier day should exist")
	}

	if moved, _ := f.planner.Next(); !moved || f.planner.Date() != "2024-06-11" {
		t.Errorf("expected to move forward to 2024-06-11, got %s", f.planner.Date())
	}

	if err := f.planner.Today(); err != nil {
		t.Fatalf("Today: %v", err)
	}
	if f.planner.Date() != "2024-06-10" {
		t.Errorf("expected today, got %s", f.planner.Date())
	}
}

func TestReset(t *testing.T) {
	f := newFixture(t)
	goal, _ := f.planner.NewGoal()
	goal.MassiveActions = []planning.Item{{ID: "a1", Text: "read"}}
	_ = f.planner.UpdateGoal(goal)
	if _, err := f.planner.ScheduleAction(goal.ID, "a1", now); err != nil {
		t.Fatalf("ScheduleAction: %v", err)
	}

	if err := f.planner.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if len(f.store.Dates()) != 0 {
		t.Errorf("dates survived reset: %v", f.store.Dates())
	}
	if all, _ := f.planner.Schedules(); len(all) != 0 {
		t.Errorf("schedules survived reset: %v", all)
	}
	if f.planner.CanUndo() {
		t.Error("reset should start a fresh history")
	}
}

func TestFailedSaveLeavesSession(t *testing.T) {
	f := newFixture(t)
	if _, err := f.planner.AddCapture("a"); err != nil {
		t.Fatalf("AddCapture: %v", err)
	}
	if _, err := f.planner.AddCapture("b"); err != nil {
		t.Fatalf("AddCapture: %v", err)
	}
	before := f.planner.Current()

	f.kv.fail = true
	if _, err := f.planner.AddCapture("c"); !errors.Is(err, errDiskFull) {
		t.Fatalf("expected the write error, got %v", err)
	}
	f.kv.fail = false

	if diff := cmp.Diff(before, f.planner.Current()); diff != "" {
		t.Errorf("failed edit changed the session (-want +got):\n%s", diff)
	}
	undone, err := f.planner.Undo()
	if err != nil || !undone {
		t.Fatalf("expected undo, got %v / %v", undone, err)
	}
	if diff := cmp.Diff([]string{"a"}, captureTexts(f.planner.Current())); diff != "" {
		t.Errorf("undo should skip the failed edit (-want +got):\n%s", diff)
	}
}

func TestEditAfterMismatchedSnapshotStaysOnItsDay(t *testing.T) {
	f := newFixture(t)
	other := planning.Empty("2024-01-02")
	other.CaptureItems = []planning.Item{{ID: "keep", Text: "other day"}}
	if err := f.store.Save(other); err != nil {
		t.Fatalf("seed: %v", err)
	}
	stray := []byte(`{"date":"2024-01-02","captureItems":[],"goals":[]}`)
	if err := f.kv.Write(datestore.Key("2024-01-01"), stray); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := f.planner.Open("2024-01-01"); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if f.planner.Date() != "2024-01-01" {
		t.Fatalf("expected 2024-01-01 to be active, got %s", f.planner.Date())
	}
	if _, err := f.planner.AddCapture("new"); err != nil {
		t.Fatalf("AddCapture: %v", err)
	}

	got, err := f.store.Load("2024-01-02")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"other day"}, captureTexts(got)); diff != "" {
		t.Errorf("edit leaked onto 2024-01-02 (-want +got):\n%s", diff)
	}
	got, err = f.store.Load("2024-01-01")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"new"}, captureTexts(got)); diff != "" {
		t.Errorf("edit missing from 2024-01-01 (-want +got):\n%s", diff)
	}
}
