package printers_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/saulo-duarte/rpm-planner/internal/planning"
	"github.com/saulo-duarte/rpm-planner/internal/printers"
)

func init() {
	color.NoColor = true
}

func TestDay(t *testing.T) {
	var buf bytes.Buffer
	pp := &printers.PrettyPrint{Out: &buf}

	pp.Day(planning.Snapshot{
		Date:         "2024-06-10",
		CaptureItems: []planning.Item{{ID: "c1", Text: "call mom"}},
		Goals: []planning.Goal{{
			ID:              "g1",
			UltimateGoal:    "Ship v1",
			UltimatePurpose: "Users get value",
			MassiveActions:  []planning.Item{{ID: "a1", Text: "write docs", Completed: true, Scheduled: true}},
		}},
	}, "2024-06-10")

	out := buf.String()
	for _, want := range []string{"2024-06-10 (today)", "[ ] call mom", "Ship v1", "why: Users get value", "[x] write docs (scheduled)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "c1") {
		t.Error("ids should be hidden unless ShowID is set")
	}
}

func TestDayEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := &printers.PrettyPrint{Out: &buf, ShowID: true}
	pp.Day(planning.Empty("2024-06-11"), "2024-06-10")

	out := buf.String()
	if strings.Contains(out, "(today)") {
		t.Error("only the current date is marked as today")
	}
	if strings.Count(out, "none") != 2 {
		t.Errorf("expected both sections to be empty:\n%s", out)
	}
}

func TestSchedules(t *testing.T) {
	var buf bytes.Buffer
	pp := &printers.PrettyPrint{Out: &buf, ShowID: true}
	pp.Schedules([]planning.ScheduleRecord{
		{ID: "s1", Text: "gym", ScheduledFor: time.Date(2024, 6, 10, 18, 0, 0, 0, time.UTC)},
	}, time.UTC)

	out := buf.String()
	for _, want := range []string{"s1", "Mon 2024-06-10 18:00", "gym"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
