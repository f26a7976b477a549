package util_test

import (
	"testing"
	"time"

	util "github.com/saulo-duarte/rpm-planner/internal/utils"
)

func TestIsDateKey(t *testing.T) {
	valid := []string{"2024-01-01", "1999-12-31"}
	invalid := []string{"", "2024-1-01", "2024-01-01T00:00", "schedules", "20240101", "2024-01-1x"}

	for _, s := range valid {
		if !util.IsDateKey(s) {
			t.Errorf("expected %q to be a date key", s)
		}
	}
	for _, s := range invalid {
		if util.IsDateKey(s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

func TestAddDays(t *testing.T) {
	t.Run("MonthBoundary", func(t *testing.T) {
		got, err := util.AddDays("2024-01-31", 1)
		if err != nil {
			t.Fatalf("AddDays failed: %v", err)
		}
		if got != "2024-02-01" {
			t.Errorf("expected 2024-02-01, got %s", got)
		}
	})

	t.Run("InvalidKey", func(t *testing.T) {
		if _, err := util.AddDays("tomorrow", 1); err == nil {
			t.Error("expected error for invalid key")
		}
	})
}

func TestSameDay(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	a := time.Date(2024, 3, 10, 1, 0, 0, 0, time.UTC)  // 2024-03-09 22:00 BRT
	b := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC) // 2024-03-09 09:00 BRT

	if !util.SameDay(a, b, loc) {
		t.Error("expected both instants on 2024-03-09 in BRT")
	}
	if util.SameDay(a, b, time.UTC) {
		t.Error("expected different UTC days")
	}
}
