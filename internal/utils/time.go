package util

import (
	"fmt"
	"regexp"
	"time"
	_ "time/tzdata"
)

// DateLayout is the canonical date key form, YYYY-MM-DD.
const DateLayout = "2006-01-02"

var dateKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// DateKey formats t as a date key in t's own location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// IsDateKey reports whether s has the exact fixed-width YYYY-MM-DD shape.
// Lexicographic order of such keys is chronological order.
func IsDateKey(s string) bool {
	return dateKeyPattern.MatchString(s)
}

// ParseDateKey parses a date key as midnight in loc.
func ParseDateKey(s string, loc *time.Location) (time.Time, error) {
	if !IsDateKey(s) {
		return time.Time{}, fmt.Errorf("invalid date key %q", s)
	}
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(DateLayout, s, loc)
}

// AddDays shifts a date key by n calendar days.
func AddDays(key string, n int) (string, error) {
	t, err := ParseDateKey(key, time.UTC)
	if err != nil {
		return "", err
	}
	return DateKey(t.AddDate(0, 0, n)), nil
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day of loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.Local
	}
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// LoadLocation resolves an IANA zone name. Empty and "Local" map to the
// process location; unknown names fall back to UTC.
func LoadLocation(name string) *time.Location {
	if name == "" || name == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
