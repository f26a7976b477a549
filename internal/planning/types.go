// Package planning holds the RPM data model shared by the local client and the
// sync server: per-day snapshots, capture items, goals and schedule records.
package planning

import "time"

// Item is an unstructured to-do entry. Capture items and massive actions share
// this record; the action-only fields stay empty while an item is captured.
type Item struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Level     string `json:"level,omitempty"`
	Duration  string `json:"duration,omitempty"`
	Priority  string `json:"priority,omitempty"`
	Scheduled bool   `json:"scheduled,omitempty"`
}

// Goal groups massive actions under a result and a purpose. Level, Duration
// and Priority are legacy fields kept for compatibility with stored data.
type Goal struct {
	ID              string `json:"id"`
	MassiveActions  []Item `json:"massiveActions"`
	UltimateGoal    string `json:"ultimateGoal"`
	UltimatePurpose string `json:"ultimatePurpose"`
	Level           string `json:"level"`
	Duration        string `json:"duration"`
	Priority        string `json:"priority"`
}

// Snapshot is the complete planning state of one calendar day.
type Snapshot struct {
	Date         string `json:"date"`
	CaptureItems []Item `json:"captureItems"`
	Goals        []Goal `json:"goals"`
}

// ScheduleRecord places an action on the calendar. ItemID is a weak reference:
// deleting either side never cascades to the other.
type ScheduleRecord struct {
	ID           string    `json:"id"`
	ItemID       string    `json:"itemId"`
	Text         string    `json:"text"`
	ScheduledFor time.Time `json:"scheduledFor"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Empty returns a fresh snapshot for date with no items and no goals.
func Empty(date string) Snapshot {
	return Snapshot{
		Date:         date,
		CaptureItems: []Item{},
		Goals:        []Goal{},
	}
}

// Clone returns a deep copy of s, so later edits to either value never leak
// into the other. Slices of the copy are never nil, so it encodes as `[]`
// rather than `null`.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Date:         s.Date,
		CaptureItems: cloneItems(s.CaptureItems),
		Goals:        make([]Goal, len(s.Goals)),
	}
	for i, g := range s.Goals {
		out.Goals[i] = g.Clone()
	}
	return out
}

// Clone returns a deep copy of g.
func (g Goal) Clone() Goal {
	g.MassiveActions = cloneItems(g.MassiveActions)
	return g
}

// FindGoal returns the index of the goal with id, or -1.
func (s Snapshot) FindGoal(id string) int {
	for i, g := range s.Goals {
		if g.ID == id {
			return i
		}
	}
	return -1
}

// FindCapture returns the index of the capture item with id, or -1.
func (s Snapshot) FindCapture(id string) int {
	for i, it := range s.CaptureItems {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// FindAction returns the index of the massive action with id, or -1.
func (g Goal) FindAction(id string) int {
	for i, it := range g.MassiveActions {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
