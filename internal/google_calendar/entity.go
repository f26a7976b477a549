package googlecalendar

import (
	"time"

	"github.com/saulo-duarte/rpm-planner/internal/planning"
	gcal "google.golang.org/api/calendar/v3"
)

const (
	PrimaryCalendar = "primary"
	EventDuration   = time.Hour
)

// ExportResult reports what happened to one schedule record. Exactly one of
// EventID and Error is set.
type ExportResult struct {
	ScheduleID string `json:"scheduleId"`
	EventID    string `json:"eventId,omitempty"`
	Error      string `json:"error,omitempty"`
}

// BuildEvent turns a schedule record into a one hour event in timeZone.
func BuildEvent(rec planning.ScheduleRecord, timeZone string, loc *time.Location) *gcal.Event {
	start := rec.ScheduledFor.In(loc)
	end := start.Add(EventDuration)
	return &gcal.Event{
		Summary: rec.Text,
		Start: &gcal.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: timeZone,
		},
		End: &gcal.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: timeZone,
		},
		Reminders: &gcal.EventReminders{
			UseDefault: true,
		},
	}
}
