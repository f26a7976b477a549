package googlecalendar

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/rpm-planner/internal/config"
	"github.com/saulo-duarte/rpm-planner/internal/planning"
	"github.com/sirupsen/logrus"
)

var ErrInvalidTimeZone = errors.New("invalid time zone")

type Exporter interface {
	Export(ctx context.Context, userID uuid.UUID, records []planning.ScheduleRecord, timeZone string) ([]ExportResult, error)
}

type exporter struct {
	calendarService CalendarService
}

func NewExporter(calendarService CalendarService) Exporter {
	return &exporter{calendarService: calendarService}
}

// Export creates one event per record. A failed insert is reported in its
// result and does not stop the remaining records.
func (e *exporter) Export(ctx context.Context, userID uuid.UUID, records []planning.ScheduleRecord, timeZone string) ([]ExportResult, error) {
	log := config.WithContext(ctx).WithField("user_id", userID)

	loc, err := time.LoadLocation(timeZone)
	if timeZone == "" || timeZone == "Local" || err != nil {
		return nil, ErrInvalidTimeZone
	}

	results := make([]ExportResult, 0, len(records))
	if len(records) == 0 {
		return results, nil
	}

	cal, err := e.calendarService.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	failed := 0
	for _, rec := range records {
		res := ExportResult{ScheduleID: rec.ID}
		eventID, err := cal.InsertEvent(ctx, BuildEvent(rec, timeZone, loc))
		if err != nil {
			failed++
			log.WithError(err).WithField("schedule_id", rec.ID).Warn("Failed to insert calendar event")
			res.Error = err.Error()
		} else {
			res.EventID = eventID
		}
		results = append(results, res)
	}

	log.WithFields(logrus.Fields{"exported": len(records) - failed, "failed": failed}).Info("Calendar export finished")
	return results, nil
}
