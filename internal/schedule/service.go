package schedule

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	googlecalendar "github.com/saulo-duarte/rpm-planner/internal/google_calendar"
	"github.com/saulo-duarte/rpm-planner/internal/planning"
)

var (
	ErrNotFound     = errors.New("schedule not found")
	ErrForbidden    = errors.New("schedule belongs to another user")
	ErrInvalidInput = errors.New("text and scheduledFor are required")
)

type Service interface {
	Create(userID uuid.UUID, dto CreateScheduleDTO) (*planning.ScheduleRecord, error)
	List(userID uuid.UUID) ([]planning.ScheduleRecord, error)
	Delete(id uuid.UUID, userID uuid.UUID) error
	Export(ctx context.Context, userID uuid.UUID, dto ExportDTO) ([]googlecalendar.ExportResult, error)
}

type service struct {
	repo     Repository
	exporter googlecalendar.Exporter
	now      func() time.Time
}

func NewService(repo Repository, exporter googlecalendar.Exporter) Service {
	return &service{repo: repo, exporter: exporter, now: time.Now}
}

func (s *service) Create(userID uuid.UUID, dto CreateScheduleDTO) (*planning.ScheduleRecord, error) {
	text := strings.TrimSpace(dto.Text)
	if text == "" || dto.ScheduledFor.IsZero() {
		return nil, ErrInvalidInput
	}

	sched := Schedule{
		ID:           uuid.New(),
		UserID:       userID,
		ItemID:       dto.ItemID,
		Text:         text,
		ScheduledFor: dto.ScheduledFor.UTC(),
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Create(&sched); err != nil {
		return nil, err
	}

	rec := sched.toRecord()
	return &rec, nil
}

func (s *service) List(userID uuid.UUID) ([]planning.ScheduleRecord, error) {
	schedules, err := s.repo.FindAllByUserID(userID)
	if err != nil {
		return nil, err
	}

	records := make([]planning.ScheduleRecord, 0, len(schedules))
	for i := range schedules {
		records = append(records, schedules[i].toRecord())
	}
	return records, nil
}

func (s *service) Delete(id uuid.UUID, userID uuid.UUID) error {
	sched, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if sched.UserID != userID {
		return ErrForbidden
	}
	return s.repo.Delete(id)
}

// Export sends the selected records, or all of them when none are selected,
// to the user's Google Calendar.
func (s *service) Export(ctx context.Context, userID uuid.UUID, dto ExportDTO) ([]googlecalendar.ExportResult, error) {
	records, err := s.List(userID)
	if err != nil {
		return nil, err
	}

	if len(dto.ScheduleIDs) > 0 {
		wanted := make(map[string]bool, len(dto.ScheduleIDs))
		for _, id := range dto.ScheduleIDs {
			wanted[id] = true
		}
		selected := records[:0]
		for _, rec := range records {
			if wanted[rec.ID] {
				selected = append(selected, rec)
				delete(wanted, rec.ID)
			}
		}
		if len(wanted) > 0 {
			return nil, ErrNotFound
		}
		records = selected
	}

	return s.exporter.Export(ctx, userID, records, dto.TimeZone)
}
