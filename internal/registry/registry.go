// Package registry keeps the flat collection of scheduled actions, stored
// under a single key independent of the per-day snapshots.
package registry

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/saulo-duarte/rpm-planner/internal/config"
	"github.com/saulo-duarte/rpm-planner/internal/planning"
	"github.com/saulo-duarte/rpm-planner/internal/storage"
	util "github.com/saulo-duarte/rpm-planner/internal/utils"
)

// StorageKey holds the JSON array of schedule records.
const StorageKey = "rpm-schedules"

type Registry struct {
	kv      storage.KV
	emitter *Emitter
	now     func() time.Time
	newID   func() string
}

type Option func(*Registry)

// WithClock overrides the source of createdAt timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// WithIDGenerator overrides record id generation.
func WithIDGenerator(fn func() string) Option {
	return func(r *Registry) { r.newID = fn }
}

func New(kv storage.KV, opts ...Option) *Registry {
	r := &Registry{
		kv:      kv,
		emitter: NewEmitter(),
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) load() ([]planning.ScheduleRecord, error) {
	raw, ok, err := storage.ReadIfExists(r.kv, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("registry: read: %w", err)
	}
	if !ok {
		return []planning.ScheduleRecord{}, nil
	}
	var records []planning.ScheduleRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("registry: decode: %w", err)
	}
	return records, nil
}

func (r *Registry) persist(records []planning.ScheduleRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("registry: encode: %w", err)
	}
	if err := r.kv.Write(StorageKey, data); err != nil {
		return fmt.Errorf("registry: write: %w", err)
	}
	return nil
}

// Create appends a new record, persists the collection and notifies
// subscribers. The originating action is not touched.
func (r *Registry) Create(itemID, text string, scheduledFor time.Time) (planning.ScheduleRecord, error) {
	records, err := r.load()
	if err != nil {
		return planning.ScheduleRecord{}, err
	}

	rec := planning.ScheduleRecord{
		ID:           r.newID(),
		ItemID:       itemID,
		Text:         text,
		ScheduledFor: scheduledFor,
		CreatedAt:    r.now(),
	}
	records = append(records, rec)
	if err := r.persist(records); err != nil {
		return planning.ScheduleRecord{}, err
	}

	config.Logger.WithField("schedule_id", rec.ID).Debug("Schedule created")
	r.emitter.Emit(sorted(records))
	return rec, nil
}

// Delete removes the record with id. Unknown ids are ignored.
func (r *Registry) Delete(id string) error {
	records, err := r.load()
	if err != nil {
		return err
	}

	kept := records[:0:0]
	for _, rec := range records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(records) {
		return nil
	}

	if err := r.persist(kept); err != nil {
		return err
	}
	config.Logger.WithField("schedule_id", id).Debug("Schedule deleted")
	r.emitter.Emit(sorted(kept))
	return nil
}

// List returns every record ordered by ScheduledFor; ties keep storage order.
func (r *Registry) List() ([]planning.ScheduleRecord, error) {
	records, err := r.load()
	if err != nil {
		return nil, err
	}
	return sorted(records), nil
}

// Clear removes the whole collection and notifies subscribers.
func (r *Registry) Clear() error {
	if r.kv.Has(StorageKey) {
		if err := r.kv.Erase(StorageKey); err != nil {
			return fmt.Errorf("registry: erase: %w", err)
		}
	}
	r.emitter.Emit([]planning.ScheduleRecord{})
	return nil
}

// Subscribe registers fn for change notifications.
func (r *Registry) Subscribe(fn Listener) (unsubscribe func()) {
	return r.emitter.Subscribe(fn)
}

func sorted(records []planning.ScheduleRecord) []planning.ScheduleRecord {
	out := make([]planning.ScheduleRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ScheduledFor.Before(out[j].ScheduledFor)
	})
	return out
}

// ForDay keeps the records scheduled on day's calendar day in loc.
func ForDay(records []planning.ScheduleRecord, day time.Time, loc *time.Location) []planning.ScheduleRecord {
	out := make([]planning.ScheduleRecord, 0, len(records))
	for _, rec := range records {
		if util.SameDay(rec.ScheduledFor, day, loc) {
			out = append(out, rec)
		}
	}
	return out
}
