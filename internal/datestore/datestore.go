// Package datestore persists one planning snapshot per calendar day under the
// key namespace rpm-<YYYY-MM-DD>.
package datestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/rpm-planner/internal/config"
	"github.com/saulo-duarte/rpm-planner/internal/planning"
	"github.com/saulo-duarte/rpm-planner/internal/storage"
	util "github.com/saulo-duarte/rpm-planner/internal/utils"
)

// KeyPrefix namespaces every date-scoped snapshot.
const KeyPrefix = "rpm-"

// ErrMissingDate is the validation error logged when a snapshot without a
// date is offered to Save.
var ErrMissingDate = errors.New("no date provided for RPM data")

// Adjacent holds the stored neighbours of a date; nil means none.
type Adjacent struct {
	Previous *string
	Next     *string
}

type Store struct {
	kv storage.KV
}

func New(kv storage.KV) *Store {
	return &Store{kv: kv}
}

// Key returns the storage key for a date key.
func Key(date string) string {
	return KeyPrefix + date
}

// dateFromKey extracts the date of a namespaced key. Keys outside the date
// namespace, such as rpm-schedules, are rejected.
func dateFromKey(key string) (string, bool) {
	if !strings.HasPrefix(key, KeyPrefix) {
		return "", false
	}
	date := strings.TrimPrefix(key, KeyPrefix)
	if !util.IsDateKey(date) {
		return "", false
	}
	return date, true
}

func isDateKey(key string) bool {
	_, ok := dateFromKey(key)
	return ok
}

// Load returns the snapshot stored for date, or an empty one. Absence is not
// an error.
func (s *Store) Load(date string) (planning.Snapshot, error) {
	raw, ok, err := storage.ReadIfExists(s.kv, Key(date))
	if err != nil {
		return planning.Snapshot{}, fmt.Errorf("datestore: read %s: %w", date, err)
	}
	if !ok {
		return planning.Empty(date), nil
	}

	var snap planning.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return planning.Snapshot{}, fmt.Errorf("datestore: decode %s: %w", date, err)
	}
	// The key decides the date.
	snap.Date = date
	return snap, nil
}

// Save persists snap under its own date. A snapshot without a date is
// dropped with a logged validation error so it can never overwrite a day.
func (s *Store) Save(snap planning.Snapshot) error {
	if snap.Date == "" {
		config.Logger.WithError(ErrMissingDate).Error("Refusing to save snapshot")
		return nil
	}
	return s.write(snap.Date, snap)
}

func (s *Store) write(date string, snap planning.Snapshot) error {
	data, err := json.Marshal(snap.Clone())
	if err != nil {
		return fmt.Errorf("datestore: encode %s: %w", date, err)
	}
	if err := s.kv.Write(Key(date), data); err != nil {
		return fmt.Errorf("datestore: write %s: %w", date, err)
	}
	return nil
}

// LoadAll returns every stored snapshot keyed by date.
func (s *Store) LoadAll() (map[string]planning.Snapshot, error) {
	all := make(map[string]planning.Snapshot)
	for _, key := range storage.CollectKeys(s.kv, isDateKey) {
		date, _ := dateFromKey(key)
		snap, err := s.Load(date)
		if err != nil {
			return nil, err
		}
		all[date] = snap
	}
	return all, nil
}

// SaveAll replaces the whole namespace with data. Dates missing from data are
// gone afterwards; this is an overwrite, not a merge.
func (s *Store) SaveAll(data map[string]planning.Snapshot) error {
	if err := s.ClearAll(); err != nil {
		return err
	}
	for date, snap := range data {
		if !util.IsDateKey(date) {
			config.Logger.WithField("date", date).Warn("Skipping snapshot with malformed date key")
			continue
		}
		if snap.Date != date {
			config.Logger.WithFields(logrus.Fields{
				"date":     date,
				"snapshot": snap.Date,
			}).Warn("Snapshot date does not match its key, using the key")
			snap.Date = date
		}
		if err := s.write(date, snap); err != nil {
			return err
		}
	}
	return nil
}

// ClearAll removes every snapshot in the namespace.
func (s *Store) ClearAll() error {
	for _, key := range storage.CollectKeys(s.kv, isDateKey) {
		if err := s.kv.Erase(key); err != nil {
			return fmt.Errorf("datestore: erase %s: %w", key, err)
		}
	}
	return nil
}

// Dates returns every stored date in chronological order.
func (s *Store) Dates() []string {
	keys := storage.CollectKeys(s.kv, isDateKey)
	dates := make([]string, 0, len(keys))
	for _, key := range keys {
		date, _ := dateFromKey(key)
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// ListAdjacentDates returns the stored dates immediately before and after
// current. current itself need not be stored, and nothing is created for it.
func (s *Store) ListAdjacentDates(current string) Adjacent {
	dates := s.Dates()

	var adj Adjacent
	i := sort.SearchStrings(dates, current)
	if i > 0 {
		prev := dates[i-1]
		adj.Previous = &prev
	}
	if i < len(dates) && dates[i] == current {
		i++
	}
	if i < len(dates) {
		next := dates[i]
		adj.Next = &next
	}
	return adj
}
