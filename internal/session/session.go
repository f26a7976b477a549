// Package session keeps the signed-in user's credentials on the local
// device, next to the planning data.
package session

import (
	"encoding/json"
	"fmt"

	"github.com/saulo-duarte/rpm-planner/internal/storage"
)

const StorageKey = "session"

type Credentials struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

type Store struct {
	kv storage.KV
}

func New(kv storage.KV) *Store {
	return &Store{kv: kv}
}

// Load returns the stored credentials. ok is false when nobody is signed in.
func (s *Store) Load() (Credentials, bool, error) {
	raw, ok, err := storage.ReadIfExists(s.kv, StorageKey)
	if err != nil || !ok {
		return Credentials{}, false, err
	}
	var c Credentials
	if err := json.Unmarshal(raw, &c); err != nil {
		return Credentials{}, false, fmt.Errorf("decode session: %w", err)
	}
	return c, c.Token != "", nil
}

func (s *Store) Save(c Credentials) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.kv.Write(StorageKey, raw)
}

// Clear signs the device out. Clearing an empty session is not an error.
func (s *Store) Clear() error {
	if !s.kv.Has(StorageKey) {
		return nil
	}
	return s.kv.Erase(StorageKey)
}

// AccessToken reports the bearer token for the current session, if any.
func (s *Store) AccessToken() (string, bool) {
	c, ok, err := s.Load()
	if err != nil || !ok {
		return "", false
	}
	return c.Token, true
}
