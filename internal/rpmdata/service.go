package rpmdata

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var (
	ErrNotFound    = errors.New("rpm data not found")
	ErrInvalidBlob = errors.New("rpm data must be a JSON object")
)

type Service interface {
	Upload(userID uuid.UUID, blob []byte) error
	Download(userID uuid.UUID) ([]byte, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

// Upload replaces the user's blob. No merge happens; the last upload wins.
func (s *service) Upload(userID uuid.UUID, blob []byte) error {
	blob = bytes.TrimSpace(blob)
	var probe map[string]json.RawMessage
	if len(blob) == 0 || blob[0] != '{' || json.Unmarshal(blob, &probe) != nil {
		return ErrInvalidBlob
	}
	return s.repo.Upsert(&RPMData{
		ID:        userID,
		Data:      datatypes.JSON(blob),
		UpdatedAt: s.now(),
	})
}

// Download returns the stored blob verbatim.
func (s *service) Download(userID uuid.UUID) ([]byte, error) {
	data, err := s.repo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	return []byte(data.Data), nil
}
