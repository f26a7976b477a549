package rpmdata

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RPMData is the whole date map of one user, stored as a single blob.
type RPMData struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Data      datatypes.JSON `gorm:"type:jsonb;not null" json:"data"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (RPMData) TableName() string { return "rpm_data" }
