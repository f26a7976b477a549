package schedule

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/rpm-planner/internal/planning"
	"github.com/saulo-duarte/rpm-planner/internal/user"
)

type Schedule struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	User         user.User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ItemID       string    `gorm:"column:item_id" json:"item_id"`
	Text         string    `gorm:"not null" json:"text"`
	ScheduledFor time.Time `gorm:"column:scheduled_for;not null;index" json:"scheduled_for"`
	CreatedAt    time.Time `json:"created_at"`
}

func (s *Schedule) toRecord() planning.ScheduleRecord {
	return planning.ScheduleRecord{
		ID:           s.ID.String(),
		ItemID:       s.ItemID,
		Text:         s.Text,
		ScheduledFor: s.ScheduledFor,
		CreatedAt:    s.CreatedAt,
	}
}
