package schedule

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(s *Schedule) error
	FindAllByUserID(userID uuid.UUID) ([]Schedule, error)
	FindByID(id uuid.UUID) (*Schedule, error)
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(s *Schedule) error {
	return r.db.Create(s).Error
}

func (r *repository) FindAllByUserID(userID uuid.UUID) ([]Schedule, error) {
	var schedules []Schedule
	if err := r.db.
		Where("user_id = ?", userID).
		Order("scheduled_for ASC").
		Order("created_at ASC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *repository) FindByID(id uuid.UUID) (*Schedule, error) {
	var s Schedule
	if err := r.db.First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Schedule{}, "id = ?", id).Error
}
