package schedule

import (
	googlecalendar "github.com/saulo-duarte/rpm-planner/internal/google_calendar"
	"gorm.io/gorm"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(db *gorm.DB, exporter googlecalendar.Exporter) *Container {
	repo := NewRepository(db)
	service := NewService(repo, exporter)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
