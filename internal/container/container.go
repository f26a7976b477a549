package container

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/saulo-duarte/rpm-planner/internal/auth"
	"github.com/saulo-duarte/rpm-planner/internal/config"
	googlecalendar "github.com/saulo-duarte/rpm-planner/internal/google_calendar"
	"github.com/saulo-duarte/rpm-planner/internal/router"
	"github.com/saulo-duarte/rpm-planner/internal/rpmdata"
	"github.com/saulo-duarte/rpm-planner/internal/schedule"
	"github.com/saulo-duarte/rpm-planner/internal/user"
)

type Container struct {
	UserContainer           *user.UserContainer
	RPMDataContainer        *rpmdata.Container
	ScheduleContainer       *schedule.Container
	GoogleCalendarContainer *googlecalendar.GoogleCalendarContainer
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if err := config.Migrate(&user.User{}, &rpmdata.RPMData{}, &schedule.Schedule{}); err != nil {
		log.Fatalf("failed to migrate DB: %v", err)
	}

	oauthConfig := config.GoogleOAuthConfig()

	userContainer := user.NewUserContainer(config.DB, oauthConfig)
	calendarContainer := googlecalendar.NewGoogleCalendarContainer(userContainer.Repo, oauthConfig)
	rpmDataContainer := rpmdata.NewContainer(config.DB)
	scheduleContainer := schedule.NewContainer(config.DB, calendarContainer.Exporter)

	return &Container{
		UserContainer:           userContainer,
		RPMDataContainer:        rpmDataContainer,
		ScheduleContainer:       scheduleContainer,
		GoogleCalendarContainer: calendarContainer,
	}
}

func (c *Container) Router() http.Handler {
	return router.New(router.RouterConfig{
		UserHandler:     c.UserContainer.Handler,
		RPMDataHandler:  c.RPMDataContainer.Handler,
		ScheduleHandler: c.ScheduleContainer.Handler,
	})
}
