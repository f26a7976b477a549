package googlecalendar

import (
	"github.com/saulo-duarte/rpm-planner/internal/user"
	"golang.org/x/oauth2"
)

type GoogleCalendarContainer struct {
	CalendarService CalendarService
	Exporter        Exporter
}

func NewGoogleCalendarContainer(
	userRepo user.UserRepository,
	oauthConfig *oauth2.Config,
) *GoogleCalendarContainer {
	calendarService := NewCalendarService(userRepo, oauthConfig)

	return &GoogleCalendarContainer{
		CalendarService: calendarService,
		Exporter:        NewExporter(calendarService),
	}
}
