package syncclient

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/saulo-duarte/rpm-planner/internal/planning"
)

type User struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
}

type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Login exchanges a Google authorization code for a server token. It needs
// no prior session.
func (c *Client) Login(ctx context.Context, code string) (LoginResult, error) {
	var res LoginResult
	err := c.do(ctx, http.MethodPost, "/auth/login", false, map[string]string{"code": code}, &res)
	return res, err
}

func (c *Client) Me(ctx context.Context) (User, error) {
	var u User
	err := c.do(ctx, http.MethodGet, "/users/me", true, nil, &u)
	return u, err
}

type CreateScheduleRequest struct {
	ItemID       string    `json:"itemId"`
	Text         string    `json:"text"`
	ScheduledFor time.Time `json:"scheduledFor"`
}

func (c *Client) CreateSchedule(ctx context.Context, in CreateScheduleRequest) (planning.ScheduleRecord, error) {
	var rec planning.ScheduleRecord
	err := c.do(ctx, http.MethodPost, "/schedules", true, in, &rec)
	return rec, err
}

func (c *Client) ListSchedules(ctx context.Context) ([]planning.ScheduleRecord, error) {
	var recs []planning.ScheduleRecord
	if err := c.do(ctx, http.MethodGet, "/schedules", true, nil, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (c *Client) DeleteSchedule(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/schedules/"+url.PathEscape(id), true, nil, nil)
}

type ExportRequest struct {
	TimeZone    string   `json:"timeZone"`
	ScheduleIDs []string `json:"scheduleIds,omitempty"`
}

type ExportResult struct {
	ScheduleID string `json:"scheduleId"`
	EventID    string `json:"eventId,omitempty"`
	Error      string `json:"error,omitempty"`
}

// ExportCalendar asks the server to copy remote schedule records into the
// user's Google Calendar. An empty id list exports every record.
func (c *Client) ExportCalendar(ctx context.Context, in ExportRequest) ([]ExportResult, error) {
	var res []ExportResult
	if err := c.do(ctx, http.MethodPost, "/schedules/export", true, in, &res); err != nil {
		return nil, err
	}
	return res, nil
}
