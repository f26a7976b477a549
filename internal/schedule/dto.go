package schedule

import "time"

type CreateScheduleDTO struct {
	ItemID       string    `json:"itemId"`
	Text         string    `json:"text"`
	ScheduledFor time.Time `json:"scheduledFor"`
}

type ExportDTO struct {
	TimeZone    string   `json:"timeZone"`
	ScheduleIDs []string `json:"scheduleIds"`
}
