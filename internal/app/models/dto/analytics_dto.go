package dto

import "time"

// EventParticipation is one row of the event analytics feed: how many
// summaries were submitted for the event, zero included.
type EventParticipation struct {
	EventName     string    `json:"eventName"`
	TotalStudents int       `json:"totalStudents"`
	StartDate     time.Time `json:"startDate"`
}

// EventNotification names an event a student should submit a summary for
type EventNotification struct {
	EventName string    `json:"eventName"`
	EndDate   time.Time `json:"endDate"`
}
