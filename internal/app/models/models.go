package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "STUDENT"
	RoleAdmin   RoleType = "ADMIN"
)

// EventStatus defines the moderation state of an event
type EventStatus string

const (
	EventStatusPending  EventStatus = "pending"
	EventStatusApproved EventStatus = "approved"
	EventStatusRejected EventStatus = "rejected"
	EventStatusDeleted  EventStatus = "deleted" // soft delete, rows are never removed
)

// RegistrationStatus defines the moderation state of a registration
type RegistrationStatus string

const (
	RegistrationStatusPending  RegistrationStatus = "pending"
	RegistrationStatusApproved RegistrationStatus = "approved"
	RegistrationStatusRejected RegistrationStatus = "rejected"
)

// SummaryStatus defines the moderation state of an event summary
type SummaryStatus string

const (
	SummaryStatusPending  SummaryStatus = "pending"
	SummaryStatusApproved SummaryStatus = "approved"
	SummaryStatusRejected SummaryStatus = "rejected"
)

// ValidEventDecision reports whether a status is one an administrator may
// set through the event decision endpoint.
func ValidEventDecision(status EventStatus) bool {
	switch status {
	case EventStatusPending, EventStatusApproved, EventStatusRejected:
		return true
	}
	return false
}
