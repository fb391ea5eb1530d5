package models

import "time"

// Registration links a student registration number to an event. One row per
// (student, event) pair; uniqueness is enforced by the admission check, not
// by a database constraint.
type Registration struct {
	ID              int64              `json:"id" db:"id"`
	EventID         int64              `json:"eventId" db:"event_id"`
	StudentRegNo    string             `json:"studentRegNo" db:"student_reg_no"`
	Status          RegistrationStatus `json:"status" db:"status"`
	RejectionReason *string            `json:"rejectionReason,omitempty" db:"rejection_reason"`
	ConfirmedBy     *string            `json:"confirmedBy,omitempty" db:"confirmed_by"`
	ConfirmedAt     *time.Time         `json:"confirmedAt,omitempty" db:"confirmed_at"`
	RegisteredAt    time.Time          `json:"registeredAt" db:"registered_at"`

	// Relations (populated by joined queries)
	Event   *Event   `json:"event,omitempty"`
	Student *Student `json:"student,omitempty"`
}

// TeamMember is one name/roll pair of a team registration.
type TeamMember struct {
	Name   string `json:"name"`
	RollNo string `json:"rollNo"`
}

// TeamRegistration is a denormalized fixed-width row of up to five members.
// Slots beyond the submitted members stay blank. It carries no event foreign
// key and bypasses the admission checks entirely.
type TeamRegistration struct {
	ID        int64         `json:"id" db:"id"`
	TeamName  string        `json:"teamName" db:"team_name"`
	Members   [5]TeamMember `json:"members"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
}
