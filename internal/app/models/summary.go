package models

import "time"

// Summary is a student's post-event proof-of-participation submission,
// moderated independently of the registration it belongs to. One row per
// (student, event) pair.
type Summary struct {
	ID              int64         `json:"id" db:"id"`
	StudentRegNo    string        `json:"studentRegNo" db:"student_reg_no"`
	EventID         int64         `json:"eventId" db:"event_id"`
	ImagePath       string        `json:"imagePath" db:"image_path"`
	Description     string        `json:"description" db:"description"`
	Status          SummaryStatus `json:"status" db:"status"`
	RejectionReason *string       `json:"rejectionReason,omitempty" db:"rejection_reason"`
	ConfirmedBy     *string       `json:"confirmedBy,omitempty" db:"confirmed_by"`
	ConfirmedAt     *time.Time    `json:"confirmedAt,omitempty" db:"confirmed_at"`
	CreatedAt       time.Time     `json:"createdAt" db:"created_at"`

	// Relations (populated by joined queries)
	Event   *Event   `json:"event,omitempty"`
	Student *Student `json:"student,omitempty"`
}
