package models

import "time"

// Event defines the event model based on the 'events' table.
// AcceptedCount and BalanceCount are denormalized capacity counters;
// once an event is approved they satisfy
// accepted_count + balance_count == max_count.
type Event struct {
	ID                  int64       `json:"id" db:"id" example:"1"`
	Category            string      `json:"category" db:"category" example:"hackathon"`
	Name                string      `json:"name" db:"name" example:"Smart India Hackathon"`
	StartDate           time.Time   `json:"startDate" db:"start_date"`
	EndDate             time.Time   `json:"endDate" db:"end_date"`
	Location            string      `json:"location" db:"location" example:"Chennai"`
	WebsiteLink         *string     `json:"websiteLink,omitempty" db:"website_link"`
	Organization        *string     `json:"organization,omitempty" db:"organization"`
	Mode                *string     `json:"mode,omitempty" db:"mode" example:"offline"`
	CreatedBy           string      `json:"createdBy" db:"created_by"`
	EligibleDepartments string      `json:"eligibleDepartments" db:"eligible_departments"` // free text, comma separated
	MaxCount            int         `json:"maxCount" db:"max_count" example:"50"`
	AcceptedCount       int         `json:"acceptedCount" db:"accepted_count" example:"12"`
	BalanceCount        int         `json:"balanceCount" db:"balance_count" example:"38"`
	Status              EventStatus `json:"status" db:"status" example:"pending"`
	RejectionReason     *string     `json:"rejectionReason,omitempty" db:"rejection_reason"`
	ConfirmedBy         *string     `json:"confirmedBy,omitempty" db:"confirmed_by"`
	ConfirmedAt         *time.Time  `json:"confirmedAt,omitempty" db:"confirmed_at"`
	CreatedAt           time.Time   `json:"createdAt" db:"created_at"`
}

// IsFull reports whether the event has no remaining capacity.
func (e *Event) IsFull() bool {
	return e.AcceptedCount >= e.MaxCount
}
