package dto

// CreateEventRequest represents an event submitted for approval. Dates are
// calendar days in YYYY-MM-DD form.
type CreateEventRequest struct {
	Category            string  `json:"category" binding:"required" example:"hackathon"`
	Name                string  `json:"name" binding:"required" example:"Smart India Hackathon"`
	StartDate           string  `json:"startDate" binding:"required,datetime=2006-01-02" example:"2025-09-12"`
	EndDate             string  `json:"endDate" binding:"required,datetime=2006-01-02" example:"2025-09-14"`
	Location            string  `json:"location" binding:"required" example:"Chennai"`
	WebsiteLink         *string `json:"websiteLink,omitempty"`
	Organization        *string `json:"organization,omitempty"`
	Mode                *string `json:"mode,omitempty" example:"offline"`
	EligibleDepartments string  `json:"eligibleDepartments" binding:"required" example:"CSE,ECE"`
	MaxCount            int     `json:"maxCount" binding:"required,min=1" example:"50"`
}

// EventDecisionRequest represents an administrator decision on a pending
// event. On approval EligibleDepartments and MaxCount may be adjusted; on
// rejection a reason is recorded.
type EventDecisionRequest struct {
	Status              string  `json:"status" binding:"required,oneof=approved rejected pending"`
	RejectionReason     *string `json:"rejectionReason,omitempty"`
	EligibleDepartments *string `json:"eligibleDepartments,omitempty"`
	MaxCount            *int    `json:"maxCount,omitempty"`
}
