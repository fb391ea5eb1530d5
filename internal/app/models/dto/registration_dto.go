package dto

// RegisterEventRequest represents an individual registration attempt. The
// student is identified by the verified token claims, never by the body.
type RegisterEventRequest struct {
	EventID int64 `json:"eventId" binding:"required,min=1" example:"7"`
}

// TeamMemberRequest is one member of a team registration
type TeamMemberRequest struct {
	Name   string `json:"name" binding:"required"`
	RollNo string `json:"rollNo" binding:"required"`
}

// RegisterTeamRequest represents a team registration of three to five
// members. Team registrations bypass the individual admission checks.
type RegisterTeamRequest struct {
	TeamName string              `json:"teamName" binding:"required"`
	Members  []TeamMemberRequest `json:"members" binding:"required,min=3,max=5,dive"`
}

// RejectRegistrationRequest carries the reason recorded with a rejection
type RejectRegistrationRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// BlockStatusResponse reports whether a student is blocked from new
// registrations by an outstanding summary.
type BlockStatusResponse struct {
	Blocked bool   `json:"blocked"`
	Message string `json:"message,omitempty"`
}
