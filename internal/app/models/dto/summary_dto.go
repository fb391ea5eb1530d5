package dto

// RejectSummaryRequest carries the reason recorded with a summary rejection
type RejectSummaryRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// SummaryFilter holds the optional filters of the summary history listing
type SummaryFilter struct {
	Category string `form:"category"`
	EventID  int64  `form:"eventId"`
	RegNo    string `form:"regNo"`
	EndYear  int    `form:"endYear"`
}
