package models

// Student defines the student model based on the 'students' table.
// Read-only from this service's perspective; rows are provisioned by the
// institution's records import.
type Student struct {
	RegNo      string `json:"regNo" db:"reg_no" example:"CB123456"`
	Name       string `json:"name" db:"name"`
	Department string `json:"department" db:"department" example:"CSE"`
	StartYear  int    `json:"startYear" db:"start_year" example:"2022"`
	EndYear    int    `json:"endYear" db:"end_year" example:"2026"`
	Email      string `json:"email" db:"email"`
}
