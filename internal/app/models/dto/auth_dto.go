package dto

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"student@college.edu"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// LoginResponse carries the issued token and the role the server resolved
// for the account. RegNo is empty for administrator accounts.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn" example:"43200"`
	Role      string `json:"role" example:"STUDENT"`
	RegNo     string `json:"regNo,omitempty" example:"CB123456"`
}
