package models

import "time"

// User defines a login account based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password_hash"` // bcrypt hash, excluded from JSON
	Role      RoleType  `json:"role" db:"role" example:"STUDENT"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
