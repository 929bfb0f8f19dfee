package models

import "time"

// Supported roles
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// User represents a user record in the database
type User struct {
	ID           int64     `json:"id" db:"id"`                // Primary key
	Username     string    `json:"username" db:"username"`    // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`      // Bcrypt hash
	Role         string    `json:"role" db:"role"`            // Admin or User
	CreatedAt    time.Time `json:"createdAt" db:"created_at"` // Creation timestamp
}

// IsAdmin reports whether the user holds the Admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
