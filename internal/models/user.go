package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account record in the in-memory user directory.
// PasswordHash never leaves the process; clients only ever see UserProfile.
type User struct {
	ID           uuid.UUID `json:"id"`        // Unique identifier, assigned at creation
	Username     string    `json:"username"`  // Unique username, case-sensitive
	PasswordHash string    `json:"-"`         // bcrypt hash of the password
	CreatedAt    time.Time `json:"createdAt"` // Creation timestamp
}

// UserProfile is the redacted projection of a User returned to clients.
type UserProfile struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// Profile returns the redacted projection of u.
func (u *User) Profile() UserProfile {
	return UserProfile{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}
