package models

import "time"

// Role is the authorization level baked into a user at signup.
type Role string

const (
	// RoleUser is assigned to every account except the configured admin email.
	RoleUser Role = "user"

	// RoleAdmin unlocks the portfolio and company endpoints.
	RoleAdmin Role = "admin"
)

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique, lowercased sign-in identifier.
	Email string `json:"email"`

	// Name is the display name of the user.
	// Also used by the find-email flow.
	Name string `json:"name"`

	// Password carries the plaintext password on the way in.
	// It is never persisted and never serialized.
	Password string `json:"-"`

	// PasswordHash is the bcrypt hash stored in the users table.
	PasswordHash string `json:"-"`

	// Role is either RoleUser or RoleAdmin.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`

	// ResetTokenExpiry is set while a password recovery is pending.
	ResetTokenExpiry *time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Identity is the authenticated caller attached to every request that
// passed the auth middleware.
type Identity struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// FoundEmail is one row of the find-email response. Email is already masked.
type FoundEmail struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
