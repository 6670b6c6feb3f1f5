package models

import "time"

// User represents an account entity used for authentication and profile
// management. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Name is the display name of the user. Non-sensitive, shown in UI.
	Name string `json:"name"`

	// Email is the unique login identifier of the account.
	Email string `json:"email"`

	// Password carries the plaintext password on inbound requests only
	// (login, registration, profile update). It is never persisted and
	// never serialized in responses.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the database.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// ProfileImage is a URL reference to an externally hosted avatar.
	// When empty at registration time, a deterministic Gravatar URL
	// derived from the email is stored instead.
	ProfileImage string `json:"profileImage"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// Sanitized returns a copy of the user safe to serialize in responses:
// the plaintext password and the stored hash are both dropped.
func (u User) Sanitized() User {
	u.Password = ""
	u.PasswordHash = ""
	return u
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
