package models

import "time"

// UserUpdate is a partial update of a user record. Nil fields are left
// untouched; only non-nil fields end up in the UPDATE statement.
type UserUpdate struct {
	// UserID identifies the record to update.
	UserID int64

	Name         *string
	Email        *string
	ProfileImage *string

	// PasswordHash replaces the stored bcrypt hash when non-nil. The
	// hashing itself happens in the service layer; repositories never
	// see plaintext passwords.
	PasswordHash *string
}

// MonthBucket is a raw month aggregation row as produced by the orders
// repository: the year/month pair plus the price sum for that month.
type MonthBucket struct {
	Year  int
	Month time.Month
	Total int64
}
