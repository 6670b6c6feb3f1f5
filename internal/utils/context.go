// Package utils holds the small cross-cutting helpers of gig-desk:
// typed context keys for the authenticated identity, JWT issue and
// verification, gravatar URLs, JSON response writing, the resty client
// wrapper and transaction number generation.
package utils

import (
	"context"
)

// contextKey is a private key type so values stored by this package can
// never collide with string keys from other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey carries the authenticated user's ID, placed into the
// request context by the auth middleware via [WithUserID].
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a context carrying the authenticated user's ID.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext retrieves the authenticated user's ID. The ok
// flag is false when the value is missing or has an unexpected type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
