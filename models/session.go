package models

import "time"

// ClientSession is the locally persisted authentication state of the
// terminal client: the last issued session token plus enough metadata to
// judge staleness without a server round-trip.
type ClientSession struct {
	// Token is the compact JWS string issued at login.
	Token string

	// Email is the account the token was issued for; shown in the UI.
	Email string

	// SavedAt is when the token was stored. Sessions older than the
	// configured client TTL are discarded without probing the server.
	SavedAt time.Time
}
