package service

import (
	"context"
	"errors"
	"time"

	"github.com/sofyone/go-gig-desk/internal/adapter"
	"github.com/sofyone/go-gig-desk/internal/store"
)

// GuardState is the session guard's verdict about the locally stored
// session.
type GuardState int

const (
	// StateChecking means verification is in flight; protected screens
	// must not render yet.
	StateChecking GuardState = iota

	// StateAuthenticated means the stored token was accepted by the
	// server and protected screens may render.
	StateAuthenticated

	// StateUnauthenticated means there is no usable session; the login
	// screen renders. Any stale token has already been cleared.
	StateUnauthenticated

	// StateErrored means verification could not complete (network
	// failure or server error). The token is kept and the user is
	// offered a retry.
	StateErrored
)

func (s GuardState) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// SessionGuard decides whether the locally stored session still grants
// access to protected screens. It distinguishes a definite rejection
// (the server said the token is stale, so it is cleared) from an
// inconclusive check (the server could not be reached, so the token is
// kept and the check can be retried).
type SessionGuard struct {
	auth    ClientAuthService
	desk    ClientDeskService
	adapter adapter.ServerAdapter

	// sessionTTL is the client-side staleness cutoff. Sessions saved
	// longer ago than this are discarded without a server round-trip.
	sessionTTL time.Duration

	// now is swappable in tests; defaults to time.Now.
	now func() time.Time

	state GuardState
	email string
}

func NewSessionGuard(clientServices *ClientServices, serverAdapter adapter.ServerAdapter, sessionTTL time.Duration) *SessionGuard {
	return &SessionGuard{
		auth:       clientServices.AuthService,
		desk:       clientServices.DeskService,
		adapter:    serverAdapter,
		sessionTTL: sessionTTL,
		now:        time.Now,
		state:      StateChecking,
	}
}

// State returns the guard's current verdict.
func (g *SessionGuard) State() GuardState {
	return g.state
}

// Email returns the account email of the verified session, if known.
func (g *SessionGuard) Email() string {
	return g.email
}

// Verify runs one full verification pass and returns the resulting
// state. It is safe to call again after StateErrored; the kept token is
// re-probed.
//
// The pass proceeds in three steps: load the stored session, reject it
// locally if it is older than the session TTL, then probe the profile
// endpoint with the token. A 401/403 probe response clears the token; a
// transport failure keeps it and yields StateErrored together with the
// underlying error.
func (g *SessionGuard) Verify(ctx context.Context) (GuardState, error) {
	g.state = StateChecking

	session, err := g.auth.StoredSession(ctx)
	if err != nil {
		if errors.Is(err, store.ErrLocalSessionNotFound) {
			g.state = StateUnauthenticated
			return g.state, nil
		}
		g.state = StateErrored
		return g.state, err
	}

	if session.Token == "" || g.now().Sub(session.SavedAt) > g.sessionTTL {
		if err := g.auth.Logout(ctx); err != nil {
			g.state = StateErrored
			return g.state, err
		}
		g.state = StateUnauthenticated
		return g.state, nil
	}

	g.adapter.SetToken(session.Token)

	if _, err := g.desk.Profile(ctx); err != nil {
		if errors.Is(err, ErrTokenIsExpiredOrInvalid) {
			// definite rejection: the token is stale, drop it
			if logoutErr := g.auth.Logout(ctx); logoutErr != nil {
				g.state = StateErrored
				return g.state, logoutErr
			}
			g.state = StateUnauthenticated
			return g.state, nil
		}

		g.state = StateErrored
		return g.state, err
	}

	g.state = StateAuthenticated
	g.email = session.Email
	return g.state, nil
}
