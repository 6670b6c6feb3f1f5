package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sofyone/go-gig-desk/models"
)

// ErrLocalSessionNotFound is returned when the local store holds no saved
// session (first run, or after logout).
var ErrLocalSessionNotFound = errors.New("local session not found")

// SessionStore persists the client's authentication state between runs.
type SessionStore interface {
	SaveSession(ctx context.Context, session models.ClientSession) error
	GetSession(ctx context.Context) (models.ClientSession, error)
	ClearSession(ctx context.Context) error
	Close() error
}

// sqliteSessionStore is the SQLite-backed implementation of [SessionStore].
// A single-row table keeps the last issued token; ":memory:" keeps the
// session for one run only.
type sqliteSessionStore struct {
	db *sql.DB
}

const createSessionTable = `CREATE TABLE IF NOT EXISTS session (
    id       INTEGER PRIMARY KEY CHECK (id = 1),
    token    TEXT NOT NULL,
    email    TEXT NOT NULL,
    saved_at TIMESTAMP NOT NULL
);`

// NewSessionStore opens (or creates) the SQLite session database at dsn.
// An empty dsn falls back to an in-memory store.
func NewSessionStore(dsn string) (SessionStore, error) {
	if dsn == "" {
		dsn = ":memory:"
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	if _, err = conn.Exec(createSessionTable); err != nil {
		return nil, fmt.Errorf("init session store schema: %w", err)
	}

	return &sqliteSessionStore{db: conn}, nil
}

// SaveSession upserts the single session row.
func (s *sqliteSessionStore) SaveSession(ctx context.Context, session models.ClientSession) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO session (id, token, email, saved_at) VALUES (1, ?, ?, ?)
         ON CONFLICT (id) DO UPDATE SET token = excluded.token, email = excluded.email, saved_at = excluded.saved_at;`,
		session.Token, session.Email, session.SavedAt)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

// GetSession returns the stored session or [ErrLocalSessionNotFound].
func (s *sqliteSessionStore) GetSession(ctx context.Context) (models.ClientSession, error) {
	var session models.ClientSession
	row := s.db.QueryRowContext(ctx, `SELECT token, email, saved_at FROM session WHERE id = 1;`)
	if err := row.Scan(&session.Token, &session.Email, &session.SavedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ClientSession{}, ErrLocalSessionNotFound
		}
		return models.ClientSession{}, fmt.Errorf("read session: %w", err)
	}

	return session, nil
}

// ClearSession removes the stored session, if any.
func (s *sqliteSessionStore) ClearSession(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE id = 1;`); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}

// Close releases the underlying database handle.
func (s *sqliteSessionStore) Close() error {
	return s.db.Close()
}
