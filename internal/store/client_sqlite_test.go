// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sofia Onell

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sofyone/go-gig-desk/models"
)

func newTestSessionStore(t *testing.T) SessionStore {
	t.Helper()

	store, err := NewSessionStore(":memory:")
	if err != nil {
		t.Fatalf("failed to open session store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestSessionStore_GetSession_EmptyStore(t *testing.T) {
	store := newTestSessionStore(t)

	_, err := store.GetSession(context.Background())
	if !errors.Is(err, ErrLocalSessionNotFound) {
		t.Fatalf("expected ErrLocalSessionNotFound, got %v", err)
	}
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	store := newTestSessionStore(t)
	ctx := context.Background()

	saved := models.ClientSession{
		Token:   "issued-token",
		Email:   "maya@example.com",
		SavedAt: time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC),
	}
	if err := store.SaveSession(ctx, saved); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	got, err := store.GetSession(ctx)
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if got.Token != saved.Token {
		t.Errorf("expected token %q, got %q", saved.Token, got.Token)
	}
	if got.Email != saved.Email {
		t.Errorf("expected email %q, got %q", saved.Email, got.Email)
	}
	if !got.SavedAt.Equal(saved.SavedAt) {
		t.Errorf("expected saved_at %v, got %v", saved.SavedAt, got.SavedAt)
	}
}

func TestSessionStore_SaveOverwritesPreviousSession(t *testing.T) {
	store := newTestSessionStore(t)
	ctx := context.Background()

	first := models.ClientSession{Token: "first", Email: "a@example.com", SavedAt: time.Now()}
	second := models.ClientSession{Token: "second", Email: "b@example.com", SavedAt: time.Now()}

	if err := store.SaveSession(ctx, first); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	if err := store.SaveSession(ctx, second); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	got, err := store.GetSession(ctx)
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if got.Token != "second" {
		t.Errorf("expected token %q, got %q", "second", got.Token)
	}
}

func TestSessionStore_ClearSession(t *testing.T) {
	store := newTestSessionStore(t)
	ctx := context.Background()

	session := models.ClientSession{Token: "issued-token", Email: "maya@example.com", SavedAt: time.Now()}
	if err := store.SaveSession(ctx, session); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	if err := store.ClearSession(ctx); err != nil {
		t.Fatalf("unexpected clear error: %v", err)
	}

	_, err := store.GetSession(ctx)
	if !errors.Is(err, ErrLocalSessionNotFound) {
		t.Fatalf("expected ErrLocalSessionNotFound after clear, got %v", err)
	}
}

func TestSessionStore_ClearSession_EmptyStoreIsNoError(t *testing.T) {
	store := newTestSessionStore(t)

	if err := store.ClearSession(context.Background()); err != nil {
		t.Fatalf("unexpected clear error: %v", err)
	}
}
