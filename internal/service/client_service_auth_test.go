// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sofia Onell

package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sofyone/go-gig-desk/internal/adapter"
	"github.com/sofyone/go-gig-desk/internal/app"
	"github.com/sofyone/go-gig-desk/internal/mock"
	"github.com/sofyone/go-gig-desk/internal/store"
	"github.com/sofyone/go-gig-desk/models"
)

// ─────────────────────────────────────────────
// Mock: store.SessionStore
// ─────────────────────────────────────────────

type mockSessionStore struct {
	saveFn  func(ctx context.Context, session models.ClientSession) error
	getFn   func(ctx context.Context) (models.ClientSession, error)
	clearFn func(ctx context.Context) error
}

func (m *mockSessionStore) SaveSession(ctx context.Context, session models.ClientSession) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, session)
	}
	return nil
}

func (m *mockSessionStore) GetSession(ctx context.Context) (models.ClientSession, error) {
	if m.getFn != nil {
		return m.getFn(ctx)
	}
	return models.ClientSession{}, store.ErrLocalSessionNotFound
}

func (m *mockSessionStore) ClearSession(ctx context.Context) error {
	if m.clearFn != nil {
		return m.clearFn(ctx)
	}
	return nil
}

func (m *mockSessionStore) Close() error { return nil }

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestClientAuthService_Login_SavesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)

	var saved models.ClientSession
	sessions := &mockSessionStore{
		saveFn: func(_ context.Context, session models.ClientSession) error {
			saved = session
			return nil
		},
	}

	mockAdapter.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.LoginResponse{
			Token: "issued-token",
			User:  models.User{Email: "maya@example.com", Name: "Maya"},
		}, nil)

	svc := NewClientAuthService(sessions, mockAdapter)

	user, err := svc.Login(context.Background(), models.User{
		Email:    "maya@example.com",
		Password: "s3cret",
	})

	require.NoError(t, err)
	assert.Equal(t, "Maya", user.Name)
	assert.Equal(t, "issued-token", saved.Token)
	assert.Equal(t, "maya@example.com", saved.Email)
	assert.False(t, saved.SavedAt.IsZero())
}

func TestClientAuthService_Login_WrongPasswordMapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)

	mockAdapter.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.LoginResponse{}, fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgInvalidCredentials))

	svc := NewClientAuthService(&mockSessionStore{}, mockAdapter)

	_, err := svc.Login(context.Background(), models.User{
		Email:    "maya@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestClientAuthService_Login_UnknownEmailMapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)

	mockAdapter.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.LoginResponse{}, fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgUserNotFound))

	svc := NewClientAuthService(&mockSessionStore{}, mockAdapter)

	_, err := svc.Login(context.Background(), models.User{
		Email:    "ghost@example.com",
		Password: "s3cret",
	})

	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestClientAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)

	mockAdapter.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil)

	svc := NewClientAuthService(&mockSessionStore{}, mockAdapter)

	err := svc.Register(context.Background(), models.User{
		Name:     "Maya",
		Email:    "maya@example.com",
		Password: "s3cret",
	})

	assert.NoError(t, err)
}

func TestClientAuthService_Register_DuplicateEmailMapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)

	mockAdapter.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgEmailAlreadyExists))

	svc := NewClientAuthService(&mockSessionStore{}, mockAdapter)

	err := svc.Register(context.Background(), models.User{
		Name:     "Maya",
		Email:    "maya@example.com",
		Password: "s3cret",
	})

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ─────────────────────────────────────────────
// Logout
// ─────────────────────────────────────────────

func TestClientAuthService_Logout_DropsTokenAndClearsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)

	cleared := false
	sessions := &mockSessionStore{
		clearFn: func(_ context.Context) error {
			cleared = true
			return nil
		},
	}

	mockAdapter.EXPECT().SetToken("")

	svc := NewClientAuthService(sessions, mockAdapter)

	err := svc.Logout(context.Background())

	require.NoError(t, err)
	assert.True(t, cleared)
}
