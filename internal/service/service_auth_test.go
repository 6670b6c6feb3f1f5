// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sofia Onell

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sofyone/go-gig-desk/internal/config"
	"github.com/sofyone/go-gig-desk/internal/logger"
	"github.com/sofyone/go-gig-desk/internal/store"
	"github.com/sofyone/go-gig-desk/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn      func(ctx context.Context, user models.User) (models.User, error)
	findByEmailFn func(ctx context.Context, email string) (models.User, error)
	findByIDFn    func(ctx context.Context, userID int64) (models.User, error)
	updateFn      func(ctx context.Context, update models.UserUpdate) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, userID)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, update)
	}
	return models.User{}, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestAuthService(repo *mockUserRepository) AuthService {
	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "gig-desk-test",
		TokenDuration: time.Hour,
	}
	return NewAuthService(repo, cfg, logger.Nop())
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestAuthService_RegisterUser_HashesPasswordAndClearsPlaintext(t *testing.T) {
	var stored models.User
	repo := &mockUserRepository{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			stored = user
			user.UserID = 1
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	registered, err := svc.RegisterUser(context.Background(), models.User{
		Name:     "Maya",
		Email:    "maya@example.com",
		Password: "s3cret",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.UserID)
	assert.Empty(t, stored.Password)
	require.NotEmpty(t, stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret")))
}

func TestAuthService_RegisterUser_GravatarFallback(t *testing.T) {
	var stored models.User
	repo := &mockUserRepository{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			stored = user
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), models.User{
		Name:     "Maya",
		Email:    "maya@example.com",
		Password: "s3cret",
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stored.ProfileImage, "https://www.gravatar.com/avatar/"))
	assert.Contains(t, stored.ProfileImage, "d=robohash")
}

func TestAuthService_RegisterUser_KeepsExplicitProfileImage(t *testing.T) {
	var stored models.User
	repo := &mockUserRepository{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			stored = user
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), models.User{
		Name:         "Maya",
		Email:        "maya@example.com",
		Password:     "s3cret",
		ProfileImage: "https://cdn.example.com/maya.png",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/maya.png", stored.ProfileImage)
}

func TestAuthService_RegisterUser_InvalidData(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.RegisterUser(context.Background(), models.User{
		Name:     "Maya",
		Email:    "not-an-email",
		Password: "s3cret",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_RegisterUser_DuplicateEmailPassthrough(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), models.User{
		Name:     "Maya",
		Email:    "maya@example.com",
		Password: "s3cret",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func testUserWithPassword(t *testing.T, password string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return models.User{
		UserID:       7,
		Name:         "Maya",
		Email:        "maya@example.com",
		PasswordHash: string(hash),
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	found := testUserWithPassword(t, "s3cret")
	repo := &mockUserRepository{
		findByEmailFn: func(_ context.Context, email string) (models.User, error) {
			assert.Equal(t, "maya@example.com", email)
			return found, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.Login(context.Background(), models.User{
		Email:    "maya@example.com",
		Password: "s3cret",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := &mockUserRepository{
		findByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), models.User{
		Email:    "ghost@example.com",
		Password: "s3cret",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	found := testUserWithPassword(t, "s3cret")
	repo := &mockUserRepository{
		findByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return found, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), models.User{
		Email:    "maya@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Login(context.Background(), models.User{Email: "maya@example.com"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────
// Tokens
// ─────────────────────────────────────────────

func TestAuthService_Token_RoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)

	userID, err := parsed.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestAuthService_ParseToken_TamperedSignature(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)

	tampered := token.SignedString[:len(token.SignedString)-2] + "xx"
	_, err = svc.ParseToken(context.Background(), tampered)

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.ParseToken(context.Background(), "not-a-jwt")

	assert.True(t, errors.Is(err, ErrTokenIsExpiredOrInvalid))
}
