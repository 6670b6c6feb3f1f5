// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sofia Onell

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofyone/go-gig-desk/internal/app"
	"github.com/sofyone/go-gig-desk/internal/logger"
	"github.com/sofyone/go-gig-desk/internal/service"
	"github.com/sofyone/go-gig-desk/internal/store"
	"github.com/sofyone/go-gig-desk/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
	}
	return NewHandler(svcs, logger.Nop())
}

// userBody serialises a models.User to a JSON request body string.
func userBody(t *testing.T, u models.User) string {
	t.Helper()
	b, err := json.Marshal(u)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token carrying the given signed string and
// user id in its subject claim.
func stubToken(signed string, userID string) models.Token {
	return models.Token{
		RegisteredClaims: jwt.RegisteredClaims{Subject: userID},
		SignedString:     signed,
	}
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "maya@example.com", u.Email)
			u.UserID = 1
			return u, nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(userBody(t, models.User{
			Name:     "Maya",
			Email:    "maya@example.com",
			Password: "s3cret",
		})))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, app.MsgUserRegistered, decodeMessage(t, rec))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	h := newHandlerWithAuth(t, auth)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(userBody(t, models.User{
			Name:     "Maya",
			Email:    "maya@example.com",
			Password: "s3cret",
		})))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgEmailAlreadyExists, decodeMessage(t, rec))
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, decodeMessage(t, rec))
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success_ReturnsTokenAndSanitizedUser(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, u models.User) (models.User, error) {
			return models.User{
				UserID:       7,
				Name:         "Maya",
				Email:        u.Email,
				PasswordHash: "$2a$10$hash",
			}, nil
		},
		createTokenFn: func(_ context.Context, u models.User) (models.Token, error) {
			assert.Equal(t, int64(7), u.UserID)
			return stubToken(signedToken, "7"), nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(userBody(t, models.User{
			Email:    "maya@example.com",
			Password: "s3cret",
		})))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, signedToken, body.Token)
	assert.Equal(t, "Maya", body.User.Name)
	assert.Empty(t, body.User.Password)
	assert.NotContains(t, rec.Body.String(), "$2a$10$hash")
}

func TestLogin_UnknownEmail(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	h := newHandlerWithAuth(t, auth)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(userBody(t, models.User{
			Email:    "ghost@example.com",
			Password: "s3cret",
		})))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgUserNotFound, decodeMessage(t, rec))
}

func TestLogin_WrongPassword(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, service.ErrWrongPassword
		},
	}
	h := newHandlerWithAuth(t, auth)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(userBody(t, models.User{
			Email:    "maya@example.com",
			Password: "wrong",
		})))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidCredentials, decodeMessage(t, rec))
}

func TestLogin_TokenCreationFailure(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, u models.User) (models.User, error) {
			return models.User{UserID: 7, Email: u.Email}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}
	h := newHandlerWithAuth(t, auth)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(userBody(t, models.User{
			Email:    "maya@example.com",
			Password: "s3cret",
		})))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, app.MsgInternalServerError, decodeMessage(t, rec))
}
