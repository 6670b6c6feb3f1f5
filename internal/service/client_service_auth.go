package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sofyone/go-gig-desk/internal/adapter"
	"github.com/sofyone/go-gig-desk/internal/store"
	"github.com/sofyone/go-gig-desk/models"
)

type clientAuthService struct {
	sessionStore store.SessionStore
	adapter      adapter.ServerAdapter
}

func NewClientAuthService(sessionStore store.SessionStore, serverAdapter adapter.ServerAdapter) ClientAuthService {
	return &clientAuthService{sessionStore: sessionStore, adapter: serverAdapter}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) error {
	if err := a.adapter.Register(ctx, user); err != nil {
		return mapAdapterError(err)
	}

	return nil
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	loginResponse, err := a.adapter.Login(ctx, user)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	session := models.ClientSession{
		Token:   loginResponse.Token,
		Email:   loginResponse.User.Email,
		SavedAt: time.Now(),
	}
	if err := a.sessionStore.SaveSession(ctx, session); err != nil {
		return models.User{}, fmt.Errorf("save session: %w", err)
	}

	return loginResponse.User, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")

	if err := a.sessionStore.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}

func (a *clientAuthService) StoredSession(ctx context.Context) (models.ClientSession, error) {
	return a.sessionStore.GetSession(ctx)
}
