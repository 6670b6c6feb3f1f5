// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sofia Onell

package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/sofyone/go-gig-desk/internal/adapter"
	"github.com/sofyone/go-gig-desk/internal/config"
	"github.com/sofyone/go-gig-desk/internal/logger"
	"github.com/sofyone/go-gig-desk/internal/service"
	"github.com/sofyone/go-gig-desk/internal/store"
	"github.com/sofyone/go-gig-desk/internal/tui"
)

// App is the interactive client application. It owns the local session
// store, the server adapter, and the terminal UI, and tears them down in
// order when the UI exits.
type App struct {
	logger *logger.Logger
}

// NewApp creates the client application shell. Configuration and
// connections are established lazily inside Run so that a failed start
// still produces a clean error instead of a half-built process.
func NewApp() *App {
	return &App{
		logger: logger.NewClientLogger("client"),
	}
}

// Run loads the configuration, wires the session store, server adapter,
// client services, and session guard together, and drives the terminal
// UI until the user quits.
func (a *App) Run() error {
	log := a.logger

	cfg, err := config.GetClientConfig()
	if err != nil {
		return fmt.Errorf("error loading client config: %w", err)
	}

	sessionStore, err := store.NewSessionStore(cfg.Session.DSN)
	if err != nil {
		return fmt.Errorf("error opening session store: %w", err)
	}
	defer func() {
		if closeErr := sessionStore.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("error closing session store")
		}
	}()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log.GetChildLogger())
	if err != nil {
		return fmt.Errorf("error creating server adapter: %w", err)
	}

	services := service.NewClientServices(sessionStore, serverAdapter)
	guard := service.NewSessionGuard(services, serverAdapter, cfg.Session.TTL)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	ui := tui.New(services, guard)

	log.Info().Str("server", cfg.Adapter.BaseURL).Msg("client started")

	err = ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		log.Info().Msg("client stopped by user")
		return nil
	}
	if err != nil {
		return fmt.Errorf("error running terminal UI: %w", err)
	}

	return nil
}
