package handler

import (
	"github.com/sofyone/go-gig-desk/internal/config"
	"github.com/sofyone/go-gig-desk/internal/handler/http"
	"github.com/sofyone/go-gig-desk/internal/logger"
	"github.com/sofyone/go-gig-desk/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
