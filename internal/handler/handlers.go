package handler

import (
	"github.com/fabline/floorsync/internal/config"
	"github.com/fabline/floorsync/internal/handler/http"
	"github.com/fabline/floorsync/internal/logger"
	"github.com/fabline/floorsync/internal/service"
	"github.com/fabline/floorsync/models"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, build models.AppBuildInfo, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services.Facade, build, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
