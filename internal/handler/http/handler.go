package http

import (
	"github.com/fabline/floorsync/internal/logger"
	"github.com/fabline/floorsync/internal/service"
	"github.com/fabline/floorsync/models"
)

type Handler struct {
	facade service.Facade
	build  models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(facade service.Facade, build models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		facade: facade,
		build:  build,
		logger: logger,
	}
}
