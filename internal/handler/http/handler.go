package http

import (
	"github.com/avdeev/go-coursebook/internal/config"
	"github.com/avdeev/go-coursebook/internal/logger"
	"github.com/avdeev/go-coursebook/internal/service"
)

type Handler struct {
	services *service.Services

	// logGlobalErrors enables stack logging in the panic recoverer.
	logGlobalErrors bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:        services,
		logGlobalErrors: cfg.EnableGlobalErrorLogging,
		logger:          logger,
	}
}
