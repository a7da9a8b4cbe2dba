package http

import (
	"github.com/oraculo-app/oraculo-sync/internal/logger"
	"github.com/oraculo-app/oraculo-sync/internal/service"
	"github.com/oraculo-app/oraculo-sync/internal/utils"
)

type Handler struct {
	services *service.Services
	uuids    *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		uuids:    utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
