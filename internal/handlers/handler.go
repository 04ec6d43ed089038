package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/apodego/apode/internal/config"
	"github.com/apodego/apode/internal/logging"
	"github.com/apodego/apode/internal/services"
	"github.com/apodego/apode/internal/utils"
)

// Handler contains all HTTP handlers
type Handler struct {
	logger  *logging.Logger
	version string
	// Services
	measureService *services.MeasureService
	curveService   *services.CurveService
	datasetService *services.DatasetService
}

// New creates a new handler instance
func New(logger *logging.Logger, cfg *config.Config, version string) *Handler {
	store := services.NewDatasetStore(logger, cfg.Datasets)

	return &Handler{
		logger:         logger,
		version:        version,
		measureService: services.NewMeasureService(logger, store, cfg),
		curveService:   services.NewCurveService(logger, store, cfg),
		datasetService: services.NewDatasetService(logger, store, cfg),
	}
}

// requestContext bounds a request's work by DefaultRequestTimeout
func requestContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), utils.DefaultRequestTimeout)
}
