package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/apodego/apode/internal/config"
	"github.com/apodego/apode/internal/handlers"
	"github.com/apodego/apode/internal/logging"
	"github.com/apodego/apode/internal/middleware"
	"github.com/apodego/apode/internal/utils"
)

// Setup configures all routes and middlewares
func Setup(app *fiber.App, logger *logging.Logger, cfg *config.Config, version string) *handlers.Handler {
	h := handlers.New(logger, cfg, version)

	// Global middlewares
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-API-Key,X-Request-ID",
	}))
	app.Use(logging.FiberMiddleware(logger, logging.DefaultMiddlewareConfig()))

	// Health check (no auth required)
	app.Get("/health", h.Health)

	authMiddleware := middleware.APIKeyAuth(logger, cfg.Auth)
	v1 := app.Group("/v1", authMiddleware)

	// Scalar measures
	v1.Get("/measures", h.ListMeasures)
	v1.Get("/measures/:family/:method?", h.Measure)
	v1.Post("/measures/:family/:method?", h.MeasurePost)

	// Distribution curves
	v1.Get("/curves/:kind?", h.Curve)
	v1.Post("/curves/:kind?", h.CurvePost)

	// Datasets and their generic surface
	v1.Get("/datasets", h.ListDatasets)
	v1.Get("/datasets/:dataset", h.DescribeDataset)
	v1.Get("/datasets/:dataset/columns/:column/stats/:stat", h.ColumnStat)
	v1.Get("/datasets/:dataset/columns/:column/plots/:plot", h.ColumnPlot)

	// 404 handler
	app.Use(h.NotFound)

	return h
}

// New creates a new Fiber app with configuration
func New(logger *logging.Logger, cfg *config.Config, version string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Apode",
		DisableStartupMessage: true,
		BodyLimit:             utils.MaxBodySize,
		ReadTimeout:           utils.ReadTimeout,
		WriteTimeout:          utils.WriteTimeout,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	Setup(app, logger, cfg, version)

	return app
}
