package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/jjenkins/lobbying/internal/service"
	"github.com/jjenkins/lobbying/internal/store"
)

// Register mounts every route on app
func Register(app *fiber.App, db *store.DB, logger *slog.Logger) {
	runStore := store.NewRunStore(db)
	metricsService := service.NewMetricsService(db)

	app.Get("/", HomeHandler(metricsService, logger))

	// Stream routes
	app.Get("/streams", StreamsHandler())
	app.Post("/flatten/:family/:stream", FlattenHandler(logger))

	// Load history routes
	app.Get("/runs", RunsHandler(runStore))
	app.Get("/runs/:id", RunDetailHandler(runStore))
}
