package handlers

import (
	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/google/uuid"

	"github.com/jjenkins/lobbying/internal/store"
	"github.com/jjenkins/lobbying/internal/templates"
)

const recentRuns = 50

// RunsHandler renders the load history page
func RunsHandler(runStore *store.RunStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		runs, err := runStore.GetRecent(c.UserContext(), recentRuns)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString("Error loading runs")
		}

		page := templates.Runs(runs)
		handler := adaptor.HTTPHandler(templ.Handler(page))

		return handler(c)
	}
}

// RunDetailHandler returns one load run as JSON
func RunDetailHandler(runStore *store.RunStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).SendString("Invalid run id")
		}

		run, err := runStore.GetByID(c.UserContext(), id)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString("Error loading run")
		}
		if run == nil {
			return c.Status(fiber.StatusNotFound).SendString("Run not found")
		}

		var finished *string
		if run.FinishedAt.Valid {
			s := run.FinishedAt.Time.UTC().Format("2006-01-02T15:04:05Z07:00")
			finished = &s
		}
		return c.JSON(fiber.Map{
			"id":          run.ID,
			"family":      run.Family,
			"status":      run.Status,
			"started_at":  run.StartedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
			"finished_at": finished,
			"sources":     run.Total,
			"processed":   run.Processed,
			"failed":      run.Failed,
			"rows":        run.Rows,
		})
	}
}
