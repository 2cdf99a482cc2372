package handlers

import (
	"log/slog"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jjenkins/lobbying/internal/records"
	"github.com/jjenkins/lobbying/internal/service"
	"github.com/jjenkins/lobbying/internal/templates"
)

func HomeHandler(metricsService *service.MetricsService, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		streams := records.All()

		metrics := templates.HomeMetrics{}
		counts := make(map[string]int)

		system, err := metricsService.Calculate(ctx, streams)
		if err != nil {
			logger.Error("failed to count rows", "error", err)
		} else {
			for _, t := range system.Tables {
				counts[t.Table] = t.Rows
			}
			metrics.TotalRows = system.TotalRows
			metrics.Runs = system.Runs
			metrics.HasData = system.TotalRows > 0
		}

		for _, s := range streams {
			metrics.Streams = append(metrics.Streams, templates.StreamSummary{
				Family:  s.Kind.String(),
				Name:    s.Name,
				Table:   s.Table(),
				Columns: s.Header,
				Rows:    counts[s.Table()],
			})
		}

		page := templates.Home(metrics)
		handler := adaptor.HTTPHandler(templ.Handler(page))

		return handler(c)
	}
}
