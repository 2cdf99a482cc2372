package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"github.com/jjenkins/lobbying/internal/records"
)

type streamInfo struct {
	Family  string   `json:"family"`
	Chamber string   `json:"chamber"`
	Name    string   `json:"name"`
	Table   string   `json:"table"`
	Columns []string `json:"columns"`
}

// StreamsHandler lists the stream catalogue as JSON, optionally narrowed to
// one chamber with ?chamber=house or ?chamber=senate.
func StreamsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		chamber := c.Query("chamber")
		streams := lo.Filter(records.All(), func(s records.Stream, _ int) bool {
			return chamber == "" || s.Chamber() == chamber
		})

		return c.JSON(lo.Map(streams, func(s records.Stream, _ int) streamInfo {
			return streamInfo{
				Family:  s.Kind.String(),
				Chamber: s.Chamber(),
				Name:    s.Name,
				Table:   s.Table(),
				Columns: s.Header,
			}
		}))
	}
}
