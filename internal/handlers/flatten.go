package handlers

import (
	"bytes"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/jjenkins/lobbying/internal/disclosure"
	"github.com/jjenkins/lobbying/internal/records"
	"github.com/jjenkins/lobbying/internal/tabular"
)

// FlattenHandler flattens the XML request body into one stream and returns
// it as CSV. The document id comes from ?id= and defaults to "document".
func FlattenHandler(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		kind, err := disclosure.ParseKind(c.Params("family"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).SendString(err.Error())
		}
		stream, err := records.Lookup(kind, c.Params("stream"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).SendString(err.Error())
		}

		body := c.Body()
		if len(body) == 0 {
			return c.Status(fiber.StatusBadRequest).SendString("Empty request body")
		}

		id := c.Query("id", "document")
		doc, err := records.Open(kind, disclosure.FromBytes(id, bytes.Clone(body)))
		if err != nil {
			var pe *disclosure.ParseError
			var ce *disclosure.ClassificationError
			switch {
			case errors.As(err, &ce):
				return c.Status(fiber.StatusUnprocessableEntity).SendString(err.Error())
			case errors.As(err, &pe):
				return c.Status(fiber.StatusBadRequest).SendString(err.Error())
			}
			logger.Error("failed to open document", "id", id, "error", err)
			return c.Status(fiber.StatusInternalServerError).SendString("Error reading document")
		}

		var buf bytes.Buffer
		w := tabular.NewWriter(&buf)
		if err := w.WriteHeader(stream.Header); err != nil {
			return err
		}
		if err := w.WriteRows(stream.Rows(doc)); err != nil {
			return err
		}
		if err := w.Flush(); err != nil {
			return err
		}

		logger.Debug("flattened upload", "id", id, "stream", stream.Table(), "rows", w.Rows())
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		return c.Send(buf.Bytes())
	}
}
