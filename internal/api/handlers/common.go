package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// parseBody decodes the JSON body into dst. On a malformed body it
// writes the 400 response itself and reports false, so handlers bail
// with a single check and never reach the central error handler.
func parseBody(c *fiber.Ctx, dst interface{}) bool {
	if err := c.BodyParser(dst); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
		return false
	}
	return true
}

// validationMessage strips the sentinel prefix so the client sees only
// the user-facing text.
func validationMessage(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
