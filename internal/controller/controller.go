// Package controller holds the Fiber handlers. Controllers stay thin: parse
// input, call the accessor layer, map errors to status codes. Anything a
// public page reads is mounted under /api; the mutating admin surface lives
// under /api/admin behind the reverse proxy's identity layer.
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"estatecms_backend/internal/repository"
)

var validate = validator.New()

// repoError maps accessor-layer errors onto HTTP responses. Timeouts get
// their own status so the frontend can show a retry state.
func repoError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Not found",
		})
	case errors.Is(err, repository.ErrTimeout):
		return c.Status(fiber.StatusGatewayTimeout).JSON(fiber.Map{
			"error": "Database did not respond in time",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Database error",
		})
	}
}
