package middleware

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// NotFound answers every request no route matched.
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"message": "Route not found",
	})
}

// ErrorHandler is the fiber.Config ErrorHandler. Errors that escape a handler
// (including recovered panics) become a generic 500; fiber's own errors keep
// their status.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		if fe.Code == fiber.StatusNotFound {
			return NotFound(c)
		}
		return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
	}

	id, _ := c.Locals("requestid").(string)
	slog.Error("unhandled error", "error", err, "method", c.Method(), "path", c.Path(), "request_id", id)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
	})
}
