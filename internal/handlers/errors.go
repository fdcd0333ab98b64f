package handlers

import (
	"bytes"
	"log/slog"

	"shopapi/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the body of every handler-level error.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// StatusFor maps a service error kind to an HTTP status code.
func StatusFor(kind services.ErrorKind) int {
	switch kind {
	case services.KindInvalidIdentifier, services.KindInvalidField:
		return fiber.StatusBadRequest
	case services.KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError writes err as an ErrorResponse. Internal details are logged,
// never returned.
func respondError(c *fiber.Ctx, op string, err error) error {
	kind := services.KindOf(err)
	status := StatusFor(kind)
	if status >= fiber.StatusInternalServerError {
		slog.Error(op+" failed", "error", err, "request_id", requestID(c))
	} else {
		slog.Debug(op+" rejected", "kind", kind.String(), "error", err, "request_id", requestID(c))
	}
	return c.Status(status).JSON(ErrorResponse{
		Success: false,
		Message: services.MessageOf(err),
	})
}

// respondBadBody reports a request body that could not be decoded.
func respondBadBody(c *fiber.Ctx, op string, err error) error {
	slog.Debug(op+" body rejected", "error", err, "request_id", requestID(c))
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Success: false,
		Message: "Invalid request body",
	})
}

// hasBody reports whether the request carries anything to parse. An empty
// update body is treated like {}.
func hasBody(c *fiber.Ctx) bool {
	return len(bytes.TrimSpace(c.Body())) > 0
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
