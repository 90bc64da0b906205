package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"photo-backend/internal/models"
	"photo-backend/internal/services"
)

// sendError writes the {"message": ...} body used by every failure response.
// message is a string, or a []string for aggregated validation failures.
func sendError(c *fiber.Ctx, status int, message interface{}) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

// respondError maps a service error onto its HTTP status.
func respondError(c *fiber.Ctx, err error) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return sendError(c, fiber.StatusBadRequest, verr.Messages)
	case errors.Is(err, models.ErrNotFound):
		return sendError(c, fiber.StatusNotFound, models.ErrNotFound.Error())
	case errors.Is(err, services.ErrInvalidToken):
		return sendError(c, fiber.StatusUnauthorized, services.ErrInvalidToken.Error())
	case errors.Is(err, services.ErrUnauthorized):
		return sendError(c, fiber.StatusUnauthorized, services.ErrUnauthorized.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		return sendError(c, fiber.StatusUnauthorized, services.ErrInvalidCredentials.Error())
	}

	slog.Error("request failed",
		"error", err,
		"method", c.Method(),
		"path", c.Path(),
		"request_id", c.Locals("requestid"),
	)
	return sendError(c, fiber.StatusInternalServerError, "internal server error")
}

// ErrorHandler renders errors that escape handlers (fiber.Error, recovered panics) in the same shape.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return sendError(c, fe.Code, fe.Message)
	}
	return respondError(c, err)
}
