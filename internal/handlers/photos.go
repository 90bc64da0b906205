package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"photo-backend/internal/models"
	"photo-backend/internal/services"
)

// ListPhotosHandler returns every photo
func ListPhotosHandler(photoService *services.PhotoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		photos, err := photoService.List(c.Context())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(photos)
	}
}

// CreatePhotoHandler stores a photo owned by the authenticated user
func CreatePhotoHandler(photoService *services.PhotoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals(localUserID).(uint)
		if !ok {
			return sendError(c, fiber.StatusUnauthorized, "unauthorized")
		}

		var req models.CreatePhotoRequest
		// an empty body falls through to validation
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return sendError(c, fiber.StatusBadRequest, "invalid request body")
			}
		}

		photo, err := photoService.Create(c.Context(), userID, req)
		if err != nil {
			return respondError(c, err)
		}

		slog.Info("photo created", "photo_id", photo.ID, "user_id", userID)
		return c.Status(fiber.StatusCreated).JSON(photo)
	}
}

// GetPhotoHandler returns one photo with its owner's public fields
func GetPhotoHandler(photoService *services.PhotoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return respondError(c, models.ErrNotFound)
		}

		photo, err := photoService.Get(c.Context(), uint(id))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(photo.Detail())
	}
}
