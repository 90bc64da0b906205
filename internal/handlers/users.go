package handlers

import (
	"github.com/gofiber/fiber/v2"

	"photo-backend/internal/models"
	"photo-backend/internal/services"
)

func RegisterHandler(userService *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.RegisterRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return sendError(c, fiber.StatusBadRequest, "invalid request body")
			}
		}

		user, err := userService.Register(c.Context(), req)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(user.Summary())
	}
}

func LoginHandler(userService *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return sendError(c, fiber.StatusBadRequest, "invalid request body")
		}

		res, err := userService.Login(c.Context(), req)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}
