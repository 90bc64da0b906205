package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"photo-backend/internal/metrics"
	"photo-backend/internal/models"
	"photo-backend/internal/services"
)

const (
	localUser   = "user"
	localUserID = "user_id"
)

// AuthMiddleware verifies the bearer token and loads the user it was issued for
func AuthMiddleware(userService *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return reject(c, services.ErrUnauthorized)
		}

		token, ok := bearerToken(authHeader)
		if !ok {
			return reject(c, services.ErrInvalidToken)
		}

		user, err := userService.Authenticate(c.Context(), token)
		if err != nil {
			if errors.Is(err, services.ErrInvalidToken) || errors.Is(err, services.ErrUnauthorized) {
				return reject(c, err)
			}
			return respondError(c, err)
		}

		c.Locals(localUser, user)
		c.Locals(localUserID, user.ID)
		return c.Next()
	}
}

// CurrentUser returns the user stored by AuthMiddleware.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(localUser).(*models.User)
	return user
}

func reject(c *fiber.Ctx, err error) error {
	reason := services.ErrUnauthorized.Error()
	if errors.Is(err, services.ErrInvalidToken) {
		reason = services.ErrInvalidToken.Error()
	}
	metrics.AuthRejections.WithLabelValues(reason).Inc()
	return sendError(c, fiber.StatusUnauthorized, reason)
}

// bearerToken extracts the token from "Bearer <token>". Any other shape, or an empty token, fails.
func bearerToken(header string) (string, bool) {
	scheme, token, _ := strings.Cut(strings.TrimSpace(header), " ")
	if !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
