package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"gamereview/internal/apperrors"
	"gamereview/internal/services"
)

// AuthRequired is a Fiber middleware gating write routes behind a valid
// bearer token. Errors flow to the app's central error handler.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperrors.New(apperrors.Unauthorized, "authorization header is required")
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return apperrors.New(apperrors.Unauthorized, "authorization header format must be 'Bearer <token>'")
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			return err
		}

		// Identity for downstream handlers.
		c.Locals("player_id", claims["player_id"])
		c.Locals("username", claims["username"])

		return c.Next()
	}
}
