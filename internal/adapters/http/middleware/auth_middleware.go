package middleware

import (
	"strings"

	"libshelf/internal/config"
	"libshelf/internal/pkg/jwt"
	"libshelf/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware creates authentication middleware. A missing bearer token
// is 401; a token that fails verification or has expired is 403.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accessToken string

		authHeader := c.Get("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			accessToken = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Forbidden(c, "Access token expired")
			}
			return response.Forbidden(c, "Invalid access token")
		}

		c.Locals("userID", claims.UserID)
		c.Locals("userName", claims.Name)

		return c.Next()
	}
}
