package middleware

import (
	"strings"

	"talentmatch/internal/pkg/jwt"
	"talentmatch/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

const (
	LocalsUserID = "user_id"
	LocalsRole   = "role"
)

// RequireAuth validates the bearer token and exposes the caller's identity
// through locals.
func RequireAuth(tokens *jwt.Service) fiber.Handler {
	return func(c fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return response.Error(c, fiber.StatusUnauthorized, "missing authorization header")
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return response.Error(c, fiber.StatusUnauthorized, "malformed authorization header")
		}

		claims, err := tokens.ValidateAccessToken(strings.TrimSpace(parts[1]))
		if err != nil {
			return response.Error(c, fiber.StatusUnauthorized, "invalid or expired token")
		}

		c.Locals(LocalsUserID, claims.UserID)
		c.Locals(LocalsRole, claims.Role)
		return c.Next()
	}
}
