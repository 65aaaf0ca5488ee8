package middleware

import (
	"errors"
	"strings"

	"lifeline-blood/internal/config"
	"lifeline-blood/internal/pkg/jwt"
	"lifeline-blood/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by AuthMiddleware
const (
	LocalAdminID = "adminID"
	LocalEmail   = "email"
)

// AuthMiddleware requires a valid bearer session token
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Extract the token from the Authorization header
		authHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return response.Unauthorized(c, "Access token required")
		}

		// 2. Verify signature and expiry
		claims, err := jwt.ValidateAccessToken(strings.TrimSpace(token), cfg.JWT.Secret)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		// 3. Attach the admin identity
		c.Locals(LocalAdminID, claims.AdminID)
		c.Locals(LocalEmail, claims.Email)

		return c.Next()
	}
}

// AdminID returns the authenticated admin id, or "" outside AuthMiddleware
func AdminID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalAdminID).(string)
	return id
}
