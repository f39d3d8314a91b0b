package middleware

import (
	"strings"

	"medmcq/internal/logger"
	"medmcq/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	SessionIDKey        = "sessionID" // Key for storing the session id in fiber.Ctx locals
)

// sessionToken prefers the Authorization header and falls back to the cookie.
func sessionToken(c *fiber.Ctx, cookieName string) string {
	if authHeader := c.Get(AuthorizationHeader); strings.HasPrefix(authHeader, BearerSchema) {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, BearerSchema))
	}
	return c.Cookies(cookieName)
}

// Protected is a middleware function that protects routes by requiring a valid
// session token, sent either as a Bearer header or as the session cookie.
func Protected(authService service.AuthService, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := sessionToken(c, cookieName)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "MISSING_SESSION",
				Message: "Login required",
				Status:  fiber.StatusUnauthorized,
			})
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			logger.Get().Debug("Session validation failed", zap.Error(err), zap.String("path", c.Path()))
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "INVALID_SESSION",
				Message: "Session is invalid or expired",
				Status:  fiber.StatusUnauthorized,
			})
		}

		c.Locals(SessionIDKey, claims.ID)
		return c.Next()
	}
}
