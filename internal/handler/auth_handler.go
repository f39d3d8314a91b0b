package handler

import (
	"time"

	"medmcq/internal/domain"
	"medmcq/internal/dto"
	"medmcq/internal/logger"
	"medmcq/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler handles the shared-password session endpoints.
type AuthHandler struct {
	authService service.AuthService
	cookieName  string
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(authService service.AuthService, cookieName string) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookieName:  cookieName,
	}
}

// Login godoc
// @Summary Log in
// @Description Exchanges the shared password for a session token, also set as an HTTP-only cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Password"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be JSON")
	}
	if req.Password == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("password")}
	}

	token, expiresAt, err := h.authService.Login(req.Password)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   c.Secure(),
		SameSite: "Lax",
		Path:     "/",
	})
	logger.Get().Info("Session started", zap.Time("expires_at", expiresAt))

	return c.JSON(dto.LoginResponse{Token: token, ExpiresAt: expiresAt})
}

// Logout godoc
// @Summary Log out
// @Description Clears the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   c.Secure(),
		SameSite: "Lax",
		Path:     "/",
	})
	return c.JSON(dto.MessageResponse{Message: "Logged out"})
}
