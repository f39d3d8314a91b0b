package dto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the JWT claims of a logged-in session.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// LoginRequest represents the request body for logging in.
// @Description Request body for the shared-password login
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse is returned after a successful login. The token is also set
// as the session cookie.
// @Description Response body for a successful login
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// MessageResponse represents a generic message response.
// @Description Generic message response
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports dependency status.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}
