package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"medmcq/internal/config"
	"medmcq/internal/domain"
	"medmcq/internal/dto"
	"medmcq/internal/logger"
	"medmcq/internal/util"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const sessionSubject = "medmcq-session"

var ErrInvalidJWTToken = errors.New("invalid jwt token")

// AuthService gates the application behind one shared password.
type AuthService interface {
	Login(password string) (token string, expiresAt time.Time, err error)
	ValidateToken(tokenString string) (*dto.SessionClaims, error)
	SessionTTL() time.Duration
}

type authServiceImpl struct {
	passwordHash [sha256.Size]byte
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(cfg config.AuthConfig) (AuthService, error) {
	if cfg.Password == "" {
		return nil, errors.New("auth password is not configured")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt secret is not configured")
	}
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &authServiceImpl{
		passwordHash: sha256.Sum256([]byte(cfg.Password)),
		secret:       []byte(cfg.JWTSecret),
		ttl:          ttl,
		now:          time.Now,
	}, nil
}

func (s *authServiceImpl) SessionTTL() time.Duration { return s.ttl }

// Login compares digests so the comparison time does not depend on the
// password length.
func (s *authServiceImpl) Login(password string) (string, time.Time, error) {
	got := sha256.Sum256([]byte(password))
	if subtle.ConstantTimeCompare(got[:], s.passwordHash[:]) != 1 {
		logger.Get().Warn("Login rejected")
		return "", time.Time{}, domain.NewUnauthorizedError("invalid password")
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := dto.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        util.NewULID(),
			Subject:   sessionSubject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, domain.NewInternalError("failed to sign session token", err)
	}
	return token, expiresAt, nil
}

func (s *authServiceImpl) ValidateToken(tokenString string) (*dto.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithSubject(sessionSubject), jwt.WithTimeFunc(s.now))
	if err != nil {
		logger.Get().Warn("JWT validation failed",
			zap.Error(err),
			zap.String("token_snippet", tokenString[:min(len(tokenString), 20)]+"..."))
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}

	if claims, ok := token.Claims.(*dto.SessionClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidJWTToken
}
