package service

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"skillbridge/internal/platform/clock"
	apperrors "skillbridge/internal/platform/errors"
)

// AuthService holds the local validation rules that run before any
// credential leaves the process.
type AuthService struct {
	clock clock.Clock
}

func NewAuthService(clock clock.Clock) *AuthService {
	return &AuthService{clock: clock}
}

func (s *AuthService) ValidateLogin(email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", apperrors.ErrInvalidInput)
	}
	return nil
}

func (s *AuthService) ValidateSignup(firstName, lastName, email, password, confirm string) error {
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" ||
		strings.TrimSpace(email) == "" || password == "" || confirm == "" {
		return fmt.Errorf("%w: all fields are required", apperrors.ErrInvalidInput)
	}
	if password != confirm {
		return fmt.Errorf("%w: passwords do not match", apperrors.ErrInvalidInput)
	}
	return nil
}

func (s *AuthService) ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", apperrors.ErrInvalidInput)
	}
	return nil
}

// TokenUsable reports whether a restored access token is still worth
// presenting to the backend. Tokens are opaque to the client, so only a
// positively known expiry disqualifies one: a token that is not a JWT,
// or a JWT without an exp claim, passes. The signature is never checked
// here; the backend stays the authority.
func (s *AuthService) TokenUsable(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return s.clock.Now().Before(exp.Time)
}
