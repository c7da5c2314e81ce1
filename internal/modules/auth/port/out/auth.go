package out

import (
	"context"

	"skillbridge/internal/modules/auth/domain"
	"skillbridge/internal/modules/auth/dto"
)

// SessionStore persists the session pair in the durable store. Load
// returns apperrors.ErrNoSession when either half is absent or the
// stored user record does not decode.
type SessionStore interface {
	Save(ctx context.Context, session domain.Session) error
	Load(ctx context.Context) (domain.Session, error)
	Clear(ctx context.Context) error
}

// AuthAPI is the backend's unauthenticated credential surface.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (domain.Session, error)
	Signup(ctx context.Context, input dto.SignupInput) (string, error)
	RequestOTP(ctx context.Context, email string) (string, error)
	VerifyOTP(ctx context.Context, email, code string) (string, error)
}
