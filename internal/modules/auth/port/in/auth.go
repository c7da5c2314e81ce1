package in

import (
	"context"

	"skillbridge/internal/modules/auth/dto"
)

type Usecase interface {
	// Restore loads a persisted session, if any. It never fails:
	// missing, partial, corrupt, or expired data all mean "no session".
	Restore(ctx context.Context) (dto.SessionOutput, bool)
	Login(ctx context.Context, input dto.LoginInput) (dto.LoginOutput, error)
	Logout(ctx context.Context)
	Signup(ctx context.Context, input dto.SignupInput) (dto.SignupOutput, error)
	RequestOTP(ctx context.Context, email string) (dto.MessageOutput, error)
	VerifyOTP(ctx context.Context, email, code string) (dto.MessageOutput, error)
	// Current reports the in-memory session.
	Current(ctx context.Context) (dto.SessionOutput, bool)
	// Invalidate tears the session down after the backend rejected its
	// token on a protected call.
	Invalidate(ctx context.Context)
}
