package in

import (
	"context"

	authdto "skillbridge/internal/modules/auth/dto"
	authin "skillbridge/internal/modules/auth/port/in"
)

type CLIHandler struct {
	usecase authin.Usecase
}

func NewCLIHandler(usecase authin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Login(ctx context.Context, email, password string) (authdto.LoginOutput, error) {
	return h.usecase.Login(ctx, authdto.LoginInput{Email: email, Password: password})
}

func (h CLIHandler) Logout(ctx context.Context) {
	h.usecase.Logout(ctx)
}

func (h CLIHandler) Signup(ctx context.Context, firstName, lastName, email, password, confirm string) (authdto.SignupOutput, error) {
	return h.usecase.Signup(ctx, authdto.SignupInput{
		FirstName:       firstName,
		LastName:        lastName,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirm,
	})
}

func (h CLIHandler) RequestOTP(ctx context.Context, email string) (authdto.MessageOutput, error) {
	return h.usecase.RequestOTP(ctx, email)
}

func (h CLIHandler) VerifyOTP(ctx context.Context, email, code string) (authdto.MessageOutput, error) {
	return h.usecase.VerifyOTP(ctx, email, code)
}

func (h CLIHandler) Restore(ctx context.Context) (authdto.SessionOutput, bool) {
	return h.usecase.Restore(ctx)
}

func (h CLIHandler) Current(ctx context.Context) (authdto.SessionOutput, bool) {
	return h.usecase.Current(ctx)
}
