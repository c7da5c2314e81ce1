package in

import (
	"context"

	"skillbridge/internal/modules/profile/dto"
	profilein "skillbridge/internal/modules/profile/port/in"
)

type CLIHandler struct {
	usecase profilein.Usecase
}

func NewCLIHandler(usecase profilein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Fetch(ctx context.Context) (dto.ProfileOutput, error) {
	return h.usecase.Fetch(ctx)
}

func (h CLIHandler) Update(ctx context.Context, input dto.UpdateInput) (dto.UpdateOutput, error) {
	return h.usecase.Update(ctx, input)
}

func (h CLIHandler) ChangePassword(ctx context.Context, oldPassword, newPassword string) (dto.ChangePasswordOutput, error) {
	return h.usecase.ChangePassword(ctx, dto.ChangePasswordInput{OldPassword: oldPassword, NewPassword: newPassword})
}
