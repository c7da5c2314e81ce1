package in

import (
	"context"

	"skillbridge/internal/modules/profile/dto"
)

type Usecase interface {
	Fetch(ctx context.Context) (dto.ProfileOutput, error)
	Update(ctx context.Context, input dto.UpdateInput) (dto.UpdateOutput, error)
	ChangePassword(ctx context.Context, input dto.ChangePasswordInput) (dto.ChangePasswordOutput, error)
}
