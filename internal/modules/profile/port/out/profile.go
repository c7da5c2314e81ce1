package out

import (
	"context"

	"skillbridge/internal/modules/profile/domain"
	"skillbridge/internal/modules/profile/dto"
)

type ProfileAPI interface {
	Fetch(ctx context.Context, userID int) (domain.Profile, error)
	Update(ctx context.Context, userID int, input dto.UpdateInput) (string, error)
	ChangePassword(ctx context.Context, userID int, oldPassword, newPassword string) (string, error)
}
