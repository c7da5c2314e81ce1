package in

import (
	"context"

	"skillbridge/internal/modules/knowledge/dto"
)

type Usecase interface {
	Update(ctx context.Context, input dto.UpdateInput) (dto.UpdateOutput, error)
}
