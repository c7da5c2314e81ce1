package in

import (
	"context"

	"skillbridge/internal/modules/path/dto"
)

type Usecase interface {
	Generate(ctx context.Context, input dto.GenerateInput) (dto.GenerateOutput, error)
}
