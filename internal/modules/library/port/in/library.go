package in

import (
	"context"

	"skillbridge/internal/modules/library/dto"
)

type Usecase interface {
	ListResources(ctx context.Context) ([]dto.ResourceOutput, error)
	Contribute(ctx context.Context, input dto.ContributeInput) (dto.ContributeOutput, error)
}
