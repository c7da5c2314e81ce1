package in

import (
	"context"

	"skillbridge/internal/modules/library/dto"
	libraryin "skillbridge/internal/modules/library/port/in"
)

type CLIHandler struct {
	usecase libraryin.Usecase
}

func NewCLIHandler(usecase libraryin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListResources(ctx context.Context) ([]dto.ResourceOutput, error) {
	return h.usecase.ListResources(ctx)
}

func (h CLIHandler) Contribute(ctx context.Context, url string) (dto.ContributeOutput, error) {
	return h.usecase.Contribute(ctx, dto.ContributeInput{URL: url})
}
