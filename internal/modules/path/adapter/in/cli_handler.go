package in

import (
	"context"

	"skillbridge/internal/modules/path/dto"
	pathin "skillbridge/internal/modules/path/port/in"
)

type CLIHandler struct {
	usecase pathin.Usecase
}

func NewCLIHandler(usecase pathin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Generate(ctx context.Context, targetConcept string) (dto.GenerateOutput, error) {
	return h.usecase.Generate(ctx, dto.GenerateInput{TargetConcept: targetConcept})
}
