package in

import (
	"context"

	"skillbridge/internal/modules/knowledge/dto"
	knowledgein "skillbridge/internal/modules/knowledge/port/in"
)

type CLIHandler struct {
	usecase knowledgein.Usecase
}

func NewCLIHandler(usecase knowledgein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Update(ctx context.Context, conceptName string, level int) (dto.UpdateOutput, error) {
	return h.usecase.Update(ctx, dto.UpdateInput{ConceptName: conceptName, Level: level})
}
