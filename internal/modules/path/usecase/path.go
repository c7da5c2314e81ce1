package usecase

import (
	"context"
	"fmt"
	"strings"

	authin "skillbridge/internal/modules/auth/port/in"
	"skillbridge/internal/modules/path/domain"
	"skillbridge/internal/modules/path/dto"
	pathin "skillbridge/internal/modules/path/port/in"
	pathout "skillbridge/internal/modules/path/port/out"
	apperrors "skillbridge/internal/platform/errors"
)

type Interactor struct {
	api      pathout.PathAPI
	identity authin.Usecase
}

func NewInteractor(api pathout.PathAPI, identity authin.Usecase) pathin.Usecase {
	return &Interactor{api: api, identity: identity}
}

func (i *Interactor) Generate(ctx context.Context, input dto.GenerateInput) (dto.GenerateOutput, error) {
	session, ok := i.identity.Current(ctx)
	if !ok {
		return dto.GenerateOutput{}, apperrors.ErrNoSession
	}
	target := strings.TrimSpace(input.TargetConcept)
	if target == "" {
		return dto.GenerateOutput{}, fmt.Errorf("%w: target concept is required", apperrors.ErrInvalidInput)
	}
	path, err := i.api.Generate(ctx, session.UserID, target)
	if err != nil {
		return dto.GenerateOutput{}, err
	}
	return toOutput(path), nil
}

func toOutput(path domain.LearningPath) dto.GenerateOutput {
	out := dto.GenerateOutput{
		TargetConcept: path.TargetConcept,
		Message:       path.Message,
		Steps:         make([]dto.StepOutput, len(path.Steps)),
	}
	for si, step := range path.Steps {
		resources := make([]dto.ResourceOutput, len(step.Resources))
		for ri, r := range step.Resources {
			resources[ri] = dto.ResourceOutput{
				ID:                   r.ID,
				Title:                r.Title,
				URL:                  r.URL,
				ResourceType:         r.ResourceType,
				Source:               r.Source,
				Difficulty:           r.Difficulty,
				EstimatedTimeMinutes: r.EstimatedTimeMinutes,
				Description:          r.Description,
			}
		}
		out.Steps[si] = dto.StepOutput{Concept: step.Concept, Resources: resources}
	}
	return out
}
