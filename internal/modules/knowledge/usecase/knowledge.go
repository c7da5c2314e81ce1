package usecase

import (
	"context"

	authin "skillbridge/internal/modules/auth/port/in"
	"skillbridge/internal/modules/knowledge/dto"
	knowledgein "skillbridge/internal/modules/knowledge/port/in"
	knowledgeout "skillbridge/internal/modules/knowledge/port/out"
	"skillbridge/internal/modules/knowledge/service"
	apperrors "skillbridge/internal/platform/errors"
)

type Interactor struct {
	svc      *service.KnowledgeService
	api      knowledgeout.KnowledgeAPI
	identity authin.Usecase
}

func NewInteractor(svc *service.KnowledgeService, api knowledgeout.KnowledgeAPI, identity authin.Usecase) knowledgein.Usecase {
	return &Interactor{svc: svc, api: api, identity: identity}
}

func (i *Interactor) Update(ctx context.Context, input dto.UpdateInput) (dto.UpdateOutput, error) {
	session, ok := i.identity.Current(ctx)
	if !ok {
		return dto.UpdateOutput{}, apperrors.ErrNoSession
	}
	assessment, err := i.svc.Validate(input.ConceptName, input.Level)
	if err != nil {
		return dto.UpdateOutput{}, err
	}
	message, err := i.api.Update(ctx, session.UserID, assessment)
	if err != nil {
		return dto.UpdateOutput{}, err
	}
	return dto.UpdateOutput{Message: message}, nil
}
