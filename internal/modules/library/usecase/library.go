package usecase

import (
	"context"
	"fmt"
	"strings"

	authin "skillbridge/internal/modules/auth/port/in"
	"skillbridge/internal/modules/library/dto"
	libraryin "skillbridge/internal/modules/library/port/in"
	libraryout "skillbridge/internal/modules/library/port/out"
	apperrors "skillbridge/internal/platform/errors"
)

type Interactor struct {
	api      libraryout.LibraryAPI
	identity authin.Usecase
}

func NewInteractor(api libraryout.LibraryAPI, identity authin.Usecase) libraryin.Usecase {
	return &Interactor{api: api, identity: identity}
}

// ListResources is public on the backend; no session guard.
func (i *Interactor) ListResources(ctx context.Context) ([]dto.ResourceOutput, error) {
	resources, err := i.api.ListResources(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ResourceOutput, len(resources))
	for idx, r := range resources {
		out[idx] = dto.ResourceOutput{
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
	return out, nil
}

func (i *Interactor) Contribute(ctx context.Context, input dto.ContributeInput) (dto.ContributeOutput, error) {
	if _, ok := i.identity.Current(ctx); !ok {
		return dto.ContributeOutput{}, apperrors.ErrNoSession
	}
	url := strings.TrimSpace(input.URL)
	if url == "" {
		return dto.ContributeOutput{}, fmt.Errorf("%w: resource url is required", apperrors.ErrInvalidInput)
	}
	message, err := i.api.Contribute(ctx, url)
	if err != nil {
		return dto.ContributeOutput{}, err
	}
	return dto.ContributeOutput{Message: message}, nil
}
