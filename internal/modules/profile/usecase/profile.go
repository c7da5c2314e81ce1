package usecase

import (
	"context"
	"fmt"

	authin "skillbridge/internal/modules/auth/port/in"
	"skillbridge/internal/modules/profile/domain"
	"skillbridge/internal/modules/profile/dto"
	profilein "skillbridge/internal/modules/profile/port/in"
	profileout "skillbridge/internal/modules/profile/port/out"
	apperrors "skillbridge/internal/platform/errors"
)

type Interactor struct {
	api      profileout.ProfileAPI
	identity authin.Usecase
}

func NewInteractor(api profileout.ProfileAPI, identity authin.Usecase) profilein.Usecase {
	return &Interactor{api: api, identity: identity}
}

func (i *Interactor) Fetch(ctx context.Context) (dto.ProfileOutput, error) {
	session, ok := i.identity.Current(ctx)
	if !ok {
		return dto.ProfileOutput{}, apperrors.ErrNoSession
	}
	profile, err := i.api.Fetch(ctx, session.UserID)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	return toOutput(profile), nil
}

func (i *Interactor) Update(ctx context.Context, input dto.UpdateInput) (dto.UpdateOutput, error) {
	session, ok := i.identity.Current(ctx)
	if !ok {
		return dto.UpdateOutput{}, apperrors.ErrNoSession
	}
	if input.FirstName == "" && input.LastName == "" && len(input.PreferredContentTypes) == 0 &&
		input.TimeAvailability == "" && input.DifficultyPreference == "" {
		return dto.UpdateOutput{}, fmt.Errorf("%w: nothing to update", apperrors.ErrInvalidInput)
	}
	message, err := i.api.Update(ctx, session.UserID, input)
	if err != nil {
		return dto.UpdateOutput{}, err
	}
	return dto.UpdateOutput{Message: message}, nil
}

func (i *Interactor) ChangePassword(ctx context.Context, input dto.ChangePasswordInput) (dto.ChangePasswordOutput, error) {
	session, ok := i.identity.Current(ctx)
	if !ok {
		return dto.ChangePasswordOutput{}, apperrors.ErrNoSession
	}
	if input.OldPassword == "" || input.NewPassword == "" {
		return dto.ChangePasswordOutput{}, fmt.Errorf("%w: old and new passwords are required", apperrors.ErrInvalidInput)
	}
	message, err := i.api.ChangePassword(ctx, session.UserID, input.OldPassword, input.NewPassword)
	if err != nil {
		return dto.ChangePasswordOutput{}, err
	}
	return dto.ChangePasswordOutput{Message: message}, nil
}

func toOutput(profile domain.Profile) dto.ProfileOutput {
	return dto.ProfileOutput{
		ID:                    profile.ID,
		FirstName:             profile.FirstName,
		LastName:              profile.LastName,
		Email:                 profile.Email,
		PreferredContentTypes: profile.PreferredContentTypes,
		TimeAvailability:      profile.TimeAvailability,
		DifficultyPreference:  profile.DifficultyPreference,
	}
}
