package out

import (
	"context"
	"fmt"

	"skillbridge/internal/modules/profile/domain"
	"skillbridge/internal/modules/profile/dto"
	profileout "skillbridge/internal/modules/profile/port/out"
	"skillbridge/internal/platform/api"
)

type HTTPProfileAPI struct {
	client *api.Client
}

func NewHTTPProfileAPI(client *api.Client) profileout.ProfileAPI {
	return &HTTPProfileAPI{client: client}
}

type profileResponse struct {
	ID                    int      `json:"id"`
	FirstName             string   `json:"first_name"`
	LastName              string   `json:"last_name"`
	Email                 string   `json:"email"`
	PreferredContentTypes []string `json:"preferred_content_types"`
	TimeAvailability      string   `json:"time_availability"`
	DifficultyPreference  string   `json:"difficulty_preference"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (a *HTTPProfileAPI) Fetch(ctx context.Context, userID int) (domain.Profile, error) {
	var resp profileResponse
	endpoint := fmt.Sprintf("/users/%d/profile", userID)
	if err := a.client.Get(ctx, endpoint, nil, true, &resp); err != nil {
		return domain.Profile{}, err
	}
	return domain.Profile(resp), nil
}

func (a *HTTPProfileAPI) Update(ctx context.Context, userID int, input dto.UpdateInput) (string, error) {
	// Only changed fields go over the wire; the backend patches the rest.
	body := map[string]any{}
	if input.FirstName != "" {
		body["first_name"] = input.FirstName
	}
	if input.LastName != "" {
		body["last_name"] = input.LastName
	}
	if len(input.PreferredContentTypes) > 0 {
		body["preferred_content_types"] = input.PreferredContentTypes
	}
	if input.TimeAvailability != "" {
		body["time_availability"] = input.TimeAvailability
	}
	if input.DifficultyPreference != "" {
		body["difficulty_preference"] = input.DifficultyPreference
	}

	var resp messageResponse
	endpoint := fmt.Sprintf("/users/%d/profile", userID)
	if err := a.client.Put(ctx, endpoint, body, true, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func (a *HTTPProfileAPI) ChangePassword(ctx context.Context, userID int, oldPassword, newPassword string) (string, error) {
	var resp messageResponse
	endpoint := fmt.Sprintf("/users/%d/change_password", userID)
	req := changePasswordRequest{OldPassword: oldPassword, NewPassword: newPassword}
	if err := a.client.Put(ctx, endpoint, req, true, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
