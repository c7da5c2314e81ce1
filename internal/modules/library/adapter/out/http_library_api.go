package out

import (
	"context"

	"skillbridge/internal/modules/library/domain"
	libraryout "skillbridge/internal/modules/library/port/out"
	"skillbridge/internal/platform/api"
)

type HTTPLibraryAPI struct {
	client *api.Client
}

func NewHTTPLibraryAPI(client *api.Client) libraryout.LibraryAPI {
	return &HTTPLibraryAPI{client: client}
}

type resourcePayload struct {
	ID                   int    `json:"id"`
	Title                string `json:"title"`
	URL                  string `json:"url"`
	ResourceType         string `json:"resource_type"`
	Source               string `json:"source"`
	Difficulty           string `json:"difficulty"`
	EstimatedTimeMinutes int    `json:"estimated_time_minutes"`
	Description          string `json:"description"`
}

func (a *HTTPLibraryAPI) ListResources(ctx context.Context) ([]domain.Resource, error) {
	var payload []resourcePayload
	if err := a.client.Get(ctx, "/resources", nil, false, &payload); err != nil {
		return nil, err
	}
	resources := make([]domain.Resource, len(payload))
	for i, r := range payload {
		resources[i] = domain.Resource(r)
	}
	return resources, nil
}

type contributeRequest struct {
	URL string `json:"url"`
}

type contributeResponse struct {
	Message string `json:"message"`
}

func (a *HTTPLibraryAPI) Contribute(ctx context.Context, url string) (string, error) {
	var resp contributeResponse
	if err := a.client.Post(ctx, "/fetch_and_add_resource", contributeRequest{URL: url}, true, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
