package out

import (
	"context"
	"fmt"
	"net/url"

	"skillbridge/internal/modules/path/domain"
	pathout "skillbridge/internal/modules/path/port/out"
	"skillbridge/internal/platform/api"
)

type HTTPPathAPI struct {
	client *api.Client
}

func NewHTTPPathAPI(client *api.Client) pathout.PathAPI {
	return &HTTPPathAPI{client: client}
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

type stepPayload struct {
	Concept   string            `json:"concept"`
	Resources []resourcePayload `json:"resources"`
}

type pathResponse struct {
	TargetConcept string        `json:"target_concept"`
	Message       string        `json:"message"`
	Path          []stepPayload `json:"path"`
}

func (a *HTTPPathAPI) Generate(ctx context.Context, userID int, targetConcept string) (domain.LearningPath, error) {
	query := url.Values{}
	query.Set("target_concept", targetConcept)

	var resp pathResponse
	endpoint := fmt.Sprintf("/users/%d/learning_path", userID)
	if err := a.client.Get(ctx, endpoint, query, true, &resp); err != nil {
		return domain.LearningPath{}, err
	}

	path := domain.LearningPath{
		TargetConcept: resp.TargetConcept,
		Message:       resp.Message,
		Steps:         make([]domain.Step, len(resp.Path)),
	}
	for si, step := range resp.Path {
		resources := make([]domain.Resource, len(step.Resources))
		for ri, r := range step.Resources {
			resources[ri] = domain.Resource(r)
		}
		path.Steps[si] = domain.Step{Concept: step.Concept, Resources: resources}
	}
	return path, nil
}
