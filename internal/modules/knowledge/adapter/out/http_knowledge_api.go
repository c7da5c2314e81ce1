package out

import (
	"context"
	"fmt"

	"skillbridge/internal/modules/knowledge/domain"
	knowledgeout "skillbridge/internal/modules/knowledge/port/out"
	"skillbridge/internal/platform/api"
)

type HTTPKnowledgeAPI struct {
	client *api.Client
}

func NewHTTPKnowledgeAPI(client *api.Client) knowledgeout.KnowledgeAPI {
	return &HTTPKnowledgeAPI{client: client}
}

type updateRequest struct {
	ConceptName string `json:"concept_name"`
	Level       int    `json:"level"`
}

type updateResponse struct {
	Message string `json:"message"`
}

func (a *HTTPKnowledgeAPI) Update(ctx context.Context, userID int, assessment domain.Assessment) (string, error) {
	var resp updateResponse
	endpoint := fmt.Sprintf("/users/%d/knowledge", userID)
	req := updateRequest{ConceptName: assessment.ConceptName, Level: assessment.Level}
	if err := a.client.Post(ctx, endpoint, req, true, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
