package out

import (
	"context"

	"skillbridge/internal/modules/knowledge/domain"
)

type KnowledgeAPI interface {
	Update(ctx context.Context, userID int, assessment domain.Assessment) (string, error)
}
