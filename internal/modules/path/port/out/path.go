package out

import (
	"context"

	"skillbridge/internal/modules/path/domain"
)

type PathAPI interface {
	Generate(ctx context.Context, userID int, targetConcept string) (domain.LearningPath, error)
}
