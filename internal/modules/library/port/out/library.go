package out

import (
	"context"

	"skillbridge/internal/modules/library/domain"
)

type LibraryAPI interface {
	ListResources(ctx context.Context) ([]domain.Resource, error)
	Contribute(ctx context.Context, url string) (string, error)
}
