package service

import (
	"fmt"
	"strings"

	"skillbridge/internal/modules/knowledge/domain"
	apperrors "skillbridge/internal/platform/errors"
)

type KnowledgeService struct{}

func NewKnowledgeService() *KnowledgeService {
	return &KnowledgeService{}
}

// Validate normalizes and checks an assessment before it is sent.
func (s *KnowledgeService) Validate(conceptName string, level int) (domain.Assessment, error) {
	concept := strings.TrimSpace(conceptName)
	if concept == "" {
		return domain.Assessment{}, fmt.Errorf("%w: concept name is required", apperrors.ErrInvalidInput)
	}
	if level < domain.MinLevel || level > domain.MaxLevel {
		return domain.Assessment{}, fmt.Errorf("%w: level must be between %d and %d",
			apperrors.ErrInvalidInput, domain.MinLevel, domain.MaxLevel)
	}
	return domain.Assessment{ConceptName: concept, Level: level}, nil
}
