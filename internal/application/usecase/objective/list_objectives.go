package objective

import (
	"context"
	"fmt"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/entity"
)

// ListObjectivesInput represents the input for listing objectives.
type ListObjectivesInput struct{}

// ListObjectivesOutput represents the output of listing objectives.
type ListObjectivesOutput struct {
	Objectives []*entity.Objective
}

// ListObjectivesUseCase handles listing strategic objectives.
type ListObjectivesUseCase struct {
	objectiveRepo adapter.ObjectiveRepository
}

// NewListObjectivesUseCase creates a new ListObjectivesUseCase instance.
func NewListObjectivesUseCase(objectiveRepo adapter.ObjectiveRepository) *ListObjectivesUseCase {
	return &ListObjectivesUseCase{
		objectiveRepo: objectiveRepo,
	}
}

// Execute lists every strategic objective.
func (uc *ListObjectivesUseCase) Execute(ctx context.Context, _ ListObjectivesInput) (*ListObjectivesOutput, error) {
	objectives, err := uc.objectiveRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list objectives: %w", err)
	}

	return &ListObjectivesOutput{
		Objectives: objectives,
	}, nil
}
