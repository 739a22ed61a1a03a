package measure

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/budget"
	"github.com/strategic-planning/backend/internal/domain/entity"
	"github.com/strategic-planning/backend/internal/domain/valueobject"
)

// ListPerformanceMeasuresInput represents the input for listing the measures of an initiative.
type ListPerformanceMeasuresInput struct {
	InitiativeID   uuid.UUID
	OrganizationID int64
}

// ListPerformanceMeasuresOutput represents the visible measures and their weight check.
type ListPerformanceMeasuresOutput struct {
	Measures []entity.PerformanceMeasure
	Weights  budget.WeightCheckResult
}

// ListPerformanceMeasuresUseCase handles listing performance measures.
type ListPerformanceMeasuresUseCase struct {
	initiativeRepo adapter.InitiativeRepository
	measureRepo    adapter.PerformanceMeasureRepository
	validator      budget.WeightValidator
}

// NewListPerformanceMeasuresUseCase creates a new ListPerformanceMeasuresUseCase instance.
func NewListPerformanceMeasuresUseCase(
	initiativeRepo adapter.InitiativeRepository,
	measureRepo adapter.PerformanceMeasureRepository,
	rules valueobject.PlanningRules,
) *ListPerformanceMeasuresUseCase {
	return &ListPerformanceMeasuresUseCase{
		initiativeRepo: initiativeRepo,
		measureRepo:    measureRepo,
		validator:      budget.NewWeightValidator(rules),
	}
}

// Execute lists the measures of an initiative visible to the caller's organization.
func (uc *ListPerformanceMeasuresUseCase) Execute(ctx context.Context, input ListPerformanceMeasuresInput) (*ListPerformanceMeasuresOutput, error) {
	initiative, err := findVisibleInitiative(ctx, uc.initiativeRepo, input.InitiativeID, input.OrganizationID)
	if err != nil {
		return nil, err
	}

	stored, err := uc.measureRepo.FindByInitiativeID(ctx, initiative.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list performance measures: %w", err)
	}

	measures := make([]entity.PerformanceMeasure, 0, len(stored))
	for _, m := range stored {
		if m.IsVisibleTo(input.OrganizationID) {
			measures = append(measures, *m)
		}
	}

	return &ListPerformanceMeasuresOutput{
		Measures: measures,
		Weights:  uc.validator.ValidateInitiativeMeasureWeights(*initiative, measures),
	}, nil
}
