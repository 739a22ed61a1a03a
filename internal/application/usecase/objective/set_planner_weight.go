package objective

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/entity"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
	"github.com/strategic-planning/backend/internal/domain/valueobject"
)

// SetPlannerWeightInput represents the input for overriding an objective's weight.
type SetPlannerWeightInput struct {
	ObjectiveID uuid.UUID
	Role        entity.UserRole
	Weight      *decimal.Decimal // nil clears the override
}

// SetPlannerWeightOutput represents the output of overriding an objective's weight.
type SetPlannerWeightOutput struct {
	Objective *entity.Objective
}

// SetPlannerWeightUseCase handles planner weight overrides.
type SetPlannerWeightUseCase struct {
	objectiveRepo adapter.ObjectiveRepository
	cache         adapter.SummaryCache
}

// NewSetPlannerWeightUseCase creates a new SetPlannerWeightUseCase instance.
func NewSetPlannerWeightUseCase(objectiveRepo adapter.ObjectiveRepository, cache adapter.SummaryCache) *SetPlannerWeightUseCase {
	return &SetPlannerWeightUseCase{
		objectiveRepo: objectiveRepo,
		cache:         cache,
	}
}

// Execute sets or clears the planner weight of an objective.
func (uc *SetPlannerWeightUseCase) Execute(ctx context.Context, input SetPlannerWeightInput) (*SetPlannerWeightOutput, error) {
	if !input.Role.CanEditPlans() {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeForbiddenRole,
			"only planners can change objective weights",
			domainerror.ErrForbiddenRole,
		)
	}

	if input.Weight != nil && !valueobject.IsValidItemWeight(*input.Weight) {
		return nil, domainerror.NewPlanningError(
			domainerror.ErrCodeInvalidWeight,
			"planner weight must be greater than 0 and at most 100",
			domainerror.ErrInvalidWeight,
		)
	}

	objective, err := uc.objectiveRepo.FindByID(ctx, input.ObjectiveID)
	if err != nil {
		if errors.Is(err, domainerror.ErrObjectiveNotFound) {
			return nil, domainerror.NewPlanningError(
				domainerror.ErrCodeObjectiveNotFound,
				"objective not found",
				domainerror.ErrObjectiveNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find objective: %w", err)
	}

	if err := uc.objectiveRepo.UpdatePlannerWeight(ctx, objective.ID, input.Weight); err != nil {
		return nil, fmt.Errorf("failed to update planner weight: %w", err)
	}
	objective.PlannerWeight = input.Weight

	invalidateSummaries(ctx, uc.cache)

	return &SetPlannerWeightOutput{
		Objective: objective,
	}, nil
}
