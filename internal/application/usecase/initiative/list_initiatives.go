package initiative

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/budget"
	"github.com/strategic-planning/backend/internal/domain/entity"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
	"github.com/strategic-planning/backend/internal/domain/valueobject"
)

// ListInitiativesInput represents the input for listing an objective's initiatives.
type ListInitiativesInput struct {
	ObjectiveID    uuid.UUID
	OrganizationID int64
}

// ListInitiativesOutput represents the output of listing an objective's initiatives.
type ListInitiativesOutput struct {
	Objective   *entity.Objective
	Initiatives []entity.Initiative
	Weights     budget.WeightCheckResult
}

// ListInitiativesUseCase handles listing the initiatives visible to an organization.
type ListInitiativesUseCase struct {
	objectiveRepo  adapter.ObjectiveRepository
	initiativeRepo adapter.InitiativeRepository
	validator      budget.WeightValidator
}

// NewListInitiativesUseCase creates a new ListInitiativesUseCase instance.
func NewListInitiativesUseCase(
	objectiveRepo adapter.ObjectiveRepository,
	initiativeRepo adapter.InitiativeRepository,
	rules valueobject.PlanningRules,
) *ListInitiativesUseCase {
	return &ListInitiativesUseCase{
		objectiveRepo:  objectiveRepo,
		initiativeRepo: initiativeRepo,
		validator:      budget.NewWeightValidator(rules),
	}
}

// Execute lists visible initiatives with the objective's initiative weight check.
func (uc *ListInitiativesUseCase) Execute(ctx context.Context, input ListInitiativesInput) (*ListInitiativesOutput, error) {
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

	initiatives, err := uc.initiativeRepo.FindByObjectiveID(ctx, objective.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list initiatives: %w", err)
	}

	visible := visibleInitiatives(initiatives, input.OrganizationID)

	return &ListInitiativesOutput{
		Objective:   objective,
		Initiatives: visible,
		Weights:     uc.validator.ValidateObjectiveInitiativeWeights(*objective, visible),
	}, nil
}
