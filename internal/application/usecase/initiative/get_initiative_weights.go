package initiative

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/budget"
	"github.com/strategic-planning/backend/internal/domain/entity"
	"github.com/strategic-planning/backend/internal/domain/valueobject"
)

// GetInitiativeWeightsInput represents the input for an initiative weight check.
type GetInitiativeWeightsInput struct {
	InitiativeID   uuid.UUID
	OrganizationID int64
}

// GetInitiativeWeightsOutput represents the output of an initiative weight check.
type GetInitiativeWeightsOutput struct {
	Initiative *entity.Initiative
	Activities budget.WeightCheckResult
	Measures   budget.WeightCheckResult
}

// GetInitiativeWeightsUseCase reports how an initiative's activities and measures fill their weight shares.
type GetInitiativeWeightsUseCase struct {
	initiativeRepo adapter.InitiativeRepository
	activityRepo   adapter.MainActivityRepository
	measureRepo    adapter.PerformanceMeasureRepository
	validator      budget.WeightValidator
}

// NewGetInitiativeWeightsUseCase creates a new GetInitiativeWeightsUseCase instance.
func NewGetInitiativeWeightsUseCase(
	initiativeRepo adapter.InitiativeRepository,
	activityRepo adapter.MainActivityRepository,
	measureRepo adapter.PerformanceMeasureRepository,
	rules valueobject.PlanningRules,
) *GetInitiativeWeightsUseCase {
	return &GetInitiativeWeightsUseCase{
		initiativeRepo: initiativeRepo,
		activityRepo:   activityRepo,
		measureRepo:    measureRepo,
		validator:      budget.NewWeightValidator(rules),
	}
}

// Execute checks the activity and measure weight shares of an initiative.
func (uc *GetInitiativeWeightsUseCase) Execute(ctx context.Context, input GetInitiativeWeightsInput) (*GetInitiativeWeightsOutput, error) {
	initiative, err := findVisibleInitiative(ctx, uc.initiativeRepo, input.InitiativeID, input.OrganizationID)
	if err != nil {
		return nil, err
	}

	activities, err := uc.activityRepo.FindByInitiativeID(ctx, initiative.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list main activities: %w", err)
	}

	measures, err := uc.measureRepo.FindByInitiativeID(ctx, initiative.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list performance measures: %w", err)
	}

	var visibleActivities []entity.MainActivity
	for _, a := range activities {
		if a.IsVisibleTo(input.OrganizationID) {
			visibleActivities = append(visibleActivities, *a)
		}
	}

	var visibleMeasures []entity.PerformanceMeasure
	for _, m := range measures {
		if m.IsVisibleTo(input.OrganizationID) {
			visibleMeasures = append(visibleMeasures, *m)
		}
	}

	return &GetInitiativeWeightsOutput{
		Initiative: initiative,
		Activities: uc.validator.ValidateInitiativeActivityWeights(*initiative, visibleActivities),
		Measures:   uc.validator.ValidateInitiativeMeasureWeights(*initiative, visibleMeasures),
	}, nil
}
