package activity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/budget"
	"github.com/strategic-planning/backend/internal/domain/entity"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
	"github.com/strategic-planning/backend/internal/domain/valueobject"
)

// UpdateMainActivityInput represents the input for updating a main activity.
type UpdateMainActivityInput struct {
	ActivityID     uuid.UUID
	OrganizationID int64
	Role           entity.UserRole
	Item           PlanItemInput
}

// UpdateMainActivityOutput represents the output of updating a main activity.
type UpdateMainActivityOutput struct {
	Activity *entity.MainActivity
	Weights  budget.WeightCheckResult
}

// UpdateMainActivityUseCase handles main activity updates.
type UpdateMainActivityUseCase struct {
	initiativeRepo adapter.InitiativeRepository
	activityRepo   adapter.MainActivityRepository
	cache          adapter.SummaryCache
	validator      budget.WeightValidator
}

// NewUpdateMainActivityUseCase creates a new UpdateMainActivityUseCase instance.
func NewUpdateMainActivityUseCase(
	initiativeRepo adapter.InitiativeRepository,
	activityRepo adapter.MainActivityRepository,
	cache adapter.SummaryCache,
	rules valueobject.PlanningRules,
) *UpdateMainActivityUseCase {
	return &UpdateMainActivityUseCase{
		initiativeRepo: initiativeRepo,
		activityRepo:   activityRepo,
		cache:          cache,
		validator:      budget.NewWeightValidator(rules),
	}
}

// Execute replaces the planning fields of a main activity.
func (uc *UpdateMainActivityUseCase) Execute(ctx context.Context, input UpdateMainActivityInput) (*UpdateMainActivityOutput, error) {
	if err := requirePlanner(input.Role); err != nil {
		return nil, err
	}

	input.Item.Name = strings.TrimSpace(input.Item.Name)
	if err := validatePlanItem(input.Item); err != nil {
		return nil, err
	}

	activity, err := findVisibleActivity(ctx, uc.activityRepo, input.ActivityID, input.OrganizationID)
	if err != nil {
		return nil, err
	}

	if activity.IsDefault {
		return nil, domainerror.NewPlanningError(
			domainerror.ErrCodeDefaultItemReadOnly,
			"default main activities cannot be changed",
			domainerror.ErrDefaultItemReadOnly,
		)
	}

	initiative, err := findVisibleInitiative(ctx, uc.initiativeRepo, activity.InitiativeID, input.OrganizationID)
	if err != nil {
		return nil, err
	}

	check, err := checkActivityShare(ctx, uc.activityRepo, uc.validator, initiative, input.OrganizationID, activity.ID, input.Item.Weight)
	if err != nil {
		return nil, err
	}

	activity.Name = input.Item.Name
	activity.Weight = input.Item.Weight
	activity.Baseline = input.Item.Baseline
	activity.Targets = input.Item.Targets
	activity.Period = input.Item.Period.Clone()
	activity.UpdatedAt = time.Now().UTC()

	if err := uc.activityRepo.Update(ctx, activity); err != nil {
		return nil, fmt.Errorf("failed to update main activity: %w", err)
	}

	invalidateSummaries(ctx, uc.cache)

	return &UpdateMainActivityOutput{
		Activity: activity,
		Weights:  check,
	}, nil
}
