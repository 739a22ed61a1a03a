package activity

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/budget"
	"github.com/strategic-planning/backend/internal/domain/entity"
	"github.com/strategic-planning/backend/internal/domain/valueobject"
)

// CreateMainActivityInput represents the input for main activity creation.
type CreateMainActivityInput struct {
	InitiativeID   uuid.UUID
	OrganizationID int64
	Role           entity.UserRole
	Item           PlanItemInput
}

// CreateMainActivityOutput represents the output of main activity creation.
type CreateMainActivityOutput struct {
	Activity *entity.MainActivity
	Weights  budget.WeightCheckResult
}

// CreateMainActivityUseCase handles main activity creation logic.
type CreateMainActivityUseCase struct {
	initiativeRepo adapter.InitiativeRepository
	activityRepo   adapter.MainActivityRepository
	cache          adapter.SummaryCache
	validator      budget.WeightValidator
}

// NewCreateMainActivityUseCase creates a new CreateMainActivityUseCase instance.
func NewCreateMainActivityUseCase(
	initiativeRepo adapter.InitiativeRepository,
	activityRepo adapter.MainActivityRepository,
	cache adapter.SummaryCache,
	rules valueobject.PlanningRules,
) *CreateMainActivityUseCase {
	return &CreateMainActivityUseCase{
		initiativeRepo: initiativeRepo,
		activityRepo:   activityRepo,
		cache:          cache,
		validator:      budget.NewWeightValidator(rules),
	}
}

// Execute creates a main activity owned by the caller's organization.
func (uc *CreateMainActivityUseCase) Execute(ctx context.Context, input CreateMainActivityInput) (*CreateMainActivityOutput, error) {
	if err := requirePlanner(input.Role); err != nil {
		return nil, err
	}

	input.Item.Name = strings.TrimSpace(input.Item.Name)
	if err := validatePlanItem(input.Item); err != nil {
		return nil, err
	}

	initiative, err := findVisibleInitiative(ctx, uc.initiativeRepo, input.InitiativeID, input.OrganizationID)
	if err != nil {
		return nil, err
	}

	check, err := checkActivityShare(ctx, uc.activityRepo, uc.validator, initiative, input.OrganizationID, uuid.Nil, input.Item.Weight)
	if err != nil {
		return nil, err
	}

	organizationID := input.OrganizationID
	activity := entity.NewMainActivity(initiative.ID, input.Item.Name, input.Item.Weight, &organizationID)
	activity.Baseline = input.Item.Baseline
	activity.Targets = input.Item.Targets
	activity.Period = input.Item.Period.Clone()

	if err := uc.activityRepo.Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("failed to create main activity: %w", err)
	}

	invalidateSummaries(ctx, uc.cache)

	return &CreateMainActivityOutput{
		Activity: activity,
		Weights:  check,
	}, nil
}
