package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/budget"
	"github.com/strategic-planning/backend/internal/domain/entity"
)

// SaveActivityBudgetInput represents the input for saving a main activity's direct budget.
type SaveActivityBudgetInput struct {
	ActivityID     uuid.UUID
	OrganizationID int64
	Role           entity.UserRole
	Budget         BudgetInput
}

// SaveActivityBudgetOutput represents the output of saving a main activity's direct budget.
type SaveActivityBudgetOutput struct {
	Budget  *entity.ActivityBudget
	Summary budget.Summary
}

// SaveActivityBudgetUseCase handles the single budget attached directly to a main activity.
type SaveActivityBudgetUseCase struct {
	activityRepo adapter.MainActivityRepository
	cache        adapter.SummaryCache
}

// NewSaveActivityBudgetUseCase creates a new SaveActivityBudgetUseCase instance.
func NewSaveActivityBudgetUseCase(activityRepo adapter.MainActivityRepository, cache adapter.SummaryCache) *SaveActivityBudgetUseCase {
	return &SaveActivityBudgetUseCase{
		activityRepo: activityRepo,
		cache:        cache,
	}
}

// Execute creates or replaces the direct budget of a main activity.
// The summary reflects the whole activity, so sub-activities still take precedence.
func (uc *SaveActivityBudgetUseCase) Execute(ctx context.Context, input SaveActivityBudgetInput) (*SaveActivityBudgetOutput, error) {
	if err := requirePlanner(input.Role); err != nil {
		return nil, err
	}

	normalized, err := normalizeBudget(input.Budget, false)
	if err != nil {
		return nil, err
	}

	activity, err := findVisibleActivity(ctx, uc.activityRepo, input.ActivityID, input.OrganizationID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	record := &entity.ActivityBudget{
		ID:             uuid.New(),
		MainActivityID: activity.ID,
		Cost:           normalized.Cost,
		Funding:        normalized.Funding,
		ToolDetails:    normalized.ToolDetails,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if activity.LegacyBudget != nil {
		record.ID = activity.LegacyBudget.ID
		record.CreatedAt = activity.LegacyBudget.CreatedAt
	}

	if err := uc.activityRepo.SaveBudget(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save activity budget: %w", err)
	}
	activity.LegacyBudget = record

	invalidateSummaries(ctx, uc.cache)

	return &SaveActivityBudgetOutput{
		Budget:  record,
		Summary: budget.ComputeActivityBudget(*activity),
	}, nil
}
