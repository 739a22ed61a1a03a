package activity

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/entity"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
)

// DeleteMainActivityInput represents the input for main activity deletion.
type DeleteMainActivityInput struct {
	ActivityID     uuid.UUID
	OrganizationID int64
	Role           entity.UserRole
}

// DeleteMainActivityUseCase handles main activity deletion logic.
type DeleteMainActivityUseCase struct {
	activityRepo adapter.MainActivityRepository
	cache        adapter.SummaryCache
}

// NewDeleteMainActivityUseCase creates a new DeleteMainActivityUseCase instance.
func NewDeleteMainActivityUseCase(activityRepo adapter.MainActivityRepository, cache adapter.SummaryCache) *DeleteMainActivityUseCase {
	return &DeleteMainActivityUseCase{
		activityRepo: activityRepo,
		cache:        cache,
	}
}

// Execute deletes a main activity together with its sub-activities and legacy budget.
func (uc *DeleteMainActivityUseCase) Execute(ctx context.Context, input DeleteMainActivityInput) error {
	if err := requirePlanner(input.Role); err != nil {
		return err
	}

	activity, err := findVisibleActivity(ctx, uc.activityRepo, input.ActivityID, input.OrganizationID)
	if err != nil {
		return err
	}

	if activity.IsDefault {
		return domainerror.NewPlanningError(
			domainerror.ErrCodeDefaultItemReadOnly,
			"default main activities cannot be changed",
			domainerror.ErrDefaultItemReadOnly,
		)
	}

	if err := uc.activityRepo.Delete(ctx, activity.ID); err != nil {
		return fmt.Errorf("failed to delete main activity: %w", err)
	}

	invalidateSummaries(ctx, uc.cache)

	return nil
}
