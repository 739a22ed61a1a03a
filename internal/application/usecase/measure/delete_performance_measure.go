package measure

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/entity"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
)

// DeletePerformanceMeasureInput represents the input for performance measure deletion.
type DeletePerformanceMeasureInput struct {
	MeasureID      uuid.UUID
	OrganizationID int64
	Role           entity.UserRole
}

// DeletePerformanceMeasureUseCase handles performance measure deletion logic.
type DeletePerformanceMeasureUseCase struct {
	measureRepo adapter.PerformanceMeasureRepository
	cache       adapter.SummaryCache
}

// NewDeletePerformanceMeasureUseCase creates a new DeletePerformanceMeasureUseCase instance.
func NewDeletePerformanceMeasureUseCase(measureRepo adapter.PerformanceMeasureRepository, cache adapter.SummaryCache) *DeletePerformanceMeasureUseCase {
	return &DeletePerformanceMeasureUseCase{
		measureRepo: measureRepo,
		cache:       cache,
	}
}

// Execute deletes a performance measure owned by the caller's organization.
func (uc *DeletePerformanceMeasureUseCase) Execute(ctx context.Context, input DeletePerformanceMeasureInput) error {
	if err := requirePlanner(input.Role); err != nil {
		return err
	}

	measure, err := findVisibleMeasure(ctx, uc.measureRepo, input.MeasureID, input.OrganizationID)
	if err != nil {
		return err
	}

	if measure.IsDefault {
		return domainerror.NewPlanningError(
			domainerror.ErrCodeDefaultItemReadOnly,
			"default performance measures cannot be deleted",
			domainerror.ErrDefaultItemReadOnly,
		)
	}

	if err := uc.measureRepo.Delete(ctx, measure.ID); err != nil {
		return fmt.Errorf("failed to delete performance measure: %w", err)
	}

	invalidateSummaries(ctx, uc.cache)

	return nil
}
