// Package initiative contains strategic initiative use cases.
package initiative

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/entity"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
)

// invalidateSummaries drops cached plan summaries after a change to the hierarchy.
func invalidateSummaries(ctx context.Context, cache adapter.SummaryCache) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		slog.Warn("Failed to invalidate plan summaries", "error", err)
	}
}

// findVisibleInitiative loads an initiative, hiding those of other organizations.
func findVisibleInitiative(ctx context.Context, repo adapter.InitiativeRepository, id uuid.UUID, organizationID int64) (*entity.Initiative, error) {
	initiative, err := repo.FindByID(ctx, id)
	if err != nil && !errors.Is(err, domainerror.ErrInitiativeNotFound) {
		return nil, fmt.Errorf("failed to find initiative: %w", err)
	}
	if initiative == nil || !initiative.IsVisibleTo(organizationID) {
		return nil, domainerror.NewPlanningError(
			domainerror.ErrCodeInitiativeNotFound,
			"initiative not found",
			domainerror.ErrInitiativeNotFound,
		)
	}
	return initiative, nil
}

// visibleInitiatives keeps the initiatives visible to the organization, in order.
func visibleInitiatives(initiatives []*entity.Initiative, organizationID int64) []entity.Initiative {
	visible := make([]entity.Initiative, 0, len(initiatives))
	for _, i := range initiatives {
		if i.IsVisibleTo(organizationID) {
			visible = append(visible, *i)
		}
	}
	return visible
}
