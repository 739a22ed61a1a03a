// Package measure contains performance measure use cases.
package measure

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/budget"
	"github.com/strategic-planning/backend/internal/domain/entity"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
	"github.com/strategic-planning/backend/internal/domain/valueobject"
)

// MeasureInput holds the fields of a performance measure on create and update.
type MeasureInput struct {
	Name     string
	Weight   decimal.Decimal
	Baseline string
	Targets  valueobject.QuarterTargets
	Period   valueobject.PeriodSelection
}

func invalidateSummaries(ctx context.Context, cache adapter.SummaryCache) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		slog.Warn("Failed to invalidate plan summaries", "error", err)
	}
}

func requirePlanner(role entity.UserRole) error {
	if !role.CanEditPlans() {
		return domainerror.NewAuthError(
			domainerror.ErrCodeForbiddenRole,
			"only planners can change performance measures",
			domainerror.ErrForbiddenRole,
		)
	}
	return nil
}

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

func findVisibleMeasure(ctx context.Context, repo adapter.PerformanceMeasureRepository, id uuid.UUID, organizationID int64) (*entity.PerformanceMeasure, error) {
	measure, err := repo.FindByID(ctx, id)
	if err != nil && !errors.Is(err, domainerror.ErrPerformanceMeasureNotFound) {
		return nil, fmt.Errorf("failed to find performance measure: %w", err)
	}
	if measure == nil || !measure.IsVisibleTo(organizationID) {
		return nil, domainerror.NewPlanningError(
			domainerror.ErrCodePerformanceMeasureNotFound,
			"performance measure not found",
			domainerror.ErrPerformanceMeasureNotFound,
		)
	}
	return measure, nil
}

func validateMeasure(input MeasureInput) error {
	if input.Name == "" {
		return domainerror.NewPlanningError(
			domainerror.ErrCodeMissingPlanningFields,
			"performance measure name is required",
			nil,
		)
	}

	if !valueobject.IsValidItemWeight(input.Weight) {
		return domainerror.NewPlanningError(
			domainerror.ErrCodeInvalidWeight,
			"performance measure weight must be greater than 0 and at most 100",
			domainerror.ErrInvalidWeight,
		)
	}

	if input.Period.IsEmpty() {
		return domainerror.NewPlanningError(
			domainerror.ErrCodeNoPeriodSelected,
			"at least one month or quarter must be selected",
			domainerror.ErrNoPeriodSelected,
		)
	}

	if err := input.Targets.Validate(input.Baseline); err != nil {
		return domainerror.NewPlanningError(
			domainerror.ErrCodeInvalidTargets,
			err.Error(),
			domainerror.ErrInvalidTargets,
		)
	}

	return nil
}

// checkMeasureShare rejects a weight that would push the initiative's measures past their share.
func checkMeasureShare(
	ctx context.Context,
	repo adapter.PerformanceMeasureRepository,
	validator budget.WeightValidator,
	initiative *entity.Initiative,
	organizationID int64,
	replaceID uuid.UUID,
	weight decimal.Decimal,
) (budget.WeightCheckResult, error) {
	siblings, err := repo.FindByInitiativeID(ctx, initiative.ID)
	if err != nil {
		return budget.WeightCheckResult{}, fmt.Errorf("failed to list performance measures: %w", err)
	}

	measures := make([]entity.PerformanceMeasure, 0, len(siblings)+1)
	for _, m := range siblings {
		if m.ID != replaceID && m.IsVisibleTo(organizationID) {
			measures = append(measures, *m)
		}
	}
	measures = append(measures, entity.PerformanceMeasure{InitiativeID: initiative.ID, Weight: weight})

	check := validator.ValidateInitiativeMeasureWeights(*initiative, measures)
	if check.Status == budget.WeightStatusOverTarget {
		return check, domainerror.NewPlanningError(
			domainerror.ErrCodeWeightShareExceeded,
			fmt.Sprintf("total performance measure weight %s exceeds %s of initiative weight", check.Actual, check.Expected),
			domainerror.ErrWeightShareExceeded,
		)
	}
	return check, nil
}
