// Package activity contains main activity, sub-activity and activity budget use cases.
package activity

import (
	"context"
	"encoding/json"
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

// BudgetInput is a costing tool result plus the funding committed against it.
type BudgetInput struct {
	Cost        valueobject.CostInput
	Funding     valueobject.FundingBreakdown
	ToolDetails json.RawMessage
}

// PlanItemInput holds the fields shared by main activities on create and update.
type PlanItemInput struct {
	Name     string
	Weight   decimal.Decimal
	Baseline string
	Targets  valueobject.QuarterTargets
	Period   valueobject.PeriodSelection
}

// invalidateSummaries drops cached plan summaries after a change to the hierarchy.
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
			"only planners can change main activities",
			domainerror.ErrForbiddenRole,
		)
	}
	return nil
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

// findVisibleActivity loads a main activity, hiding those of other organizations.
func findVisibleActivity(ctx context.Context, repo adapter.MainActivityRepository, id uuid.UUID, organizationID int64) (*entity.MainActivity, error) {
	activity, err := repo.FindByID(ctx, id)
	if err != nil && !errors.Is(err, domainerror.ErrMainActivityNotFound) {
		return nil, fmt.Errorf("failed to find main activity: %w", err)
	}
	if activity == nil || !activity.IsVisibleTo(organizationID) {
		return nil, domainerror.NewPlanningError(
			domainerror.ErrCodeMainActivityNotFound,
			"main activity not found",
			domainerror.ErrMainActivityNotFound,
		)
	}
	return activity, nil
}

// validatePlanItem checks the name, weight, targets and period of a main activity.
func validatePlanItem(input PlanItemInput) error {
	if input.Name == "" {
		return domainerror.NewPlanningError(
			domainerror.ErrCodeMissingPlanningFields,
			"main activity name is required",
			nil,
		)
	}

	if !valueobject.IsValidItemWeight(input.Weight) {
		return domainerror.NewPlanningError(
			domainerror.ErrCodeInvalidWeight,
			"main activity weight must be greater than 0 and at most 100",
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

// checkActivityShare rejects a weight change that would push the initiative's activities past their share.
// The activity identified by replaceID is left out of the current sum.
func checkActivityShare(
	ctx context.Context,
	repo adapter.MainActivityRepository,
	validator budget.WeightValidator,
	initiative *entity.Initiative,
	organizationID int64,
	replaceID uuid.UUID,
	weight decimal.Decimal,
) (budget.WeightCheckResult, error) {
	siblings, err := repo.FindByInitiativeID(ctx, initiative.ID)
	if err != nil {
		return budget.WeightCheckResult{}, fmt.Errorf("failed to list main activities: %w", err)
	}

	activities := make([]entity.MainActivity, 0, len(siblings)+1)
	for _, a := range siblings {
		if a.ID != replaceID && a.IsVisibleTo(organizationID) {
			activities = append(activities, *a)
		}
	}
	activities = append(activities, entity.MainActivity{InitiativeID: initiative.ID, Weight: weight})

	check := validator.ValidateInitiativeActivityWeights(*initiative, activities)
	if check.Status == budget.WeightStatusOverTarget {
		return check, domainerror.NewPlanningError(
			domainerror.ErrCodeWeightShareExceeded,
			fmt.Sprintf("total main activity weight %s exceeds %s of initiative weight", check.Actual, check.Expected),
			domainerror.ErrWeightShareExceeded,
		)
	}
	return check, nil
}

// normalizeBudget validates a budget input and settles the partners figure.
// A non-empty partner list with no partners figure takes the list total.
func normalizeBudget(input BudgetInput, requireType bool) (BudgetInput, error) {
	if !input.Cost.Mode.IsValid() {
		return input, domainerror.NewPlanningError(
			domainerror.ErrCodeInvalidCalculationMode,
			"budget calculation type must be WITH_TOOL or WITHOUT_TOOL",
			domainerror.ErrInvalidCalculationMode,
		)
	}

	if input.Cost.ActivityType == "" && !requireType {
		input.Cost.ActivityType = valueobject.ActivityTypeOther
	}
	if !input.Cost.ActivityType.IsValid() {
		return input, domainerror.NewPlanningError(
			domainerror.ErrCodeInvalidActivityType,
			fmt.Sprintf("invalid activity type %q", input.Cost.ActivityType),
			domainerror.ErrInvalidActivityType,
		)
	}

	input.Funding = input.Funding.Settled()
	if !input.Funding.PartnersConsistent() {
		return input, domainerror.NewPlanningError(
			domainerror.ErrCodePartnersMismatch,
			fmt.Sprintf("partners funding %s does not match partner list total %s", input.Funding.Partners, input.Funding.PartnersListTotal()),
			domainerror.ErrPartnersMismatch,
		)
	}

	return input, nil
}
