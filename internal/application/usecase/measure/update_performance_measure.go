package measure

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

// UpdatePerformanceMeasureInput represents the input for updating a performance measure.
type UpdatePerformanceMeasureInput struct {
	MeasureID      uuid.UUID
	OrganizationID int64
	Role           entity.UserRole
	Measure        MeasureInput
}

// UpdatePerformanceMeasureUseCase handles performance measure updates.
type UpdatePerformanceMeasureUseCase struct {
	initiativeRepo adapter.InitiativeRepository
	measureRepo    adapter.PerformanceMeasureRepository
	cache          adapter.SummaryCache
	validator      budget.WeightValidator
}

// NewUpdatePerformanceMeasureUseCase creates a new UpdatePerformanceMeasureUseCase instance.
func NewUpdatePerformanceMeasureUseCase(
	initiativeRepo adapter.InitiativeRepository,
	measureRepo adapter.PerformanceMeasureRepository,
	cache adapter.SummaryCache,
	rules valueobject.PlanningRules,
) *UpdatePerformanceMeasureUseCase {
	return &UpdatePerformanceMeasureUseCase{
		initiativeRepo: initiativeRepo,
		measureRepo:    measureRepo,
		cache:          cache,
		validator:      budget.NewWeightValidator(rules),
	}
}

// Execute replaces the planning fields of a performance measure.
func (uc *UpdatePerformanceMeasureUseCase) Execute(ctx context.Context, input UpdatePerformanceMeasureInput) (*PerformanceMeasureOutput, error) {
	if err := requirePlanner(input.Role); err != nil {
		return nil, err
	}

	input.Measure.Name = strings.TrimSpace(input.Measure.Name)
	if err := validateMeasure(input.Measure); err != nil {
		return nil, err
	}

	measure, err := findVisibleMeasure(ctx, uc.measureRepo, input.MeasureID, input.OrganizationID)
	if err != nil {
		return nil, err
	}

	if measure.IsDefault {
		return nil, domainerror.NewPlanningError(
			domainerror.ErrCodeDefaultItemReadOnly,
			"default performance measures cannot be changed",
			domainerror.ErrDefaultItemReadOnly,
		)
	}

	initiative, err := findVisibleInitiative(ctx, uc.initiativeRepo, measure.InitiativeID, input.OrganizationID)
	if err != nil {
		return nil, err
	}

	check, err := checkMeasureShare(ctx, uc.measureRepo, uc.validator, initiative, input.OrganizationID, measure.ID, input.Measure.Weight)
	if err != nil {
		return nil, err
	}

	measure.Name = input.Measure.Name
	measure.Weight = input.Measure.Weight
	measure.Baseline = input.Measure.Baseline
	measure.Targets = input.Measure.Targets
	measure.Period = input.Measure.Period.Clone()
	measure.UpdatedAt = time.Now().UTC()

	if err := uc.measureRepo.Update(ctx, measure); err != nil {
		return nil, fmt.Errorf("failed to update performance measure: %w", err)
	}

	invalidateSummaries(ctx, uc.cache)

	return &PerformanceMeasureOutput{
		Measure: measure,
		Weights: check,
	}, nil
}
