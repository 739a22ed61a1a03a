package measure

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

// CreatePerformanceMeasureInput represents the input for performance measure creation.
type CreatePerformanceMeasureInput struct {
	InitiativeID   uuid.UUID
	OrganizationID int64
	Role           entity.UserRole
	Measure        MeasureInput
}

// PerformanceMeasureOutput represents a stored measure with the initiative's measure weight check.
type PerformanceMeasureOutput struct {
	Measure *entity.PerformanceMeasure
	Weights budget.WeightCheckResult
}

// CreatePerformanceMeasureUseCase handles performance measure creation logic.
type CreatePerformanceMeasureUseCase struct {
	initiativeRepo adapter.InitiativeRepository
	measureRepo    adapter.PerformanceMeasureRepository
	cache          adapter.SummaryCache
	validator      budget.WeightValidator
}

// NewCreatePerformanceMeasureUseCase creates a new CreatePerformanceMeasureUseCase instance.
func NewCreatePerformanceMeasureUseCase(
	initiativeRepo adapter.InitiativeRepository,
	measureRepo adapter.PerformanceMeasureRepository,
	cache adapter.SummaryCache,
	rules valueobject.PlanningRules,
) *CreatePerformanceMeasureUseCase {
	return &CreatePerformanceMeasureUseCase{
		initiativeRepo: initiativeRepo,
		measureRepo:    measureRepo,
		cache:          cache,
		validator:      budget.NewWeightValidator(rules),
	}
}

// Execute creates a performance measure owned by the caller's organization.
func (uc *CreatePerformanceMeasureUseCase) Execute(ctx context.Context, input CreatePerformanceMeasureInput) (*PerformanceMeasureOutput, error) {
	if err := requirePlanner(input.Role); err != nil {
		return nil, err
	}

	input.Measure.Name = strings.TrimSpace(input.Measure.Name)
	if err := validateMeasure(input.Measure); err != nil {
		return nil, err
	}

	initiative, err := findVisibleInitiative(ctx, uc.initiativeRepo, input.InitiativeID, input.OrganizationID)
	if err != nil {
		return nil, err
	}

	check, err := checkMeasureShare(ctx, uc.measureRepo, uc.validator, initiative, input.OrganizationID, uuid.Nil, input.Measure.Weight)
	if err != nil {
		return nil, err
	}

	organizationID := input.OrganizationID
	measure := entity.NewPerformanceMeasure(initiative.ID, input.Measure.Name, input.Measure.Weight, &organizationID)
	measure.Baseline = input.Measure.Baseline
	measure.Targets = input.Measure.Targets
	measure.Period = input.Measure.Period.Clone()

	if err := uc.measureRepo.Create(ctx, measure); err != nil {
		return nil, fmt.Errorf("failed to create performance measure: %w", err)
	}

	invalidateSummaries(ctx, uc.cache)

	return &PerformanceMeasureOutput{
		Measure: measure,
		Weights: check,
	}, nil
}
