package plan

import (
	"context"

	"github.com/google/uuid"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/budget"
	"github.com/strategic-planning/backend/internal/domain/entity"
)

// GetPlanSummaryInput represents the input for the aggregated summary of a plan.
type GetPlanSummaryInput struct {
	PlanID         uuid.UUID
	OrganizationID int64
	Role           entity.UserRole
}

// GetPlanSummaryOutput represents the aggregated summary of a plan.
type GetPlanSummaryOutput struct {
	Plan   *entity.Plan
	Tree   *budget.Tree
	Cached bool
}

// GetPlanSummaryUseCase handles plan summary computation.
type GetPlanSummaryUseCase struct {
	planRepo adapter.PlanRepository
	reader   *PlanReader
}

// NewGetPlanSummaryUseCase creates a new GetPlanSummaryUseCase instance.
func NewGetPlanSummaryUseCase(planRepo adapter.PlanRepository, reader *PlanReader) *GetPlanSummaryUseCase {
	return &GetPlanSummaryUseCase{
		planRepo: planRepo,
		reader:   reader,
	}
}

// Execute returns the aggregated budget and weight tree of the plan.
func (uc *GetPlanSummaryUseCase) Execute(ctx context.Context, input GetPlanSummaryInput) (*GetPlanSummaryOutput, error) {
	p, err := findAccessiblePlan(ctx, uc.planRepo, input.PlanID, input.OrganizationID, input.Role)
	if err != nil {
		return nil, err
	}

	tree, cached, err := uc.reader.Tree(ctx, p)
	if err != nil {
		return nil, err
	}

	return &GetPlanSummaryOutput{
		Plan:   p,
		Tree:   tree,
		Cached: cached,
	}, nil
}
