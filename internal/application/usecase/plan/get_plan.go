package plan

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/entity"
)

// GetPlanInput represents the input for reading a plan.
type GetPlanInput struct {
	PlanID         uuid.UUID
	OrganizationID int64
	Role           entity.UserRole
}

// GetPlanOutput represents a plan with its review history.
type GetPlanOutput struct {
	Plan    *entity.Plan
	Reviews []*entity.PlanReview
}

// GetPlanUseCase handles reading a plan.
type GetPlanUseCase struct {
	planRepo adapter.PlanRepository
}

// NewGetPlanUseCase creates a new GetPlanUseCase instance.
func NewGetPlanUseCase(planRepo adapter.PlanRepository) *GetPlanUseCase {
	return &GetPlanUseCase{planRepo: planRepo}
}

// Execute returns the plan and its reviews, newest first.
func (uc *GetPlanUseCase) Execute(ctx context.Context, input GetPlanInput) (*GetPlanOutput, error) {
	p, err := findAccessiblePlan(ctx, uc.planRepo, input.PlanID, input.OrganizationID, input.Role)
	if err != nil {
		return nil, err
	}

	reviews, err := uc.planRepo.FindReviews(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plan reviews: %w", err)
	}

	return &GetPlanOutput{
		Plan:    p,
		Reviews: reviews,
	}, nil
}
