package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/strategic-planning/backend/internal/domain/entity"
)

// PlanRepository defines the interface for plan persistence operations.
type PlanRepository interface {
	Create(ctx context.Context, plan *entity.Plan) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Plan, error)
	Update(ctx context.Context, plan *entity.Plan) error

	// ExistsActiveForObjective checks whether another SUBMITTED or APPROVED plan exists
	// for the organization and strategic objective.
	ExistsActiveForObjective(ctx context.Context, organizationID int64, objectiveID, excludePlanID uuid.UUID) (bool, error)

	// CreateReview stores a review and applies its status to the plan atomically.
	CreateReview(ctx context.Context, plan *entity.Plan, review *entity.PlanReview) error

	// FindReviews retrieves the reviews of a plan, newest first.
	FindReviews(ctx context.Context, planID uuid.UUID) ([]*entity.PlanReview, error)
}
