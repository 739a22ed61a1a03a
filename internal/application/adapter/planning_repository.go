// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/strategic-planning/backend/internal/domain/entity"
)

// ObjectiveRepository defines the interface for strategic objective persistence operations.
type ObjectiveRepository interface {
	// FindAll retrieves every objective ordered by creation, without children.
	FindAll(ctx context.Context) ([]*entity.Objective, error)

	// FindByID retrieves an objective by its ID, without children.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Objective, error)

	// UpdatePlannerWeight sets or clears the planner override of an objective.
	UpdatePlannerWeight(ctx context.Context, id uuid.UUID, weight *decimal.Decimal) error
}

// InitiativeRepository defines the interface for initiative persistence operations.
type InitiativeRepository interface {
	Create(ctx context.Context, initiative *entity.Initiative) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Initiative, error)

	// FindByObjectiveID retrieves the initiatives of an objective in creation order, without children.
	FindByObjectiveID(ctx context.Context, objectiveID uuid.UUID) ([]*entity.Initiative, error)

	// Delete removes an initiative with its activities, sub-activities and measures.
	Delete(ctx context.Context, id uuid.UUID) error
}

// MainActivityRepository defines the interface for main activity persistence operations.
type MainActivityRepository interface {
	Create(ctx context.Context, activity *entity.MainActivity) error
	Update(ctx context.Context, activity *entity.MainActivity) error

	// FindByID retrieves a main activity with its sub-activities and legacy budget.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MainActivity, error)

	// FindByInitiativeID retrieves the activities of an initiative in creation order, with their budgets.
	FindByInitiativeID(ctx context.Context, initiativeID uuid.UUID) ([]*entity.MainActivity, error)

	// Delete removes a main activity with its sub-activities and legacy budget.
	Delete(ctx context.Context, id uuid.UUID) error

	// SaveBudget creates or replaces the legacy budget of a main activity.
	SaveBudget(ctx context.Context, budget *entity.ActivityBudget) error
}

// SubActivityRepository defines the interface for sub-activity persistence operations.
type SubActivityRepository interface {
	Create(ctx context.Context, sub *entity.SubActivity) error
	Update(ctx context.Context, sub *entity.SubActivity) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SubActivity, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PerformanceMeasureRepository defines the interface for performance measure persistence operations.
type PerformanceMeasureRepository interface {
	Create(ctx context.Context, measure *entity.PerformanceMeasure) error
	Update(ctx context.Context, measure *entity.PerformanceMeasure) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PerformanceMeasure, error)
	FindByInitiativeID(ctx context.Context, initiativeID uuid.UUID) ([]*entity.PerformanceMeasure, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PlanningTreeRepository loads fully materialized objective trees for aggregation.
type PlanningTreeRepository interface {
	// LoadObjectives returns the objectives with the given IDs, in the same order, with every
	// initiative, main activity, sub-activity, legacy budget and performance measure attached.
	// Unknown IDs are skipped.
	LoadObjectives(ctx context.Context, ids []uuid.UUID) ([]entity.Objective, error)
}

// OrganizationRepository defines the interface for the organization directory.
type OrganizationRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Organization, error)
	FindAll(ctx context.Context) ([]*entity.Organization, error)
}
