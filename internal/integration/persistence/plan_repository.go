package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/entity"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
	"github.com/strategic-planning/backend/internal/integration/persistence/model"
)

// planRepository implements the adapter.PlanRepository interface.
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new plan repository instance.
func NewPlanRepository(db *gorm.DB) adapter.PlanRepository {
	return &planRepository{
		db: db,
	}
}

// Create creates a new plan in the database.
func (r *planRepository) Create(ctx context.Context, plan *entity.Plan) error {
	return r.db.WithContext(ctx).Create(model.PlanFromEntity(plan)).Error
}

// FindByID retrieves a plan by its ID.
func (r *planRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Plan, error) {
	var planModel model.PlanModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&planModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPlanNotFound
		}
		return nil, result.Error
	}
	return planModel.ToEntity(), nil
}

// Update updates an existing plan in the database.
func (r *planRepository) Update(ctx context.Context, plan *entity.Plan) error {
	return r.db.WithContext(ctx).Save(model.PlanFromEntity(plan)).Error
}

// ExistsActiveForObjective checks whether another submitted or approved plan exists for the organization and objective.
func (r *planRepository) ExistsActiveForObjective(ctx context.Context, organizationID int64, objectiveID, excludePlanID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.PlanModel{}).
		Where("organization_id = ? AND strategic_objective_id = ?", organizationID, objectiveID).
		Where("status IN ?", []string{string(entity.PlanStatusSubmitted), string(entity.PlanStatusApproved)}).
		Where("id <> ?", excludePlanID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// CreateReview stores a review and applies its status to the plan in one transaction.
func (r *planRepository) CreateReview(ctx context.Context, plan *entity.Plan, review *entity.PlanReview) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.PlanReviewFromEntity(review)).Error; err != nil {
			return err
		}

		result := tx.Model(&model.PlanModel{}).
			Where("id = ?", plan.ID).
			Updates(map[string]any{
				"status":     string(plan.Status),
				"updated_at": plan.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrPlanNotFound
		}
		return nil
	})
}

// FindReviews retrieves the reviews of a plan, newest first.
func (r *planRepository) FindReviews(ctx context.Context, planID uuid.UUID) ([]*entity.PlanReview, error) {
	var reviewModels []model.PlanReviewModel
	result := r.db.WithContext(ctx).
		Where("plan_id = ?", planID).
		Order("reviewed_at DESC").
		Find(&reviewModels)
	if result.Error != nil {
		return nil, result.Error
	}

	reviews := make([]*entity.PlanReview, len(reviewModels))
	for i := range reviewModels {
		reviews[i] = reviewModels[i].ToEntity()
	}
	return reviews, nil
}
