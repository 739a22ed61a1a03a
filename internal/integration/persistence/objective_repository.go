// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/entity"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
	"github.com/strategic-planning/backend/internal/integration/persistence/model"
)

// objectiveRepository implements the adapter.ObjectiveRepository interface.
type objectiveRepository struct {
	db *gorm.DB
}

// NewObjectiveRepository creates a new objective repository instance.
func NewObjectiveRepository(db *gorm.DB) adapter.ObjectiveRepository {
	return &objectiveRepository{
		db: db,
	}
}

// FindAll retrieves every objective in creation order.
func (r *objectiveRepository) FindAll(ctx context.Context) ([]*entity.Objective, error) {
	var objectiveModels []model.ObjectiveModel
	result := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&objectiveModels)
	if result.Error != nil {
		return nil, result.Error
	}

	objectives := make([]*entity.Objective, len(objectiveModels))
	for i := range objectiveModels {
		objectives[i] = objectiveModels[i].ToEntity()
	}
	return objectives, nil
}

// FindByID retrieves an objective by its ID.
func (r *objectiveRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Objective, error) {
	var objectiveModel model.ObjectiveModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&objectiveModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrObjectiveNotFound
		}
		return nil, result.Error
	}
	return objectiveModel.ToEntity(), nil
}

// UpdatePlannerWeight sets or clears the planner override of an objective.
func (r *objectiveRepository) UpdatePlannerWeight(ctx context.Context, id uuid.UUID, weight *decimal.Decimal) error {
	var plannerWeight decimal.NullDecimal
	if weight != nil {
		plannerWeight = decimal.NewNullDecimal(*weight)
	}

	result := r.db.WithContext(ctx).
		Model(&model.ObjectiveModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"planner_weight": plannerWeight,
			"updated_at":     time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrObjectiveNotFound
	}
	return nil
}
