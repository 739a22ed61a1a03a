package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/entity"
	"github.com/strategic-planning/backend/internal/integration/persistence/model"
)

// planningTreeRepository implements the adapter.PlanningTreeRepository interface.
type planningTreeRepository struct {
	db *gorm.DB
}

// NewPlanningTreeRepository creates a new planning tree repository instance.
func NewPlanningTreeRepository(db *gorm.DB) adapter.PlanningTreeRepository {
	return &planningTreeRepository{
		db: db,
	}
}

// LoadObjectives returns the requested objectives with their whole hierarchy, in the order of ids.
func (r *planningTreeRepository) LoadObjectives(ctx context.Context, ids []uuid.UUID) ([]entity.Objective, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var objectiveModels []model.ObjectiveModel
	result := r.db.WithContext(ctx).
		Preload("Initiatives", orderByCreation).
		Preload("Initiatives.MainActivities", orderByCreation).
		Preload("Initiatives.MainActivities.SubActivities", orderByCreation).
		Preload("Initiatives.MainActivities.Budget").
		Preload("Initiatives.PerformanceMeasures", orderByCreation).
		Where("id IN ?", ids).
		Find(&objectiveModels)
	if result.Error != nil {
		return nil, result.Error
	}

	byID := make(map[uuid.UUID]*model.ObjectiveModel, len(objectiveModels))
	for i := range objectiveModels {
		byID[objectiveModels[i].ID] = &objectiveModels[i]
	}

	objectives := make([]entity.Objective, 0, len(objectiveModels))
	for _, id := range ids {
		if m, ok := byID[id]; ok {
			objectives = append(objectives, *m.ToEntity())
			delete(byID, id)
		}
	}
	return objectives, nil
}
