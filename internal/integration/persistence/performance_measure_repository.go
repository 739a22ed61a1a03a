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

// performanceMeasureRepository implements the adapter.PerformanceMeasureRepository interface.
type performanceMeasureRepository struct {
	db *gorm.DB
}

// NewPerformanceMeasureRepository creates a new performance measure repository instance.
func NewPerformanceMeasureRepository(db *gorm.DB) adapter.PerformanceMeasureRepository {
	return &performanceMeasureRepository{
		db: db,
	}
}

// Create creates a new performance measure in the database.
func (r *performanceMeasureRepository) Create(ctx context.Context, measure *entity.PerformanceMeasure) error {
	return r.db.WithContext(ctx).Create(model.PerformanceMeasureFromEntity(measure)).Error
}

// Update updates an existing performance measure in the database.
func (r *performanceMeasureRepository) Update(ctx context.Context, measure *entity.PerformanceMeasure) error {
	return r.db.WithContext(ctx).Save(model.PerformanceMeasureFromEntity(measure)).Error
}

// FindByID retrieves a performance measure by its ID.
func (r *performanceMeasureRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PerformanceMeasure, error) {
	var measureModel model.PerformanceMeasureModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&measureModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPerformanceMeasureNotFound
		}
		return nil, result.Error
	}
	return measureModel.ToEntity(), nil
}

// FindByInitiativeID retrieves the measures of an initiative in creation order.
func (r *performanceMeasureRepository) FindByInitiativeID(ctx context.Context, initiativeID uuid.UUID) ([]*entity.PerformanceMeasure, error) {
	var measureModels []model.PerformanceMeasureModel
	result := r.db.WithContext(ctx).
		Where("initiative_id = ?", initiativeID).
		Order("created_at ASC").
		Find(&measureModels)
	if result.Error != nil {
		return nil, result.Error
	}

	measures := make([]*entity.PerformanceMeasure, len(measureModels))
	for i := range measureModels {
		measures[i] = measureModels[i].ToEntity()
	}
	return measures, nil
}

// Delete removes a performance measure from the database.
func (r *performanceMeasureRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.PerformanceMeasureModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrPerformanceMeasureNotFound
	}
	return nil
}
