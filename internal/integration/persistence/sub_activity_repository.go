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

// subActivityRepository implements the adapter.SubActivityRepository interface.
type subActivityRepository struct {
	db *gorm.DB
}

// NewSubActivityRepository creates a new sub-activity repository instance.
func NewSubActivityRepository(db *gorm.DB) adapter.SubActivityRepository {
	return &subActivityRepository{
		db: db,
	}
}

// Create creates a new sub-activity in the database.
func (r *subActivityRepository) Create(ctx context.Context, sub *entity.SubActivity) error {
	return r.db.WithContext(ctx).Create(model.SubActivityFromEntity(sub)).Error
}

// Update updates an existing sub-activity in the database.
func (r *subActivityRepository) Update(ctx context.Context, sub *entity.SubActivity) error {
	return r.db.WithContext(ctx).Save(model.SubActivityFromEntity(sub)).Error
}

// FindByID retrieves a sub-activity by its ID.
func (r *subActivityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SubActivity, error) {
	var subModel model.SubActivityModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&subModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSubActivityNotFound
		}
		return nil, result.Error
	}
	return subModel.ToEntity(), nil
}

// Delete removes a sub-activity from the database.
func (r *subActivityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.SubActivityModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSubActivityNotFound
	}
	return nil
}
