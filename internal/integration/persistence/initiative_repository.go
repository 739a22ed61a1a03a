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

// initiativeRepository implements the adapter.InitiativeRepository interface.
type initiativeRepository struct {
	db *gorm.DB
}

// NewInitiativeRepository creates a new initiative repository instance.
func NewInitiativeRepository(db *gorm.DB) adapter.InitiativeRepository {
	return &initiativeRepository{
		db: db,
	}
}

// Create creates a new initiative in the database.
func (r *initiativeRepository) Create(ctx context.Context, initiative *entity.Initiative) error {
	initiativeModel := model.InitiativeFromEntity(initiative)
	return r.db.WithContext(ctx).Create(initiativeModel).Error
}

// FindByID retrieves an initiative by its ID.
func (r *initiativeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Initiative, error) {
	var initiativeModel model.InitiativeModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&initiativeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrInitiativeNotFound
		}
		return nil, result.Error
	}
	return initiativeModel.ToEntity(), nil
}

// FindByObjectiveID retrieves the initiatives of an objective in creation order.
func (r *initiativeRepository) FindByObjectiveID(ctx context.Context, objectiveID uuid.UUID) ([]*entity.Initiative, error) {
	var initiativeModels []model.InitiativeModel
	result := r.db.WithContext(ctx).
		Where("objective_id = ?", objectiveID).
		Order("created_at ASC").
		Find(&initiativeModels)
	if result.Error != nil {
		return nil, result.Error
	}

	initiatives := make([]*entity.Initiative, len(initiativeModels))
	for i := range initiativeModels {
		initiatives[i] = initiativeModels[i].ToEntity()
	}
	return initiatives, nil
}

// Delete removes an initiative and everything beneath it in one transaction.
func (r *initiativeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		activityIDs := tx.Model(&model.MainActivityModel{}).Select("id").Where("initiative_id = ?", id)

		if err := tx.Where("main_activity_id IN (?)", activityIDs).Delete(&model.SubActivityModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("main_activity_id IN (?)", activityIDs).Delete(&model.ActivityBudgetModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("initiative_id = ?", id).Delete(&model.MainActivityModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("initiative_id = ?", id).Delete(&model.PerformanceMeasureModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.InitiativeModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrInitiativeNotFound
		}
		return nil
	})
}
