package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/entity"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
	"github.com/strategic-planning/backend/internal/integration/persistence/model"
)

// mainActivityRepository implements the adapter.MainActivityRepository interface.
type mainActivityRepository struct {
	db *gorm.DB
}

// NewMainActivityRepository creates a new main activity repository instance.
func NewMainActivityRepository(db *gorm.DB) adapter.MainActivityRepository {
	return &mainActivityRepository{
		db: db,
	}
}

func orderByCreation(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

// Create creates a new main activity in the database.
func (r *mainActivityRepository) Create(ctx context.Context, activity *entity.MainActivity) error {
	activityModel := model.MainActivityFromEntity(activity)
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(activityModel).Error
}

// Update saves the activity's own columns, leaving its budgets untouched.
func (r *mainActivityRepository) Update(ctx context.Context, activity *entity.MainActivity) error {
	activityModel := model.MainActivityFromEntity(activity)
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(activityModel).Error
}

// FindByID retrieves a main activity with its sub-activities and legacy budget.
func (r *mainActivityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MainActivity, error) {
	var activityModel model.MainActivityModel
	result := r.db.WithContext(ctx).
		Preload("SubActivities", orderByCreation).
		Preload("Budget").
		Where("id = ?", id).
		First(&activityModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrMainActivityNotFound
		}
		return nil, result.Error
	}
	return activityModel.ToEntity(), nil
}

// FindByInitiativeID retrieves the activities of an initiative in creation order.
func (r *mainActivityRepository) FindByInitiativeID(ctx context.Context, initiativeID uuid.UUID) ([]*entity.MainActivity, error) {
	var activityModels []model.MainActivityModel
	result := r.db.WithContext(ctx).
		Preload("SubActivities", orderByCreation).
		Preload("Budget").
		Where("initiative_id = ?", initiativeID).
		Order("created_at ASC").
		Find(&activityModels)
	if result.Error != nil {
		return nil, result.Error
	}

	activities := make([]*entity.MainActivity, len(activityModels))
	for i := range activityModels {
		activities[i] = activityModels[i].ToEntity()
	}
	return activities, nil
}

// Delete removes a main activity with its sub-activities and legacy budget.
func (r *mainActivityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("main_activity_id = ?", id).Delete(&model.SubActivityModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("main_activity_id = ?", id).Delete(&model.ActivityBudgetModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.MainActivityModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrMainActivityNotFound
		}
		return nil
	})
}

// SaveBudget creates or replaces the legacy budget of a main activity.
func (r *mainActivityRepository) SaveBudget(ctx context.Context, budget *entity.ActivityBudget) error {
	budgetModel := model.ActivityBudgetFromEntity(budget)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "main_activity_id"}},
			UpdateAll: true,
		}).
		Create(budgetModel).Error
}
