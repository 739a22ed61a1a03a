package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/entity"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
	"github.com/strategic-planning/backend/internal/integration/persistence/model"
)

// organizationRepository implements the adapter.OrganizationRepository interface.
type organizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository instance.
func NewOrganizationRepository(db *gorm.DB) adapter.OrganizationRepository {
	return &organizationRepository{
		db: db,
	}
}

// FindByID retrieves an organization by its ID.
func (r *organizationRepository) FindByID(ctx context.Context, id int64) (*entity.Organization, error) {
	var organizationModel model.OrganizationModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&organizationModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrOrganizationNotFound
		}
		return nil, result.Error
	}
	return organizationModel.ToEntity(), nil
}

// FindAll retrieves the whole organization directory.
func (r *organizationRepository) FindAll(ctx context.Context) ([]*entity.Organization, error) {
	var organizationModels []model.OrganizationModel
	result := r.db.WithContext(ctx).Order("id ASC").Find(&organizationModels)
	if result.Error != nil {
		return nil, result.Error
	}

	organizations := make([]*entity.Organization, len(organizationModels))
	for i := range organizationModels {
		organizations[i] = organizationModels[i].ToEntity()
	}
	return organizations, nil
}
