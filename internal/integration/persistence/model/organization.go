package model

import "github.com/strategic-planning/backend/internal/domain/entity"

// OrganizationModel represents the organizations table in the database.
type OrganizationModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"type:varchar(255);not null"`
	Type     string `gorm:"type:varchar(30);not null"`
	ParentID *int64 `gorm:"index"`
}

// TableName returns the table name for the OrganizationModel.
func (OrganizationModel) TableName() string {
	return "organizations"
}

// ToEntity converts an OrganizationModel to a domain Organization entity.
func (m *OrganizationModel) ToEntity() *entity.Organization {
	return &entity.Organization{
		ID:       m.ID,
		Name:     m.Name,
		Type:     entity.OrganizationType(m.Type),
		ParentID: m.ParentID,
	}
}

// OrganizationFromEntity creates an OrganizationModel from a domain Organization entity.
func OrganizationFromEntity(organization *entity.Organization) *OrganizationModel {
	return &OrganizationModel{
		ID:       organization.ID,
		Name:     organization.Name,
		Type:     string(organization.Type),
		ParentID: organization.ParentID,
	}
}
