// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/strategic-planning/backend/internal/domain/entity"
)

// ObjectiveModel represents the strategic_objectives table in the database.
type ObjectiveModel struct {
	ID            uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Title         string              `gorm:"type:varchar(255);not null"`
	Description   string              `gorm:"type:text"`
	Weight        decimal.Decimal     `gorm:"type:decimal(6,2);not null"`
	PlannerWeight decimal.NullDecimal `gorm:"type:decimal(6,2)"`
	IsDefault     bool                `gorm:"not null;default:false"`
	Initiatives   []InitiativeModel   `gorm:"foreignKey:ObjectiveID"`
	CreatedAt     time.Time           `gorm:"not null"`
	UpdatedAt     time.Time           `gorm:"not null"`
}

// TableName returns the table name for the ObjectiveModel.
func (ObjectiveModel) TableName() string {
	return "strategic_objectives"
}

// ToEntity converts an ObjectiveModel to a domain Objective entity, including any loaded initiatives.
func (m *ObjectiveModel) ToEntity() *entity.Objective {
	var plannerWeight *decimal.Decimal
	if m.PlannerWeight.Valid {
		w := m.PlannerWeight.Decimal
		plannerWeight = &w
	}

	var initiatives []entity.Initiative
	for i := range m.Initiatives {
		initiatives = append(initiatives, *m.Initiatives[i].ToEntity())
	}

	return &entity.Objective{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		Weight:        m.Weight,
		PlannerWeight: plannerWeight,
		IsDefault:     m.IsDefault,
		Initiatives:   initiatives,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ObjectiveFromEntity creates an ObjectiveModel from a domain Objective entity, without children.
func ObjectiveFromEntity(objective *entity.Objective) *ObjectiveModel {
	var plannerWeight decimal.NullDecimal
	if objective.PlannerWeight != nil {
		plannerWeight = decimal.NewNullDecimal(*objective.PlannerWeight)
	}

	return &ObjectiveModel{
		ID:            objective.ID,
		Title:         objective.Title,
		Description:   objective.Description,
		Weight:        objective.Weight,
		PlannerWeight: plannerWeight,
		IsDefault:     objective.IsDefault,
		CreatedAt:     objective.CreatedAt,
		UpdatedAt:     objective.UpdatedAt,
	}
}
