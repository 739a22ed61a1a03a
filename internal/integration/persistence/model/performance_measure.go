package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/strategic-planning/backend/internal/domain/entity"
)

// PerformanceMeasureModel represents the performance_measures table in the database.
type PerformanceMeasureModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InitiativeID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name            string          `gorm:"type:varchar(255);not null"`
	Weight          decimal.Decimal `gorm:"type:decimal(6,2);not null"`
	PlanItemColumns `gorm:"embedded"`
	OrganizationID  *int64          `gorm:"index"`
	IsDefault       bool            `gorm:"not null;default:false"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for the PerformanceMeasureModel.
func (PerformanceMeasureModel) TableName() string {
	return "performance_measures"
}

// ToEntity converts a PerformanceMeasureModel to a domain PerformanceMeasure entity.
func (m *PerformanceMeasureModel) ToEntity() *entity.PerformanceMeasure {
	return &entity.PerformanceMeasure{
		ID:             m.ID,
		InitiativeID:   m.InitiativeID,
		Name:           m.Name,
		Weight:         m.Weight,
		Baseline:       m.Baseline,
		Targets:        m.targets(),
		Period:         m.period(),
		OrganizationID: m.OrganizationID,
		IsDefault:      m.IsDefault,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// PerformanceMeasureFromEntity creates a PerformanceMeasureModel from a domain PerformanceMeasure entity.
func PerformanceMeasureFromEntity(measure *entity.PerformanceMeasure) *PerformanceMeasureModel {
	return &PerformanceMeasureModel{
		ID:              measure.ID,
		InitiativeID:    measure.InitiativeID,
		Name:            measure.Name,
		Weight:          measure.Weight,
		PlanItemColumns: planItemColumns(measure.Baseline, measure.Targets, measure.Period),
		OrganizationID:  measure.OrganizationID,
		IsDefault:       measure.IsDefault,
		CreatedAt:       measure.CreatedAt,
		UpdatedAt:       measure.UpdatedAt,
	}
}
