package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/strategic-planning/backend/internal/domain/entity"
)

// InitiativeModel represents the initiatives table in the database.
type InitiativeModel struct {
	ID                  uuid.UUID                 `gorm:"type:uuid;primaryKey"`
	ObjectiveID         uuid.UUID                 `gorm:"type:uuid;not null;index"`
	Name                string                    `gorm:"type:varchar(255);not null"`
	Weight              decimal.Decimal           `gorm:"type:decimal(6,2);not null"`
	OrganizationID      *int64                    `gorm:"index"`
	OrganizationName    string                    `gorm:"type:varchar(255)"`
	IsDefault           bool                      `gorm:"not null;default:false"`
	MainActivities      []MainActivityModel       `gorm:"foreignKey:InitiativeID"`
	PerformanceMeasures []PerformanceMeasureModel `gorm:"foreignKey:InitiativeID"`
	CreatedAt           time.Time                 `gorm:"not null"`
	UpdatedAt           time.Time                 `gorm:"not null"`
}

// TableName returns the table name for the InitiativeModel.
func (InitiativeModel) TableName() string {
	return "initiatives"
}

// ToEntity converts an InitiativeModel to a domain Initiative entity, including any loaded children.
func (m *InitiativeModel) ToEntity() *entity.Initiative {
	var activities []entity.MainActivity
	for i := range m.MainActivities {
		activities = append(activities, *m.MainActivities[i].ToEntity())
	}

	var measures []entity.PerformanceMeasure
	for i := range m.PerformanceMeasures {
		measures = append(measures, *m.PerformanceMeasures[i].ToEntity())
	}

	return &entity.Initiative{
		ID:                  m.ID,
		ObjectiveID:         m.ObjectiveID,
		Name:                m.Name,
		Weight:              m.Weight,
		OrganizationID:      m.OrganizationID,
		OrganizationName:    m.OrganizationName,
		IsDefault:           m.IsDefault,
		MainActivities:      activities,
		PerformanceMeasures: measures,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// InitiativeFromEntity creates an InitiativeModel from a domain Initiative entity, without children.
func InitiativeFromEntity(initiative *entity.Initiative) *InitiativeModel {
	return &InitiativeModel{
		ID:               initiative.ID,
		ObjectiveID:      initiative.ObjectiveID,
		Name:             initiative.Name,
		Weight:           initiative.Weight,
		OrganizationID:   initiative.OrganizationID,
		OrganizationName: initiative.OrganizationName,
		IsDefault:        initiative.IsDefault,
		CreatedAt:        initiative.CreatedAt,
		UpdatedAt:        initiative.UpdatedAt,
	}
}
