package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/strategic-planning/backend/internal/domain/entity"
)

// MainActivityModel represents the main_activities table in the database.
type MainActivityModel struct {
	ID              uuid.UUID            `gorm:"type:uuid;primaryKey"`
	InitiativeID    uuid.UUID            `gorm:"type:uuid;not null;index"`
	Name            string               `gorm:"type:varchar(255);not null"`
	Weight          decimal.Decimal      `gorm:"type:decimal(6,2);not null"`
	PlanItemColumns `gorm:"embedded"`
	OrganizationID  *int64               `gorm:"index"`
	IsDefault       bool                 `gorm:"not null;default:false"`
	SubActivities   []SubActivityModel   `gorm:"foreignKey:MainActivityID"`
	Budget          *ActivityBudgetModel `gorm:"foreignKey:MainActivityID"`
	CreatedAt       time.Time            `gorm:"not null"`
	UpdatedAt       time.Time            `gorm:"not null"`
}

// TableName returns the table name for the MainActivityModel.
func (MainActivityModel) TableName() string {
	return "main_activities"
}

// ToEntity converts a MainActivityModel to a domain MainActivity entity, including any loaded budgets.
func (m *MainActivityModel) ToEntity() *entity.MainActivity {
	var subs []entity.SubActivity
	for i := range m.SubActivities {
		subs = append(subs, *m.SubActivities[i].ToEntity())
	}

	var legacy *entity.ActivityBudget
	if m.Budget != nil {
		legacy = m.Budget.ToEntity()
	}

	return &entity.MainActivity{
		ID:             m.ID,
		InitiativeID:   m.InitiativeID,
		Name:           m.Name,
		Weight:         m.Weight,
		Baseline:       m.Baseline,
		Targets:        m.targets(),
		Period:         m.period(),
		OrganizationID: m.OrganizationID,
		IsDefault:      m.IsDefault,
		SubActivities:  subs,
		LegacyBudget:   legacy,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// MainActivityFromEntity creates a MainActivityModel from a domain MainActivity entity, without budgets.
func MainActivityFromEntity(activity *entity.MainActivity) *MainActivityModel {
	return &MainActivityModel{
		ID:              activity.ID,
		InitiativeID:    activity.InitiativeID,
		Name:            activity.Name,
		Weight:          activity.Weight,
		PlanItemColumns: planItemColumns(activity.Baseline, activity.Targets, activity.Period),
		OrganizationID:  activity.OrganizationID,
		IsDefault:       activity.IsDefault,
		CreatedAt:       activity.CreatedAt,
		UpdatedAt:       activity.UpdatedAt,
	}
}

// ActivityBudgetModel represents the activity_budgets table in the database.
// A main activity has at most one direct budget.
type ActivityBudgetModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	MainActivityID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	BudgetColumns  `gorm:"embedded"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName returns the table name for the ActivityBudgetModel.
func (ActivityBudgetModel) TableName() string {
	return "activity_budgets"
}

// ToEntity converts an ActivityBudgetModel to a domain ActivityBudget entity.
func (m *ActivityBudgetModel) ToEntity() *entity.ActivityBudget {
	return &entity.ActivityBudget{
		ID:             m.ID,
		MainActivityID: m.MainActivityID,
		Cost:           m.cost(),
		Funding:        m.funding(),
		ToolDetails:    m.toolDetails(),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// ActivityBudgetFromEntity creates an ActivityBudgetModel from a domain ActivityBudget entity.
func ActivityBudgetFromEntity(budget *entity.ActivityBudget) *ActivityBudgetModel {
	return &ActivityBudgetModel{
		ID:             budget.ID,
		MainActivityID: budget.MainActivityID,
		BudgetColumns:  budgetColumns(budget.Cost, budget.Funding, budget.ToolDetails),
		CreatedAt:      budget.CreatedAt,
		UpdatedAt:      budget.UpdatedAt,
	}
}

// SubActivityModel represents the sub_activities table in the database.
type SubActivityModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	MainActivityID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Description    string    `gorm:"type:text"`
	BudgetColumns  `gorm:"embedded"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName returns the table name for the SubActivityModel.
func (SubActivityModel) TableName() string {
	return "sub_activities"
}

// ToEntity converts a SubActivityModel to a domain SubActivity entity.
func (m *SubActivityModel) ToEntity() *entity.SubActivity {
	cost := m.cost()
	return &entity.SubActivity{
		ID:             m.ID,
		MainActivityID: m.MainActivityID,
		Name:           m.Name,
		ActivityType:   cost.ActivityType,
		Description:    m.Description,
		Cost:           cost,
		Funding:        m.funding(),
		ToolDetails:    m.toolDetails(),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// SubActivityFromEntity creates a SubActivityModel from a domain SubActivity entity.
func SubActivityFromEntity(sub *entity.SubActivity) *SubActivityModel {
	cost := sub.Cost
	if sub.ActivityType != "" {
		cost.ActivityType = sub.ActivityType
	}
	return &SubActivityModel{
		ID:             sub.ID,
		MainActivityID: sub.MainActivityID,
		Name:           sub.Name,
		Description:    sub.Description,
		BudgetColumns:  budgetColumns(cost, sub.Funding, sub.ToolDetails),
		CreatedAt:      sub.CreatedAt,
		UpdatedAt:      sub.UpdatedAt,
	}
}
