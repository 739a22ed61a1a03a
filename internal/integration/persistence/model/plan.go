package model

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/strategic-planning/backend/internal/domain/entity"
)

// PlanModel represents the plans table in the database.
type PlanModel struct {
	ID                   uuid.UUID                     `gorm:"type:uuid;primaryKey"`
	OrganizationID       int64                         `gorm:"not null;index:idx_plans_org_objective"`
	OrganizationName     string                        `gorm:"type:varchar(255)"`
	PlannerID            uuid.UUID                     `gorm:"type:uuid;not null"`
	PlannerName          string                        `gorm:"type:varchar(255);not null"`
	PlannerEmail         string                        `gorm:"type:varchar(255)"`
	ExecutiveName        string                        `gorm:"type:varchar(255)"`
	Type                 string                        `gorm:"type:varchar(30);not null"`
	StrategicObjectiveID uuid.UUID                     `gorm:"type:uuid;not null;index:idx_plans_org_objective"`
	SelectedObjectiveIDs []uuid.UUID                   `gorm:"type:jsonb;serializer:json"`
	ObjectiveWeights     map[uuid.UUID]decimal.Decimal `gorm:"type:jsonb;serializer:json"`
	FiscalYear           string                        `gorm:"type:varchar(20);not null"`
	FromDate             time.Time                     `gorm:"type:date;not null"`
	ToDate               time.Time                     `gorm:"type:date;not null"`
	Status               string                        `gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	SubmittedAt          sql.NullTime                  `gorm:"default:null"`
	CreatedAt            time.Time                     `gorm:"not null"`
	UpdatedAt            time.Time                     `gorm:"not null"`
}

// TableName returns the table name for the PlanModel.
func (PlanModel) TableName() string {
	return "plans"
}

// ToEntity converts a PlanModel to a domain Plan entity.
func (m *PlanModel) ToEntity() *entity.Plan {
	var submittedAt *time.Time
	if m.SubmittedAt.Valid {
		submittedAt = &m.SubmittedAt.Time
	}

	weights := make(map[uuid.UUID]decimal.Decimal, len(m.ObjectiveWeights))
	for id, w := range m.ObjectiveWeights {
		weights[id] = w
	}

	return &entity.Plan{
		ID:                   m.ID,
		OrganizationID:       m.OrganizationID,
		OrganizationName:     m.OrganizationName,
		PlannerID:            m.PlannerID,
		PlannerName:          m.PlannerName,
		PlannerEmail:         m.PlannerEmail,
		ExecutiveName:        m.ExecutiveName,
		Type:                 entity.PlanType(m.Type),
		StrategicObjectiveID: m.StrategicObjectiveID,
		SelectedObjectiveIDs: m.SelectedObjectiveIDs,
		ObjectiveWeights:     weights,
		FiscalYear:           m.FiscalYear,
		FromDate:             m.FromDate,
		ToDate:               m.ToDate,
		Status:               entity.PlanStatus(m.Status),
		SubmittedAt:          submittedAt,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// PlanFromEntity creates a PlanModel from a domain Plan entity.
func PlanFromEntity(plan *entity.Plan) *PlanModel {
	var submittedAt sql.NullTime
	if plan.SubmittedAt != nil {
		submittedAt = sql.NullTime{Time: *plan.SubmittedAt, Valid: true}
	}

	return &PlanModel{
		ID:                   plan.ID,
		OrganizationID:       plan.OrganizationID,
		OrganizationName:     plan.OrganizationName,
		PlannerID:            plan.PlannerID,
		PlannerName:          plan.PlannerName,
		PlannerEmail:         plan.PlannerEmail,
		ExecutiveName:        plan.ExecutiveName,
		Type:                 string(plan.Type),
		StrategicObjectiveID: plan.StrategicObjectiveID,
		SelectedObjectiveIDs: plan.SelectedObjectiveIDs,
		ObjectiveWeights:     plan.ObjectiveWeights,
		FiscalYear:           plan.FiscalYear,
		FromDate:             plan.FromDate,
		ToDate:               plan.ToDate,
		Status:               string(plan.Status),
		SubmittedAt:          submittedAt,
		CreatedAt:            plan.CreatedAt,
		UpdatedAt:            plan.UpdatedAt,
	}
}

// PlanReviewModel represents the plan_reviews table in the database.
type PlanReviewModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	PlanID        uuid.UUID `gorm:"type:uuid;not null;index"`
	EvaluatorID   uuid.UUID `gorm:"type:uuid;not null"`
	EvaluatorName string    `gorm:"type:varchar(255)"`
	Status        string    `gorm:"type:varchar(20);not null"`
	Feedback      string    `gorm:"type:text"`
	ReviewedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the PlanReviewModel.
func (PlanReviewModel) TableName() string {
	return "plan_reviews"
}

// ToEntity converts a PlanReviewModel to a domain PlanReview entity.
func (m *PlanReviewModel) ToEntity() *entity.PlanReview {
	return &entity.PlanReview{
		ID:            m.ID,
		PlanID:        m.PlanID,
		EvaluatorID:   m.EvaluatorID,
		EvaluatorName: m.EvaluatorName,
		Status:        entity.PlanStatus(m.Status),
		Feedback:      m.Feedback,
		ReviewedAt:    m.ReviewedAt,
	}
}

// PlanReviewFromEntity creates a PlanReviewModel from a domain PlanReview entity.
func PlanReviewFromEntity(review *entity.PlanReview) *PlanReviewModel {
	return &PlanReviewModel{
		ID:            review.ID,
		PlanID:        review.PlanID,
		EvaluatorID:   review.EvaluatorID,
		EvaluatorName: review.EvaluatorName,
		Status:        string(review.Status),
		Feedback:      review.Feedback,
		ReviewedAt:    review.ReviewedAt,
	}
}
