package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlanType identifies the level a plan is prepared at.
type PlanType string

const (
	PlanTypeLeadExecutive PlanType = "LEO/EO Plan"
	PlanTypeDeskTeam      PlanType = "Desk/Team Plan"
	PlanTypeIndividual    PlanType = "Individual Plan"
)

// IsValid reports whether the plan type is known.
func (t PlanType) IsValid() bool {
	return t == PlanTypeLeadExecutive || t == PlanTypeDeskTeam || t == PlanTypeIndividual
}

// PlanStatus is the review state of a plan.
type PlanStatus string

const (
	PlanStatusDraft     PlanStatus = "DRAFT"
	PlanStatusSubmitted PlanStatus = "SUBMITTED"
	PlanStatusApproved  PlanStatus = "APPROVED"
	PlanStatusRejected  PlanStatus = "REJECTED"
)

// IsActive reports whether the status blocks another plan for the same organization and objective.
func (s PlanStatus) IsActive() bool {
	return s == PlanStatusSubmitted || s == PlanStatusApproved
}

// Plan is an organization's annual plan over a set of strategic objectives.
type Plan struct {
	ID                   uuid.UUID
	OrganizationID       int64
	OrganizationName     string
	PlannerID            uuid.UUID
	PlannerName          string
	PlannerEmail         string
	ExecutiveName        string
	Type                 PlanType
	StrategicObjectiveID uuid.UUID
	SelectedObjectiveIDs []uuid.UUID
	ObjectiveWeights     map[uuid.UUID]decimal.Decimal // Planner overrides per selected objective
	FiscalYear           string
	FromDate             time.Time
	ToDate               time.Time
	Status               PlanStatus
	SubmittedAt          *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewPlan creates a new draft Plan entity.
func NewPlan(organizationID int64, plannerID uuid.UUID, plannerName string, planType PlanType, strategicObjectiveID uuid.UUID, fiscalYear string, from, to time.Time) *Plan {
	now := time.Now().UTC()

	return &Plan{
		ID:                   uuid.New(),
		OrganizationID:       organizationID,
		PlannerID:            plannerID,
		PlannerName:          plannerName,
		Type:                 planType,
		StrategicObjectiveID: strategicObjectiveID,
		FiscalYear:           fiscalYear,
		FromDate:             from,
		ToDate:               to,
		Status:               PlanStatusDraft,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// ObjectiveIDs returns the objectives covered by the plan, strategic objective first, without duplicates.
func (p Plan) ObjectiveIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(p.SelectedObjectiveIDs)+1)
	ids := make([]uuid.UUID, 0, len(p.SelectedObjectiveIDs)+1)
	if p.StrategicObjectiveID != uuid.Nil {
		ids = append(ids, p.StrategicObjectiveID)
		seen[p.StrategicObjectiveID] = true
	}
	for _, id := range p.SelectedObjectiveIDs {
		if !seen[id] {
			ids = append(ids, id)
			seen[id] = true
		}
	}
	return ids
}

// CanSubmit reports whether the plan may move to SUBMITTED.
func (p Plan) CanSubmit() bool {
	return p.Status == PlanStatusDraft || p.Status == PlanStatusRejected
}

// MarkSubmitted moves the plan to SUBMITTED, keeping the first submission time.
func (p *Plan) MarkSubmitted(now time.Time) {
	p.Status = PlanStatusSubmitted
	if p.SubmittedAt == nil {
		p.SubmittedAt = &now
	}
	p.UpdatedAt = now
}

// PlanReview is an evaluator's decision on a submitted plan.
type PlanReview struct {
	ID            uuid.UUID
	PlanID        uuid.UUID
	EvaluatorID   uuid.UUID
	EvaluatorName string
	Status        PlanStatus // APPROVED or REJECTED
	Feedback      string
	ReviewedAt    time.Time
}

// NewPlanReview creates a new PlanReview entity.
func NewPlanReview(planID, evaluatorID uuid.UUID, evaluatorName string, status PlanStatus, feedback string) *PlanReview {
	return &PlanReview{
		ID:            uuid.New(),
		PlanID:        planID,
		EvaluatorID:   evaluatorID,
		EvaluatorName: evaluatorName,
		Status:        status,
		Feedback:      feedback,
		ReviewedAt:    time.Now().UTC(),
	}
}
