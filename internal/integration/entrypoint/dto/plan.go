package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/strategic-planning/backend/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// CreatePlanRequest represents the request body for plan creation.
type CreatePlanRequest struct {
	ExecutiveName        string            `json:"executive_name"`
	PlanType             string            `json:"type" binding:"required"`
	StrategicObjectiveID string            `json:"strategic_objective_id" binding:"omitempty,uuid"`
	SelectedObjectiveIDs []string          `json:"selected_objectives"`
	ObjectiveWeights     map[string]Amount `json:"selected_objectives_weights"`
	FiscalYear           string            `json:"fiscal_year" binding:"required"`
	FromDate             string            `json:"from_date" binding:"required"`
	ToDate               string            `json:"to_date" binding:"required"`
}

// ObjectiveIDs parses the primary and selected objective ids.
func (r CreatePlanRequest) ObjectiveIDs() (uuid.UUID, []uuid.UUID, error) {
	var primary uuid.UUID
	if r.StrategicObjectiveID != "" {
		id, err := uuid.Parse(r.StrategicObjectiveID)
		if err != nil {
			return uuid.Nil, nil, fmt.Errorf("invalid strategic objective id: %w", err)
		}
		primary = id
	}

	selected := make([]uuid.UUID, 0, len(r.SelectedObjectiveIDs))
	for _, raw := range r.SelectedObjectiveIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return uuid.Nil, nil, fmt.Errorf("invalid selected objective id %q: %w", raw, err)
		}
		selected = append(selected, id)
	}
	return primary, selected, nil
}

// Weights parses the planner weight overrides keyed by objective id.
func (r CreatePlanRequest) Weights() (map[uuid.UUID]decimal.Decimal, error) {
	if len(r.ObjectiveWeights) == 0 {
		return nil, nil
	}
	weights := make(map[uuid.UUID]decimal.Decimal, len(r.ObjectiveWeights))
	for raw, w := range r.ObjectiveWeights {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid objective weight key %q: %w", raw, err)
		}
		weights[id] = w.Decimal()
	}
	return weights, nil
}

// Dates parses the plan period.
func (r CreatePlanRequest) Dates() (time.Time, time.Time, error) {
	from, err := time.Parse(dateLayout, r.FromDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid from_date: %w", err)
	}
	to, err := time.Parse(dateLayout, r.ToDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid to_date: %w", err)
	}
	return from, to, nil
}

// ReviewPlanRequest represents the request body for an evaluator decision.
type ReviewPlanRequest struct {
	Status   string `json:"status" binding:"required,oneof=APPROVED REJECTED"`
	Feedback string `json:"feedback"`
}

// PlanResponse represents a plan in API responses.
type PlanResponse struct {
	ID                   string                     `json:"id"`
	OrganizationID       int64                      `json:"organization_id"`
	OrganizationName     string                     `json:"organization_name"`
	PlannerID            string                     `json:"planner_id"`
	PlannerName          string                     `json:"planner_name"`
	ExecutiveName        string                     `json:"executive_name,omitempty"`
	Type                 string                     `json:"type"`
	StrategicObjectiveID string                     `json:"strategic_objective_id,omitempty"`
	SelectedObjectiveIDs []string                   `json:"selected_objectives"`
	ObjectiveWeights     map[string]decimal.Decimal `json:"selected_objectives_weights,omitempty"`
	FiscalYear           string                     `json:"fiscal_year"`
	FromDate             string                     `json:"from_date"`
	ToDate               string                     `json:"to_date"`
	Status               string                     `json:"status"`
	SubmittedAt          *time.Time                 `json:"submitted_at,omitempty"`
	CreatedAt            time.Time                  `json:"created_at"`
	UpdatedAt            time.Time                  `json:"updated_at"`
}

// ToPlanResponse converts a domain Plan to its DTO.
func ToPlanResponse(p *entity.Plan) PlanResponse {
	response := PlanResponse{
		ID:                   p.ID.String(),
		OrganizationID:       p.OrganizationID,
		OrganizationName:     p.OrganizationName,
		PlannerID:            p.PlannerID.String(),
		PlannerName:          p.PlannerName,
		ExecutiveName:        p.ExecutiveName,
		Type:                 string(p.Type),
		SelectedObjectiveIDs: make([]string, len(p.SelectedObjectiveIDs)),
		FiscalYear:           p.FiscalYear,
		FromDate:             p.FromDate.Format(dateLayout),
		ToDate:               p.ToDate.Format(dateLayout),
		Status:               string(p.Status),
		SubmittedAt:          p.SubmittedAt,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
	if p.StrategicObjectiveID != uuid.Nil {
		response.StrategicObjectiveID = p.StrategicObjectiveID.String()
	}
	for i, id := range p.SelectedObjectiveIDs {
		response.SelectedObjectiveIDs[i] = id.String()
	}
	if len(p.ObjectiveWeights) > 0 {
		response.ObjectiveWeights = make(map[string]decimal.Decimal, len(p.ObjectiveWeights))
		for id, w := range p.ObjectiveWeights {
			response.ObjectiveWeights[id.String()] = w
		}
	}
	return response
}

// PlanReviewResponse represents an evaluator decision in API responses.
type PlanReviewResponse struct {
	ID            string    `json:"id"`
	PlanID        string    `json:"plan_id"`
	EvaluatorID   string    `json:"evaluator_id"`
	EvaluatorName string    `json:"evaluator_name"`
	Status        string    `json:"status"`
	Feedback      string    `json:"feedback"`
	ReviewedAt    time.Time `json:"reviewed_at"`
}

// ToPlanReviewResponse converts a domain PlanReview to its DTO.
func ToPlanReviewResponse(r *entity.PlanReview) PlanReviewResponse {
	return PlanReviewResponse{
		ID:            r.ID.String(),
		PlanID:        r.PlanID.String(),
		EvaluatorID:   r.EvaluatorID.String(),
		EvaluatorName: r.EvaluatorName,
		Status:        string(r.Status),
		Feedback:      r.Feedback,
		ReviewedAt:    r.ReviewedAt,
	}
}

// PlanDetailResponse is a plan with its review history, newest first.
type PlanDetailResponse struct {
	PlanResponse
	Reviews []PlanReviewResponse `json:"reviews"`
}

// ToPlanDetailResponse converts a plan and its reviews to the DTO.
func ToPlanDetailResponse(p *entity.Plan, reviews []*entity.PlanReview) PlanDetailResponse {
	response := PlanDetailResponse{
		PlanResponse: ToPlanResponse(p),
		Reviews:      make([]PlanReviewResponse, len(reviews)),
	}
	for i, r := range reviews {
		response.Reviews[i] = ToPlanReviewResponse(r)
	}
	return response
}

// SubmitPlanResponse is a submitted plan and the archived report location, if any.
type SubmitPlanResponse struct {
	Plan      PlanResponse `json:"plan"`
	ReportURL string       `json:"report_url,omitempty"`
}

// ReviewPlanResponse is a reviewed plan and the recorded decision.
type ReviewPlanResponse struct {
	Plan   PlanResponse       `json:"plan"`
	Review PlanReviewResponse `json:"review"`
}
