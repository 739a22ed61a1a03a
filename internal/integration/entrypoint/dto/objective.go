package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/strategic-planning/backend/internal/domain/entity"
)

// SetPlannerWeightRequest represents the request body for overriding an objective weight.
// A null planner_weight clears the override.
type SetPlannerWeightRequest struct {
	PlannerWeight *Amount `json:"planner_weight"`
}

// Weight returns the requested override, or nil to clear it.
func (r SetPlannerWeightRequest) Weight() *decimal.Decimal {
	if r.PlannerWeight == nil {
		return nil
	}
	w := r.PlannerWeight.Decimal()
	return &w
}

// ObjectiveResponse represents a strategic objective in API responses.
type ObjectiveResponse struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Weight          decimal.Decimal  `json:"weight"`
	PlannerWeight   *decimal.Decimal `json:"planner_weight"`
	EffectiveWeight decimal.Decimal  `json:"effective_weight"`
	IsDefault       bool             `json:"is_default"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// ObjectiveListResponse represents the response for listing objectives.
type ObjectiveListResponse struct {
	Objectives []ObjectiveResponse `json:"objectives"`
}

// ToObjectiveResponse converts a domain Objective to its DTO.
func ToObjectiveResponse(o *entity.Objective) ObjectiveResponse {
	return ObjectiveResponse{
		ID:              o.ID.String(),
		Title:           o.Title,
		Description:     o.Description,
		Weight:          o.Weight,
		PlannerWeight:   o.PlannerWeight,
		EffectiveWeight: o.EffectiveWeight(),
		IsDefault:       o.IsDefault,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

// ToObjectiveListResponse converts a list of objectives to its DTO.
func ToObjectiveListResponse(objectives []*entity.Objective) ObjectiveListResponse {
	response := ObjectiveListResponse{
		Objectives: make([]ObjectiveResponse, len(objectives)),
	}
	for i, o := range objectives {
		response.Objectives[i] = ToObjectiveResponse(o)
	}
	return response
}
