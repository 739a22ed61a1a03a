package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/strategic-planning/backend/internal/application/usecase/measure"
	"github.com/strategic-planning/backend/internal/domain/entity"
)

// PerformanceMeasureRequest represents the request body for creating or updating a performance measure.
type PerformanceMeasureRequest struct {
	Name   string `json:"name" binding:"required"`
	Weight Amount `json:"weight"`
	TargetsRequest
}

// Input returns the use case input for the request.
func (r PerformanceMeasureRequest) Input() measure.MeasureInput {
	return measure.MeasureInput{
		Name:     r.Name,
		Weight:   r.Weight.Decimal(),
		Baseline: r.Baseline,
		Targets:  r.Targets(),
		Period:   r.Period(),
	}
}

// PerformanceMeasureResponse represents a performance measure in API responses.
type PerformanceMeasureResponse struct {
	ID             string          `json:"id"`
	InitiativeID   string          `json:"initiative_id"`
	Name           string          `json:"name"`
	Weight         decimal.Decimal `json:"weight"`
	OrganizationID *int64          `json:"organization_id"`
	IsDefault      bool            `json:"is_default"`
	Targets        TargetsResponse `json:"targets"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// PerformanceMeasureWithWeightsResponse is a measure and its initiative's measure weights.
type PerformanceMeasureWithWeightsResponse struct {
	PerformanceMeasure PerformanceMeasureResponse `json:"performance_measure"`
	Weights            WeightCheckResponse        `json:"weights"`
}

// PerformanceMeasureListResponse represents the measures visible under an initiative.
type PerformanceMeasureListResponse struct {
	PerformanceMeasures []PerformanceMeasureResponse `json:"performance_measures"`
	Weights             WeightCheckResponse          `json:"weights"`
}

// ToPerformanceMeasureResponse converts a domain PerformanceMeasure to its DTO.
func ToPerformanceMeasureResponse(m *entity.PerformanceMeasure) PerformanceMeasureResponse {
	return PerformanceMeasureResponse{
		ID:             m.ID.String(),
		InitiativeID:   m.InitiativeID.String(),
		Name:           m.Name,
		Weight:         m.Weight,
		OrganizationID: m.OrganizationID,
		IsDefault:      m.IsDefault,
		Targets:        ToTargetsResponse(m.Baseline, m.Targets, m.Period),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// ToPerformanceMeasureWithWeightsResponse converts a create or update output to its DTO.
func ToPerformanceMeasureWithWeightsResponse(output *measure.PerformanceMeasureOutput) PerformanceMeasureWithWeightsResponse {
	return PerformanceMeasureWithWeightsResponse{
		PerformanceMeasure: ToPerformanceMeasureResponse(output.Measure),
		Weights:            ToWeightCheckResponse(output.Weights),
	}
}

// ToPerformanceMeasureListResponse converts a list output to its DTO.
func ToPerformanceMeasureListResponse(output *measure.ListPerformanceMeasuresOutput) PerformanceMeasureListResponse {
	response := PerformanceMeasureListResponse{
		PerformanceMeasures: make([]PerformanceMeasureResponse, len(output.Measures)),
		Weights:             ToWeightCheckResponse(output.Weights),
	}
	for i := range output.Measures {
		response.PerformanceMeasures[i] = ToPerformanceMeasureResponse(&output.Measures[i])
	}
	return response
}
