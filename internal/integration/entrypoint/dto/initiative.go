package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/strategic-planning/backend/internal/application/usecase/initiative"
	"github.com/strategic-planning/backend/internal/domain/entity"
)

// CreateInitiativeRequest represents the request body for initiative creation.
type CreateInitiativeRequest struct {
	ObjectiveID string `json:"strategic_objective_id" binding:"required,uuid"`
	Name        string `json:"name" binding:"required"`
	Weight      Amount `json:"weight"`
}

// InitiativeResponse represents an initiative in API responses.
type InitiativeResponse struct {
	ID               string          `json:"id"`
	ObjectiveID      string          `json:"strategic_objective_id"`
	Name             string          `json:"name"`
	Weight           decimal.Decimal `json:"weight"`
	OrganizationID   *int64          `json:"organization_id"`
	OrganizationName string          `json:"organization_name,omitempty"`
	IsDefault        bool            `json:"is_default"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// CreateInitiativeResponse is the created initiative and the objective's initiative weights after it.
type CreateInitiativeResponse struct {
	Initiative InitiativeResponse  `json:"initiative"`
	Weights    WeightCheckResponse `json:"weights"`
}

// InitiativeListResponse represents the initiatives visible under an objective.
type InitiativeListResponse struct {
	Objective   ObjectiveResponse    `json:"objective"`
	Initiatives []InitiativeResponse `json:"initiatives"`
	Weights     WeightCheckResponse  `json:"weights"`
}

// InitiativeWeightsResponse reports both weight shares of an initiative.
type InitiativeWeightsResponse struct {
	InitiativeID        string              `json:"initiative_id"`
	Weight              decimal.Decimal     `json:"weight"`
	MainActivities      WeightCheckResponse `json:"main_activities"`
	PerformanceMeasures WeightCheckResponse `json:"performance_measures"`
}

// ToInitiativeResponse converts a domain Initiative to its DTO.
func ToInitiativeResponse(i *entity.Initiative) InitiativeResponse {
	return InitiativeResponse{
		ID:               i.ID.String(),
		ObjectiveID:      i.ObjectiveID.String(),
		Name:             i.Name,
		Weight:           i.Weight,
		OrganizationID:   i.OrganizationID,
		OrganizationName: i.OrganizationName,
		IsDefault:        i.IsDefault,
		CreatedAt:        i.CreatedAt,
		UpdatedAt:        i.UpdatedAt,
	}
}

// ToInitiativeListResponse converts a list use case output to its DTO.
func ToInitiativeListResponse(output *initiative.ListInitiativesOutput) InitiativeListResponse {
	response := InitiativeListResponse{
		Objective:   ToObjectiveResponse(output.Objective),
		Initiatives: make([]InitiativeResponse, len(output.Initiatives)),
		Weights:     ToWeightCheckResponse(output.Weights),
	}
	for i := range output.Initiatives {
		response.Initiatives[i] = ToInitiativeResponse(&output.Initiatives[i])
	}
	return response
}

// ToInitiativeWeightsResponse converts a weights use case output to its DTO.
func ToInitiativeWeightsResponse(output *initiative.GetInitiativeWeightsOutput) InitiativeWeightsResponse {
	return InitiativeWeightsResponse{
		InitiativeID:        output.Initiative.ID.String(),
		Weight:              output.Initiative.Weight,
		MainActivities:      ToWeightCheckResponse(output.Activities),
		PerformanceMeasures: ToWeightCheckResponse(output.Measures),
	}
}
