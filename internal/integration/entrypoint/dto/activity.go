package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/strategic-planning/backend/internal/application/usecase/activity"
	"github.com/strategic-planning/backend/internal/domain/budget"
	"github.com/strategic-planning/backend/internal/domain/entity"
	"github.com/strategic-planning/backend/internal/domain/valueobject"
)

// MainActivityRequest represents the request body for creating or updating a main activity.
type MainActivityRequest struct {
	Name   string `json:"name" binding:"required"`
	Weight Amount `json:"weight"`
	TargetsRequest
}

// Item returns the use case input for the request.
func (r MainActivityRequest) Item() activity.PlanItemInput {
	return activity.PlanItemInput{
		Name:     r.Name,
		Weight:   r.Weight.Decimal(),
		Baseline: r.Baseline,
		Targets:  r.Targets(),
		Period:   r.Period(),
	}
}

// PartnerRequest is one named partner contribution.
type PartnerRequest struct {
	Name   string `json:"name"`
	Amount Amount `json:"amount"`
}

// BudgetRequest is the costing tool ingestion shape shared by budgets and sub-activities.
type BudgetRequest struct {
	BudgetCalculationType    string           `json:"budget_calculation_type"`
	ActivityType             string           `json:"activity_type"`
	EstimatedCostWithTool    Amount           `json:"estimated_cost_with_tool"`
	EstimatedCostWithoutTool Amount           `json:"estimated_cost_without_tool"`
	GovernmentTreasury       Amount           `json:"government_treasury"`
	SDGFunding               Amount           `json:"sdg_funding"`
	PartnersFunding          Amount           `json:"partners_funding"`
	OtherFunding             Amount           `json:"other_funding"`
	PartnersList             []PartnerRequest `json:"partners_list"`
	TrainingDetails          json.RawMessage  `json:"training_details,omitempty"`
	MeetingWorkshopDetails   json.RawMessage  `json:"meeting_workshop_details,omitempty"`
	ProcurementDetails       json.RawMessage  `json:"procurement_details,omitempty"`
	PrintingDetails          json.RawMessage  `json:"printing_details,omitempty"`
	SupervisionDetails       json.RawMessage  `json:"supervision_details,omitempty"`
}

// toolDetailKeys lists the costing tool blobs in the order they are stored.
var toolDetailKeys = []string{
	"training_details",
	"meeting_workshop_details",
	"procurement_details",
	"printing_details",
	"supervision_details",
}

// Input returns the use case input for the request.
func (r BudgetRequest) Input() activity.BudgetInput {
	partners := make([]valueobject.PartnerContribution, 0, len(r.PartnersList))
	for _, p := range r.PartnersList {
		partners = append(partners, valueobject.PartnerContribution{Name: p.Name, Amount: p.Amount.Decimal()})
	}

	return activity.BudgetInput{
		Cost: valueobject.CostInput{
			Mode:            valueobject.CalculationMode(r.BudgetCalculationType),
			CostWithTool:    r.EstimatedCostWithTool.Decimal(),
			CostWithoutTool: r.EstimatedCostWithoutTool.Decimal(),
			ActivityType:    valueobject.ActivityType(r.ActivityType),
		},
		Funding: valueobject.NewFundingBreakdown(
			r.GovernmentTreasury.Decimal(),
			r.SDGFunding.Decimal(),
			r.PartnersFunding.Decimal(),
			r.OtherFunding.Decimal(),
			partners,
		),
		ToolDetails: r.toolDetails(),
	}
}

// toolDetails packs the non-empty costing tool blobs into one JSON object.
func (r BudgetRequest) toolDetails() json.RawMessage {
	blobs := []json.RawMessage{
		r.TrainingDetails,
		r.MeetingWorkshopDetails,
		r.ProcurementDetails,
		r.PrintingDetails,
		r.SupervisionDetails,
	}

	details := make(map[string]json.RawMessage)
	for i, blob := range blobs {
		if len(blob) > 0 && string(blob) != "null" {
			details[toolDetailKeys[i]] = blob
		}
	}
	if len(details) == 0 {
		return nil
	}

	packed, err := json.Marshal(details)
	if err != nil {
		return nil
	}
	return packed
}

// PartnerResponse is one named partner contribution.
type PartnerResponse struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// BudgetResponse echoes a stored cost and funding in the ingestion shape.
type BudgetResponse struct {
	BudgetCalculationType    string                     `json:"budget_calculation_type"`
	ActivityType             string                     `json:"activity_type"`
	EstimatedCostWithTool    decimal.Decimal            `json:"estimated_cost_with_tool"`
	EstimatedCostWithoutTool decimal.Decimal            `json:"estimated_cost_without_tool"`
	GovernmentTreasury       decimal.Decimal            `json:"government_treasury"`
	SDGFunding               decimal.Decimal            `json:"sdg_funding"`
	PartnersFunding          decimal.Decimal            `json:"partners_funding"`
	OtherFunding             decimal.Decimal            `json:"other_funding"`
	PartnersList             []PartnerResponse          `json:"partners_list"`
	ToolDetails              map[string]json.RawMessage `json:"tool_details,omitempty"`
}

// ToBudgetResponse converts a cost and funding pair to its DTO.
func ToBudgetResponse(cost valueobject.CostInput, funding valueobject.FundingBreakdown, details json.RawMessage) BudgetResponse {
	response := BudgetResponse{
		BudgetCalculationType:    string(cost.Mode),
		ActivityType:             string(cost.ActivityType),
		EstimatedCostWithTool:    cost.CostWithTool,
		EstimatedCostWithoutTool: cost.CostWithoutTool,
		GovernmentTreasury:       funding.Government,
		SDGFunding:               funding.SDG,
		PartnersFunding:          funding.Partners,
		OtherFunding:             funding.Other,
		PartnersList:             make([]PartnerResponse, len(funding.PartnersList)),
	}
	for i, p := range funding.PartnersList {
		response.PartnersList[i] = PartnerResponse{Name: p.Name, Amount: p.Amount}
	}
	if len(details) > 0 {
		_ = json.Unmarshal(details, &response.ToolDetails)
	}
	return response
}

// SubActivityRequest represents the request body for creating or updating a sub-activity.
type SubActivityRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	BudgetRequest
}

// Input returns the use case input for the request.
func (r SubActivityRequest) Input() activity.SubActivityInput {
	return activity.SubActivityInput{
		Name:        r.Name,
		Description: r.Description,
		Budget:      r.BudgetRequest.Input(),
	}
}

// SubActivityResponse represents a sub-activity in API responses.
type SubActivityResponse struct {
	ID             string                `json:"id"`
	MainActivityID string                `json:"main_activity_id"`
	Name           string                `json:"name"`
	Description    string                `json:"description"`
	Budget         BudgetResponse        `json:"budget"`
	Summary        BudgetSummaryResponse `json:"summary"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// ToSubActivityResponse converts a domain SubActivity to its DTO.
func ToSubActivityResponse(s *entity.SubActivity) SubActivityResponse {
	return SubActivityResponse{
		ID:             s.ID.String(),
		MainActivityID: s.MainActivityID.String(),
		Name:           s.Name,
		Description:    s.Description,
		Budget:         ToBudgetResponse(s.Cost, s.Funding, s.ToolDetails),
		Summary:        ToBudgetSummaryResponse(budget.ComputeSubActivityBudget(*s)),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

// MainActivityResponse represents a main activity in API responses.
type MainActivityResponse struct {
	ID             string                `json:"id"`
	InitiativeID   string                `json:"initiative_id"`
	Name           string                `json:"name"`
	Weight         decimal.Decimal       `json:"weight"`
	OrganizationID *int64                `json:"organization_id"`
	IsDefault      bool                  `json:"is_default"`
	Targets        TargetsResponse       `json:"targets"`
	SubActivities  []SubActivityResponse `json:"sub_activities"`
	Budget         *BudgetResponse       `json:"budget,omitempty"`
	Summary        BudgetSummaryResponse `json:"summary"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// MainActivityWithWeightsResponse is a main activity and its initiative's activity weights.
type MainActivityWithWeightsResponse struct {
	MainActivity MainActivityResponse `json:"main_activity"`
	Weights      WeightCheckResponse  `json:"weights"`
}

// ToMainActivityResponse converts a domain MainActivity to its DTO.
func ToMainActivityResponse(a *entity.MainActivity) MainActivityResponse {
	response := MainActivityResponse{
		ID:             a.ID.String(),
		InitiativeID:   a.InitiativeID.String(),
		Name:           a.Name,
		Weight:         a.Weight,
		OrganizationID: a.OrganizationID,
		IsDefault:      a.IsDefault,
		Targets:        ToTargetsResponse(a.Baseline, a.Targets, a.Period),
		SubActivities:  make([]SubActivityResponse, len(a.SubActivities)),
		Summary:        ToBudgetSummaryResponse(budget.ComputeActivityBudget(*a)),
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
	for i := range a.SubActivities {
		response.SubActivities[i] = ToSubActivityResponse(&a.SubActivities[i])
	}
	if a.LegacyBudget != nil {
		b := ToBudgetResponse(a.LegacyBudget.Cost, a.LegacyBudget.Funding, a.LegacyBudget.ToolDetails)
		response.Budget = &b
	}
	return response
}

// ActivityBudgetResponse is a saved activity budget and the activity's computed summary.
type ActivityBudgetResponse struct {
	ID             string                `json:"id"`
	MainActivityID string                `json:"main_activity_id"`
	Budget         BudgetResponse        `json:"budget"`
	Summary        BudgetSummaryResponse `json:"summary"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// ToActivityBudgetResponse converts a save budget use case output to its DTO.
func ToActivityBudgetResponse(output *activity.SaveActivityBudgetOutput) ActivityBudgetResponse {
	b := output.Budget
	return ActivityBudgetResponse{
		ID:             b.ID.String(),
		MainActivityID: b.MainActivityID.String(),
		Budget:         ToBudgetResponse(b.Cost, b.Funding, b.ToolDetails),
		Summary:        ToBudgetSummaryResponse(output.Summary),
		UpdatedAt:      b.UpdatedAt,
	}
}
