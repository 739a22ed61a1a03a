package dto

import (
	"github.com/shopspring/decimal"

	"github.com/strategic-planning/backend/internal/domain/budget"
)

// PlanSummaryResponse is the aggregated budget and weight tree of a plan.
type PlanSummaryResponse struct {
	PlanID         string                  `json:"plan_id"`
	OrganizationID int64                   `json:"organization_id"`
	Cached         bool                    `json:"cached"`
	Objectives     []ObjectiveNodeResponse `json:"objectives"`
	GrandTotal     BudgetSummaryResponse   `json:"grand_total"`
	OverTarget     []string                `json:"over_target"`
}

// ObjectiveNodeResponse is one objective in the summary tree.
type ObjectiveNodeResponse struct {
	ID                string                   `json:"id"`
	Title             string                   `json:"title"`
	Weight            decimal.Decimal          `json:"weight"`
	PlannerWeight     *decimal.Decimal         `json:"planner_weight"`
	EffectiveWeight   decimal.Decimal          `json:"effective_weight"`
	Initiatives       []InitiativeNodeResponse `json:"initiatives"`
	Totals            BudgetSummaryResponse    `json:"totals"`
	ActivityWeights   WeightCheckResponse      `json:"activity_weights"`
	InitiativeWeights WeightCheckResponse      `json:"initiative_weights"`
}

// InitiativeNodeResponse is one initiative in the summary tree.
type InitiativeNodeResponse struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	Weight           decimal.Decimal        `json:"weight"`
	OrganizationID   *int64                 `json:"organization_id"`
	OrganizationName string                 `json:"organization_name,omitempty"`
	IsDefault        bool                   `json:"is_default"`
	Measures         []MeasureNodeResponse  `json:"performance_measures"`
	Activities       []ActivityNodeResponse `json:"main_activities"`
	Totals           BudgetSummaryResponse  `json:"totals"`
	ActivityWeights  WeightCheckResponse    `json:"activity_weights"`
	MeasureWeights   WeightCheckResponse    `json:"measure_weights"`
}

// ActivityNodeResponse is one main activity in the summary tree.
type ActivityNodeResponse struct {
	ID             string                    `json:"id"`
	Name           string                    `json:"name"`
	Weight         decimal.Decimal           `json:"weight"`
	OrganizationID *int64                    `json:"organization_id"`
	Targets        TargetsResponse           `json:"targets"`
	SubActivities  []SubActivityNodeResponse `json:"sub_activities"`
	Budget         BudgetSummaryResponse     `json:"budget"`
}

// SubActivityNodeResponse is one sub-activity in the summary tree.
type SubActivityNodeResponse struct {
	ID                    string                `json:"id"`
	Name                  string                `json:"name"`
	ActivityType          string                `json:"activity_type"`
	BudgetCalculationType string                `json:"budget_calculation_type"`
	Budget                BudgetSummaryResponse `json:"budget"`
}

// MeasureNodeResponse is one performance measure in the summary tree.
type MeasureNodeResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Weight         decimal.Decimal `json:"weight"`
	OrganizationID *int64          `json:"organization_id"`
	Targets        TargetsResponse `json:"targets"`
}

// ToPlanSummaryResponse converts an aggregated tree to its DTO.
func ToPlanSummaryResponse(planID string, tree *budget.Tree, cached bool) PlanSummaryResponse {
	response := PlanSummaryResponse{
		PlanID:         planID,
		OrganizationID: tree.OrganizationID,
		Cached:         cached,
		Objectives:     make([]ObjectiveNodeResponse, len(tree.Objectives)),
		GrandTotal:     ToBudgetSummaryResponse(tree.GrandTotal),
		OverTarget:     tree.OverTargetLevels(),
	}
	if response.OverTarget == nil {
		response.OverTarget = []string{}
	}
	for i, o := range tree.Objectives {
		response.Objectives[i] = toObjectiveNodeResponse(o)
	}
	return response
}

func toObjectiveNodeResponse(o budget.ObjectiveNode) ObjectiveNodeResponse {
	response := ObjectiveNodeResponse{
		ID:                o.ID.String(),
		Title:             o.Title,
		Weight:            o.Weight,
		PlannerWeight:     o.PlannerWeight,
		EffectiveWeight:   o.EffectiveWeight,
		Initiatives:       make([]InitiativeNodeResponse, len(o.Initiatives)),
		Totals:            ToBudgetSummaryResponse(o.Totals),
		ActivityWeights:   ToWeightCheckResponse(o.ActivityWeights),
		InitiativeWeights: ToWeightCheckResponse(o.InitiativeWeights),
	}
	for i, in := range o.Initiatives {
		response.Initiatives[i] = toInitiativeNodeResponse(in)
	}
	return response
}

func toInitiativeNodeResponse(in budget.InitiativeNode) InitiativeNodeResponse {
	response := InitiativeNodeResponse{
		ID:               in.ID.String(),
		Name:             in.Name,
		Weight:           in.Weight,
		OrganizationID:   in.OrganizationID,
		OrganizationName: in.OrganizationName,
		IsDefault:        in.IsDefault,
		Measures:         make([]MeasureNodeResponse, len(in.Measures)),
		Activities:       make([]ActivityNodeResponse, len(in.Activities)),
		Totals:           ToBudgetSummaryResponse(in.Totals),
		ActivityWeights:  ToWeightCheckResponse(in.ActivityWeights),
		MeasureWeights:   ToWeightCheckResponse(in.MeasureWeights),
	}
	for i, m := range in.Measures {
		response.Measures[i] = MeasureNodeResponse{
			ID:             m.ID.String(),
			Name:           m.Name,
			Weight:         m.Weight,
			OrganizationID: m.OrganizationID,
			Targets:        ToTargetsResponse(m.Baseline, m.Targets, m.Period),
		}
	}
	for i, a := range in.Activities {
		response.Activities[i] = toActivityNodeResponse(a)
	}
	return response
}

func toActivityNodeResponse(a budget.ActivityNode) ActivityNodeResponse {
	response := ActivityNodeResponse{
		ID:             a.ID.String(),
		Name:           a.Name,
		Weight:         a.Weight,
		OrganizationID: a.OrganizationID,
		Targets:        ToTargetsResponse(a.Baseline, a.Targets, a.Period),
		SubActivities:  make([]SubActivityNodeResponse, len(a.SubActivities)),
		Budget:         ToBudgetSummaryResponse(a.Budget),
	}
	for i, s := range a.SubActivities {
		response.SubActivities[i] = SubActivityNodeResponse{
			ID:                    s.ID.String(),
			Name:                  s.Name,
			ActivityType:          string(s.ActivityType),
			BudgetCalculationType: string(s.Mode),
			Budget:                ToBudgetSummaryResponse(s.Budget),
		}
	}
	return response
}
