package dto

import (
	"github.com/strategic-planning/backend/internal/domain/budget"
)

// ReportHeaderResponse is the header block of a plan report.
type ReportHeaderResponse struct {
	Organization string `json:"organization"`
	Planner      string `json:"planner"`
	PlanType     string `json:"plan_type"`
	FromDate     string `json:"from_date"`
	ToDate       string `json:"to_date"`
}

// ReportRowResponse is one flat row of a plan report.
// Budget is omitted on measure and placeholder rows.
type ReportRowResponse struct {
	Number           string                 `json:"no"`
	ObjectiveTitle   string                 `json:"strategic_objective"`
	ObjectiveWeight  string                 `json:"strategic_objective_weight"`
	InitiativeName   string                 `json:"strategic_initiative"`
	InitiativeWeight string                 `json:"initiative_weight"`
	ItemType         string                 `json:"item_type"`
	ItemName         string                 `json:"item_name"`
	ItemWeight       string                 `json:"item_weight"`
	Baseline         string                 `json:"baseline"`
	Q1Target         string                 `json:"q1_target"`
	Q1Months         string                 `json:"q1_months"`
	Q2Target         string                 `json:"q2_target"`
	Q2Months         string                 `json:"q2_months"`
	SixMonthTarget   string                 `json:"six_month_target"`
	Q3Target         string                 `json:"q3_target"`
	Q3Months         string                 `json:"q3_months"`
	Q4Target         string                 `json:"q4_target"`
	Q4Months         string                 `json:"q4_months"`
	AnnualTarget     string                 `json:"annual_target"`
	Implementor      string                 `json:"implementor"`
	Budget           *BudgetSummaryResponse `json:"budget,omitempty"`
}

// PlanReportResponse is the flattened report of a plan.
type PlanReportResponse struct {
	PlanID string               `json:"plan_id"`
	Header ReportHeaderResponse `json:"header"`
	Rows   []ReportRowResponse  `json:"rows"`
}

// ToPlanReportResponse converts a projected report to its DTO.
func ToPlanReportResponse(planID string, report budget.Report) PlanReportResponse {
	response := PlanReportResponse{
		PlanID: planID,
		Header: ReportHeaderResponse{
			Organization: report.Header.Organization,
			Planner:      report.Header.Planner,
			PlanType:     report.Header.PlanType,
			FromDate:     report.Header.FromDate,
			ToDate:       report.Header.ToDate,
		},
		Rows: make([]ReportRowResponse, len(report.Rows)),
	}
	for i, row := range report.Rows {
		response.Rows[i] = ToReportRowResponse(row)
	}
	return response
}

// ToReportRowResponse converts one report row to its DTO.
func ToReportRowResponse(row budget.ReportRow) ReportRowResponse {
	response := ReportRowResponse{
		Number:           row.Number,
		ObjectiveTitle:   row.ObjectiveTitle,
		ObjectiveWeight:  row.ObjectiveWeight,
		InitiativeName:   row.InitiativeName,
		InitiativeWeight: row.InitiativeWeight,
		ItemType:         string(row.ItemType),
		ItemName:         row.ItemName,
		ItemWeight:       row.ItemWeight,
		Baseline:         row.Baseline,
		Q1Target:         row.Q1Target,
		Q1Months:         row.Q1Months,
		Q2Target:         row.Q2Target,
		Q2Months:         row.Q2Months,
		SixMonthTarget:   row.SixMonthTarget,
		Q3Target:         row.Q3Target,
		Q3Months:         row.Q3Months,
		Q4Target:         row.Q4Target,
		Q4Months:         row.Q4Months,
		AnnualTarget:     row.AnnualTarget,
		Implementor:      row.Implementor,
	}
	if row.HasBudget {
		b := ToBudgetSummaryResponse(row.Budget)
		response.Budget = &b
	}
	return response
}
