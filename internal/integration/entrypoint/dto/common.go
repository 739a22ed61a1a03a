// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/strategic-planning/backend/internal/domain/budget"
	"github.com/strategic-planning/backend/internal/domain/valueobject"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// Amount is a non-negative figure that accepts JSON numbers, numeric strings or null.
// Missing, malformed and negative values decode as zero.
type Amount decimal.Decimal

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var raw any
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&raw); err != nil {
		raw = nil
	}
	*a = Amount(valueobject.CoerceNonNegativeDecimal(raw))
	return nil
}

// MarshalJSON implements json.Marshaler.
func (a Amount) MarshalJSON() ([]byte, error) {
	return decimal.Decimal(a).MarshalJSON()
}

// Decimal returns the amount as a decimal.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.Decimal(a)
}

// WeightCheckResponse reports how a set of child weights compares to its expected share.
type WeightCheckResponse struct {
	Expected  decimal.Decimal `json:"expected"`
	Actual    decimal.Decimal `json:"actual"`
	Deviation decimal.Decimal `json:"deviation"`
	Remaining decimal.Decimal `json:"remaining"`
	IsValid   bool            `json:"is_valid"`
	CanAdd    bool            `json:"can_add"`
	Status    string          `json:"status"`
}

// ToWeightCheckResponse converts a weight check result to its DTO.
func ToWeightCheckResponse(r budget.WeightCheckResult) WeightCheckResponse {
	return WeightCheckResponse{
		Expected:  r.Expected,
		Actual:    r.Actual,
		Deviation: r.Deviation,
		Remaining: r.Remaining,
		IsValid:   r.IsValid,
		CanAdd:    r.CanAdd,
		Status:    string(r.Status),
	}
}

// BudgetSummaryResponse is a required amount with its funding and gap.
type BudgetSummaryResponse struct {
	Required       decimal.Decimal `json:"required"`
	Government     decimal.Decimal `json:"government"`
	SDG            decimal.Decimal `json:"sdg"`
	Partners       decimal.Decimal `json:"partners"`
	Other          decimal.Decimal `json:"other"`
	TotalAvailable decimal.Decimal `json:"total_available"`
	Gap            decimal.Decimal `json:"gap"`
	Balance        decimal.Decimal `json:"balance"`
	Status         string          `json:"status"`
}

// ToBudgetSummaryResponse converts a budget summary to its DTO.
func ToBudgetSummaryResponse(s budget.Summary) BudgetSummaryResponse {
	return BudgetSummaryResponse{
		Required:       s.Required,
		Government:     s.Government,
		SDG:            s.SDG,
		Partners:       s.Partners,
		Other:          s.Other,
		TotalAvailable: s.TotalAvailable,
		Gap:            s.Gap,
		Balance:        s.Balance(),
		Status:         string(s.Status()),
	}
}

// TargetsRequest carries the baseline, quarterly targets and period of a measure or main activity.
type TargetsRequest struct {
	Baseline         string   `json:"baseline"`
	TargetType       string   `json:"target_type" binding:"required,oneof=cumulative increasing decreasing constant"`
	Q1Target         Amount   `json:"q1_target"`
	Q2Target         Amount   `json:"q2_target"`
	Q3Target         Amount   `json:"q3_target"`
	Q4Target         Amount   `json:"q4_target"`
	AnnualTarget     Amount   `json:"annual_target"`
	SelectedMonths   []string `json:"selected_months"`
	SelectedQuarters []string `json:"selected_quarters"`
}

// Targets returns the quarterly targets.
func (r TargetsRequest) Targets() valueobject.QuarterTargets {
	return valueobject.QuarterTargets{
		Type:   valueobject.TargetType(strings.ToLower(r.TargetType)),
		Q1:     r.Q1Target.Decimal(),
		Q2:     r.Q2Target.Decimal(),
		Q3:     r.Q3Target.Decimal(),
		Q4:     r.Q4Target.Decimal(),
		Annual: r.AnnualTarget.Decimal(),
	}
}

// Period returns the selected months and quarters.
// Unknown month and quarter names are dropped.
func (r TargetsRequest) Period() valueobject.PeriodSelection {
	var period valueobject.PeriodSelection
	for _, m := range r.SelectedMonths {
		month := valueobject.Month(strings.ToUpper(strings.TrimSpace(m)))
		if month.IsValid() {
			period.Months = append(period.Months, month)
		}
	}
	for _, q := range r.SelectedQuarters {
		quarter := valueobject.Quarter(strings.ToUpper(strings.TrimSpace(q)))
		if quarter.IsValid() {
			period.Quarters = append(period.Quarters, quarter)
		}
	}
	return period
}

// TargetsResponse is the target block of a measure or main activity.
type TargetsResponse struct {
	Baseline         string          `json:"baseline"`
	TargetType       string          `json:"target_type"`
	Q1Target         decimal.Decimal `json:"q1_target"`
	Q2Target         decimal.Decimal `json:"q2_target"`
	Q3Target         decimal.Decimal `json:"q3_target"`
	Q4Target         decimal.Decimal `json:"q4_target"`
	SixMonthTarget   decimal.Decimal `json:"six_month_target"`
	AnnualTarget     decimal.Decimal `json:"annual_target"`
	SelectedMonths   []string        `json:"selected_months"`
	SelectedQuarters []string        `json:"selected_quarters"`
}

// ToTargetsResponse converts targets and period to their DTO.
func ToTargetsResponse(baseline string, t valueobject.QuarterTargets, p valueobject.PeriodSelection) TargetsResponse {
	response := TargetsResponse{
		Baseline:         baseline,
		TargetType:       string(t.Type),
		Q1Target:         t.Q1,
		Q2Target:         t.Q2,
		Q3Target:         t.Q3,
		Q4Target:         t.Q4,
		SixMonthTarget:   t.SixMonthTarget(),
		AnnualTarget:     t.Annual,
		SelectedMonths:   make([]string, 0, len(p.Months)),
		SelectedQuarters: make([]string, 0, len(p.Quarters)),
	}
	for _, m := range p.Months {
		response.SelectedMonths = append(response.SelectedMonths, string(m))
	}
	for _, q := range p.Quarters {
		response.SelectedQuarters = append(response.SelectedQuarters, string(q))
	}
	return response
}
