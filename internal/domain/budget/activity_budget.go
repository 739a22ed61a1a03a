// Package budget implements the side-effect-free budget and weight calculations of a plan hierarchy.
package budget

import (
	"github.com/shopspring/decimal"

	"github.com/strategic-planning/backend/internal/domain/entity"
	"github.com/strategic-planning/backend/internal/domain/valueobject"
)

// FundingStatus classifies available funding against the required cost.
type FundingStatus string

const (
	FundingStatusUnderFunded FundingStatus = "under_funded"
	FundingStatusFullyFunded FundingStatus = "fully_funded"
	FundingStatusOverFunded  FundingStatus = "over_funded"
)

// Summary is the rolled-up cost and funding of a node of the plan hierarchy.
type Summary struct {
	Required       decimal.Decimal
	Government     decimal.Decimal
	SDG            decimal.Decimal
	Partners       decimal.Decimal
	Other          decimal.Decimal
	TotalAvailable decimal.Decimal
	Gap            decimal.Decimal
}

// ZeroSummary returns a summary with every field set to zero.
func ZeroSummary() Summary {
	return Summary{
		Required:       decimal.Zero,
		Government:     decimal.Zero,
		SDG:            decimal.Zero,
		Partners:       decimal.Zero,
		Other:          decimal.Zero,
		TotalAvailable: decimal.Zero,
		Gap:            decimal.Zero,
	}
}

// Add returns the field-wise sum of two summaries.
func (s Summary) Add(o Summary) Summary {
	return Summary{
		Required:       s.Required.Add(o.Required),
		Government:     s.Government.Add(o.Government),
		SDG:            s.SDG.Add(o.SDG),
		Partners:       s.Partners.Add(o.Partners),
		Other:          s.Other.Add(o.Other),
		TotalAvailable: s.TotalAvailable.Add(o.TotalAvailable),
		Gap:            s.Gap.Add(o.Gap),
	}
}

// Equal reports whether every field of both summaries is numerically equal.
func (s Summary) Equal(o Summary) bool {
	return s.Required.Equal(o.Required) &&
		s.Government.Equal(o.Government) &&
		s.SDG.Equal(o.SDG) &&
		s.Partners.Equal(o.Partners) &&
		s.Other.Equal(o.Other) &&
		s.TotalAvailable.Equal(o.TotalAvailable) &&
		s.Gap.Equal(o.Gap)
}

// Balance returns totalAvailable - required; negative when under-funded.
func (s Summary) Balance() decimal.Decimal {
	return s.TotalAvailable.Sub(s.Required)
}

// Overage returns how far available funding exceeds the required cost, or zero.
func (s Summary) Overage() decimal.Decimal {
	if b := s.Balance(); b.IsPositive() {
		return b
	}
	return decimal.Zero
}

// IsOverFunded reports whether available funding exceeds the required cost.
func (s Summary) IsOverFunded() bool {
	return s.TotalAvailable.GreaterThan(s.Required)
}

// Status returns the three-way funding classification.
func (s Summary) Status() FundingStatus {
	switch s.TotalAvailable.Cmp(s.Required) {
	case 1:
		return FundingStatusOverFunded
	case 0:
		return FundingStatusFullyFunded
	default:
		return FundingStatusUnderFunded
	}
}

// ComputeActivityBudget derives a main activity's summary from its sub-activities when it has any,
// else from its legacy budget, else zero.
func ComputeActivityBudget(activity entity.MainActivity) Summary {
	if len(activity.SubActivities) > 0 {
		required := decimal.Zero
		funding := valueobject.FundingBreakdown{}
		for _, sub := range activity.SubActivities {
			required = required.Add(sub.Cost.ActiveCost())
			funding = addFunding(funding, sub.Funding.Settled())
		}
		return summarize(required, funding)
	}

	if activity.LegacyBudget != nil {
		return summarize(activity.LegacyBudget.Cost.ActiveCost(), activity.LegacyBudget.Funding.Settled())
	}

	return ZeroSummary()
}

// ComputeSubActivityBudget derives a single sub-activity's summary.
// A partner list without a partners figure counts at its total.
func ComputeSubActivityBudget(sub entity.SubActivity) Summary {
	return summarize(sub.Cost.ActiveCost(), sub.Funding.Settled())
}

func addFunding(acc, f valueobject.FundingBreakdown) valueobject.FundingBreakdown {
	return valueobject.FundingBreakdown{
		Government: acc.Government.Add(clamp(f.Government)),
		SDG:        acc.SDG.Add(clamp(f.SDG)),
		Partners:   acc.Partners.Add(clamp(f.Partners)),
		Other:      acc.Other.Add(clamp(f.Other)),
	}
}

func summarize(required decimal.Decimal, funding valueobject.FundingBreakdown) Summary {
	s := Summary{
		Required:   clamp(required),
		Government: clamp(funding.Government),
		SDG:        clamp(funding.SDG),
		Partners:   clamp(funding.Partners),
		Other:      clamp(funding.Other),
	}
	s.TotalAvailable = s.Government.Add(s.SDG).Add(s.Partners).Add(s.Other)
	s.Gap = clamp(s.Required.Sub(s.TotalAvailable))
	return s
}

func clamp(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
