// Package valueobject contains domain value objects for the strategic planning system.
package valueobject

import "github.com/shopspring/decimal"

// Built-in planning constants.
const (
	// ActivityWeightShareOfParent is the share of an initiative's weight that its main activities must sum to.
	ActivityWeightShareOfParent = 0.65

	// MeasureWeightShareOfParent is the share of an initiative's weight that its performance measures must sum to.
	MeasureWeightShareOfParent = 0.35

	// WeightTolerance is the absolute deviation accepted when comparing weight sums.
	WeightTolerance = 0.01

	// DefaultImplementorName is used on report rows whose organization cannot be resolved.
	DefaultImplementorName = "Ministry of Health"
)

// PlanningRules contains the weight distribution rules applied to a plan hierarchy.
type PlanningRules struct {
	// Weight shares relative to the parent node
	ActivityWeightShare   decimal.Decimal // 0.65 of initiative weight
	MeasureWeightShare    decimal.Decimal // 0.35 of initiative weight
	InitiativeWeightShare decimal.Decimal // 1.00 of objective effective weight

	// Comparison
	WeightTolerance decimal.Decimal // 0.01 absolute
	WeightPrecision int32           // decimal places of the expected weight

	DefaultImplementor string
}

// DefaultPlanningRules returns the built-in planning rules.
func DefaultPlanningRules() PlanningRules {
	return PlanningRules{
		ActivityWeightShare:   decimal.NewFromFloat(ActivityWeightShareOfParent),
		MeasureWeightShare:    decimal.NewFromFloat(MeasureWeightShareOfParent),
		InitiativeWeightShare: decimal.NewFromInt(1),
		WeightTolerance:       decimal.NewFromFloat(WeightTolerance),
		WeightPrecision:       2,
		DefaultImplementor:    DefaultImplementorName,
	}
}

// ExpectedWeight returns the share of a parent weight, rounded to the configured precision.
func (r PlanningRules) ExpectedWeight(parentWeight, share decimal.Decimal) decimal.Decimal {
	return parentWeight.Mul(share).Round(r.WeightPrecision)
}

// IsWithinTolerance reports whether a signed deviation is strictly inside the tolerance band.
func (r PlanningRules) IsWithinTolerance(deviation decimal.Decimal) bool {
	return deviation.Abs().LessThan(r.WeightTolerance)
}

// CanAddMore reports whether the remaining weight leaves room for another child item.
func (r PlanningRules) CanAddMore(remaining decimal.Decimal) bool {
	return remaining.GreaterThan(r.WeightTolerance)
}

var maxItemWeight = decimal.NewFromInt(100)

// IsValidItemWeight reports whether a weight lies in (0, 100].
func IsValidItemWeight(weight decimal.Decimal) bool {
	return weight.IsPositive() && weight.LessThanOrEqual(maxItemWeight)
}
