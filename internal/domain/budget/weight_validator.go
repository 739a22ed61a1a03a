package budget

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/strategic-planning/backend/internal/domain/entity"
	"github.com/strategic-planning/backend/internal/domain/valueobject"
)

// WeightStatus classifies a weight sum against its expected share.
type WeightStatus string

const (
	WeightStatusUnderTarget WeightStatus = "under_target"
	WeightStatusOnTarget    WeightStatus = "on_target"
	WeightStatusOverTarget  WeightStatus = "over_target"
)

// WeightCheckResult reports how a set of child weights compares with the share expected by the parent.
type WeightCheckResult struct {
	Expected  decimal.Decimal
	Actual    decimal.Decimal
	Deviation decimal.Decimal // Actual - Expected
	Remaining decimal.Decimal // Expected - Actual
	IsValid   bool
	CanAdd    bool // Remaining leaves room for another item
	Status    WeightStatus
}

// WeightValidator checks weight distribution rules. It never changes the weights it is given.
type WeightValidator struct {
	rules valueobject.PlanningRules
}

// NewWeightValidator creates a validator for the given rules.
func NewWeightValidator(rules valueobject.PlanningRules) WeightValidator {
	return WeightValidator{rules: rules}
}

// Rules returns the rules the validator applies.
func (v WeightValidator) Rules() valueobject.PlanningRules {
	return v.rules
}

// ValidateInitiativeActivityWeights checks that the initiative's activities sum to its activity share.
// Activities attached to another initiative are ignored.
func (v WeightValidator) ValidateInitiativeActivityWeights(initiative entity.Initiative, activities []entity.MainActivity) WeightCheckResult {
	weights := make([]decimal.Decimal, 0, len(activities))
	for _, a := range activities {
		if belongsTo(a.InitiativeID, initiative.ID) {
			weights = append(weights, a.Weight)
		}
	}
	return v.Check(initiative.Weight, v.rules.ActivityWeightShare, weights)
}

// ValidateObjectiveActivityWeights checks that every activity under the objective sums to the
// activity share of its effective weight.
func (v WeightValidator) ValidateObjectiveActivityWeights(objective entity.Objective, activities []entity.MainActivity) WeightCheckResult {
	weights := make([]decimal.Decimal, len(activities))
	for i, a := range activities {
		weights[i] = a.Weight
	}
	return v.Check(objective.EffectiveWeight(), v.rules.ActivityWeightShare, weights)
}

// ValidateObjectiveInitiativeWeights checks that the objective's initiatives sum to its effective weight.
func (v WeightValidator) ValidateObjectiveInitiativeWeights(objective entity.Objective, initiatives []entity.Initiative) WeightCheckResult {
	weights := make([]decimal.Decimal, 0, len(initiatives))
	for _, i := range initiatives {
		if belongsTo(i.ObjectiveID, objective.ID) {
			weights = append(weights, i.Weight)
		}
	}
	return v.Check(objective.EffectiveWeight(), v.rules.InitiativeWeightShare, weights)
}

// ValidateInitiativeMeasureWeights checks that the initiative's measures sum to its measure share.
func (v WeightValidator) ValidateInitiativeMeasureWeights(initiative entity.Initiative, measures []entity.PerformanceMeasure) WeightCheckResult {
	weights := make([]decimal.Decimal, 0, len(measures))
	for _, m := range measures {
		if belongsTo(m.InitiativeID, initiative.ID) {
			weights = append(weights, m.Weight)
		}
	}
	return v.Check(initiative.Weight, v.rules.MeasureWeightShare, weights)
}

// Check compares the sum of weights with round(parentWeight × share).
func (v WeightValidator) Check(parentWeight, share decimal.Decimal, weights []decimal.Decimal) WeightCheckResult {
	expected := v.rules.ExpectedWeight(parentWeight, share)

	actual := decimal.Zero
	for _, w := range weights {
		actual = actual.Add(w)
	}

	deviation := actual.Sub(expected)
	remaining := expected.Sub(actual)
	isValid := v.rules.IsWithinTolerance(deviation)

	status := WeightStatusOnTarget
	if !isValid {
		if deviation.IsPositive() {
			status = WeightStatusOverTarget
		} else {
			status = WeightStatusUnderTarget
		}
	}

	return WeightCheckResult{
		Expected:  expected,
		Actual:    actual,
		Deviation: deviation,
		Remaining: remaining,
		IsValid:   isValid,
		CanAdd:    v.rules.CanAddMore(remaining),
		Status:    status,
	}
}

// A child without a parent id comes from a materialized snapshot and belongs to the node it is nested in.
func belongsTo(parentID, id uuid.UUID) bool {
	return parentID == uuid.Nil || parentID == id
}
