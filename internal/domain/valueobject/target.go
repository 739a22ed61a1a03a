package valueobject

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// TargetType controls how quarterly targets relate to the annual target.
type TargetType string

const (
	TargetTypeCumulative TargetType = "cumulative"
	TargetTypeIncreasing TargetType = "increasing"
	TargetTypeDecreasing TargetType = "decreasing"
	TargetTypeConstant   TargetType = "constant"
)

// IsValid reports whether the target type is supported.
func (t TargetType) IsValid() bool {
	switch t {
	case TargetTypeCumulative, TargetTypeIncreasing, TargetTypeDecreasing, TargetTypeConstant:
		return true
	}
	return false
}

// Target distribution errors.
var (
	ErrCumulativeTargetSum     = errors.New("for cumulative targets, sum of quarterly targets must equal annual target")
	ErrIncreasingTargetOrder   = errors.New("for increasing targets, quarterly targets must be in ascending order")
	ErrIncreasingBelowBaseline = errors.New("for increasing targets, Q1 target must be greater than or equal to baseline")
	ErrDecreasingTargetOrder   = errors.New("for decreasing targets, quarterly targets must be in descending order")
	ErrDecreasingAboveBaseline = errors.New("for decreasing targets, Q1 target must be less than or equal to baseline")
	ErrFinalQuarterTarget      = errors.New("final quarter target must equal annual target")
	ErrConstantTarget          = errors.New("for constant targets, all quarterly targets must equal annual target")
	ErrUnknownTargetType       = errors.New("unknown target type")
)

// QuarterTargets holds the fiscal-quarter targets and the annual target of a plan item.
type QuarterTargets struct {
	Type   TargetType
	Q1     decimal.Decimal
	Q2     decimal.Decimal
	Q3     decimal.Decimal
	Q4     decimal.Decimal
	Annual decimal.Decimal
}

// SixMonthTarget returns Q1+Q2 for cumulative targets and Q2 otherwise.
func (t QuarterTargets) SixMonthTarget() decimal.Decimal {
	if t.Type == TargetTypeCumulative {
		return t.Q1.Add(t.Q2)
	}
	return t.Q2
}

// Validate checks the quarterly distribution against the target type.
// A non-numeric or empty baseline skips the baseline comparison.
func (t QuarterTargets) Validate(baseline string) error {
	switch t.Type {
	case TargetTypeCumulative:
		if !t.Q1.Add(t.Q2).Add(t.Q3).Add(t.Q4).Equal(t.Annual) {
			return ErrCumulativeTargetSum
		}
	case TargetTypeIncreasing:
		if b, ok := numericBaseline(baseline); ok && t.Q1.LessThan(b) {
			return ErrIncreasingBelowBaseline
		}
		if t.Q1.GreaterThan(t.Q2) || t.Q2.GreaterThan(t.Q3) || t.Q3.GreaterThan(t.Q4) {
			return ErrIncreasingTargetOrder
		}
		if !t.Q4.Equal(t.Annual) {
			return ErrFinalQuarterTarget
		}
	case TargetTypeDecreasing:
		if b, ok := numericBaseline(baseline); ok && t.Q1.GreaterThan(b) {
			return ErrDecreasingAboveBaseline
		}
		if t.Q1.LessThan(t.Q2) || t.Q2.LessThan(t.Q3) || t.Q3.LessThan(t.Q4) {
			return ErrDecreasingTargetOrder
		}
		if !t.Q4.Equal(t.Annual) {
			return ErrFinalQuarterTarget
		}
	case TargetTypeConstant:
		for _, q := range []decimal.Decimal{t.Q1, t.Q2, t.Q3, t.Q4} {
			if !q.Equal(t.Annual) {
				return ErrConstantTarget
			}
		}
	default:
		return ErrUnknownTargetType
	}
	return nil
}

func numericBaseline(baseline string) (decimal.Decimal, bool) {
	baseline = strings.TrimSpace(baseline)
	if baseline == "" {
		return decimal.Zero, false
	}
	return ParseDecimal(baseline)
}
