package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func targets(tt TargetType, q1, q2, q3, q4, annual int64) QuarterTargets {
	return QuarterTargets{
		Type:   tt,
		Q1:     decimal.NewFromInt(q1),
		Q2:     decimal.NewFromInt(q2),
		Q3:     decimal.NewFromInt(q3),
		Q4:     decimal.NewFromInt(q4),
		Annual: decimal.NewFromInt(annual),
	}
}

func TestQuarterTargets_Validate(t *testing.T) {
	tests := []struct {
		name     string
		targets  QuarterTargets
		baseline string
		wantErr  error
	}{
		{"cumulative ok", targets(TargetTypeCumulative, 10, 20, 30, 40, 100), "", nil},
		{"cumulative bad sum", targets(TargetTypeCumulative, 10, 20, 30, 30, 100), "", ErrCumulativeTargetSum},
		{"increasing ok", targets(TargetTypeIncreasing, 10, 20, 30, 40, 40), "5", nil},
		{"increasing below baseline", targets(TargetTypeIncreasing, 10, 20, 30, 40, 40), "15", ErrIncreasingBelowBaseline},
		{"increasing non numeric baseline", targets(TargetTypeIncreasing, 10, 20, 30, 40, 40), "n/a", nil},
		{"increasing out of order", targets(TargetTypeIncreasing, 10, 30, 20, 40, 40), "", ErrIncreasingTargetOrder},
		{"increasing annual mismatch", targets(TargetTypeIncreasing, 10, 20, 30, 40, 50), "", ErrFinalQuarterTarget},
		{"decreasing ok", targets(TargetTypeDecreasing, 40, 30, 20, 10, 10), "50", nil},
		{"decreasing above baseline", targets(TargetTypeDecreasing, 40, 30, 20, 10, 10), "30", ErrDecreasingAboveBaseline},
		{"decreasing out of order", targets(TargetTypeDecreasing, 40, 20, 30, 10, 10), "", ErrDecreasingTargetOrder},
		{"constant ok", targets(TargetTypeConstant, 5, 5, 5, 5, 5), "", nil},
		{"constant mismatch", targets(TargetTypeConstant, 5, 5, 6, 5, 5), "", ErrConstantTarget},
		{"unknown type", targets("weird", 1, 1, 1, 1, 1), "", ErrUnknownTargetType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.targets.Validate(tt.baseline)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQuarterTargets_SixMonthTarget(t *testing.T) {
	assert.True(t, targets(TargetTypeCumulative, 10, 20, 30, 40, 100).SixMonthTarget().Equal(decimal.NewFromInt(30)))
	assert.True(t, targets(TargetTypeIncreasing, 10, 20, 30, 40, 40).SixMonthTarget().Equal(decimal.NewFromInt(20)))
}

func TestPeriodSelection_MonthsLabel(t *testing.T) {
	p := PeriodSelection{
		Months:   []Month{"JAN", "mar", "JUL"},
		Quarters: []Quarter{Q2},
	}

	assert.Equal(t, "JUL", p.MonthsLabel(Q1))
	assert.Equal(t, "OCT, NOV, DEC", p.MonthsLabel(Q2))
	assert.Equal(t, "JAN, MAR", p.MonthsLabel(Q3))
	assert.Equal(t, "-", p.MonthsLabel(Q4))
	assert.Equal(t, "-", PeriodSelection{}.MonthsLabel(Q1))
}

func TestPlanningRules(t *testing.T) {
	rules := DefaultPlanningRules()

	assert.Equal(t, "26", rules.ExpectedWeight(decimal.NewFromInt(40), rules.ActivityWeightShare).String())
	assert.True(t, rules.IsWithinTolerance(decimal.RequireFromString("-0.009")))
	assert.False(t, rules.IsWithinTolerance(decimal.RequireFromString("0.01")))
	assert.False(t, rules.CanAddMore(decimal.RequireFromString("0.01")))
	assert.True(t, rules.CanAddMore(decimal.RequireFromString("0.02")))
}
