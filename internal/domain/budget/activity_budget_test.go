package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/strategic-planning/backend/internal/domain/entity"
	"github.com/strategic-planning/backend/internal/domain/valueobject"
)

func TestComputeActivityBudget(t *testing.T) {
	t.Run("no sub-activities and no legacy budget is all zero", func(t *testing.T) {
		got := ComputeActivityBudget(activity("Empty", "10"))

		assert.True(t, got.Equal(ZeroSummary()))
		assert.Equal(t, FundingStatusFullyFunded, got.Status())
	})

	t.Run("sums sub-activities", func(t *testing.T) {
		got := ComputeActivityBudget(scenarioBActivity())

		assert.True(t, got.Required.Equal(dec("3000")))
		assert.True(t, got.Government.Equal(dec("400")))
		assert.True(t, got.SDG.Equal(dec("500")))
		assert.True(t, got.Partners.Equal(dec("300")))
		assert.True(t, got.Other.IsZero())
		assert.True(t, got.TotalAvailable.Equal(dec("1200")))
		assert.True(t, got.Gap.Equal(dec("1800")))
		assert.Equal(t, FundingStatusUnderFunded, got.Status())
	})

	t.Run("sub-activities take precedence over legacy budget", func(t *testing.T) {
		a := scenarioBActivity()
		a.LegacyBudget = &entity.ActivityBudget{
			Cost: valueobject.NewCostInput(valueobject.CalculationModeWithoutTool, valueobject.ActivityTypeOther, nil, 99999),
		}

		got := ComputeActivityBudget(a)

		assert.True(t, got.Required.Equal(dec("3000")))
	})

	t.Run("legacy budget is used without sub-activities", func(t *testing.T) {
		got := ComputeActivityBudget(legacyActivity("Legacy", "5", "800", "800"))

		assert.True(t, got.Required.Equal(dec("800")))
		assert.True(t, got.TotalAvailable.Equal(dec("800")))
		assert.True(t, got.Gap.IsZero())
		assert.Equal(t, FundingStatusFullyFunded, got.Status())
	})

	t.Run("over-funding clamps gap and reports overage", func(t *testing.T) {
		a := activity("Over", "5",
			subActivity("Only", valueobject.CalculationModeWithoutTool, nil, 1000, valueobject.NewFundingBreakdown(1200, 0, 0, 0, nil)),
		)

		got := ComputeActivityBudget(a)

		assert.True(t, got.Gap.IsZero())
		assert.True(t, got.IsOverFunded())
		assert.True(t, got.Overage().Equal(dec("200")))
		assert.True(t, got.Balance().Equal(dec("200")))
		assert.Equal(t, FundingStatusOverFunded, got.Status())
	})

	t.Run("inactive cost figure is ignored", func(t *testing.T) {
		sub := subActivity("Tool", valueobject.CalculationModeWithTool, 500, 9999, valueobject.FundingBreakdown{})

		got := ComputeSubActivityBudget(sub)

		assert.True(t, got.Required.Equal(dec("500")))
	})

	t.Run("garbage amounts count as zero", func(t *testing.T) {
		sub := subActivity("Bad", valueobject.CalculationModeWithoutTool, nil, "abc",
			valueobject.NewFundingBreakdown("n/a", nil, -50, "25", nil))

		got := ComputeSubActivityBudget(sub)

		assert.True(t, got.Required.IsZero())
		assert.True(t, got.TotalAvailable.Equal(dec("25")))
		assert.True(t, got.Gap.IsZero())
	})

	t.Run("partner list without a partners figure counts at its total", func(t *testing.T) {
		unicef := []valueobject.PartnerContribution{{Name: "UNICEF", Amount: dec("300")}}
		sub := subActivity("Listed", valueobject.CalculationModeWithoutTool, nil, 1000,
			valueobject.NewFundingBreakdown(400, 0, 0, 0, unicef))

		for name, got := range map[string]Summary{
			"sub-activity": ComputeSubActivityBudget(sub),
			"activity":     ComputeActivityBudget(activity("Listed", "5", sub)),
		} {
			assert.True(t, got.Partners.Equal(dec("300")), name)
			assert.True(t, got.TotalAvailable.Equal(dec("700")), name)
			assert.True(t, got.Gap.Equal(dec("300")), name)
		}
	})

	t.Run("legacy budget partner list is settled", func(t *testing.T) {
		a := activity("Legacy", "5")
		a.LegacyBudget = &entity.ActivityBudget{
			Cost:    valueobject.NewCostInput(valueobject.CalculationModeWithoutTool, valueobject.ActivityTypeOther, nil, 500),
			Funding: valueobject.NewFundingBreakdown(0, 0, 0, 0, []valueobject.PartnerContribution{{Name: "WHO", Amount: dec("200")}}),
		}

		got := ComputeActivityBudget(a)

		assert.True(t, got.Partners.Equal(dec("200")))
		assert.True(t, got.Gap.Equal(dec("300")))
	})
}

func TestComputeActivityBudget_SumConsistency(t *testing.T) {
	a := scenarioBActivity()
	a.SubActivities = append(a.SubActivities,
		subActivity("Sub C", valueobject.CalculationModeWithTool, "750.25", nil, valueobject.NewFundingBreakdown(0, 0, 0, "100.25", nil)),
	)

	got := ComputeActivityBudget(a)

	want := ZeroSummary()
	for _, sub := range a.SubActivities {
		s := ComputeSubActivityBudget(sub)
		want.Required = want.Required.Add(s.Required)
		want.TotalAvailable = want.TotalAvailable.Add(s.TotalAvailable)
	}
	assert.True(t, got.Required.Equal(want.Required))
	assert.True(t, got.TotalAvailable.Equal(want.TotalAvailable))
	assert.True(t, got.Gap.Equal(got.Required.Sub(got.TotalAvailable)))
}
