package budget

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strategic-planning/backend/internal/domain/entity"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
	"github.com/strategic-planning/backend/internal/domain/valueobject"
)

func newAggregator() *Aggregator {
	return NewAggregator(valueobject.DefaultPlanningRules())
}

func TestAggregate_InvalidInput(t *testing.T) {
	tree, err := newAggregator().Aggregate(nil, 1)

	assert.Nil(t, tree)
	assert.ErrorIs(t, err, domainerror.ErrInvalidInput)
}

func TestAggregate_EmptyPlan(t *testing.T) {
	tree, err := newAggregator().Aggregate([]entity.Objective{}, 1)

	require.NoError(t, err)
	assert.Empty(t, tree.Objectives)
	assert.True(t, tree.GrandTotal.Equal(ZeroSummary()))
}

func TestAggregate_Visibility(t *testing.T) {
	restricted := initiative("Restricted", "10", org(7), legacyActivity("R", "6.5", "500", "0"))
	shared := initiative("Shared", "20", nil, legacyActivity("S", "13", "300", "100"))
	objectives := []entity.Objective{objective("Obj", "30", restricted, shared)}

	t.Run("foreign organization initiative is excluded", func(t *testing.T) {
		tree, err := newAggregator().Aggregate(objectives, 3)
		require.NoError(t, err)

		require.Len(t, tree.Objectives[0].Initiatives, 1)
		assert.Equal(t, "Shared", tree.Objectives[0].Initiatives[0].Name)
		assert.True(t, tree.GrandTotal.Required.Equal(dec("300")))
		assert.True(t, tree.Objectives[0].InitiativeWeights.Actual.Equal(dec("20")))
	})

	t.Run("own organization initiative is included", func(t *testing.T) {
		tree, err := newAggregator().Aggregate(objectives, 7)
		require.NoError(t, err)

		require.Len(t, tree.Objectives[0].Initiatives, 2)
		assert.True(t, tree.GrandTotal.Required.Equal(dec("800")))
		assert.True(t, tree.Objectives[0].ActivityWeights.Actual.Equal(dec("19.5")))
		assert.True(t, tree.Objectives[0].ActivityWeights.IsValid)
	})

	t.Run("default initiative is visible to everyone", func(t *testing.T) {
		def := initiative("Default", "10", org(7))
		def.IsDefault = true

		tree, err := newAggregator().Aggregate([]entity.Objective{objective("Obj", "10", def)}, 3)
		require.NoError(t, err)

		assert.Len(t, tree.Objectives[0].Initiatives, 1)
	})

	t.Run("hidden activities and measures are excluded", func(t *testing.T) {
		hidden := legacyActivity("Hidden", "5", "1000", "0")
		hidden.OrganizationID = org(9)
		hiddenMeasure := measure("Hidden PM", "3")
		hiddenMeasure.OrganizationID = org(9)

		parent := initiative("Init", "20", nil, legacyActivity("Visible", "13", "200", "0"), hidden)
		parent.PerformanceMeasures = []entity.PerformanceMeasure{measure("PM", "7"), hiddenMeasure}

		tree, err := newAggregator().Aggregate([]entity.Objective{objective("Obj", "20", parent)}, 3)
		require.NoError(t, err)

		node := tree.Objectives[0].Initiatives[0]
		assert.Len(t, node.Activities, 1)
		assert.Len(t, node.Measures, 1)
		assert.True(t, node.Totals.Required.Equal(dec("200")))
		assert.True(t, node.ActivityWeights.IsValid)
		assert.True(t, node.MeasureWeights.IsValid)
	})
}

func TestAggregate_RollUp(t *testing.T) {
	first := initiative("First", "20", nil, scenarioBActivity())
	second := initiative("Second", "20", nil,
		legacyActivity("Legacy", "8", "1000", "1200"),
		activity("Empty", "5"),
	)
	objectives := []entity.Objective{
		objective("Alpha", "40", first, second),
		objective("Beta", "10"),
	}

	tree, err := newAggregator().Aggregate(objectives, 1)
	require.NoError(t, err)

	require.Len(t, tree.Objectives, 2)
	assert.Equal(t, "Alpha", tree.Objectives[0].Title)
	assert.Equal(t, "Beta", tree.Objectives[1].Title)
	assert.Equal(t, "First", tree.Objectives[0].Initiatives[0].Name)
	assert.Equal(t, "Second", tree.Objectives[0].Initiatives[1].Name)

	alpha := tree.Objectives[0]
	assert.True(t, alpha.Initiatives[0].Totals.Gap.Equal(dec("1800")))
	assert.True(t, alpha.Initiatives[1].Totals.Required.Equal(dec("1000")))
	assert.True(t, alpha.Initiatives[1].Totals.Gap.IsZero())
	assert.Equal(t, FundingStatusOverFunded, alpha.Initiatives[1].Activities[0].FundingStatus)
	assert.True(t, alpha.Initiatives[1].Activities[1].Budget.Equal(ZeroSummary()))

	assert.True(t, alpha.Totals.Required.Equal(dec("4000")))
	assert.True(t, alpha.Totals.TotalAvailable.Equal(dec("2400")))
	assert.True(t, alpha.Totals.Gap.Equal(dec("1800")))
	assert.True(t, tree.GrandTotal.Equal(alpha.Totals.Add(tree.Objectives[1].Totals)))

	assert.True(t, alpha.ActivityWeights.Expected.Equal(dec("26")))
	assert.True(t, alpha.ActivityWeights.Actual.Equal(dec("26")))
	assert.True(t, alpha.ActivityWeights.IsValid)
	assert.True(t, alpha.Initiatives[1].ActivityWeights.IsValid)
	assert.True(t, alpha.InitiativeWeights.IsValid)

	require.Len(t, alpha.Initiatives[0].Activities[0].SubActivities, 2)
	assert.True(t, alpha.Initiatives[0].Activities[0].SubActivities[1].Budget.Required.Equal(dec("2000")))
}

func TestAggregate_DoesNotMutateInput(t *testing.T) {
	override := dec("25")
	obj := objective("Alpha", "40",
		initiative("First", "20", org(4), scenarioBActivity(), legacyActivity("Legacy", "8", "10", "5")),
	)
	obj.PlannerWeight = &override
	objectives := []entity.Objective{obj}

	before, err := json.Marshal(objectives)
	require.NoError(t, err)

	tree, err := newAggregator().Aggregate(objectives, 4)
	require.NoError(t, err)

	*tree.Objectives[0].Initiatives[0].OrganizationID = 99
	*tree.Objectives[0].PlannerWeight = dec("1")
	tree.Objectives[0].Initiatives[0].Activities[0].Period.Quarters[0] = valueobject.Q4

	after, err := json.Marshal(objectives)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}

func TestAggregate_EffectiveWeight(t *testing.T) {
	tree, err := newAggregator().Aggregate([]entity.Objective{objective("Alpha", "40")}, 1)
	require.NoError(t, err)

	assert.True(t, tree.Objectives[0].EffectiveWeight.Equal(dec("40")))
	assert.True(t, tree.Objectives[0].ActivityWeights.Expected.Equal(dec("26")))
}

func TestTree_OverTargetLevels(t *testing.T) {
	parent := initiative("Overloaded", "10", nil, activity("A", "5"), activity("B", "5"))
	obj := objective("Objective", "100", parent)

	tree, err := newAggregator().Aggregate([]entity.Objective{obj}, 1)
	require.NoError(t, err)

	assert.Equal(t, []string{LevelInitiativeActivities}, tree.OverTargetLevels())
	assert.Nil(t, (*Tree)(nil).OverTargetLevels())
}
