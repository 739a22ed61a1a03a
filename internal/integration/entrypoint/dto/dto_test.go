package dto

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strategic-planning/backend/internal/domain/valueobject"
)

func TestAmountUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{name: "number", json: `{"amount": 12.5}`, want: "12.5"},
		{name: "numeric string", json: `{"amount": " 3000 "}`, want: "3000"},
		{name: "null", json: `{"amount": null}`, want: "0"},
		{name: "missing", json: `{}`, want: "0"},
		{name: "garbage string", json: `{"amount": "abc"}`, want: "0"},
		{name: "negative", json: `{"amount": -4}`, want: "0"},
		{name: "boolean", json: `{"amount": true}`, want: "0"},
		{name: "large integer keeps precision", json: `{"amount": 12345678901234567890}`, want: "12345678901234567890"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body struct {
				Amount Amount `json:"amount"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.json), &body))
			assert.Equal(t, tt.want, body.Amount.Decimal().String())
		})
	}
}

func TestAmountMarshalsAsString(t *testing.T) {
	out, err := json.Marshal(struct {
		Amount Amount `json:"amount"`
	}{Amount: Amount(decimal.RequireFromString("1500.25"))})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount": "1500.25"}`, string(out))
}

func TestTargetsRequestPeriod(t *testing.T) {
	req := TargetsRequest{
		SelectedMonths:   []string{"jul", " AUG ", "July", ""},
		SelectedQuarters: []string{"q1", "Q5"},
	}

	period := req.Period()
	assert.Equal(t, []valueobject.Month{"JUL", "AUG"}, period.Months)
	assert.Equal(t, []valueobject.Quarter{valueobject.Q1}, period.Quarters)
	assert.False(t, period.IsEmpty())

	assert.True(t, TargetsRequest{SelectedMonths: []string{"nope"}}.Period().IsEmpty())
}

func TestTargetsRequestTargets(t *testing.T) {
	var req TargetsRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"target_type": "Cumulative",
		"q1_target": 1, "q2_target": "2", "q3_target": 3, "q4_target": null,
		"annual_target": 6
	}`), &req))

	targets := req.Targets()
	assert.Equal(t, valueobject.TargetTypeCumulative, targets.Type)
	assert.True(t, targets.Q2.Equal(decimal.NewFromInt(2)))
	assert.True(t, targets.Q4.IsZero())
	assert.NoError(t, targets.Validate(""))
}

func TestCreatePlanRequest(t *testing.T) {
	objectiveID := uuid.New()
	otherID := uuid.New()

	t.Run("parses ids weights and dates", func(t *testing.T) {
		req := CreatePlanRequest{
			StrategicObjectiveID: objectiveID.String(),
			SelectedObjectiveIDs: []string{objectiveID.String(), otherID.String()},
			ObjectiveWeights: map[string]Amount{
				otherID.String(): Amount(decimal.NewFromInt(25)),
			},
			FromDate: "2025-07-08",
			ToDate:   "2026-07-07",
		}

		primary, selected, err := req.ObjectiveIDs()
		require.NoError(t, err)
		assert.Equal(t, objectiveID, primary)
		assert.Equal(t, []uuid.UUID{objectiveID, otherID}, selected)

		weights, err := req.Weights()
		require.NoError(t, err)
		assert.True(t, weights[otherID].Equal(decimal.NewFromInt(25)))

		from, to, err := req.Dates()
		require.NoError(t, err)
		assert.Equal(t, 2025, from.Year())
		assert.True(t, to.After(from))
	})

	t.Run("no overrides yields nil weights", func(t *testing.T) {
		weights, err := CreatePlanRequest{}.Weights()
		require.NoError(t, err)
		assert.Nil(t, weights)
	})

	t.Run("invalid selected id", func(t *testing.T) {
		_, _, err := CreatePlanRequest{SelectedObjectiveIDs: []string{"not-a-uuid"}}.ObjectiveIDs()
		assert.Error(t, err)
	})

	t.Run("invalid weight key", func(t *testing.T) {
		_, err := CreatePlanRequest{ObjectiveWeights: map[string]Amount{"x": {}}}.Weights()
		assert.Error(t, err)
	})

	t.Run("invalid date", func(t *testing.T) {
		_, _, err := CreatePlanRequest{FromDate: "08/07/2025", ToDate: "2026-07-07"}.Dates()
		assert.ErrorContains(t, err, "from_date")
	})
}

func TestBudgetRequestInput(t *testing.T) {
	var req BudgetRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"budget_calculation_type": "WITH_TOOL",
		"activity_type": "Training",
		"estimated_cost_with_tool": "5000",
		"estimated_cost_without_tool": 0,
		"government_treasury": 1000,
		"sdg_funding": "500",
		"partners_funding": 2000,
		"other_funding": null,
		"partners_list": [{"name": "UNICEF", "amount": 1500}, {"name": "WHO", "amount": "500"}],
		"training_details": {"participants": 20},
		"printing_details": null
	}`), &req))

	input := req.Input()
	assert.Equal(t, valueobject.CalculationModeWithTool, input.Cost.Mode)
	assert.Equal(t, valueobject.ActivityTypeTraining, input.Cost.ActivityType)
	assert.True(t, input.Cost.CostWithTool.Equal(decimal.NewFromInt(5000)))
	assert.True(t, input.Funding.SDG.Equal(decimal.NewFromInt(500)))
	assert.True(t, input.Funding.Other.IsZero())
	require.Len(t, input.Funding.PartnersList, 2)
	assert.Equal(t, "UNICEF", input.Funding.PartnersList[0].Name)

	var details map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(input.ToolDetails, &details))
	assert.Contains(t, details, "training_details")
	assert.NotContains(t, details, "printing_details")
}

func TestBudgetRequestWithoutToolDetails(t *testing.T) {
	assert.Nil(t, BudgetRequest{}.Input().ToolDetails)
}

func TestPlanSnapshot(t *testing.T) {
	objectiveID := uuid.New()
	initiativeID := uuid.New()
	activityID := uuid.New()

	raw := `{
		"organization_id": 7,
		"organizations": {"7": "Maternal Health Directorate", "9": ""},
		"objectives": [{
			"id": "` + objectiveID.String() + `",
			"title": "Improve maternal health",
			"weight": 40,
			"planner_weight": "35",
			"initiatives": [{
				"id": "` + initiativeID.String() + `",
				"name": "Expand antenatal care",
				"weight": 35,
				"organization_id": 7,
				"performance_measures": [{"name": "ANC coverage", "weight": 12.25, "target_type": "constant", "annual_target": 80}],
				"main_activities": [{
					"id": "` + activityID.String() + `",
					"name": "Equip health posts",
					"weight": 22.75,
					"sub_activities": [{"name": "Buy kits", "estimated_cost_without_tool": 3000, "government_treasury": 3000}],
					"budget": {"estimated_cost_without_tool": 100}
				}]
			}]
		}]
	}`

	var snapshot PlanSnapshot
	require.NoError(t, json.Unmarshal([]byte(raw), &snapshot))

	name, ok := snapshot.OrganizationLookup(7)
	assert.True(t, ok)
	assert.Equal(t, "Maternal Health Directorate", name)
	_, ok = snapshot.OrganizationLookup(9)
	assert.False(t, ok, "blank names do not resolve")

	objectives, err := snapshot.ToObjectives()
	require.NoError(t, err)
	require.Len(t, objectives, 1)

	objective := objectives[0]
	assert.Equal(t, objectiveID, objective.ID)
	require.NotNil(t, objective.PlannerWeight)
	assert.True(t, objective.PlannerWeight.Equal(decimal.NewFromInt(35)))

	require.Len(t, objective.Initiatives, 1)
	initiative := objective.Initiatives[0]
	assert.Equal(t, objectiveID, initiative.ObjectiveID)
	require.Len(t, initiative.PerformanceMeasures, 1)
	assert.NotEqual(t, uuid.Nil, initiative.PerformanceMeasures[0].ID, "blank ids are generated")

	require.Len(t, initiative.MainActivities, 1)
	activity := initiative.MainActivities[0]
	assert.Equal(t, activityID, activity.ID)
	require.Len(t, activity.SubActivities, 1)
	assert.Equal(t, valueobject.ActivityTypeOther, activity.SubActivities[0].ActivityType)
	assert.Equal(t, activityID, activity.SubActivities[0].MainActivityID)
	require.NotNil(t, activity.LegacyBudget)
	assert.Equal(t, activityID, activity.LegacyBudget.MainActivityID)
}

func TestPlanSnapshotSettlesPartnerLists(t *testing.T) {
	raw := `{
		"objectives": [{
			"id": "` + uuid.NewString() + `",
			"title": "Improve maternal health",
			"weight": 40,
			"initiatives": [{
				"name": "Expand antenatal care",
				"weight": 40,
				"main_activities": [
					{
						"name": "Equip health posts",
						"weight": 26,
						"sub_activities": [{
							"name": "Buy kits",
							"estimated_cost_without_tool": 1000,
							"government_treasury": 400,
							"partners_list": [{"name": "UNICEF", "amount": 300}]
						}]
					},
					{
						"name": "Supervise facilities",
						"weight": 0,
						"budget": {"estimated_cost_without_tool": 500, "partners_list": [{"name": "WHO", "amount": "200"}]}
					}
				]
			}]
		}]
	}`

	var snapshot PlanSnapshot
	require.NoError(t, json.Unmarshal([]byte(raw), &snapshot))

	objectives, err := snapshot.ToObjectives()
	require.NoError(t, err)
	activities := objectives[0].Initiatives[0].MainActivities
	require.Len(t, activities, 2)

	funding := activities[0].SubActivities[0].Funding
	assert.True(t, funding.Partners.Equal(decimal.NewFromInt(300)))
	assert.True(t, funding.TotalAvailable().Equal(decimal.NewFromInt(700)))

	require.NotNil(t, activities[1].LegacyBudget)
	assert.True(t, activities[1].LegacyBudget.Funding.Partners.Equal(decimal.NewFromInt(200)))
}

func TestPlanSnapshotErrors(t *testing.T) {
	t.Run("no objectives", func(t *testing.T) {
		objectives, err := PlanSnapshot{}.ToObjectives()
		require.NoError(t, err)
		assert.Nil(t, objectives)
	})

	t.Run("malformed id names the item", func(t *testing.T) {
		snapshot := PlanSnapshot{Objectives: []SnapshotObjective{{
			ID:    uuid.NewString(),
			Title: "Improve maternal health",
			Initiatives: []SnapshotInitiative{{
				ID:   "bogus",
				Name: "Expand antenatal care",
			}},
		}}}

		_, err := snapshot.ToObjectives()
		assert.ErrorContains(t, err, "Expand antenatal care")
	})
}
