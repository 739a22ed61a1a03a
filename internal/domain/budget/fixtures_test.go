package budget

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/strategic-planning/backend/internal/domain/entity"
	"github.com/strategic-planning/backend/internal/domain/valueobject"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func org(id int64) *int64 {
	return &id
}

func subActivity(name string, mode valueobject.CalculationMode, withTool, withoutTool any, funding valueobject.FundingBreakdown) entity.SubActivity {
	return entity.SubActivity{
		ID:           uuid.New(),
		Name:         name,
		ActivityType: valueobject.ActivityTypeTraining,
		Cost:         valueobject.NewCostInput(mode, valueobject.ActivityTypeTraining, withTool, withoutTool),
		Funding:      funding,
	}
}

func activity(name, weight string, subs ...entity.SubActivity) entity.MainActivity {
	return entity.MainActivity{
		ID:            uuid.New(),
		Name:          name,
		Weight:        dec(weight),
		Baseline:      "10",
		Targets:       valueobject.QuarterTargets{Type: valueobject.TargetTypeCumulative, Q1: dec("1"), Q2: dec("2"), Q3: dec("3"), Q4: dec("4"), Annual: dec("10")},
		Period:        valueobject.PeriodSelection{Quarters: []valueobject.Quarter{valueobject.Q1}},
		SubActivities: subs,
	}
}

func legacyActivity(name, weight string, required, government string) entity.MainActivity {
	a := activity(name, weight)
	a.LegacyBudget = &entity.ActivityBudget{
		ID:      uuid.New(),
		Cost:    valueobject.NewCostInput(valueobject.CalculationModeWithoutTool, valueobject.ActivityTypeOther, nil, required),
		Funding: valueobject.NewFundingBreakdown(government, 0, 0, 0, nil),
	}
	return a
}

func measure(name, weight string) entity.PerformanceMeasure {
	return entity.PerformanceMeasure{
		ID:      uuid.New(),
		Name:    name,
		Weight:  dec(weight),
		Targets: valueobject.QuarterTargets{Type: valueobject.TargetTypeIncreasing, Q1: dec("5"), Q2: dec("6"), Q3: dec("7"), Q4: dec("8"), Annual: dec("8")},
	}
}

func initiative(name, weight string, organizationID *int64, activities ...entity.MainActivity) entity.Initiative {
	return entity.Initiative{
		ID:             uuid.New(),
		Name:           name,
		Weight:         dec(weight),
		OrganizationID: organizationID,
		MainActivities: activities,
	}
}

func objective(title, weight string, initiatives ...entity.Initiative) entity.Objective {
	return entity.Objective{
		ID:          uuid.New(),
		Title:       title,
		Weight:      dec(weight),
		Initiatives: initiatives,
	}
}

// scenarioBActivity has required 3000 and available 1200.
func scenarioBActivity() entity.MainActivity {
	return activity("Community outreach", "13",
		subActivity("Sub A", valueobject.CalculationModeWithoutTool, nil, 1000, valueobject.NewFundingBreakdown(400, 0, 300, 0, nil)),
		subActivity("Sub B", valueobject.CalculationModeWithTool, 2000, nil, valueobject.NewFundingBreakdown(0, 500, 0, 0, nil)),
	)
}
