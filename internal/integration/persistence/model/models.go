package model

// All returns every model in migration order.
func All() []any {
	return []any{
		&OrganizationModel{},
		&ObjectiveModel{},
		&InitiativeModel{},
		&MainActivityModel{},
		&ActivityBudgetModel{},
		&SubActivityModel{},
		&PerformanceMeasureModel{},
		&PlanModel{},
		&PlanReviewModel{},
		&EmailQueueModel{},
	}
}
