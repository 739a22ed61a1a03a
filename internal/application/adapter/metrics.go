package adapter

import "time"

// PlanningMetrics records calculation activity of the planning engine.
type PlanningMetrics interface {
	// ObserveAggregation records one aggregation and how long it took.
	ObserveAggregation(duration time.Duration, objectives int)

	// ObserveProjection records one report projection and its row count.
	ObserveProjection(rows int)

	// ObserveWeightViolation records a weight check that failed at the given level.
	ObserveWeightViolation(level string)

	// ObserveSummaryCache records a summary cache lookup.
	ObserveSummaryCache(hit bool)
}
