// Package plan contains plan workflow, summary and report use cases.
package plan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/budget"
	"github.com/strategic-planning/backend/internal/domain/entity"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
	"github.com/strategic-planning/backend/internal/domain/valueobject"
)

const dateLayout = "2006-01-02"

// findAccessiblePlan loads a plan the caller may read.
// Planners see their own organization's plans; evaluators and admins see all.
func findAccessiblePlan(ctx context.Context, repo adapter.PlanRepository, id uuid.UUID, organizationID int64, role entity.UserRole) (*entity.Plan, error) {
	plan, err := repo.FindByID(ctx, id)
	if err != nil && !errors.Is(err, domainerror.ErrPlanNotFound) {
		return nil, fmt.Errorf("failed to find plan: %w", err)
	}

	if plan == nil || (plan.OrganizationID != organizationID && role != entity.UserRoleEvaluator && role != entity.UserRoleAdmin) {
		return nil, domainerror.NewPlanError(
			domainerror.ErrCodePlanNotFound,
			"plan not found",
			domainerror.ErrPlanNotFound,
		)
	}

	return plan, nil
}

type noopMetrics struct{}

func (noopMetrics) ObserveAggregation(time.Duration, int) {}
func (noopMetrics) ObserveProjection(int)                 {}
func (noopMetrics) ObserveWeightViolation(string)         {}
func (noopMetrics) ObserveSummaryCache(bool)              {}

// PlanReader computes the aggregated tree and report of a plan.
type PlanReader struct {
	treeRepo   adapter.PlanningTreeRepository
	orgRepo    adapter.OrganizationRepository
	cache      adapter.SummaryCache
	metrics    adapter.PlanningMetrics
	aggregator *budget.Aggregator
	rules      valueobject.PlanningRules
}

// NewPlanReader creates a new PlanReader instance. Cache and metrics are optional.
func NewPlanReader(
	treeRepo adapter.PlanningTreeRepository,
	orgRepo adapter.OrganizationRepository,
	cache adapter.SummaryCache,
	metrics adapter.PlanningMetrics,
	rules valueobject.PlanningRules,
) *PlanReader {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &PlanReader{
		treeRepo:   treeRepo,
		orgRepo:    orgRepo,
		cache:      cache,
		metrics:    metrics,
		aggregator: budget.NewAggregator(rules),
		rules:      rules,
	}
}

// Tree returns the aggregated tree of the plan as seen by the plan's organization.
// The boolean reports whether it was served from the cache.
func (r *PlanReader) Tree(ctx context.Context, plan *entity.Plan) (*budget.Tree, bool, error) {
	key, ok := r.cacheKey(ctx, plan)
	if ok {
		if tree, hit := r.cached(ctx, key); hit {
			r.metrics.ObserveSummaryCache(true)
			return tree, true, nil
		}
		r.metrics.ObserveSummaryCache(false)
	}

	objectives, err := r.treeRepo.LoadObjectives(ctx, plan.ObjectiveIDs())
	if err != nil {
		return nil, false, fmt.Errorf("failed to load plan objectives: %w", err)
	}
	if objectives == nil {
		objectives = []entity.Objective{}
	}
	applyObjectiveWeights(objectives, plan)

	started := time.Now()
	tree, err := r.aggregator.Aggregate(objectives, plan.OrganizationID)
	if err != nil {
		return nil, false, err
	}
	r.metrics.ObserveAggregation(time.Since(started), len(objectives))
	for _, level := range tree.OverTargetLevels() {
		r.metrics.ObserveWeightViolation(level)
	}

	if ok {
		r.store(ctx, key, tree)
	}

	return tree, false, nil
}

// Report projects the plan into its stepped report.
func (r *PlanReader) Report(ctx context.Context, plan *entity.Plan) (budget.Report, error) {
	tree, _, err := r.Tree(ctx, plan)
	if err != nil {
		return budget.Report{}, err
	}

	lookup, err := r.organizationLookup(ctx)
	if err != nil {
		return budget.Report{}, err
	}

	projector := budget.NewProjector(lookup, r.rules.DefaultImplementor)
	report := projector.Build(reportHeader(plan), tree)
	r.metrics.ObserveProjection(len(report.Rows))

	return report, nil
}

func (r *PlanReader) organizationLookup(ctx context.Context) (budget.OrganizationLookup, error) {
	if r.orgRepo == nil {
		return nil, nil
	}

	organizations, err := r.orgRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	names := make(map[int64]string, len(organizations))
	for _, o := range organizations {
		names[o.ID] = o.Name
	}

	return func(id int64) (string, bool) {
		name, ok := names[id]
		return name, ok && name != ""
	}, nil
}

func (r *PlanReader) cacheKey(ctx context.Context, plan *entity.Plan) (string, bool) {
	if r.cache == nil {
		return "", false
	}

	generation, err := r.cache.Generation(ctx)
	if err != nil {
		slog.Warn("Failed to read plan summary generation", "plan_id", plan.ID, "error", err)
		return "", false
	}

	return fmt.Sprintf("plan-summary:%d:%s:%d", generation, plan.ID, plan.OrganizationID), true
}

func (r *PlanReader) cached(ctx context.Context, key string) (*budget.Tree, bool) {
	data, found, err := r.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("Failed to read cached plan summary", "key", key, "error", err)
		return nil, false
	}
	if !found {
		return nil, false
	}

	var tree budget.Tree
	if err := json.Unmarshal(data, &tree); err != nil {
		slog.Warn("Discarding unreadable cached plan summary", "key", key, "error", err)
		return nil, false
	}
	return &tree, true
}

func (r *PlanReader) store(ctx context.Context, key string, tree *budget.Tree) {
	data, err := json.Marshal(tree)
	if err != nil {
		slog.Warn("Failed to encode plan summary", "key", key, "error", err)
		return
	}
	if err := r.cache.Set(ctx, key, data); err != nil {
		slog.Warn("Failed to cache plan summary", "key", key, "error", err)
	}
}

// applyObjectiveWeights replaces planner weights with the plan's own overrides.
func applyObjectiveWeights(objectives []entity.Objective, plan *entity.Plan) {
	for i := range objectives {
		if w, ok := plan.ObjectiveWeights[objectives[i].ID]; ok {
			weight := w
			objectives[i].PlannerWeight = &weight
		}
	}
}

func reportHeader(plan *entity.Plan) budget.ReportHeader {
	return budget.ReportHeader{
		Organization: plan.OrganizationName,
		Planner:      plan.PlannerName,
		PlanType:     string(plan.Type),
		FromDate:     plan.FromDate.Format(dateLayout),
		ToDate:       plan.ToDate.Format(dateLayout),
	}
}
