package plan

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/budget"
	"github.com/strategic-planning/backend/internal/domain/entity"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
)

type fakePlanRepo struct {
	plans   map[uuid.UUID]*entity.Plan
	reviews []*entity.PlanReview
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: make(map[uuid.UUID]*entity.Plan)}
}

func (r *fakePlanRepo) Create(_ context.Context, p *entity.Plan) error {
	r.plans[p.ID] = p
	return nil
}

func (r *fakePlanRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Plan, error) {
	p, ok := r.plans[id]
	if !ok {
		return nil, domainerror.ErrPlanNotFound
	}
	return p, nil
}

func (r *fakePlanRepo) Update(_ context.Context, p *entity.Plan) error {
	r.plans[p.ID] = p
	return nil
}

func (r *fakePlanRepo) ExistsActiveForObjective(_ context.Context, organizationID int64, objectiveID, excludePlanID uuid.UUID) (bool, error) {
	for _, p := range r.plans {
		if p.ID != excludePlanID && p.OrganizationID == organizationID && p.StrategicObjectiveID == objectiveID && p.Status.IsActive() {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePlanRepo) CreateReview(_ context.Context, p *entity.Plan, review *entity.PlanReview) error {
	r.plans[p.ID] = p
	r.reviews = append([]*entity.PlanReview{review}, r.reviews...)
	return nil
}

func (r *fakePlanRepo) FindReviews(_ context.Context, planID uuid.UUID) ([]*entity.PlanReview, error) {
	var out []*entity.PlanReview
	for _, review := range r.reviews {
		if review.PlanID == planID {
			out = append(out, review)
		}
	}
	return out, nil
}

type fakeObjectiveRepo struct {
	objectives map[uuid.UUID]*entity.Objective
}

func (r *fakeObjectiveRepo) FindAll(context.Context) ([]*entity.Objective, error) {
	return nil, nil
}

func (r *fakeObjectiveRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Objective, error) {
	o, ok := r.objectives[id]
	if !ok {
		return nil, domainerror.ErrObjectiveNotFound
	}
	return o, nil
}

func (r *fakeObjectiveRepo) UpdatePlannerWeight(context.Context, uuid.UUID, *decimal.Decimal) error {
	return nil
}

type fakeTreeRepo struct {
	objectives []entity.Objective
	loads      int
}

func (r *fakeTreeRepo) LoadObjectives(_ context.Context, ids []uuid.UUID) ([]entity.Objective, error) {
	r.loads++
	out := make([]entity.Objective, 0, len(ids))
	for _, id := range ids {
		for _, o := range r.objectives {
			if o.ID == id {
				out = append(out, o)
			}
		}
	}
	return out, nil
}

type fakeOrgRepo struct {
	organizations []*entity.Organization
}

func (r *fakeOrgRepo) FindByID(_ context.Context, id int64) (*entity.Organization, error) {
	for _, o := range r.organizations {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, errors.New("organization not found")
}

func (r *fakeOrgRepo) FindAll(context.Context) ([]*entity.Organization, error) {
	return r.organizations, nil
}

type memoryCache struct {
	generation int64
	values     map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := c.values[key]
	return v, ok, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte) error {
	c.values[key] = value
	return nil
}

func (c *memoryCache) Generation(context.Context) (int64, error) {
	return c.generation, nil
}

func (c *memoryCache) Invalidate(context.Context) error {
	c.generation++
	return nil
}

type recordingMetrics struct {
	aggregations int
	projections  int
	violations   []string
	hits, misses int
}

func (m *recordingMetrics) ObserveAggregation(time.Duration, int) { m.aggregations++ }
func (m *recordingMetrics) ObserveProjection(int)                 { m.projections++ }
func (m *recordingMetrics) ObserveWeightViolation(level string)   { m.violations = append(m.violations, level) }

func (m *recordingMetrics) ObserveSummaryCache(hit bool) {
	if hit {
		m.hits++
		return
	}
	m.misses++
}

type stubEncoder struct{}

func (stubEncoder) Encode(report budget.Report) ([]byte, error) {
	return []byte(report.Header.Organization), nil
}

func (stubEncoder) ContentType() string { return "text/csv" }
func (stubEncoder) Extension() string   { return ".csv" }

type fakeArchive struct {
	keys []string
	err  error
}

func (a *fakeArchive) Store(_ context.Context, key, _ string, _ []byte) (string, error) {
	if a.err != nil {
		return "", a.err
	}
	a.keys = append(a.keys, key)
	return "s3://plans/" + key, nil
}

type fakeNotifier struct {
	submitted []adapter.PlanSubmittedNotice
	reviewed  []adapter.PlanReviewedNotice
}

func (n *fakeNotifier) QueuePlanSubmittedEmail(_ context.Context, input adapter.PlanSubmittedNotice) error {
	n.submitted = append(n.submitted, input)
	return nil
}

func (n *fakeNotifier) QueuePlanReviewedEmail(_ context.Context, input adapter.PlanReviewedNotice) error {
	n.reviewed = append(n.reviewed, input)
	return nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
