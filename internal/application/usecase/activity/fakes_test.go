package activity

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/strategic-planning/backend/internal/domain/entity"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
	"github.com/strategic-planning/backend/internal/domain/valueobject"
)

type fakeInitiativeRepo struct {
	items map[uuid.UUID]*entity.Initiative
}

func (r *fakeInitiativeRepo) Create(_ context.Context, i *entity.Initiative) error {
	r.items[i.ID] = i
	return nil
}

func (r *fakeInitiativeRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Initiative, error) {
	i, ok := r.items[id]
	if !ok {
		return nil, domainerror.ErrInitiativeNotFound
	}
	return i, nil
}

func (r *fakeInitiativeRepo) FindByObjectiveID(_ context.Context, objectiveID uuid.UUID) ([]*entity.Initiative, error) {
	var out []*entity.Initiative
	for _, i := range r.items {
		if i.ObjectiveID == objectiveID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (r *fakeInitiativeRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

type fakeActivityRepo struct {
	items   map[uuid.UUID]*entity.MainActivity
	order   []uuid.UUID
	budgets int
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{items: make(map[uuid.UUID]*entity.MainActivity)}
}

func (r *fakeActivityRepo) Create(_ context.Context, a *entity.MainActivity) error {
	r.items[a.ID] = a
	r.order = append(r.order, a.ID)
	return nil
}

func (r *fakeActivityRepo) Update(_ context.Context, a *entity.MainActivity) error {
	r.items[a.ID] = a
	return nil
}

func (r *fakeActivityRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.MainActivity, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, domainerror.ErrMainActivityNotFound
	}
	return a, nil
}

func (r *fakeActivityRepo) FindByInitiativeID(_ context.Context, initiativeID uuid.UUID) ([]*entity.MainActivity, error) {
	var out []*entity.MainActivity
	for _, id := range r.order {
		if a, ok := r.items[id]; ok && a.InitiativeID == initiativeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeActivityRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *fakeActivityRepo) SaveBudget(_ context.Context, b *entity.ActivityBudget) error {
	r.budgets++
	return nil
}

type fakeSubActivityRepo struct {
	items map[uuid.UUID]*entity.SubActivity
}

func (r *fakeSubActivityRepo) Create(_ context.Context, s *entity.SubActivity) error {
	r.items[s.ID] = s
	return nil
}

func (r *fakeSubActivityRepo) Update(_ context.Context, s *entity.SubActivity) error {
	r.items[s.ID] = s
	return nil
}

func (r *fakeSubActivityRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.SubActivity, error) {
	s, ok := r.items[id]
	if !ok {
		return nil, domainerror.ErrSubActivityNotFound
	}
	return s, nil
}

func (r *fakeSubActivityRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

type fakeCache struct {
	invalidations int
}

func (c *fakeCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (c *fakeCache) Set(context.Context, string, []byte) error         { return nil }
func (c *fakeCache) Generation(context.Context) (int64, error)         { return 0, nil }

func (c *fakeCache) Invalidate(context.Context) error {
	c.invalidations++
	return nil
}

func org(id int64) *int64 {
	return &id
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func planItem(name, weight string) PlanItemInput {
	return PlanItemInput{
		Name:     name,
		Weight:   dec(weight),
		Baseline: "0",
		Targets: valueobject.QuarterTargets{
			Type:   valueobject.TargetTypeCumulative,
			Q1:     dec("1"),
			Q2:     dec("1"),
			Q3:     dec("1"),
			Q4:     dec("1"),
			Annual: dec("4"),
		},
		Period: valueobject.PeriodSelection{Quarters: []valueobject.Quarter{valueobject.Q1}},
	}
}
