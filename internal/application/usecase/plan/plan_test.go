package plan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/strategic-planning/backend/internal/domain/budget"
	"github.com/strategic-planning/backend/internal/domain/entity"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
	"github.com/strategic-planning/backend/internal/domain/valueobject"
)

const (
	ownOrg     int64 = 11
	foreignOrg int64 = 12
)

type planFixture struct {
	plans      *fakePlanRepo
	objectives *fakeObjectiveRepo
	trees      *fakeTreeRepo
	orgs       *fakeOrgRepo
	cache      *memoryCache
	metrics    *recordingMetrics
	archive    *fakeArchive
	notifier   *fakeNotifier
	objective  entity.Objective
	reader     *PlanReader
}

func newPlanFixture() *planFixture {
	objective := entity.NewObjective("Improve health outcomes", "", dec("20"), true)

	own, other := ownOrg, foreignOrg

	initiative := entity.NewInitiative(objective.ID, "Expand immunization", dec("20"), nil, true)
	activity := entity.NewMainActivity(initiative.ID, "Outreach campaigns", dec("13"), &own)
	activity.SubActivities = []entity.SubActivity{
		*entity.NewSubActivity(
			activity.ID,
			"Mobile clinics",
			valueobject.NewCostInput(valueobject.CalculationModeWithTool, valueobject.ActivityTypeSupervision, "10000", "0"),
			valueobject.NewFundingBreakdown("4000", "1000", "0", "0", nil),
		),
	}
	foreign := entity.NewMainActivity(initiative.ID, "Foreign work", dec("5"), &other)
	foreign.SubActivities = []entity.SubActivity{
		*entity.NewSubActivity(
			foreign.ID,
			"Foreign spend",
			valueobject.NewCostInput(valueobject.CalculationModeWithTool, valueobject.ActivityTypeOther, "999", "0"),
			valueobject.FundingBreakdown{},
		),
	}
	initiative.MainActivities = []entity.MainActivity{*activity, *foreign}
	objective.Initiatives = []entity.Initiative{*initiative}

	f := &planFixture{
		plans:      newFakePlanRepo(),
		objectives: &fakeObjectiveRepo{objectives: map[uuid.UUID]*entity.Objective{objective.ID: objective}},
		trees:      &fakeTreeRepo{objectives: []entity.Objective{*objective}},
		orgs: &fakeOrgRepo{organizations: []*entity.Organization{
			{ID: ownOrg, Name: "Health Desk", Type: entity.OrganizationTypeDesk},
			{ID: foreignOrg, Name: "Finance Desk", Type: entity.OrganizationTypeDesk},
		}},
		cache:     newMemoryCache(),
		metrics:   &recordingMetrics{},
		archive:   &fakeArchive{},
		notifier:  &fakeNotifier{},
		objective: *objective,
	}
	f.reader = NewPlanReader(f.trees, f.orgs, f.cache, f.metrics, valueobject.DefaultPlanningRules())
	return f
}

func (f *planFixture) createInput() CreatePlanInput {
	from := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	return CreatePlanInput{
		OrganizationID:       ownOrg,
		Role:                 entity.UserRolePlanner,
		PlannerID:            uuid.New(),
		PlannerName:          "Abebe Kebede",
		PlannerEmail:         "planner@example.org",
		Type:                 entity.PlanTypeDeskTeam,
		StrategicObjectiveID: f.objective.ID,
		FiscalYear:           "2025/26",
		FromDate:             from,
		ToDate:               from.AddDate(1, 0, -1),
	}
}

func (f *planFixture) createPlan(t *testing.T) *entity.Plan {
	t.Helper()

	out, err := NewCreatePlanUseCase(f.plans, f.objectives, f.orgs).Execute(context.Background(), f.createInput())
	if err != nil {
		t.Fatalf("unexpected error creating plan: %v", err)
	}
	return out.Plan
}

func (f *planFixture) submitUseCase() *SubmitPlanUseCase {
	return NewSubmitPlanUseCase(f.plans, f.reader, stubEncoder{}, f.archive, f.notifier)
}

func TestCreatePlanUseCase(t *testing.T) {
	t.Run("creates draft with organization name", func(t *testing.T) {
		f := newPlanFixture()
		p := f.createPlan(t)

		if p.Status != entity.PlanStatusDraft {
			t.Errorf("expected DRAFT, got %s", p.Status)
		}
		if p.OrganizationName != "Health Desk" {
			t.Errorf("expected organization name Health Desk, got %q", p.OrganizationName)
		}
	})

	tests := []struct {
		name    string
		mutate  func(*CreatePlanInput)
		wantErr error
	}{
		{
			name:    "end date before start date",
			mutate:  func(in *CreatePlanInput) { in.ToDate = in.FromDate },
			wantErr: domainerror.ErrInvalidPlanDates,
		},
		{
			name:    "unknown plan type",
			mutate:  func(in *CreatePlanInput) { in.Type = "Quarterly Plan" },
			wantErr: domainerror.ErrInvalidPlanType,
		},
		{
			name:    "unknown selected objective",
			mutate:  func(in *CreatePlanInput) { in.SelectedObjectiveIDs = []uuid.UUID{uuid.New()} },
			wantErr: domainerror.ErrObjectiveNotFound,
		},
		{
			name: "objective weight out of range",
			mutate: func(in *CreatePlanInput) {
				in.ObjectiveWeights = map[uuid.UUID]decimal.Decimal{in.StrategicObjectiveID: dec("120")}
			},
			wantErr: domainerror.ErrInvalidWeight,
		},
		{
			name:    "evaluator cannot create",
			mutate:  func(in *CreatePlanInput) { in.Role = entity.UserRoleEvaluator },
			wantErr: domainerror.ErrForbiddenRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPlanFixture()
			input := f.createInput()
			tt.mutate(&input)

			_, err := NewCreatePlanUseCase(f.plans, f.objectives, f.orgs).Execute(context.Background(), input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if len(f.plans.plans) != 0 {
				t.Error("expected no plan to be stored")
			}
		})
	}
}

func TestSubmitPlanUseCase(t *testing.T) {
	t.Run("submits, archives and notifies", func(t *testing.T) {
		f := newPlanFixture()
		p := f.createPlan(t)

		out, err := f.submitUseCase().Execute(context.Background(), SubmitPlanInput{PlanID: p.ID, OrganizationID: ownOrg, Role: entity.UserRolePlanner})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Plan.Status != entity.PlanStatusSubmitted || out.Plan.SubmittedAt == nil {
			t.Errorf("expected submitted plan with timestamp, got %s", out.Plan.Status)
		}
		if len(f.archive.keys) != 1 || out.ReportURL == "" {
			t.Errorf("expected report to be archived, got keys %v", f.archive.keys)
		}
		if len(f.notifier.submitted) != 1 || f.notifier.submitted[0].ReportURL != out.ReportURL {
			t.Errorf("expected submitted notice with report url, got %+v", f.notifier.submitted)
		}
	})

	t.Run("archive failure does not block submission", func(t *testing.T) {
		f := newPlanFixture()
		f.archive.err = errors.New("bucket unavailable")
		p := f.createPlan(t)

		out, err := f.submitUseCase().Execute(context.Background(), SubmitPlanInput{PlanID: p.ID, OrganizationID: ownOrg, Role: entity.UserRolePlanner})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.ReportURL != "" {
			t.Errorf("expected empty report url, got %q", out.ReportURL)
		}
	})

	t.Run("rejects second active plan for the same objective", func(t *testing.T) {
		f := newPlanFixture()
		first := f.createPlan(t)
		second := f.createPlan(t)

		uc := f.submitUseCase()
		if _, err := uc.Execute(context.Background(), SubmitPlanInput{PlanID: first.ID, OrganizationID: ownOrg, Role: entity.UserRolePlanner}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := uc.Execute(context.Background(), SubmitPlanInput{PlanID: second.ID, OrganizationID: ownOrg, Role: entity.UserRolePlanner})
		if !errors.Is(err, domainerror.ErrDuplicatePlanSubmission) {
			t.Errorf("expected ErrDuplicatePlanSubmission, got %v", err)
		}
	})

	t.Run("rejects resubmitting a submitted plan", func(t *testing.T) {
		f := newPlanFixture()
		p := f.createPlan(t)

		uc := f.submitUseCase()
		input := SubmitPlanInput{PlanID: p.ID, OrganizationID: ownOrg, Role: entity.UserRolePlanner}
		if _, err := uc.Execute(context.Background(), input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := uc.Execute(context.Background(), input)
		if !errors.Is(err, domainerror.ErrInvalidPlanTransition) {
			t.Errorf("expected ErrInvalidPlanTransition, got %v", err)
		}
	})

	t.Run("hides plans of other organizations", func(t *testing.T) {
		f := newPlanFixture()
		p := f.createPlan(t)

		_, err := f.submitUseCase().Execute(context.Background(), SubmitPlanInput{PlanID: p.ID, OrganizationID: foreignOrg, Role: entity.UserRoleAdmin})
		if !errors.Is(err, domainerror.ErrPlanNotFound) {
			t.Errorf("expected ErrPlanNotFound, got %v", err)
		}
	})
}

func TestReviewPlanUseCase(t *testing.T) {
	submitted := func(t *testing.T, f *planFixture) *entity.Plan {
		t.Helper()
		p := f.createPlan(t)
		if _, err := f.submitUseCase().Execute(context.Background(), SubmitPlanInput{PlanID: p.ID, OrganizationID: ownOrg, Role: entity.UserRolePlanner}); err != nil {
			t.Fatalf("unexpected error submitting plan: %v", err)
		}
		return p
	}

	t.Run("only evaluators review", func(t *testing.T) {
		f := newPlanFixture()
		p := submitted(t, f)

		_, err := NewReviewPlanUseCase(f.plans, f.notifier).Execute(context.Background(), ReviewPlanInput{
			PlanID: p.ID,
			Role:   entity.UserRoleAdmin,
			Status: entity.PlanStatusApproved,
		})
		if !errors.Is(err, domainerror.ErrNotEvaluator) {
			t.Errorf("expected ErrNotEvaluator, got %v", err)
		}
	})

	t.Run("draft plans cannot be reviewed", func(t *testing.T) {
		f := newPlanFixture()
		p := f.createPlan(t)

		_, err := NewReviewPlanUseCase(f.plans, f.notifier).Execute(context.Background(), ReviewPlanInput{
			PlanID: p.ID,
			Role:   entity.UserRoleEvaluator,
			Status: entity.PlanStatusApproved,
		})
		if !errors.Is(err, domainerror.ErrInvalidPlanTransition) {
			t.Errorf("expected ErrInvalidPlanTransition, got %v", err)
		}
	})

	t.Run("rejects unknown review status", func(t *testing.T) {
		f := newPlanFixture()
		p := submitted(t, f)

		_, err := NewReviewPlanUseCase(f.plans, f.notifier).Execute(context.Background(), ReviewPlanInput{
			PlanID: p.ID,
			Role:   entity.UserRoleEvaluator,
			Status: entity.PlanStatusDraft,
		})
		if !errors.Is(err, domainerror.ErrInvalidReviewStatus) {
			t.Errorf("expected ErrInvalidReviewStatus, got %v", err)
		}
	})

	t.Run("rejected plans can be resubmitted", func(t *testing.T) {
		f := newPlanFixture()
		p := submitted(t, f)

		out, err := NewReviewPlanUseCase(f.plans, f.notifier).Execute(context.Background(), ReviewPlanInput{
			PlanID:        p.ID,
			EvaluatorID:   uuid.New(),
			EvaluatorName: "Evaluator",
			Role:          entity.UserRoleEvaluator,
			Status:        entity.PlanStatusRejected,
			Feedback:      "  Targets are too low  ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Review.Feedback != "Targets are too low" {
			t.Errorf("expected trimmed feedback, got %q", out.Review.Feedback)
		}
		if len(f.notifier.reviewed) != 1 || f.notifier.reviewed[0].Status != "REJECTED" {
			t.Errorf("expected rejected notice, got %+v", f.notifier.reviewed)
		}

		got, err := NewGetPlanUseCase(f.plans).Execute(context.Background(), GetPlanInput{PlanID: p.ID, OrganizationID: ownOrg, Role: entity.UserRolePlanner})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Reviews) != 1 {
			t.Errorf("expected 1 review, got %d", len(got.Reviews))
		}

		if _, err := f.submitUseCase().Execute(context.Background(), SubmitPlanInput{PlanID: p.ID, OrganizationID: ownOrg, Role: entity.UserRolePlanner}); err != nil {
			t.Errorf("expected rejected plan to be resubmittable, got %v", err)
		}
	})
}

func TestGetPlanSummaryUseCase(t *testing.T) {
	t.Run("aggregates visible items and caches the result", func(t *testing.T) {
		f := newPlanFixture()
		p := f.createPlan(t)
		uc := NewGetPlanSummaryUseCase(f.plans, f.reader)
		input := GetPlanSummaryInput{PlanID: p.ID, OrganizationID: ownOrg, Role: entity.UserRolePlanner}

		first, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.Cached {
			t.Error("expected first summary to be computed")
		}
		if !first.Tree.GrandTotal.Required.Equal(dec("10000")) {
			t.Errorf("expected required 10000, got %s", first.Tree.GrandTotal.Required)
		}
		if !first.Tree.GrandTotal.Gap.Equal(dec("5000")) {
			t.Errorf("expected gap 5000, got %s", first.Tree.GrandTotal.Gap)
		}

		second, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !second.Cached {
			t.Error("expected second summary to come from the cache")
		}
		if !second.Tree.GrandTotal.Equal(first.Tree.GrandTotal) {
			t.Error("expected cached totals to match computed totals")
		}
		if f.trees.loads != 1 || f.metrics.hits != 1 || f.metrics.misses != 1 {
			t.Errorf("expected 1 load, 1 hit and 1 miss, got %d, %d, %d", f.trees.loads, f.metrics.hits, f.metrics.misses)
		}

		_ = f.cache.Invalidate(context.Background())
		third, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if third.Cached || f.trees.loads != 2 {
			t.Error("expected invalidation to force recomputation")
		}
	})

	t.Run("applies plan objective weights", func(t *testing.T) {
		f := newPlanFixture()
		input := f.createInput()
		input.ObjectiveWeights = map[uuid.UUID]decimal.Decimal{f.objective.ID: dec("25")}

		out, err := NewCreatePlanUseCase(f.plans, f.objectives, f.orgs).Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		summary, err := NewGetPlanSummaryUseCase(f.plans, f.reader).Execute(context.Background(), GetPlanSummaryInput{
			PlanID:         out.Plan.ID,
			OrganizationID: ownOrg,
			Role:           entity.UserRolePlanner,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !summary.Tree.Objectives[0].EffectiveWeight.Equal(dec("25")) {
			t.Errorf("expected effective weight 25, got %s", summary.Tree.Objectives[0].EffectiveWeight)
		}
		if !f.trees.objectives[0].EffectiveWeight().Equal(dec("20")) {
			t.Error("expected stored objective to keep its weight")
		}
	})

	t.Run("evaluators read other organizations", func(t *testing.T) {
		f := newPlanFixture()
		p := f.createPlan(t)
		uc := NewGetPlanSummaryUseCase(f.plans, f.reader)

		if _, err := uc.Execute(context.Background(), GetPlanSummaryInput{PlanID: p.ID, OrganizationID: foreignOrg, Role: entity.UserRolePlanner}); !errors.Is(err, domainerror.ErrPlanNotFound) {
			t.Errorf("expected ErrPlanNotFound for foreign planner, got %v", err)
		}

		out, err := uc.Execute(context.Background(), GetPlanSummaryInput{PlanID: p.ID, OrganizationID: foreignOrg, Role: entity.UserRoleEvaluator})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Tree.OrganizationID != ownOrg {
			t.Errorf("expected tree for plan organization %d, got %d", ownOrg, out.Tree.OrganizationID)
		}
	})
}

func TestPlanReportUseCases(t *testing.T) {
	f := newPlanFixture()
	p := f.createPlan(t)
	report := NewGetPlanReportUseCase(f.plans, f.reader)
	input := GetPlanReportInput{PlanID: p.ID, OrganizationID: ownOrg, Role: entity.UserRolePlanner}

	out, err := report.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Report.Header.Organization != "Health Desk" || out.Report.Header.FromDate != "2025-07-01" {
		t.Errorf("unexpected header %+v", out.Report.Header)
	}

	rows := out.Report.Rows
	if len(rows) != 2 {
		t.Fatalf("expected activity row and summary row, got %d rows", len(rows))
	}
	if rows[0].ItemType != budget.ItemTypeMainActivity || rows[0].Implementor != "Health Desk" {
		t.Errorf("unexpected activity row %+v", rows[0])
	}

	summary, ok := out.Report.Summary()
	if !ok || !summary.Budget.Required.Equal(dec("10000")) {
		t.Errorf("expected summary row with required 10000, got %+v", summary)
	}
	if f.metrics.projections != 1 {
		t.Errorf("expected 1 projection, got %d", f.metrics.projections)
	}

	exported, err := NewExportPlanReportUseCase(report, stubEncoder{}).Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exported.Filename != "plan-2025-26-"+p.ID.String()+".csv" {
		t.Errorf("unexpected filename %q", exported.Filename)
	}
	if string(exported.Body) != "Health Desk" {
		t.Errorf("unexpected body %q", exported.Body)
	}
}
