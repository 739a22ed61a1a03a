package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/strategic-planning/backend/internal/domain/entity"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
	"github.com/strategic-planning/backend/internal/domain/valueobject"
	"github.com/strategic-planning/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbSQL, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	dbSQL.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = dbSQL.Close() })

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func fixedTime(minute int) time.Time {
	return time.Date(2025, 7, 1, 8, minute, 0, 0, time.UTC)
}

func TestPlanningTreeRepository_LoadObjectives(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	objectiveRepo := NewObjectiveRepository(db)
	initiativeRepo := NewInitiativeRepository(db)
	activityRepo := NewMainActivityRepository(db)
	subRepo := NewSubActivityRepository(db)
	measureRepo := NewPerformanceMeasureRepository(db)
	treeRepo := NewPlanningTreeRepository(db)

	first := entity.NewObjective("Quality of care", "", dec("30"), true)
	first.CreatedAt = fixedTime(1)
	second := entity.NewObjective("Financing", "", dec("20"), false)
	second.CreatedAt = fixedTime(2)
	require.NoError(t, db.Create(model.ObjectiveFromEntity(first)).Error)
	require.NoError(t, db.Create(model.ObjectiveFromEntity(second)).Error)

	org := int64(7)
	initiative := entity.NewInitiative(first.ID, "Expand services", dec("15"), &org, false)
	require.NoError(t, initiativeRepo.Create(ctx, initiative))

	late := entity.NewMainActivity(initiative.ID, "Late", dec("5"), &org)
	late.CreatedAt = fixedTime(20)
	early := entity.NewMainActivity(initiative.ID, "Early", dec("4.5"), &org)
	early.CreatedAt = fixedTime(10)
	early.Period = valueobject.PeriodSelection{Quarters: []valueobject.Quarter{valueobject.Q1}}
	require.NoError(t, activityRepo.Create(ctx, late))
	require.NoError(t, activityRepo.Create(ctx, early))

	sub := entity.NewSubActivity(early.ID, "Training of nurses",
		valueobject.NewCostInput(valueobject.CalculationModeWithoutTool, valueobject.ActivityTypeTraining, 0, "1200"),
		valueobject.NewFundingBreakdown("1000", 0, "150", 0, []valueobject.PartnerContribution{{Name: "UNICEF", Amount: dec("150")}}),
	)
	require.NoError(t, subRepo.Create(ctx, sub))

	measure := entity.NewPerformanceMeasure(initiative.ID, "Coverage", dec("3"), &org)
	require.NoError(t, measureRepo.Create(ctx, measure))

	missing := uuid.New()
	objectives, err := treeRepo.LoadObjectives(ctx, []uuid.UUID{second.ID, missing, first.ID})
	require.NoError(t, err)
	require.Len(t, objectives, 2)

	assert.Equal(t, second.ID, objectives[0].ID)
	assert.Empty(t, objectives[0].Initiatives)

	loaded := objectives[1]
	require.Len(t, loaded.Initiatives, 1)
	activities := loaded.Initiatives[0].MainActivities
	require.Len(t, activities, 2)
	assert.Equal(t, "Early", activities[0].Name)
	assert.Equal(t, "Late", activities[1].Name)
	assert.True(t, dec("4.5").Equal(activities[0].Weight))
	assert.Equal(t, []valueobject.Quarter{valueobject.Q1}, activities[0].Period.Quarters)

	require.Len(t, activities[0].SubActivities, 1)
	loadedSub := activities[0].SubActivities[0]
	assert.Equal(t, valueobject.ActivityTypeTraining, loadedSub.ActivityType)
	assert.True(t, dec("1200").Equal(loadedSub.Cost.ActiveCost()))
	require.Len(t, loadedSub.Funding.PartnersList, 1)
	assert.Equal(t, "UNICEF", loadedSub.Funding.PartnersList[0].Name)

	require.Len(t, loaded.Initiatives[0].PerformanceMeasures, 1)
	assert.Equal(t, "Coverage", loaded.Initiatives[0].PerformanceMeasures[0].Name)

	all, err := objectiveRepo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
	assert.True(t, all[0].IsDefault)

	override := dec("25")
	require.NoError(t, objectiveRepo.UpdatePlannerWeight(ctx, second.ID, &override))
	found, err := objectiveRepo.FindByID(ctx, second.ID)
	require.NoError(t, err)
	require.NotNil(t, found.PlannerWeight)
	assert.True(t, override.Equal(*found.PlannerWeight))

	require.NoError(t, objectiveRepo.UpdatePlannerWeight(ctx, second.ID, nil))
	found, err = objectiveRepo.FindByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Nil(t, found.PlannerWeight)
}

func TestMainActivityRepository_SaveBudget(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	activityRepo := NewMainActivityRepository(db)

	activity := entity.NewMainActivity(uuid.New(), "Supervision visits", dec("10"), nil)
	require.NoError(t, activityRepo.Create(ctx, activity))

	budget := &entity.ActivityBudget{
		ID:             uuid.New(),
		MainActivityID: activity.ID,
		Cost:           valueobject.NewCostInput(valueobject.CalculationModeWithTool, valueobject.ActivityTypeSupervision, "800", "0"),
		Funding:        valueobject.NewFundingBreakdown("500", 0, 0, 0, nil),
		CreatedAt:      fixedTime(0),
		UpdatedAt:      fixedTime(0),
	}
	require.NoError(t, activityRepo.SaveBudget(ctx, budget))

	budget.Cost = valueobject.NewCostInput(valueobject.CalculationModeWithTool, valueobject.ActivityTypeSupervision, "950", "0")
	budget.UpdatedAt = fixedTime(5)
	require.NoError(t, activityRepo.SaveBudget(ctx, budget))

	var count int64
	require.NoError(t, db.Model(&model.ActivityBudgetModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	found, err := activityRepo.FindByID(ctx, activity.ID)
	require.NoError(t, err)
	require.NotNil(t, found.LegacyBudget)
	assert.True(t, dec("950").Equal(found.LegacyBudget.Cost.ActiveCost()))
	assert.Nil(t, found.LegacyBudget.ToolDetails)
}

func TestInitiativeRepository_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	initiativeRepo := NewInitiativeRepository(db)
	activityRepo := NewMainActivityRepository(db)
	subRepo := NewSubActivityRepository(db)
	measureRepo := NewPerformanceMeasureRepository(db)

	initiative := entity.NewInitiative(uuid.New(), "Digital health", dec("10"), nil, true)
	require.NoError(t, initiativeRepo.Create(ctx, initiative))
	activity := entity.NewMainActivity(initiative.ID, "Roll out EMR", dec("6"), nil)
	require.NoError(t, activityRepo.Create(ctx, activity))
	sub := entity.NewSubActivity(activity.ID, "Procure tablets",
		valueobject.NewCostInput(valueobject.CalculationModeWithoutTool, valueobject.ActivityTypeProcurement, 0, "300"),
		valueobject.NewFundingBreakdown(0, 0, 0, 0, nil),
	)
	require.NoError(t, subRepo.Create(ctx, sub))
	require.NoError(t, measureRepo.Create(ctx, entity.NewPerformanceMeasure(initiative.ID, "Facilities live", dec("2"), nil)))

	require.NoError(t, initiativeRepo.Delete(ctx, initiative.ID))

	for _, m := range []any{&model.InitiativeModel{}, &model.MainActivityModel{}, &model.SubActivityModel{}, &model.PerformanceMeasureModel{}} {
		var count int64
		require.NoError(t, db.Model(m).Count(&count).Error)
		assert.Zero(t, count)
	}

	err := initiativeRepo.Delete(ctx, initiative.ID)
	assert.ErrorIs(t, err, domainerror.ErrInitiativeNotFound)
}

func TestPlanRepository_ReviewAndActiveLookup(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	planRepo := NewPlanRepository(db)

	objectiveID := uuid.New()
	from := time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 7, 7, 0, 0, 0, 0, time.UTC)

	plan := entity.NewPlan(11, uuid.New(), "Abebe", entity.PlanTypeLeadExecutive, objectiveID, "2025/26", from, to)
	plan.ObjectiveWeights = map[uuid.UUID]decimal.Decimal{objectiveID: dec("25")}
	require.NoError(t, planRepo.Create(ctx, plan))

	exists, err := planRepo.ExistsActiveForObjective(ctx, 11, objectiveID, uuid.New())
	require.NoError(t, err)
	assert.False(t, exists)

	plan.MarkSubmitted(fixedTime(30))
	require.NoError(t, planRepo.Update(ctx, plan))

	exists, err = planRepo.ExistsActiveForObjective(ctx, 11, objectiveID, uuid.New())
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = planRepo.ExistsActiveForObjective(ctx, 11, objectiveID, plan.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	review := entity.NewPlanReview(plan.ID, uuid.New(), "Evaluator", entity.PlanStatusRejected, "Rebalance weights")
	plan.Status = review.Status
	plan.UpdatedAt = review.ReviewedAt
	require.NoError(t, planRepo.CreateReview(ctx, plan, review))

	found, err := planRepo.FindByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PlanStatusRejected, found.Status)
	require.NotNil(t, found.SubmittedAt)
	assert.True(t, dec("25").Equal(found.ObjectiveWeights[objectiveID]))

	reviews, err := planRepo.FindReviews(ctx, plan.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Rebalance weights", reviews[0].Feedback)

	_, err = planRepo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerror.ErrPlanNotFound)
}

func TestEmailQueueRepository_FindByPlanID(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewEmailQueueRepository(db)

	planID := uuid.New()
	job := entity.NewEmailJob(planID, entity.TemplatePlanSubmitted, "review@moh.gov.et", "Review desk", "Plan submitted", map[string]string{"fiscal_year": "2025/26"})
	require.NoError(t, repo.Create(ctx, job))
	require.NoError(t, repo.Create(ctx, entity.NewEmailJob(uuid.New(), entity.TemplatePlanReviewed, "p@moh.gov.et", "", "Plan reviewed", nil)))

	jobs, err := repo.FindByPlanID(ctx, planID)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "2025/26", jobs[0].Value("fiscal_year"))

	pending, err := repo.GetPendingJobs(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, pending, 2)
}
