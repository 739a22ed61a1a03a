// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/strategic-planning/backend/config"
	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/application/usecase/activity"
	"github.com/strategic-planning/backend/internal/application/usecase/initiative"
	"github.com/strategic-planning/backend/internal/application/usecase/measure"
	"github.com/strategic-planning/backend/internal/application/usecase/objective"
	"github.com/strategic-planning/backend/internal/application/usecase/plan"
	"github.com/strategic-planning/backend/internal/infra/db"
	"github.com/strategic-planning/backend/internal/infra/metrics"
	"github.com/strategic-planning/backend/internal/infra/server/router"
	"github.com/strategic-planning/backend/internal/integration/adapters"
	"github.com/strategic-planning/backend/internal/integration/email"
	"github.com/strategic-planning/backend/internal/integration/email/templates"
	"github.com/strategic-planning/backend/internal/integration/entrypoint/controller"
	"github.com/strategic-planning/backend/internal/integration/entrypoint/middleware"
	"github.com/strategic-planning/backend/internal/integration/export"
	"github.com/strategic-planning/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config            *config.Config
	Database          *db.Database
	Router            *router.Router
	Metrics           *metrics.Metrics
	EmailWorker       *email.Worker // Nil when email or the worker is disabled
	ExportRateLimiter *middleware.RateLimiter
}

// Options carries optional collaborators. Nil fields disable the feature they back.
type Options struct {
	Redis       *redis.Client
	EmailSender adapter.EmailSender // Overrides the sender chosen from config
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(ctx context.Context, cfg *config.Config, database *db.Database, opts Options) (*Injector, error) {
	gormDB := database.DB()
	rules := cfg.Planning.Rules()
	planningMetrics := metrics.New()

	// Repositories
	objectiveRepo := persistence.NewObjectiveRepository(gormDB)
	initiativeRepo := persistence.NewInitiativeRepository(gormDB)
	activityRepo := persistence.NewMainActivityRepository(gormDB)
	subActivityRepo := persistence.NewSubActivityRepository(gormDB)
	measureRepo := persistence.NewPerformanceMeasureRepository(gormDB)
	treeRepo := persistence.NewPlanningTreeRepository(gormDB)
	orgRepo := persistence.NewOrganizationRepository(gormDB)
	planRepo := persistence.NewPlanRepository(gormDB)

	// Adapters
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)
	encoder := export.NewCSVWriter()

	var cache adapter.SummaryCache
	if opts.Redis != nil {
		cache = adapters.NewRedisSummaryCache(opts.Redis, cfg.Redis.SummaryTTL)
	}

	var archive adapter.ReportArchive
	if cfg.Storage.Enabled {
		s3Archive, err := adapters.NewS3ReportArchive(ctx, adapters.S3ArchiveConfig{
			Endpoint:  cfg.Storage.Endpoint,
			Region:    cfg.Storage.Region,
			Bucket:    cfg.Storage.Bucket,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			UseSSL:    cfg.Storage.UseSSL,
			PathStyle: cfg.Storage.PathStyle,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create report archive: %w", err)
		}
		archive = s3Archive
	}

	var notifier adapter.PlanNotifier
	var worker *email.Worker
	if cfg.Email.Enabled {
		queueRepo := persistence.NewEmailQueueRepository(gormDB)
		notifier = email.NewService(queueRepo, cfg.Email.ReviewInbox, cfg.Email.AppBaseURL)

		if cfg.Email.WorkerEnabled {
			renderer, err := templates.NewRenderer()
			if err != nil {
				return nil, fmt.Errorf("failed to load email templates: %w", err)
			}
			worker = email.NewWorker(queueRepo, emailSender(cfg.Email, opts.EmailSender), renderer, email.WorkerConfig{
				PollInterval: cfg.Email.PollInterval,
				BatchSize:    cfg.Email.BatchSize,
			})
		}
	}

	// Objective use cases
	listObjectivesUseCase := objective.NewListObjectivesUseCase(objectiveRepo)
	setPlannerWeightUseCase := objective.NewSetPlannerWeightUseCase(objectiveRepo, cache)

	// Initiative use cases
	createInitiativeUseCase := initiative.NewCreateInitiativeUseCase(objectiveRepo, initiativeRepo, cache, rules)
	listInitiativesUseCase := initiative.NewListInitiativesUseCase(objectiveRepo, initiativeRepo, rules)
	deleteInitiativeUseCase := initiative.NewDeleteInitiativeUseCase(initiativeRepo, cache)
	initiativeWeightsUseCase := initiative.NewGetInitiativeWeightsUseCase(initiativeRepo, activityRepo, measureRepo, rules)

	// Activity use cases
	createActivityUseCase := activity.NewCreateMainActivityUseCase(initiativeRepo, activityRepo, cache, rules)
	updateActivityUseCase := activity.NewUpdateMainActivityUseCase(initiativeRepo, activityRepo, cache, rules)
	deleteActivityUseCase := activity.NewDeleteMainActivityUseCase(activityRepo, cache)
	saveBudgetUseCase := activity.NewSaveActivityBudgetUseCase(activityRepo, cache)
	createSubActivityUseCase := activity.NewCreateSubActivityUseCase(activityRepo, subActivityRepo, cache)
	updateSubActivityUseCase := activity.NewUpdateSubActivityUseCase(activityRepo, subActivityRepo, cache)
	deleteSubActivityUseCase := activity.NewDeleteSubActivityUseCase(activityRepo, subActivityRepo, cache)

	// Performance measure use cases
	createMeasureUseCase := measure.NewCreatePerformanceMeasureUseCase(initiativeRepo, measureRepo, cache, rules)
	updateMeasureUseCase := measure.NewUpdatePerformanceMeasureUseCase(initiativeRepo, measureRepo, cache, rules)
	listMeasuresUseCase := measure.NewListPerformanceMeasuresUseCase(initiativeRepo, measureRepo, rules)
	deleteMeasureUseCase := measure.NewDeletePerformanceMeasureUseCase(measureRepo, cache)

	// Plan use cases
	reader := plan.NewPlanReader(treeRepo, orgRepo, cache, planningMetrics, rules)
	createPlanUseCase := plan.NewCreatePlanUseCase(planRepo, objectiveRepo, orgRepo)
	getPlanUseCase := plan.NewGetPlanUseCase(planRepo)
	submitPlanUseCase := plan.NewSubmitPlanUseCase(planRepo, reader, encoder, archive, notifier)
	reviewPlanUseCase := plan.NewReviewPlanUseCase(planRepo, notifier)
	summaryUseCase := plan.NewGetPlanSummaryUseCase(planRepo, reader)
	reportUseCase := plan.NewGetPlanReportUseCase(planRepo, reader)
	exportUseCase := plan.NewExportPlanReportUseCase(reportUseCase, encoder)

	// Controllers
	var cacheHealthChecker controller.HealthChecker
	if opts.Redis != nil {
		cacheHealthChecker = func(ctx context.Context) bool {
			return opts.Redis.Ping(ctx).Err() == nil
		}
	}
	healthController := controller.NewHealthController(database.HealthCheck, cacheHealthChecker)

	objectiveController := controller.NewObjectiveController(
		listObjectivesUseCase,
		setPlannerWeightUseCase,
	)

	initiativeController := controller.NewInitiativeController(
		createInitiativeUseCase,
		listInitiativesUseCase,
		deleteInitiativeUseCase,
		initiativeWeightsUseCase,
	)

	activityController := controller.NewActivityController(
		createActivityUseCase,
		updateActivityUseCase,
		deleteActivityUseCase,
		saveBudgetUseCase,
		createSubActivityUseCase,
		updateSubActivityUseCase,
		deleteSubActivityUseCase,
	)

	measureController := controller.NewMeasureController(
		createMeasureUseCase,
		updateMeasureUseCase,
		listMeasuresUseCase,
		deleteMeasureUseCase,
	)

	planController := controller.NewPlanController(
		createPlanUseCase,
		getPlanUseCase,
		submitPlanUseCase,
		reviewPlanUseCase,
		summaryUseCase,
		reportUseCase,
		exportUseCase,
	)

	// Middleware
	exportRateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimit.ExportRequests, cfg.RateLimit.ExportWindow)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		objectiveController,
		initiativeController,
		activityController,
		measureController,
		planController,
		exportRateLimiter,
		authMiddleware,
		planningMetrics,
	)

	slog.Info("Planning services initialized",
		"summary_cache", cache != nil,
		"report_archive", archive != nil,
		"email_notifications", notifier != nil,
	)

	return &Injector{
		Config:            cfg,
		Database:          database,
		Router:            r,
		Metrics:           planningMetrics,
		EmailWorker:       worker,
		ExportRateLimiter: exportRateLimiter,
	}, nil
}

// emailSender picks the override, Resend when an API key is set, or the mock sender.
func emailSender(cfg config.EmailConfig, override adapter.EmailSender) adapter.EmailSender {
	if override != nil {
		return override
	}
	if cfg.ResendAPIKey == "" {
		slog.Warn("RESEND_API_KEY not set, emails are recorded but not delivered")
		return email.NewMockEmailSender()
	}
	return email.NewResendClient(cfg.ResendAPIKey, cfg.FromName, cfg.FromEmail)
}
