// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/strategic-planning/backend/internal/domain/entity"
	"github.com/strategic-planning/backend/internal/infra/metrics"
	"github.com/strategic-planning/backend/internal/integration/entrypoint/controller"
	"github.com/strategic-planning/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	objectiveController  *controller.ObjectiveController
	initiativeController *controller.InitiativeController
	activityController   *controller.ActivityController
	measureController    *controller.MeasureController
	planController       *controller.PlanController
	exportRateLimiter    *middleware.RateLimiter
	authMiddleware       *middleware.AuthMiddleware
	metrics              *metrics.Metrics
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	objectiveController *controller.ObjectiveController,
	initiativeController *controller.InitiativeController,
	activityController *controller.ActivityController,
	measureController *controller.MeasureController,
	planController *controller.PlanController,
	exportRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	metrics *metrics.Metrics,
) *Router {
	return &Router{
		healthController:     healthController,
		objectiveController:  objectiveController,
		initiativeController: initiativeController,
		activityController:   activityController,
		measureController:    measureController,
		planController:       planController,
		exportRateLimiter:    exportRateLimiter,
		authMiddleware:       authMiddleware,
		metrics:              metrics,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Logger and recovery
	r.engine = gin.Default()
	if r.metrics != nil {
		r.engine.Use(r.metrics.Middleware())
	}

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check and metrics endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
	if r.metrics != nil {
		r.engine.GET("/metrics", gin.WrapH(r.metrics.Handler()))
	}
}

// setupAPIRoutes configures the main API routes. Every route requires a bearer token.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.Use(r.authMiddleware.Authenticate())
	{
		objectives := v1.Group("/objectives")
		{
			objectives.GET("", r.objectiveController.List)
			objectives.PATCH("/:id/planner-weight", r.objectiveController.SetPlannerWeight)
			objectives.GET("/:id/initiatives", r.initiativeController.ListByObjective)
		}

		initiatives := v1.Group("/initiatives")
		{
			initiatives.POST("", r.initiativeController.Create)
			initiatives.DELETE("/:id", r.initiativeController.Delete)
			initiatives.GET("/:id/weights", r.initiativeController.Weights)
			initiatives.POST("/:id/main-activities", r.activityController.Create)
			initiatives.GET("/:id/performance-measures", r.measureController.ListByInitiative)
			initiatives.POST("/:id/performance-measures", r.measureController.Create)
		}

		activities := v1.Group("/main-activities")
		{
			activities.PATCH("/:id", r.activityController.Update)
			activities.DELETE("/:id", r.activityController.Delete)
			activities.PUT("/:id/budget", r.activityController.SaveBudget)
			activities.POST("/:id/sub-activities", r.activityController.CreateSubActivity)
		}

		subActivities := v1.Group("/sub-activities")
		{
			subActivities.PUT("/:id", r.activityController.UpdateSubActivity)
			subActivities.DELETE("/:id", r.activityController.DeleteSubActivity)
		}

		measures := v1.Group("/performance-measures")
		{
			measures.PATCH("/:id", r.measureController.Update)
			measures.DELETE("/:id", r.measureController.Delete)
		}

		plans := v1.Group("/plans")
		{
			plans.POST("", r.planController.Create)
			plans.GET("/:id", r.planController.Get)
			plans.POST("/:id/submit", r.planController.Submit)
			plans.POST("/:id/reviews", middleware.RequireRole(entity.UserRoleEvaluator), r.planController.Review)
			plans.GET("/:id/summary", r.planController.Summary)
			plans.GET("/:id/report", r.planController.Report)
			plans.GET("/:id/report.csv", r.exportRateLimiter.Middleware(), r.planController.ExportCSV)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
