package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/strategic-planning/backend/internal/application/usecase/plan"
	"github.com/strategic-planning/backend/internal/domain/entity"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
	"github.com/strategic-planning/backend/internal/integration/entrypoint/dto"
)

// PlanController handles plan, review, summary and report endpoints.
type PlanController struct {
	createUseCase  *plan.CreatePlanUseCase
	getUseCase     *plan.GetPlanUseCase
	submitUseCase  *plan.SubmitPlanUseCase
	reviewUseCase  *plan.ReviewPlanUseCase
	summaryUseCase *plan.GetPlanSummaryUseCase
	reportUseCase  *plan.GetPlanReportUseCase
	exportUseCase  *plan.ExportPlanReportUseCase
}

// NewPlanController creates a new plan controller instance.
func NewPlanController(
	createUseCase *plan.CreatePlanUseCase,
	getUseCase *plan.GetPlanUseCase,
	submitUseCase *plan.SubmitPlanUseCase,
	reviewUseCase *plan.ReviewPlanUseCase,
	summaryUseCase *plan.GetPlanSummaryUseCase,
	reportUseCase *plan.GetPlanReportUseCase,
	exportUseCase *plan.ExportPlanReportUseCase,
) *PlanController {
	return &PlanController{
		createUseCase:  createUseCase,
		getUseCase:     getUseCase,
		submitUseCase:  submitUseCase,
		reviewUseCase:  reviewUseCase,
		summaryUseCase: summaryUseCase,
		reportUseCase:  reportUseCase,
		exportUseCase:  exportUseCase,
	}
}

// Create handles POST /plans requests.
func (c *PlanController) Create(ctx *gin.Context) {
	caller, ok := requireCaller(ctx)
	if !ok {
		return
	}

	var req dto.CreatePlanRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingPlanFields)) {
		return
	}

	primary, selected, err := req.ObjectiveIDs()
	if err != nil {
		c.badPlanRequest(ctx, err.Error(), domainerror.ErrCodeMissingPlanFields)
		return
	}
	weights, err := req.Weights()
	if err != nil {
		c.badPlanRequest(ctx, err.Error(), domainerror.ErrCodeMissingPlanFields)
		return
	}
	from, to, err := req.Dates()
	if err != nil {
		c.badPlanRequest(ctx, err.Error(), domainerror.ErrCodeInvalidPlanDates)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), plan.CreatePlanInput{
		OrganizationID:       caller.OrganizationID,
		Role:                 caller.Role,
		PlannerID:            caller.UserID,
		PlannerName:          caller.Name,
		PlannerEmail:         caller.Email,
		ExecutiveName:        req.ExecutiveName,
		Type:                 entity.PlanType(req.PlanType),
		StrategicObjectiveID: primary,
		SelectedObjectiveIDs: selected,
		ObjectiveWeights:     weights,
		FiscalYear:           req.FiscalYear,
		FromDate:             from,
		ToDate:               to,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPlanResponse(output.Plan))
}

// Get handles GET /plans/:id requests.
func (c *PlanController) Get(ctx *gin.Context) {
	caller, ok := requireCaller(ctx)
	if !ok {
		return
	}

	planID, ok := pathID(ctx, "id", "plan")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), plan.GetPlanInput{
		PlanID:         planID,
		OrganizationID: caller.OrganizationID,
		Role:           caller.Role,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPlanDetailResponse(output.Plan, output.Reviews))
}

// Submit handles POST /plans/:id/submit requests.
func (c *PlanController) Submit(ctx *gin.Context) {
	caller, ok := requireCaller(ctx)
	if !ok {
		return
	}

	planID, ok := pathID(ctx, "id", "plan")
	if !ok {
		return
	}

	output, err := c.submitUseCase.Execute(ctx.Request.Context(), plan.SubmitPlanInput{
		PlanID:         planID,
		OrganizationID: caller.OrganizationID,
		Role:           caller.Role,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SubmitPlanResponse{
		Plan:      dto.ToPlanResponse(output.Plan),
		ReportURL: output.ReportURL,
	})
}

// Review handles POST /plans/:id/reviews requests.
func (c *PlanController) Review(ctx *gin.Context) {
	caller, ok := requireCaller(ctx)
	if !ok {
		return
	}

	planID, ok := pathID(ctx, "id", "plan")
	if !ok {
		return
	}

	var req dto.ReviewPlanRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeInvalidReviewStatus)) {
		return
	}

	output, err := c.reviewUseCase.Execute(ctx.Request.Context(), plan.ReviewPlanInput{
		PlanID:        planID,
		EvaluatorID:   caller.UserID,
		EvaluatorName: caller.Name,
		Role:          caller.Role,
		Status:        entity.PlanStatus(req.Status),
		Feedback:      req.Feedback,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ReviewPlanResponse{
		Plan:   dto.ToPlanResponse(output.Plan),
		Review: dto.ToPlanReviewResponse(output.Review),
	})
}

// Summary handles GET /plans/:id/summary requests.
func (c *PlanController) Summary(ctx *gin.Context) {
	caller, ok := requireCaller(ctx)
	if !ok {
		return
	}

	planID, ok := pathID(ctx, "id", "plan")
	if !ok {
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), plan.GetPlanSummaryInput{
		PlanID:         planID,
		OrganizationID: caller.OrganizationID,
		Role:           caller.Role,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPlanSummaryResponse(output.Plan.ID.String(), output.Tree, output.Cached))
}

// Report handles GET /plans/:id/report requests.
func (c *PlanController) Report(ctx *gin.Context) {
	caller, ok := requireCaller(ctx)
	if !ok {
		return
	}

	planID, ok := pathID(ctx, "id", "plan")
	if !ok {
		return
	}

	output, err := c.reportUseCase.Execute(ctx.Request.Context(), plan.GetPlanReportInput{
		PlanID:         planID,
		OrganizationID: caller.OrganizationID,
		Role:           caller.Role,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPlanReportResponse(output.Plan.ID.String(), output.Report))
}

// ExportCSV handles GET /plans/:id/report.csv requests.
func (c *PlanController) ExportCSV(ctx *gin.Context) {
	caller, ok := requireCaller(ctx)
	if !ok {
		return
	}

	planID, ok := pathID(ctx, "id", "plan")
	if !ok {
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), plan.GetPlanReportInput{
		PlanID:         planID,
		OrganizationID: caller.OrganizationID,
		Role:           caller.Role,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+output.Filename+`"`)
	ctx.Data(http.StatusOK, output.ContentType, output.Body)
}

func (c *PlanController) badPlanRequest(ctx *gin.Context, message string, code domainerror.PlanErrorCode) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
		Code:  string(code),
	})
}
