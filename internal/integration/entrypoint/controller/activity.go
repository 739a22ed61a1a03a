package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/strategic-planning/backend/internal/application/usecase/activity"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
	"github.com/strategic-planning/backend/internal/integration/entrypoint/dto"
)

// ActivityController handles main activity, budget and sub-activity endpoints.
type ActivityController struct {
	createUseCase     *activity.CreateMainActivityUseCase
	updateUseCase     *activity.UpdateMainActivityUseCase
	deleteUseCase     *activity.DeleteMainActivityUseCase
	saveBudgetUseCase *activity.SaveActivityBudgetUseCase
	createSubUseCase  *activity.CreateSubActivityUseCase
	updateSubUseCase  *activity.UpdateSubActivityUseCase
	deleteSubUseCase  *activity.DeleteSubActivityUseCase
}

// NewActivityController creates a new activity controller instance.
func NewActivityController(
	createUseCase *activity.CreateMainActivityUseCase,
	updateUseCase *activity.UpdateMainActivityUseCase,
	deleteUseCase *activity.DeleteMainActivityUseCase,
	saveBudgetUseCase *activity.SaveActivityBudgetUseCase,
	createSubUseCase *activity.CreateSubActivityUseCase,
	updateSubUseCase *activity.UpdateSubActivityUseCase,
	deleteSubUseCase *activity.DeleteSubActivityUseCase,
) *ActivityController {
	return &ActivityController{
		createUseCase:     createUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		saveBudgetUseCase: saveBudgetUseCase,
		createSubUseCase:  createSubUseCase,
		updateSubUseCase:  updateSubUseCase,
		deleteSubUseCase:  deleteSubUseCase,
	}
}

// Create handles POST /initiatives/:id/main-activities requests.
func (c *ActivityController) Create(ctx *gin.Context) {
	caller, ok := requireCaller(ctx)
	if !ok {
		return
	}

	initiativeID, ok := pathID(ctx, "id", "initiative")
	if !ok {
		return
	}

	var req dto.MainActivityRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingPlanningFields)) {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), activity.CreateMainActivityInput{
		InitiativeID:   initiativeID,
		OrganizationID: caller.OrganizationID,
		Role:           caller.Role,
		Item:           req.Item(),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MainActivityWithWeightsResponse{
		MainActivity: dto.ToMainActivityResponse(output.Activity),
		Weights:      dto.ToWeightCheckResponse(output.Weights),
	})
}

// Update handles PATCH /main-activities/:id requests.
func (c *ActivityController) Update(ctx *gin.Context) {
	caller, ok := requireCaller(ctx)
	if !ok {
		return
	}

	activityID, ok := pathID(ctx, "id", "main activity")
	if !ok {
		return
	}

	var req dto.MainActivityRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingPlanningFields)) {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), activity.UpdateMainActivityInput{
		ActivityID:     activityID,
		OrganizationID: caller.OrganizationID,
		Role:           caller.Role,
		Item:           req.Item(),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MainActivityWithWeightsResponse{
		MainActivity: dto.ToMainActivityResponse(output.Activity),
		Weights:      dto.ToWeightCheckResponse(output.Weights),
	})
}

// Delete handles DELETE /main-activities/:id requests.
// Sub-activities and the legacy budget go with the activity.
func (c *ActivityController) Delete(ctx *gin.Context) {
	caller, ok := requireCaller(ctx)
	if !ok {
		return
	}

	activityID, ok := pathID(ctx, "id", "main activity")
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), activity.DeleteMainActivityInput{
		ActivityID:     activityID,
		OrganizationID: caller.OrganizationID,
		Role:           caller.Role,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SaveBudget handles PUT /main-activities/:id/budget requests.
func (c *ActivityController) SaveBudget(ctx *gin.Context) {
	caller, ok := requireCaller(ctx)
	if !ok {
		return
	}

	activityID, ok := pathID(ctx, "id", "main activity")
	if !ok {
		return
	}

	var req dto.BudgetRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingPlanningFields)) {
		return
	}

	output, err := c.saveBudgetUseCase.Execute(ctx.Request.Context(), activity.SaveActivityBudgetInput{
		ActivityID:     activityID,
		OrganizationID: caller.OrganizationID,
		Role:           caller.Role,
		Budget:         req.Input(),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToActivityBudgetResponse(output))
}

// CreateSubActivity handles POST /main-activities/:id/sub-activities requests.
func (c *ActivityController) CreateSubActivity(ctx *gin.Context) {
	caller, ok := requireCaller(ctx)
	if !ok {
		return
	}

	activityID, ok := pathID(ctx, "id", "main activity")
	if !ok {
		return
	}

	var req dto.SubActivityRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingPlanningFields)) {
		return
	}

	output, err := c.createSubUseCase.Execute(ctx.Request.Context(), activity.CreateSubActivityInput{
		MainActivityID: activityID,
		OrganizationID: caller.OrganizationID,
		Role:           caller.Role,
		SubActivity:    req.Input(),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSubActivityResponse(output.SubActivity))
}

// UpdateSubActivity handles PUT /sub-activities/:id requests.
func (c *ActivityController) UpdateSubActivity(ctx *gin.Context) {
	caller, ok := requireCaller(ctx)
	if !ok {
		return
	}

	subActivityID, ok := pathID(ctx, "id", "sub-activity")
	if !ok {
		return
	}

	var req dto.SubActivityRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingPlanningFields)) {
		return
	}

	output, err := c.updateSubUseCase.Execute(ctx.Request.Context(), activity.UpdateSubActivityInput{
		SubActivityID:  subActivityID,
		OrganizationID: caller.OrganizationID,
		Role:           caller.Role,
		SubActivity:    req.Input(),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSubActivityResponse(output.SubActivity))
}

// DeleteSubActivity handles DELETE /sub-activities/:id requests.
func (c *ActivityController) DeleteSubActivity(ctx *gin.Context) {
	caller, ok := requireCaller(ctx)
	if !ok {
		return
	}

	subActivityID, ok := pathID(ctx, "id", "sub-activity")
	if !ok {
		return
	}

	err := c.deleteSubUseCase.Execute(ctx.Request.Context(), activity.DeleteSubActivityInput{
		SubActivityID:  subActivityID,
		OrganizationID: caller.OrganizationID,
		Role:           caller.Role,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
