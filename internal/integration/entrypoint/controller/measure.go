package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/strategic-planning/backend/internal/application/usecase/measure"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
	"github.com/strategic-planning/backend/internal/integration/entrypoint/dto"
)

// MeasureController handles performance measure endpoints.
type MeasureController struct {
	createUseCase *measure.CreatePerformanceMeasureUseCase
	updateUseCase *measure.UpdatePerformanceMeasureUseCase
	listUseCase   *measure.ListPerformanceMeasuresUseCase
	deleteUseCase *measure.DeletePerformanceMeasureUseCase
}

// NewMeasureController creates a new performance measure controller instance.
func NewMeasureController(
	createUseCase *measure.CreatePerformanceMeasureUseCase,
	updateUseCase *measure.UpdatePerformanceMeasureUseCase,
	listUseCase *measure.ListPerformanceMeasuresUseCase,
	deleteUseCase *measure.DeletePerformanceMeasureUseCase,
) *MeasureController {
	return &MeasureController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /initiatives/:id/performance-measures requests.
func (c *MeasureController) Create(ctx *gin.Context) {
	caller, ok := requireCaller(ctx)
	if !ok {
		return
	}

	initiativeID, ok := pathID(ctx, "id", "initiative")
	if !ok {
		return
	}

	var req dto.PerformanceMeasureRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingPlanningFields)) {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), measure.CreatePerformanceMeasureInput{
		InitiativeID:   initiativeID,
		OrganizationID: caller.OrganizationID,
		Role:           caller.Role,
		Measure:        req.Input(),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPerformanceMeasureWithWeightsResponse(output))
}

// ListByInitiative handles GET /initiatives/:id/performance-measures requests.
func (c *MeasureController) ListByInitiative(ctx *gin.Context) {
	caller, ok := requireCaller(ctx)
	if !ok {
		return
	}

	initiativeID, ok := pathID(ctx, "id", "initiative")
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), measure.ListPerformanceMeasuresInput{
		InitiativeID:   initiativeID,
		OrganizationID: caller.OrganizationID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPerformanceMeasureListResponse(output))
}

// Update handles PATCH /performance-measures/:id requests.
func (c *MeasureController) Update(ctx *gin.Context) {
	caller, ok := requireCaller(ctx)
	if !ok {
		return
	}

	measureID, ok := pathID(ctx, "id", "performance measure")
	if !ok {
		return
	}

	var req dto.PerformanceMeasureRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingPlanningFields)) {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), measure.UpdatePerformanceMeasureInput{
		MeasureID:      measureID,
		OrganizationID: caller.OrganizationID,
		Role:           caller.Role,
		Measure:        req.Input(),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPerformanceMeasureWithWeightsResponse(output))
}

// Delete handles DELETE /performance-measures/:id requests.
func (c *MeasureController) Delete(ctx *gin.Context) {
	caller, ok := requireCaller(ctx)
	if !ok {
		return
	}

	measureID, ok := pathID(ctx, "id", "performance measure")
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), measure.DeletePerformanceMeasureInput{
		MeasureID:      measureID,
		OrganizationID: caller.OrganizationID,
		Role:           caller.Role,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
