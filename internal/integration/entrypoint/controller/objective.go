package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/strategic-planning/backend/internal/application/usecase/objective"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
	"github.com/strategic-planning/backend/internal/integration/entrypoint/dto"
)

// ObjectiveController handles strategic objective endpoints.
type ObjectiveController struct {
	listUseCase      *objective.ListObjectivesUseCase
	setWeightUseCase *objective.SetPlannerWeightUseCase
}

// NewObjectiveController creates a new objective controller instance.
func NewObjectiveController(
	listUseCase *objective.ListObjectivesUseCase,
	setWeightUseCase *objective.SetPlannerWeightUseCase,
) *ObjectiveController {
	return &ObjectiveController{
		listUseCase:      listUseCase,
		setWeightUseCase: setWeightUseCase,
	}
}

// List handles GET /objectives requests.
func (c *ObjectiveController) List(ctx *gin.Context) {
	if _, ok := requireCaller(ctx); !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), objective.ListObjectivesInput{})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToObjectiveListResponse(output.Objectives))
}

// SetPlannerWeight handles PATCH /objectives/:id/planner-weight requests.
func (c *ObjectiveController) SetPlannerWeight(ctx *gin.Context) {
	caller, ok := requireCaller(ctx)
	if !ok {
		return
	}

	objectiveID, ok := pathID(ctx, "id", "objective")
	if !ok {
		return
	}

	var req dto.SetPlannerWeightRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeInvalidWeight)) {
		return
	}

	output, err := c.setWeightUseCase.Execute(ctx.Request.Context(), objective.SetPlannerWeightInput{
		ObjectiveID: objectiveID,
		Role:        caller.Role,
		Weight:      req.Weight(),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToObjectiveResponse(output.Objective))
}
