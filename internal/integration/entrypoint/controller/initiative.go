package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/strategic-planning/backend/internal/application/usecase/initiative"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
	"github.com/strategic-planning/backend/internal/integration/entrypoint/dto"
)

// InitiativeController handles strategic initiative endpoints.
type InitiativeController struct {
	createUseCase  *initiative.CreateInitiativeUseCase
	listUseCase    *initiative.ListInitiativesUseCase
	deleteUseCase  *initiative.DeleteInitiativeUseCase
	weightsUseCase *initiative.GetInitiativeWeightsUseCase
}

// NewInitiativeController creates a new initiative controller instance.
func NewInitiativeController(
	createUseCase *initiative.CreateInitiativeUseCase,
	listUseCase *initiative.ListInitiativesUseCase,
	deleteUseCase *initiative.DeleteInitiativeUseCase,
	weightsUseCase *initiative.GetInitiativeWeightsUseCase,
) *InitiativeController {
	return &InitiativeController{
		createUseCase:  createUseCase,
		listUseCase:    listUseCase,
		deleteUseCase:  deleteUseCase,
		weightsUseCase: weightsUseCase,
	}
}

// Create handles POST /initiatives requests.
func (c *InitiativeController) Create(ctx *gin.Context) {
	caller, ok := requireCaller(ctx)
	if !ok {
		return
	}

	var req dto.CreateInitiativeRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingPlanningFields)) {
		return
	}

	objectiveID, err := uuid.Parse(req.ObjectiveID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid objective ID format",
			Code:  string(domainerror.ErrCodeMissingPlanningFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), initiative.CreateInitiativeInput{
		ObjectiveID:    objectiveID,
		OrganizationID: caller.OrganizationID,
		Role:           caller.Role,
		Name:           req.Name,
		Weight:         req.Weight.Decimal(),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateInitiativeResponse{
		Initiative: dto.ToInitiativeResponse(output.Initiative),
		Weights:    dto.ToWeightCheckResponse(output.Weights),
	})
}

// ListByObjective handles GET /objectives/:id/initiatives requests.
func (c *InitiativeController) ListByObjective(ctx *gin.Context) {
	caller, ok := requireCaller(ctx)
	if !ok {
		return
	}

	objectiveID, ok := pathID(ctx, "id", "objective")
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), initiative.ListInitiativesInput{
		ObjectiveID:    objectiveID,
		OrganizationID: caller.OrganizationID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInitiativeListResponse(output))
}

// Delete handles DELETE /initiatives/:id requests.
func (c *InitiativeController) Delete(ctx *gin.Context) {
	caller, ok := requireCaller(ctx)
	if !ok {
		return
	}

	initiativeID, ok := pathID(ctx, "id", "initiative")
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), initiative.DeleteInitiativeInput{
		InitiativeID:   initiativeID,
		OrganizationID: caller.OrganizationID,
		Role:           caller.Role,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Weights handles GET /initiatives/:id/weights requests.
func (c *InitiativeController) Weights(ctx *gin.Context) {
	caller, ok := requireCaller(ctx)
	if !ok {
		return
	}

	initiativeID, ok := pathID(ctx, "id", "initiative")
	if !ok {
		return
	}

	output, err := c.weightsUseCase.Execute(ctx.Request.Context(), initiative.GetInitiativeWeightsInput{
		InitiativeID:   initiativeID,
		OrganizationID: caller.OrganizationID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInitiativeWeightsResponse(output))
}
