// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/strategic-planning/backend/internal/domain/error"
	"github.com/strategic-planning/backend/internal/integration/entrypoint/dto"
	"github.com/strategic-planning/backend/internal/integration/entrypoint/middleware"
)

// handleError writes the coded error carried by err, or a generic 500.
func handleError(ctx *gin.Context, err error) {
	var planningErr *domainerror.PlanningError
	if errors.As(err, &planningErr) {
		ctx.JSON(statusForPlanningError(planningErr.Code), dto.ErrorResponse{
			Error: planningErr.Message,
			Code:  string(planningErr.Code),
		})
		return
	}

	var planErr *domainerror.PlanError
	if errors.As(err, &planErr) {
		ctx.JSON(statusForPlanError(planErr.Code), dto.ErrorResponse{
			Error: planErr.Message,
			Code:  string(planErr.Code),
		})
		return
	}

	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(statusForAuthError(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrInvalidInput) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	slog.Error("Request failed",
		"method", ctx.Request.Method,
		"path", ctx.FullPath(),
		"error", err,
	)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusForPlanningError maps planning error codes to HTTP status codes.
func statusForPlanningError(code domainerror.PlanningErrorCode) int {
	switch code {
	case domainerror.ErrCodeObjectiveNotFound,
		domainerror.ErrCodeInitiativeNotFound,
		domainerror.ErrCodeMainActivityNotFound,
		domainerror.ErrCodeSubActivityNotFound,
		domainerror.ErrCodePerformanceMeasureNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeDefaultItemReadOnly, domainerror.ErrCodeForeignOrganization:
		return http.StatusForbidden
	case domainerror.ErrCodeWeightShareExceeded:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeInvalidWeight,
		domainerror.ErrCodeInvalidTargets,
		domainerror.ErrCodeNoPeriodSelected,
		domainerror.ErrCodePartnersMismatch,
		domainerror.ErrCodeInvalidCalculationMode,
		domainerror.ErrCodeInvalidActivityType,
		domainerror.ErrCodeMissingPlanningFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// statusForPlanError maps plan error codes to HTTP status codes.
func statusForPlanError(code domainerror.PlanErrorCode) int {
	switch code {
	case domainerror.ErrCodePlanNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeDuplicatePlanSubmission, domainerror.ErrCodeInvalidPlanTransition:
		return http.StatusConflict
	case domainerror.ErrCodeNotEvaluator:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidPlanDates,
		domainerror.ErrCodeInvalidPlanType,
		domainerror.ErrCodeMissingPlanFields,
		domainerror.ErrCodeInvalidReviewStatus:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// statusForAuthError maps auth error codes to HTTP status codes.
func statusForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeForbiddenRole:
		return http.StatusForbidden
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusUnauthorized
	}
}

// requireCaller returns the authenticated caller or writes a 401.
func requireCaller(ctx *gin.Context) (middleware.Caller, bool) {
	caller, ok := middleware.GetCallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return middleware.Caller{}, false
	}
	return caller, true
}

// pathID parses a uuid path parameter or writes a 400.
func pathID(ctx *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + label + " ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON decodes the request body or writes a 400 with the given code.
func bindJSON(ctx *gin.Context, req any, code string) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  code,
		})
		return false
	}
	return true
}
