package error

import "errors"

// Plan domain errors.
var (
	// ErrPlanNotFound is returned when a plan is not found or belongs to another organization.
	ErrPlanNotFound = errors.New("plan not found")

	// ErrOrganizationNotFound is returned when an organization is missing from the directory.
	ErrOrganizationNotFound = errors.New("organization not found")

	// ErrInvalidPlanDates is returned when the plan end date is not after its start date.
	ErrInvalidPlanDates = errors.New("end date must be after start date")

	// ErrInvalidPlanType is returned when the plan type is unknown.
	ErrInvalidPlanType = errors.New("invalid plan type")

	// ErrDuplicatePlanSubmission is returned when the organization already has a submitted or approved plan for the objective.
	ErrDuplicatePlanSubmission = errors.New("a plan for this organization and strategic objective has already been submitted or approved")

	// ErrInvalidPlanTransition is returned when the plan status does not allow the requested change.
	ErrInvalidPlanTransition = errors.New("invalid plan status transition")

	// ErrNotEvaluator is returned when a non-evaluator tries to review a plan.
	ErrNotEvaluator = errors.New("only users with EVALUATOR role can review plans")

	// ErrInvalidReviewStatus is returned when a review status is neither APPROVED nor REJECTED.
	ErrInvalidReviewStatus = errors.New("review status must be APPROVED or REJECTED")
)

// PlanErrorCode defines error codes for plan errors.
// Format: PLA-XXYYYY where XX is category and YYYY is specific error.
type PlanErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPlanDates    PlanErrorCode = "PLA-010001"
	ErrCodeInvalidPlanType     PlanErrorCode = "PLA-010002"
	ErrCodeMissingPlanFields   PlanErrorCode = "PLA-010003"
	ErrCodeInvalidReviewStatus PlanErrorCode = "PLA-010004"

	// Workflow errors (02XXXX)
	ErrCodePlanNotFound            PlanErrorCode = "PLA-020001"
	ErrCodeDuplicatePlanSubmission PlanErrorCode = "PLA-020002"
	ErrCodeInvalidPlanTransition   PlanErrorCode = "PLA-020003"
	ErrCodeNotEvaluator            PlanErrorCode = "PLA-020004"
)

// PlanError represents a plan error with code and message.
type PlanError struct {
	Code    PlanErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PlanError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PlanError) Unwrap() error {
	return e.Err
}

// NewPlanError creates a new PlanError with the given code and message.
func NewPlanError(code PlanErrorCode, message string, err error) *PlanError {
	return &PlanError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
