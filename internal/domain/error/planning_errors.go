// Package error defines domain-specific errors for the strategic planning application.
package error

import "errors"

// ErrInvalidInput is returned when a calculation is called in violation of its input contract.
var ErrInvalidInput = errors.New("invalid input")

// Planning hierarchy domain errors.
var (
	// ErrObjectiveNotFound is returned when an objective is not found in the system.
	ErrObjectiveNotFound = errors.New("objective not found")

	// ErrInitiativeNotFound is returned when an initiative is not found or not visible.
	ErrInitiativeNotFound = errors.New("initiative not found")

	// ErrMainActivityNotFound is returned when a main activity is not found or not visible.
	ErrMainActivityNotFound = errors.New("main activity not found")

	// ErrSubActivityNotFound is returned when a sub-activity is not found.
	ErrSubActivityNotFound = errors.New("sub-activity not found")

	// ErrPerformanceMeasureNotFound is returned when a performance measure is not found or not visible.
	ErrPerformanceMeasureNotFound = errors.New("performance measure not found")

	// ErrInvalidWeight is returned when a weight is not in (0, 100].
	ErrInvalidWeight = errors.New("weight must be greater than 0 and at most 100")

	// ErrWeightShareExceeded is returned when adding or resizing an item would exceed its share of the parent weight.
	ErrWeightShareExceeded = errors.New("weight share of parent exceeded")

	// ErrInvalidTargets is returned when quarterly targets do not match the target type.
	ErrInvalidTargets = errors.New("invalid target distribution")

	// ErrNoPeriodSelected is returned when neither a month nor a quarter is selected.
	ErrNoPeriodSelected = errors.New("at least one month or quarter must be selected")

	// ErrPartnersMismatch is returned when the partners figure disagrees with the partner list.
	ErrPartnersMismatch = errors.New("partners funding must equal the sum of the partner list")

	// ErrInvalidCalculationMode is returned when the budget calculation type is unknown.
	ErrInvalidCalculationMode = errors.New("budget calculation type must be WITH_TOOL or WITHOUT_TOOL")

	// ErrInvalidActivityType is returned when the activity type is unknown.
	ErrInvalidActivityType = errors.New("invalid activity type")

	// ErrDefaultItemReadOnly is returned when a planner tries to change a default item.
	ErrDefaultItemReadOnly = errors.New("default items cannot be modified")

	// ErrForeignOrganization is returned when an item belongs to another organization.
	ErrForeignOrganization = errors.New("item belongs to another organization")
)

// PlanningErrorCode defines error codes for planning hierarchy errors.
// Format: PLN-XXYYYY where XX is category and YYYY is specific error.
type PlanningErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidWeight          PlanningErrorCode = "PLN-010001"
	ErrCodeWeightShareExceeded    PlanningErrorCode = "PLN-010002"
	ErrCodeInvalidTargets         PlanningErrorCode = "PLN-010003"
	ErrCodeNoPeriodSelected       PlanningErrorCode = "PLN-010004"
	ErrCodePartnersMismatch       PlanningErrorCode = "PLN-010005"
	ErrCodeInvalidCalculationMode PlanningErrorCode = "PLN-010006"
	ErrCodeInvalidActivityType    PlanningErrorCode = "PLN-010007"
	ErrCodeMissingPlanningFields  PlanningErrorCode = "PLN-010008"

	// Lookup and access errors (02XXXX)
	ErrCodeObjectiveNotFound          PlanningErrorCode = "PLN-020001"
	ErrCodeInitiativeNotFound         PlanningErrorCode = "PLN-020002"
	ErrCodeMainActivityNotFound       PlanningErrorCode = "PLN-020003"
	ErrCodeSubActivityNotFound        PlanningErrorCode = "PLN-020004"
	ErrCodePerformanceMeasureNotFound PlanningErrorCode = "PLN-020005"
	ErrCodeDefaultItemReadOnly        PlanningErrorCode = "PLN-020006"
	ErrCodeForeignOrganization        PlanningErrorCode = "PLN-020007"
)

// PlanningError represents a planning hierarchy error with code and message.
type PlanningError struct {
	Code    PlanningErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PlanningError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PlanningError) Unwrap() error {
	return e.Err
}

// NewPlanningError creates a new PlanningError with the given code and message.
func NewPlanningError(code PlanningErrorCode, message string, err error) *PlanningError {
	return &PlanningError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
