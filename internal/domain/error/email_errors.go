package error

import "errors"

// Email domain errors.
var (
	// ErrTemplateRenderFailed is returned when a notification template fails to render.
	ErrTemplateRenderFailed = errors.New("failed to render email template")

	// ErrMissingRecipient is returned when a notification has no recipient address.
	ErrMissingRecipient = errors.New("notification has no recipient")

	// ErrPermanentEmailFailure is returned when an email fails with a permanent error.
	ErrPermanentEmailFailure = errors.New("permanent email failure")

	// ErrTemporaryEmailFailure is returned when an email fails with a temporary error.
	ErrTemporaryEmailFailure = errors.New("temporary email failure")
)

// EmailErrorCode defines error codes for email errors.
// Format: EMAIL-XXYYYY where XX is category and YYYY is specific error.
type EmailErrorCode string

const (
	// Queue errors (01XXXX)
	ErrCodeEmailQueueFailed EmailErrorCode = "EMAIL-010001"

	// Send errors (02XXXX)
	ErrCodeMissingRecipient      EmailErrorCode = "EMAIL-020001"
	ErrCodePermanentEmailFailure EmailErrorCode = "EMAIL-020002"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EMAIL-020003"

	// Template errors (03XXXX)
	ErrCodeTemplateRenderFailed EmailErrorCode = "EMAIL-030002"
)

// EmailError represents an email error with code and message.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
