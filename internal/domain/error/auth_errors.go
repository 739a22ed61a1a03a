package error

import "errors"

// Authentication domain errors.
var (
	// ErrInvalidToken is returned when a token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token has expired.
	ErrExpiredToken = errors.New("token has expired")

	// ErrMissingOrganization is returned when a token carries no organization.
	ErrMissingOrganization = errors.New("token has no organization")

	// ErrForbiddenRole is returned when the caller's role does not allow the operation.
	ErrForbiddenRole = errors.New("role not allowed")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Token errors (03XXXX)
	ErrCodeInvalidToken        AuthErrorCode = "AUTH-030001"
	ErrCodeExpiredToken        AuthErrorCode = "AUTH-030002"
	ErrCodeMissingToken        AuthErrorCode = "AUTH-030003"
	ErrCodeMissingOrganization AuthErrorCode = "AUTH-030004"

	// Authorization errors (06XXXX)
	ErrCodeForbiddenRole AuthErrorCode = "AUTH-060001"

	// Rate limit errors (07XXXX)
	ErrCodeRateLimited AuthErrorCode = "AUTH-070001"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
