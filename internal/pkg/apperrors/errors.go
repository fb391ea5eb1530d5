package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Event errors
var (
	ErrEventNotFound      = errors.New("event not found")
	ErrInvalidEventStatus = errors.New("invalid event status")
)

// Registration admission errors. Each corresponds to one rejected
// admission check; the CustomError message carries the reason text
// returned to the client.
var (
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrRegistrationClosed   = errors.New("registration closed")
	ErrAlreadyRegistered    = errors.New("already registered")
	ErrDateOverlap          = errors.New("date overlap")
	ErrEventFull            = errors.New("event full")
)

// Summary errors
var (
	ErrSummaryNotFound     = errors.New("summary not found")
	ErrSummaryExists       = errors.New("summary already submitted")
	ErrSummaryNotPermitted = errors.New("registration not approved for this event")
	ErrEventNotApproved    = errors.New("event is not approved")
)

// Student errors
var (
	ErrStudentNotFound = errors.New("student not found")
)

// NewNotFoundError creates a new custom error for a missing resource with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
