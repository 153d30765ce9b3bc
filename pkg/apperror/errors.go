package apperror

import (
	"errors"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound           = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrUnauthorized       = &AppError{Code: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrForbidden          = &AppError{Code: http.StatusForbidden, Message: "Forbidden"}
	ErrBadRequest         = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer     = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
	ErrInvalidCredentials = &AppError{Code: http.StatusUnauthorized, Message: "Invalid email or password"}
	ErrAccountInactive    = &AppError{Code: http.StatusForbidden, Message: "Your account is inactive. Please contact administrator."}
	ErrTenantRequired     = &AppError{Code: http.StatusBadRequest, Message: "Tenant could not be resolved for this request"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a new validation error carrying all field-level
// violations together
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: resource + " not found",
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// IsAppError reports whether err carries an AppError in its chain.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}

// Violations collects field-level validation errors so a request reports all
// of them at once instead of failing on the first.
type Violations struct {
	errs []FieldError
}

// Add records a violation for field.
func (v *Violations) Add(field, message string) {
	v.errs = append(v.errs, FieldError{Field: field, Message: message})
}

// AddIf records a violation only when cond holds.
func (v *Violations) AddIf(cond bool, field, message string) {
	if cond {
		v.Add(field, message)
	}
}

// Empty reports whether no violations were recorded.
func (v *Violations) Empty() bool {
	return len(v.errs) == 0
}

// Err returns the aggregated 422 error, or nil when no violations were
// recorded.
func (v *Violations) Err() error {
	if v.Empty() {
		return nil
	}
	return NewValidationError(v.errs)
}
