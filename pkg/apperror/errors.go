package apperror

import (
	"errors"
	"net/http"
)

// AppError represents an application error with HTTP status code. Reason
// is an optional machine-readable tag for errors that share a status code
// but need different client handling.
type AppError struct {
	Code    int          `json:"code"`
	Reason  string       `json:"reason,omitempty"`
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
	ErrNotFound       = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrUnauthorized   = &AppError{Code: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrForbidden      = &AppError{Code: http.StatusForbidden, Message: "Forbidden"}
	ErrBadRequest     = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
	ErrConflict       = &AppError{Code: http.StatusConflict, Message: "Resource already exists"}
	ErrUnprocessable  = &AppError{Code: http.StatusUnprocessableEntity, Message: "Unprocessable entity"}
	ErrTokenExpired   = &AppError{Code: http.StatusUnauthorized, Message: "Token has expired"}
	ErrInvalidToken   = &AppError{Code: http.StatusUnauthorized, Message: "Invalid token"}
)

// Sale composition errors. These are detected before any network call and
// block submission.
var (
	ErrSessionNotFound       = &AppError{Code: http.StatusNotFound, Message: "Sale session not found"}
	ErrLineNotFound          = &AppError{Code: http.StatusNotFound, Message: "Line item not found"}
	ErrEmptyCart             = &AppError{Code: http.StatusUnprocessableEntity, Message: "Add products before confirming the sale"}
	ErrClientRequired        = &AppError{Code: http.StatusUnprocessableEntity, Message: "A client must be selected for a store-credit sale"}
	ErrAmountMismatch        = &AppError{Code: http.StatusUnprocessableEntity, Message: "Paid amounts must match the total to pay"}
	ErrDigitalMethodRequired = &AppError{Code: http.StatusUnprocessableEntity, Message: "Select a digital payment method"}
	ErrSubmitInProgress      = &AppError{Code: http.StatusConflict, Reason: "submission_in_progress", Message: "A submission is already in progress for this session"}
	ErrSearchSuperseded      = &AppError{Code: http.StatusConflict, Reason: "search_superseded", Message: "Search superseded by a newer request"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a new validation error
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

// NewUpstreamError wraps an error message returned by the sales backend.
// The backend's message is surfaced verbatim when present so the cashier
// sees the real rejection reason (e.g. an over-sell).
func NewUpstreamError(status int, message string) *AppError {
	if message == "" {
		message = "The sales backend rejected the request"
	}
	if status < 400 || status > 599 {
		status = http.StatusBadGateway
	}
	return &AppError{
		Code:    status,
		Message: message,
	}
}

// IsAppError checks if an error is an AppError
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
