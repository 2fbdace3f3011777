package errors

import (
	"errors"
	"fmt"
)

// ApplicationError represents a domain-specific error
type ApplicationError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	Status  int         `json:"-"`
}

func (e *ApplicationError) Error() string {
	return e.Message
}

// WithDetails returns a copy of the error carrying extra details
func (e *ApplicationError) WithDetails(details interface{}) *ApplicationError {
	cp := *e
	cp.Details = details
	return &cp
}

// As extracts an ApplicationError from a wrapped error chain
func As(err error) (*ApplicationError, bool) {
	var appErr *ApplicationError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Error constructors
func NewValidationError(message string) *ApplicationError {
	return &ApplicationError{
		Code:    "VALIDATION_ERROR",
		Message: message,
		Status:  400,
	}
}

func NewBadRequestError(message string) *ApplicationError {
	return &ApplicationError{
		Code:    "BAD_REQUEST",
		Message: message,
		Status:  400,
	}
}

func NewUnauthorizedError(message string) *ApplicationError {
	return &ApplicationError{
		Code:    "UNAUTHORIZED",
		Message: message,
		Status:  401,
	}
}

func NewForbiddenError(message string) *ApplicationError {
	return &ApplicationError{
		Code:    "FORBIDDEN",
		Message: message,
		Status:  403,
	}
}

func NewNotFoundError(resource string) *ApplicationError {
	return &ApplicationError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
		Status:  404,
	}
}

func NewRequestTimeoutError(message string) *ApplicationError {
	return &ApplicationError{
		Code:    "REQUEST_TIMEOUT",
		Message: message,
		Status:  408,
	}
}

func NewInternalError(message string) *ApplicationError {
	return &ApplicationError{
		Code:    "INTERNAL_ERROR",
		Message: message,
		Status:  500,
	}
}
