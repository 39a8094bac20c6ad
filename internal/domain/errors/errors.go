package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrEmptySlug          = errors.New("name produces an empty slug")
	ErrTimeout            = errors.New("request took too long")
)

// AppError represents an application error with an HTTP status
type AppError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrForbidden)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}

// ValidationError reports the first missing field of a submitted
// sub-entity, identifying the entity kind, its index in the submitted
// list and the offending field so the client can scroll to and
// highlight the input.
type ValidationError struct {
	Entity string `json:"entity"`
	Index  int    `json:"index"`
	Field  string `json:"field"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %d: %s is required", e.Entity, e.Index+1, e.Field)
}

// NewValidationError creates a validation error for one sub-entity field
func NewValidationError(entity string, index int, field string) *ValidationError {
	return &ValidationError{Entity: entity, Index: index, Field: field}
}
