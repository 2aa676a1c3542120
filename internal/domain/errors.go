package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrEmptyInput    = errors.New("empty input")
)

// Refined errors. Each wraps one of the sentinels above so callers can match
// either the precise reason or the broad category.
var (
	ErrInvalidToken      = fmt.Errorf("invalid token: %w", ErrUnauthorized)
	ErrTokenExpired      = fmt.Errorf("token expired: %w", ErrUnauthorized)
	ErrNotOwner          = fmt.Errorf("only the creator can delete this entry: %w", ErrForbidden)
	ErrDuplicateUsername = fmt.Errorf("expected `username` to be unique: %w", ErrAlreadyExists)
)

// Field error codes.
const (
	CodeMissingField = "missing_field"
	CodeInvalidValue = "invalid_value"
	CodeTooShort     = "too_short"
	CodeTooLong      = "too_long"
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Code    string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// HasCode reports whether any field error carries the given code.
func (e *ValidationError) HasCode(code string) bool {
	for _, fe := range e.Errors {
		if fe.Code == code {
			return true
		}
	}
	return false
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, code, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Code: code, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
