// Package shared contains common domain errors used across all domain packages.
// This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// Validation errors
	ErrValidation      = errors.New("validation error")
	ErrValueOutOfRange = errors.New("value out of range")
	ErrMalformedInput  = errors.New("malformed numeric input")
	ErrEmptyValue      = errors.New("value cannot be empty")

	// Persistence errors
	ErrNoData          = errors.New("no saved data found")
	ErrCorruptData     = errors.New("corrupt data in file")
	ErrFileUnavailable = errors.New("file unavailable")
	ErrWriteFailed     = errors.New("write failed")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "transcript", "storage"
	Op      string // Operation that failed, e.g., "Save", "Load"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Transcript domain errors
var (
	ErrInvalidGrade   = NewDomainError("transcript", "Validate", ErrValueOutOfRange, "grade out of range")
	ErrInvalidCredit  = NewDomainError("transcript", "Validate", ErrValueOutOfRange, "credit must be positive")
	ErrEmptySemester  = NewDomainError("transcript", "AddSemester", ErrEmptyValue, "semester has no courses")
	ErrTranscriptSave = NewDomainError("transcript", "Save", ErrFileUnavailable, "failed to open file for saving")
)

// IsNoData checks if the error means there is nothing persisted yet.
func IsNoData(err error) bool {
	return errors.Is(err, ErrNoData)
}

// IsCorruptData checks if the error is a corrupt-file error.
func IsCorruptData(err error) bool {
	return errors.Is(err, ErrCorruptData)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrValueOutOfRange) ||
		errors.Is(err, ErrMalformedInput) ||
		errors.Is(err, ErrEmptyValue)
}
