package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// Specific failures wrap this sentinel so callers can match with errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidQuality is returned when a review quality is not one of the
	// four ratings the drill UI produces.
	ErrInvalidQuality = errors.New("invalid review quality")

	// ErrInvalidSystem is returned when a system identifier is not one of the
	// seven known gematria systems.
	ErrInvalidSystem = errors.New("invalid gematria system")
)

// ValidationError describes why a persisted or constructed entity failed
// validation. It wraps ErrValidation so errors.Is(err, ErrValidation) holds.
type ValidationError struct {
	Entity  string // the entity that failed, e.g. "progression state"
	Field   string // the offending field, when one can be named
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: field %q: %s", e.Entity, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Entity, e.Message)
}

// Unwrap supports errors.Is against ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a ValidationError for the given entity and field.
func NewValidationError(entity, field, message string) *ValidationError {
	return &ValidationError{Entity: entity, Field: field, Message: message}
}
