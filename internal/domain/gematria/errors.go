package gematria

import (
	"fmt"

	"github.com/otiyot/gematria/internal/domain"
)

// UnknownLetterError is returned when a glyph is not in the letter table,
// neither as a base letter nor as a final form.
type UnknownLetterError struct {
	Glyph string
}

// Error implements the error interface.
func (e *UnknownLetterError) Error() string {
	return fmt.Sprintf("unknown letter %q", e.Glyph)
}

// UnknownSystemError is returned when a system is unknown or does not apply
// to the requested operation (e.g. a cipher passed to Value).
type UnknownSystemError struct {
	System domain.System
}

// Error implements the error interface.
func (e *UnknownSystemError) Error() string {
	return fmt.Sprintf("unknown system %q", string(e.System))
}
