package domain

import "strings"

// Alphabet dimensions fixed by the Hebrew letter table.
const (
	LetterCount    = 22
	FinalFormCount = 5
)

// Letter-specific validation errors.
var (
	ErrLetterGlyphEmpty    = NewValidationError("letter", "glyph", "cannot be empty")
	ErrLetterNameEmpty     = NewValidationError("letter", "name", "cannot be empty")
	ErrLetterPositionRange = NewValidationError("letter", "position", "must be between 1 and 22")
	ErrLetterValueRange    = NewValidationError("letter", "standard_value", "must be positive")
	ErrLetterFinalValue    = NewValidationError("letter", "final_value", "requires a final form glyph")
)

// LetterDefinition is one row of the immutable Hebrew letter table supplied
// at startup. Five letters additionally carry a final-form glyph, which has
// a distinct value under the gadol system.
type LetterDefinition struct {
	Glyph         string `json:"letter"`
	Name          string `json:"name"`
	Position      int    `json:"position"`
	StandardValue int    `json:"standard_value"`
	FinalGlyph    string `json:"final_form,omitempty"`
	FinalValue    int    `json:"final_value,omitempty"`
}

// HasFinal reports whether the letter has a word-final form.
func (l LetterDefinition) HasFinal() bool {
	return l.FinalGlyph != ""
}

// Slug returns the lowercase transliterated name used to build card IDs.
func (l LetterDefinition) Slug() string {
	return strings.ToLower(l.Name)
}

// FinalSlug returns the card ID slug for the letter's final form.
func (l LetterDefinition) FinalSlug() string {
	return l.Slug() + "-final"
}

// Validate checks a single letter row. Table-level invariants (22 rows,
// contiguous positions, exactly 5 finals) are the loader's concern.
func (l LetterDefinition) Validate() error {
	if l.Glyph == "" {
		return ErrLetterGlyphEmpty
	}
	if l.Name == "" {
		return ErrLetterNameEmpty
	}
	if l.Position < 1 || l.Position > LetterCount {
		return ErrLetterPositionRange
	}
	if l.StandardValue < 1 {
		return ErrLetterValueRange
	}
	if l.FinalValue != 0 && l.FinalGlyph == "" {
		return ErrLetterFinalValue
	}
	return nil
}
