package gematria

import "github.com/otiyot/gematria/internal/domain"

// Direction selects which way a cipher substitution runs. Only avgad
// distinguishes the two; atbash and albam are involutions.
type Direction string

// Substitution directions.
const (
	Forward Direction = "forward"
	Reverse Direction = "reverse"
)

// Substitute maps a glyph to its counterpart under one of the three cipher
// systems. Final-form glyphs substitute through their base letter's
// position. The result is always a base-letter glyph.
func Substitute(
	letters []domain.LetterDefinition,
	glyph string,
	system domain.System,
	direction Direction,
) (string, error) {
	letter, _, ok := lookup(letters, glyph)
	if !ok {
		return "", &UnknownLetterError{Glyph: glyph}
	}

	pos := letter.Position
	var target int
	switch system {
	case domain.SystemAtbash:
		// Mirror pairing: positions sum to 23.
		target = domain.LetterCount + 1 - pos
	case domain.SystemAlbam:
		// Two 11-letter halves paired across the split.
		if pos <= domain.LetterCount/2 {
			target = pos + domain.LetterCount/2
		} else {
			target = pos - domain.LetterCount/2
		}
	case domain.SystemAvgad:
		if direction == Reverse {
			target = pos - 1
			if target < 1 {
				target = domain.LetterCount
			}
		} else {
			target = pos%domain.LetterCount + 1
		}
	default:
		return "", &UnknownSystemError{System: system}
	}

	for _, candidate := range letters {
		if candidate.Position == target {
			return candidate.Glyph, nil
		}
	}
	// Unreachable with a validated 22-letter table.
	return "", &UnknownLetterError{Glyph: glyph}
}
