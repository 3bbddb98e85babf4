package gematria

import "github.com/otiyot/gematria/internal/domain"

// lookup finds the letter table row for a glyph, reporting whether the
// glyph is the row's final form.
func lookup(letters []domain.LetterDefinition, glyph string) (domain.LetterDefinition, bool, bool) {
	for _, letter := range letters {
		if letter.Glyph == glyph {
			return letter, false, true
		}
		if letter.HasFinal() && letter.FinalGlyph == glyph {
			return letter, true, true
		}
	}
	return domain.LetterDefinition{}, false, false
}

// reduceKatan strips trailing multiples of ten: 300 -> 3, 40 -> 4, 7 -> 7.
func reduceKatan(value int) int {
	for value >= 10 && value%10 == 0 {
		value /= 10
	}
	return value
}

// Value computes a glyph's numeric value under one of the four valuation
// systems. Final-form glyphs resolve through their base letter; only gadol
// assigns them a distinct value.
func Value(letters []domain.LetterDefinition, glyph string, system domain.System) (int, error) {
	letter, isFinal, ok := lookup(letters, glyph)
	if !ok {
		return 0, &UnknownLetterError{Glyph: glyph}
	}

	switch system {
	case domain.SystemHechrachi:
		return letter.StandardValue, nil
	case domain.SystemGadol:
		if isFinal && letter.FinalValue != 0 {
			return letter.FinalValue, nil
		}
		return letter.StandardValue, nil
	case domain.SystemKatan:
		return reduceKatan(letter.StandardValue), nil
	case domain.SystemSiduri:
		return letter.Position, nil
	default:
		return 0, &UnknownSystemError{System: system}
	}
}
