// Package testutils provides shared fixtures for tests, chiefly the
// standard 22-letter Hebrew table.
package testutils

import "github.com/otiyot/gematria/internal/domain"

// StandardLetters returns the canonical Hebrew letter table used across
// tests: 22 letters in order, five with final forms carrying gadol values.
func StandardLetters() []domain.LetterDefinition {
	return []domain.LetterDefinition{
		{Glyph: "א", Name: "Alef", Position: 1, StandardValue: 1},
		{Glyph: "ב", Name: "Bet", Position: 2, StandardValue: 2},
		{Glyph: "ג", Name: "Gimel", Position: 3, StandardValue: 3},
		{Glyph: "ד", Name: "Dalet", Position: 4, StandardValue: 4},
		{Glyph: "ה", Name: "He", Position: 5, StandardValue: 5},
		{Glyph: "ו", Name: "Vav", Position: 6, StandardValue: 6},
		{Glyph: "ז", Name: "Zayin", Position: 7, StandardValue: 7},
		{Glyph: "ח", Name: "Het", Position: 8, StandardValue: 8},
		{Glyph: "ט", Name: "Tet", Position: 9, StandardValue: 9},
		{Glyph: "י", Name: "Yod", Position: 10, StandardValue: 10},
		{Glyph: "כ", Name: "Kaf", Position: 11, StandardValue: 20, FinalGlyph: "ך", FinalValue: 500},
		{Glyph: "ל", Name: "Lamed", Position: 12, StandardValue: 30},
		{Glyph: "מ", Name: "Mem", Position: 13, StandardValue: 40, FinalGlyph: "ם", FinalValue: 600},
		{Glyph: "נ", Name: "Nun", Position: 14, StandardValue: 50, FinalGlyph: "ן", FinalValue: 700},
		{Glyph: "ס", Name: "Samekh", Position: 15, StandardValue: 60},
		{Glyph: "ע", Name: "Ayin", Position: 16, StandardValue: 70},
		{Glyph: "פ", Name: "Pe", Position: 17, StandardValue: 80, FinalGlyph: "ף", FinalValue: 800},
		{Glyph: "צ", Name: "Tsade", Position: 18, StandardValue: 90, FinalGlyph: "ץ", FinalValue: 900},
		{Glyph: "ק", Name: "Qof", Position: 19, StandardValue: 100},
		{Glyph: "ר", Name: "Resh", Position: 20, StandardValue: 200},
		{Glyph: "ש", Name: "Shin", Position: 21, StandardValue: 300},
		{Glyph: "ת", Name: "Tav", Position: 22, StandardValue: 400},
	}
}

// FinalForms returns the five final-form letters from the standard table,
// in table order (kaf, mem, nun, pe, tsade).
func FinalForms() []domain.LetterDefinition {
	var finals []domain.LetterDefinition
	for _, letter := range StandardLetters() {
		if letter.HasFinal() {
			finals = append(finals, letter)
		}
	}
	return finals
}
