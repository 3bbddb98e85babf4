package gematria

import (
	"errors"
	"testing"

	"github.com/otiyot/gematria/internal/domain"
	"github.com/otiyot/gematria/internal/testutils"
)

func TestValueHechrachi(t *testing.T) {
	t.Parallel()
	letters := testutils.StandardLetters()

	expected := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 200, 300, 400}
	for i, letter := range letters {
		v, err := Value(letters, letter.Glyph, domain.SystemHechrachi)
		if err != nil {
			t.Fatalf("Value(%s) returned error: %v", letter.Glyph, err)
		}
		if v != expected[i] {
			t.Errorf("%s: expected %d, got %d", letter.Name, expected[i], v)
		}
	}

	// Final forms carry the same value as their base letter.
	for _, letter := range testutils.FinalForms() {
		v, err := Value(letters, letter.FinalGlyph, domain.SystemHechrachi)
		if err != nil {
			t.Fatalf("Value(%s) returned error: %v", letter.FinalGlyph, err)
		}
		if v != letter.StandardValue {
			t.Errorf("final %s: expected %d, got %d", letter.FinalGlyph, letter.StandardValue, v)
		}
	}
}

func TestValueHechrachiWords(t *testing.T) {
	t.Parallel()
	letters := testutils.StandardLetters()

	words := []struct {
		word     string
		expected int
	}{
		{"חי", 18},    // chai
		{"אמת", 441},  // emet
		{"שלום", 376}, // shalom
	}

	for _, w := range words {
		sum := 0
		for _, r := range w.word {
			v, err := Value(letters, string(r), domain.SystemHechrachi)
			if err != nil {
				t.Fatalf("Value(%s) returned error: %v", string(r), err)
			}
			sum += v
		}
		if sum != w.expected {
			t.Errorf("%s: expected %d, got %d", w.word, w.expected, sum)
		}
	}
}

func TestValueGadol(t *testing.T) {
	t.Parallel()
	letters := testutils.StandardLetters()

	// Base letters match hechrachi.
	for _, letter := range letters {
		v, err := Value(letters, letter.Glyph, domain.SystemGadol)
		if err != nil {
			t.Fatalf("Value(%s) returned error: %v", letter.Glyph, err)
		}
		if v != letter.StandardValue {
			t.Errorf("%s: expected %d, got %d", letter.Name, letter.StandardValue, v)
		}
	}

	// Final forms take the distinct 500-900 values.
	finals := map[string]int{"ך": 500, "ם": 600, "ן": 700, "ף": 800, "ץ": 900}
	for glyph, expected := range finals {
		v, err := Value(letters, glyph, domain.SystemGadol)
		if err != nil {
			t.Fatalf("Value(%s) returned error: %v", glyph, err)
		}
		if v != expected {
			t.Errorf("final %s: expected %d, got %d", glyph, expected, v)
		}
	}
}

func TestValueKatan(t *testing.T) {
	t.Parallel()
	letters := testutils.StandardLetters()

	expected := map[string]int{
		"א": 1, "ב": 2, "ג": 3, "ד": 4, "ה": 5, "ו": 6, "ז": 7, "ח": 8, "ט": 9,
		"י": 1, "כ": 2, "ל": 3, "מ": 4, "נ": 5, "ס": 6, "ע": 7, "פ": 8, "צ": 9,
		"ק": 1, "ר": 2, "ש": 3, "ת": 4,
	}
	for glyph, want := range expected {
		v, err := Value(letters, glyph, domain.SystemKatan)
		if err != nil {
			t.Fatalf("Value(%s) returned error: %v", glyph, err)
		}
		if v != want {
			t.Errorf("%s: expected %d, got %d", glyph, want, v)
		}
	}

	// Finals reduce through their base letter: ץ -> 90 -> 9.
	v, err := Value(letters, "ץ", domain.SystemKatan)
	if err != nil {
		t.Fatalf("Value(ץ) returned error: %v", err)
	}
	if v != 9 {
		t.Errorf("final tsade: expected 9, got %d", v)
	}
}

func TestReduceKatan(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		value    int
		expected int
	}{
		{300, 3},
		{40, 4},
		{1, 1},
		{100, 1},
		{10, 1},
		{7, 7},
	}
	for _, tc := range testCases {
		if got := reduceKatan(tc.value); got != tc.expected {
			t.Errorf("reduceKatan(%d) = %d, want %d", tc.value, got, tc.expected)
		}
	}
}

func TestValueSiduri(t *testing.T) {
	t.Parallel()
	letters := testutils.StandardLetters()

	for _, letter := range letters {
		v, err := Value(letters, letter.Glyph, domain.SystemSiduri)
		if err != nil {
			t.Fatalf("Value(%s) returned error: %v", letter.Glyph, err)
		}
		if v != letter.Position {
			t.Errorf("%s: expected %d, got %d", letter.Name, letter.Position, v)
		}
	}

	// Finals share the base letter's ordinal.
	for _, letter := range testutils.FinalForms() {
		v, err := Value(letters, letter.FinalGlyph, domain.SystemSiduri)
		if err != nil {
			t.Fatalf("Value(%s) returned error: %v", letter.FinalGlyph, err)
		}
		if v != letter.Position {
			t.Errorf("final %s: expected %d, got %d", letter.FinalGlyph, letter.Position, v)
		}
	}
}

func TestValueErrors(t *testing.T) {
	t.Parallel()
	letters := testutils.StandardLetters()

	_, err := Value(letters, "x", domain.SystemHechrachi)
	var letterErr *UnknownLetterError
	if !errors.As(err, &letterErr) {
		t.Fatalf("Expected UnknownLetterError, got %v", err)
	}
	if letterErr.Glyph != "x" {
		t.Errorf("Expected glyph x in error, got %q", letterErr.Glyph)
	}

	_, err = Value(letters, "א", domain.SystemAtbash)
	var systemErr *UnknownSystemError
	if !errors.As(err, &systemErr) {
		t.Fatalf("Expected UnknownSystemError for cipher system, got %v", err)
	}

	_, err = Value(letters, "א", domain.System("bogus"))
	if !errors.As(err, &systemErr) {
		t.Fatalf("Expected UnknownSystemError, got %v", err)
	}
}
