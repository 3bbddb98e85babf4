package gematria

import "strings"

// Hebrew numeral punctuation marks.
const (
	Geresh    = "׳" // follows a single-letter numeral
	Gershayim = "״" // precedes the last letter of a multi-letter numeral
)

// numeralValues and numeralGlyphs form the greedy decomposition table, in
// descending value order. Finals are never used in numerals.
var (
	numeralValues = []int{
		400, 300, 200, 100, 90, 80, 70, 60, 50, 40, 30, 20, 10,
		9, 8, 7, 6, 5, 4, 3, 2, 1,
	}
	numeralGlyphs = []string{
		"ת", "ש", "ר", "ק", "צ", "פ", "ע", "ס", "נ", "מ", "ל", "כ", "י",
		"ט", "ח", "ז", "ו", "ה", "ד", "ג", "ב", "א",
	}
)

// Encode renders n as a Hebrew numeral string. With omitThousands set,
// years and other large numbers drop their thousands once (5784 renders as
// 784). Zero, including a zero left by the reduction, renders as the empty
// string.
//
// The sequences יה (15) and יו (16) would spell divine-name fragments, so
// they are rewritten to טו and טז after decomposition.
func Encode(n int, omitThousands bool) string {
	if omitThousands && n >= 1000 {
		n = n % 1000
	}
	if n <= 0 {
		return ""
	}

	var b strings.Builder
	remaining := n
	for i, value := range numeralValues {
		for remaining >= value {
			b.WriteString(numeralGlyphs[i])
			remaining -= value
		}
	}

	s := b.String()
	s = strings.ReplaceAll(s, "יה", "טו")
	s = strings.ReplaceAll(s, "יו", "טז")

	runes := []rune(s)
	if len(runes) == 1 {
		return s + Geresh
	}
	return string(runes[:len(runes)-1]) + Gershayim + string(runes[len(runes)-1:])
}
