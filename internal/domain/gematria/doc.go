// Package gematria implements the letter-value systems drilled by the
// engine: the four valuation systems (hechrachi, gadol, katan, siduri), the
// three substitution ciphers (atbash, albam, avgad), and Hebrew numeral
// rendering with geresh/gershayim punctuation.
//
// All functions are pure. The letter table is passed in explicitly so the
// engines stay independently testable against alternate tables.
package gematria
