// Package features turns a password into the fixed-shape record the strength
// classifier was trained on.
package features

import (
	"strings"
	"unicode/utf8"
)

// SpecialSymbols is the canonical special-character set. Every extraction
// site uses this constant; the bundled artifact records the same set and the
// model loader rejects artifacts built against a different one.
const SpecialSymbols = `!@#$%^&*()-_=+[{]}\|;:",<.>/?`

// Feature names in classifier input order.
const (
	NameHasDigits         = "has_digits"
	NameHasSpecialSymbols = "has_special_symbols"
	NameLength            = "length"
)

// Names returns the feature names in the order Vector emits them.
func Names() []string {
	return []string{NameHasDigits, NameHasSpecialSymbols, NameLength}
}

// Count is the arity of a feature vector.
const Count = 3

// Record is the classifier input derived from a password.
type Record struct {
	HasDigits         bool
	HasSpecialSymbols bool
	Length            int // code points, not bytes
}

// Extract computes the feature record for password. It never fails; the
// empty string yields the zero Record.
func Extract(password string) Record {
	var r Record
	for _, c := range password {
		if IsDigit(c) {
			r.HasDigits = true
		}
		if IsSpecialSymbol(c) {
			r.HasSpecialSymbols = true
		}
	}
	r.Length = utf8.RuneCountInString(password)
	return r
}

// Vector encodes the record as classifier input, booleans as 0/1.
func (r Record) Vector() []float64 {
	return []float64{boolFloat(r.HasDigits), boolFloat(r.HasSpecialSymbols), float64(r.Length)}
}

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// IsSpecialSymbol reports whether c belongs to SpecialSymbols.
func IsSpecialSymbol(c rune) bool {
	return strings.ContainsRune(SpecialSymbols, c)
}

func boolFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
