package features

import (
	"unicode"
	"unicode/utf8"
)

const (
	// ChecklistMinLength is the length the live checklist asks for.
	ChecklistMinLength = 8
	// RecommendedLength is the length used by the criteria breakdown.
	RecommendedLength = 12
)

// Criterion is a single pass/fail check shown to the user.
type Criterion struct {
	Name string
	Met  bool
}

// Checklist is the live character-class checklist.
type Checklist struct {
	MinLength bool
	Uppercase bool
	Lowercase bool
	Digit     bool
	Special   bool
}

// Items returns the checklist in display order.
func (c Checklist) Items() []Criterion {
	return []Criterion{
		{Name: "Length >= 8 characters", Met: c.MinLength},
		{Name: "Contains uppercase letter", Met: c.Uppercase},
		{Name: "Contains lowercase letter", Met: c.Lowercase},
		{Name: "Contains digit", Met: c.Digit},
		{Name: "Contains special character", Met: c.Special},
	}
}

// MetCount returns how many checklist items pass.
func (c Checklist) MetCount() int {
	n := 0
	for _, item := range c.Items() {
		if item.Met {
			n++
		}
	}
	return n
}

// Criteria computes the checklist for password. It is presentation-only and
// does not feed the classifier.
func Criteria(password string) Checklist {
	var c Checklist
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			c.Uppercase = true
		case unicode.IsLower(r):
			c.Lowercase = true
		}
		if IsDigit(r) {
			c.Digit = true
		}
		if IsSpecialSymbol(r) {
			c.Special = true
		}
	}
	c.MinLength = utf8.RuneCountInString(password) >= ChecklistMinLength
	return c
}

// Breakdown returns the three criteria tied to the classifier features.
func (r Record) Breakdown() []Criterion {
	return []Criterion{
		{Name: "Has Digits", Met: r.HasDigits},
		{Name: "Has Special Symbols", Met: r.HasSpecialSymbols},
		{Name: "Length >= 12", Met: r.Length >= RecommendedLength},
	}
}
