package strength

import (
	"fmt"

	"github.com/abhisek/pwmeter/internal/features"
)

// Label is the classifier's discrete strength verdict. Values match the
// artifact's class index mapping.
type Label int

const (
	LabelWeak Label = iota
	LabelMedium
	LabelStrong
)

// NumLabels is the number of strength classes.
const NumLabels = 3

// AllLabels returns the labels in class index order.
func AllLabels() []Label {
	return []Label{LabelWeak, LabelMedium, LabelStrong}
}

// LabelFromIndex maps a raw class index to a Label.
func LabelFromIndex(i int) (Label, error) {
	if i < 0 || i >= NumLabels {
		return 0, fmt.Errorf("class index %d out of range [0,%d)", i, NumLabels)
	}
	return Label(i), nil
}

func (l Label) String() string {
	switch l {
	case LabelWeak:
		return "Weak"
	case LabelMedium:
		return "Medium"
	case LabelStrong:
		return "Strong"
	default:
		return fmt.Sprintf("Label(%d)", int(l))
	}
}

// MeterPercent returns how full the strength meter is drawn for l.
func (l Label) MeterPercent() float64 {
	switch l {
	case LabelWeak:
		return 0.30
	case LabelMedium:
		return 0.60
	case LabelStrong:
		return 0.90
	default:
		return 0
	}
}

// Result is the outcome of one strength check. It is built fresh for every
// call and never shared.
type Result struct {
	Label         Label
	Probabilities [NumLabels]float64 // indexed by Label
	Features      features.Record
}

// Probability returns the probability assigned to l.
func (r Result) Probability(l Label) float64 {
	if l < 0 || int(l) >= NumLabels {
		return 0
	}
	return r.Probabilities[l]
}
