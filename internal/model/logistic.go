package model

import (
	"fmt"
	"math"
)

// Logistic is a multinomial logistic regression: softmax(W·x + b).
type Logistic struct {
	coef      [][]float64 // [class][feature]
	intercept []float64   // [class]
	nFeatures int
}

var _ Classifier = (*Logistic)(nil)

// NewLogistic builds a classifier from per-class coefficient rows and
// intercepts. Rows must be rectangular and match the intercept count.
func NewLogistic(coef [][]float64, intercept []float64) (*Logistic, error) {
	if len(coef) == 0 {
		return nil, fmt.Errorf("%w: no coefficient rows", ErrInvalidArtifact)
	}
	if len(coef) != len(intercept) {
		return nil, fmt.Errorf("%w: %d coefficient rows but %d intercepts", ErrInvalidArtifact, len(coef), len(intercept))
	}
	n := len(coef[0])
	if n == 0 {
		return nil, fmt.Errorf("%w: empty coefficient row", ErrInvalidArtifact)
	}

	l := &Logistic{
		coef:      make([][]float64, len(coef)),
		intercept: append([]float64(nil), intercept...),
		nFeatures: n,
	}
	for k, row := range coef {
		if len(row) != n {
			return nil, fmt.Errorf("%w: coefficient row %d has %d values, want %d", ErrInvalidArtifact, k, len(row), n)
		}
		l.coef[k] = append([]float64(nil), row...)
	}
	return l, nil
}

func (l *Logistic) NumFeatures() int { return l.nFeatures }

func (l *Logistic) PredictProba(x []float64) ([]float64, error) {
	if err := checkArity(x, l.nFeatures); err != nil {
		return nil, err
	}

	scores := make([]float64, len(l.coef))
	for k, row := range l.coef {
		s := l.intercept[k]
		for j, w := range row {
			s += w * x[j]
		}
		scores[k] = s
	}
	return softmax(scores), nil
}

func (l *Logistic) Predict(x []float64) (int, error) {
	p, err := l.PredictProba(x)
	if err != nil {
		return 0, err
	}
	return argmax(p), nil
}

// softmax subtracts the max score first so large raw lengths cannot overflow.
func softmax(scores []float64) []float64 {
	maxScore := math.Inf(-1)
	for _, s := range scores {
		if s > maxScore {
			maxScore = s
		}
	}

	out := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		out[i] = math.Exp(s - maxScore)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}
