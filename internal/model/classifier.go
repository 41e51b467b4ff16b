// Package model loads pre-trained password strength classifiers and runs
// inference against them.
//
// A classifier is produced by an external training pipeline and shipped as a
// versioned JSON artifact. The artifact pins the feature order and the class
// index mapping; see Artifact for the on-disk contract.
package model

// Classifier maps a feature vector to a class. Implementations are immutable
// after construction and safe for concurrent use.
type Classifier interface {
	// Predict returns the discrete class index for x.
	Predict(x []float64) (int, error)

	// PredictProba returns one probability per class for x, in class index
	// order.
	PredictProba(x []float64) ([]float64, error)

	// NumFeatures returns the input arity the classifier was trained on.
	NumFeatures() int
}

// ClassNames is the class index mapping every artifact must declare.
// Index 0 is always Weak, 1 Medium, 2 Strong.
var ClassNames = []string{"Weak", "Medium", "Strong"}

// argmax returns the index of the largest value; the first wins ties.
func argmax(p []float64) int {
	best := 0
	for i := 1; i < len(p); i++ {
		if p[i] > p[best] {
			best = i
		}
	}
	return best
}
