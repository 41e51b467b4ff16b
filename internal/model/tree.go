package model

import "fmt"

// TreeNode is one node of a decision tree. Leaves have Feature == -1.
// Internal nodes send x to Left when x[Feature] <= Threshold.
type TreeNode struct {
	Feature   int       `json:"feature"`
	Threshold float64   `json:"threshold"`
	Left      int       `json:"left"`
	Right     int       `json:"right"`
	Value     []float64 `json:"value,omitempty"` // per-class sample counts
}

// Leaf reports whether the node is terminal.
func (n TreeNode) Leaf() bool { return n.Feature < 0 }

// Tree is a decision tree classifier whose leaves carry class counts.
type Tree struct {
	nodes     []TreeNode
	proba     [][]float64 // normalised leaf distributions, nil for internal nodes
	nFeatures int
}

var _ Classifier = (*Tree)(nil)

// NewTree validates nodes and precomputes leaf probabilities. Children must
// have a higher index than their parent so every walk terminates.
func NewTree(nodes []TreeNode, nFeatures, nClasses int) (*Tree, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: tree has no nodes", ErrInvalidArtifact)
	}

	t := &Tree{
		nodes:     append([]TreeNode(nil), nodes...),
		proba:     make([][]float64, len(nodes)),
		nFeatures: nFeatures,
	}
	for i, n := range t.nodes {
		if n.Leaf() {
			p, err := normalise(n.Value, nClasses)
			if err != nil {
				return nil, fmt.Errorf("%w: leaf %d: %v", ErrInvalidArtifact, i, err)
			}
			t.proba[i] = p
			continue
		}
		if n.Feature >= nFeatures {
			return nil, fmt.Errorf("%w: node %d tests feature %d, model has %d", ErrInvalidArtifact, i, n.Feature, nFeatures)
		}
		for _, child := range []int{n.Left, n.Right} {
			if child <= i || child >= len(nodes) {
				return nil, fmt.Errorf("%w: node %d has invalid child %d", ErrInvalidArtifact, i, child)
			}
		}
	}
	return t, nil
}

func (t *Tree) NumFeatures() int { return t.nFeatures }

func (t *Tree) PredictProba(x []float64) ([]float64, error) {
	if err := checkArity(x, t.nFeatures); err != nil {
		return nil, err
	}

	i := 0
	for !t.nodes[i].Leaf() {
		n := t.nodes[i]
		if x[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
	return append([]float64(nil), t.proba[i]...), nil
}

func (t *Tree) Predict(x []float64) (int, error) {
	p, err := t.PredictProba(x)
	if err != nil {
		return 0, err
	}
	return argmax(p), nil
}

func normalise(counts []float64, nClasses int) ([]float64, error) {
	if len(counts) != nClasses {
		return nil, fmt.Errorf("has %d class counts, want %d", len(counts), nClasses)
	}
	var sum float64
	for _, c := range counts {
		if c < 0 {
			return nil, fmt.Errorf("negative class count %v", c)
		}
		sum += c
	}
	if sum <= 0 {
		return nil, fmt.Errorf("class counts sum to zero")
	}
	out := make([]float64, len(counts))
	for i, c := range counts {
		out[i] = c / sum
	}
	return out, nil
}
