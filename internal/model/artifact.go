package model

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"golang.org/x/mod/semver"

	"github.com/abhisek/pwmeter/internal/features"
)

// SupportedMajor is the artifact format major version this build reads.
const SupportedMajor = "v1"

// BundledPath names the embedded artifact in diagnostics.
const BundledPath = "(bundled)"

//go:embed bundled/logistic.json
var bundledArtifact []byte

// Kind selects the classifier family stored in an artifact.
type Kind string

const (
	KindLogistic Kind = "logistic"
	KindTree     Kind = "tree"
)

// LogisticParams are the parameters of a multinomial logistic regression.
type LogisticParams struct {
	Coefficients [][]float64 `json:"coefficients"` // [class][feature]
	Intercepts   []float64   `json:"intercepts"`
}

// TreeParams holds a flattened decision tree, root at index 0.
type TreeParams struct {
	Nodes []TreeNode `json:"nodes"`
}

// Artifact is the on-disk contract between the training pipeline and
// inference. Features and Classes must match features.Names and ClassNames
// exactly, in order.
type Artifact struct {
	FormatVersion  string          `json:"format_version"`
	Name           string          `json:"name,omitempty"`
	Features       []string        `json:"features"`
	Classes        []string        `json:"classes"`
	SpecialSymbols string          `json:"special_symbols,omitempty"`
	Kind           Kind            `json:"kind"`
	Logistic       *LogisticParams `json:"logistic,omitempty"`
	Tree           *TreeParams     `json:"tree,omitempty"`

	classifier Classifier
}

// Classifier returns the classifier built from the artifact.
func (a *Artifact) Classifier() Classifier {
	return a.classifier
}

// Load reads and validates the artifact at path.
func Load(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ErrModelLoad{Path: path, Err: err}
	}
	a, err := parse(data)
	if err != nil {
		return nil, &ErrModelLoad{Path: path, Err: err}
	}
	return a, nil
}

// Parse validates an artifact held in memory.
func Parse(data []byte) (*Artifact, error) {
	a, err := parse(data)
	if err != nil {
		return nil, &ErrModelLoad{Err: err}
	}
	return a, nil
}

// Bundled returns the artifact compiled into the binary.
func Bundled() (*Artifact, error) {
	a, err := parse(bundledArtifact)
	if err != nil {
		return nil, &ErrModelLoad{Path: BundledPath, Err: err}
	}
	return a, nil
}

func parse(data []byte) (*Artifact, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArtifact, err)
	}
	if err := a.checkContract(); err != nil {
		return nil, err
	}

	clf, err := a.build()
	if err != nil {
		return nil, err
	}
	a.classifier = clf
	return &a, nil
}

// checkContract verifies version, feature order and class mapping.
func (a *Artifact) checkContract() error {
	if !semver.IsValid(a.FormatVersion) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, a.FormatVersion)
	}
	if major := semver.Major(a.FormatVersion); major != SupportedMajor {
		return fmt.Errorf("%w: %s (this build reads %s.x)", ErrUnsupportedVersion, a.FormatVersion, SupportedMajor)
	}

	want := features.Names()
	if !slices.Equal(a.Features, want) {
		return fmt.Errorf("%w: expected %d features %v, artifact has %d %v",
			ErrSchemaMismatch, len(want), want, len(a.Features), a.Features)
	}
	if !slices.Equal(a.Classes, ClassNames) {
		return fmt.Errorf("%w: expected classes %v, artifact has %v", ErrSchemaMismatch, ClassNames, a.Classes)
	}
	if a.SpecialSymbols != "" && a.SpecialSymbols != features.SpecialSymbols {
		return fmt.Errorf("%w: artifact trained with special symbols %q, extractor uses %q",
			ErrSchemaMismatch, a.SpecialSymbols, features.SpecialSymbols)
	}
	return nil
}

func (a *Artifact) build() (Classifier, error) {
	switch a.Kind {
	case KindLogistic:
		l, err := NewLogistic(a.Logistic.Coefficients, a.Logistic.Intercepts)
		if err != nil {
			return nil, err
		}
		if l.NumFeatures() != len(a.Features) || len(a.Logistic.Intercepts) != len(a.Classes) {
			return nil, fmt.Errorf("%w: logistic parameters are %dx%d, contract is %dx%d",
				ErrSchemaMismatch, len(a.Logistic.Intercepts), l.NumFeatures(), len(a.Classes), len(a.Features))
		}
		return l, nil
	case KindTree:
		return NewTree(a.Tree.Nodes, len(a.Features), len(a.Classes))
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidArtifact, a.Kind)
	}
}
