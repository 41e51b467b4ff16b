package model

import (
	"errors"
	"fmt"
)

var (
	// ErrSchemaMismatch indicates the artifact was trained against a
	// different feature schema or class mapping than this build expects.
	ErrSchemaMismatch = errors.New("feature schema mismatch")

	// ErrUnsupportedVersion indicates an artifact format version this build
	// cannot read.
	ErrUnsupportedVersion = errors.New("unsupported artifact format version")

	// ErrInvalidArtifact indicates a structurally broken artifact.
	ErrInvalidArtifact = errors.New("invalid model artifact")
)

// ErrModelLoad indicates the classifier artifact could not be read, parsed
// or accepted. Path is empty when the artifact came from memory.
type ErrModelLoad struct {
	Path string
	Err  error
}

func (e *ErrModelLoad) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load model artifact: %v", e.Err)
	}
	return fmt.Sprintf("load model artifact %s: %v", e.Path, e.Err)
}

func (e *ErrModelLoad) Unwrap() error { return e.Err }

// ErrPrediction indicates the classifier rejected a feature vector.
// Expected and Actual are feature counts when the arity is wrong; Err carries
// any other cause (for example an out-of-range class index).
type ErrPrediction struct {
	Expected int
	Actual   int
	Err      error
}

func (e *ErrPrediction) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("prediction failed: %v", e.Err)
	}
	return fmt.Sprintf("prediction failed: expected %d features, got %d", e.Expected, e.Actual)
}

func (e *ErrPrediction) Unwrap() error { return e.Err }

func checkArity(x []float64, want int) error {
	if len(x) != want {
		return &ErrPrediction{Expected: want, Actual: len(x)}
	}
	return nil
}
