package model

import (
	"fmt"
	"sync"

	"github.com/abhisek/pwmeter/internal/features"
)

// Stub is a deterministic Classifier for testing. It returns the same
// probabilities for every input and records how often it was called.
type Stub struct {
	Probabilities []float64
	Class         int // returned by Predict
	Features      int // reported arity
	Err           error

	mu    sync.Mutex
	calls int
}

var _ Classifier = (*Stub)(nil)

// NewStub returns a Stub whose Predict is the argmax of probs.
func NewStub(probs ...float64) *Stub {
	return &Stub{
		Probabilities: probs,
		Class:         argmax(probs),
		Features:      features.Count,
	}
}

func (s *Stub) NumFeatures() int { return s.Features }

func (s *Stub) Predict(x []float64) (int, error) {
	s.record()
	if s.Err != nil {
		return 0, s.Err
	}
	if err := checkArity(x, s.Features); err != nil {
		return 0, err
	}
	return s.Class, nil
}

func (s *Stub) PredictProba(x []float64) ([]float64, error) {
	s.record()
	if s.Err != nil {
		return nil, s.Err
	}
	if err := checkArity(x, s.Features); err != nil {
		return nil, err
	}
	if len(s.Probabilities) == 0 {
		return nil, fmt.Errorf("stub has no probabilities")
	}
	return append([]float64(nil), s.Probabilities...), nil
}

// CallCount returns the number of Predict and PredictProba calls made.
func (s *Stub) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *Stub) record() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
}
