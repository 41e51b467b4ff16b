// Package strength classifies passwords as Weak, Medium or Strong.
//
// A Handle owns a loaded classifier and exposes Check, the single entry point
// used by every front end. Handles are constructed explicitly and passed
// around; there is no package-level model.
package strength

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/abhisek/pwmeter/internal/features"
	"github.com/abhisek/pwmeter/internal/model"
)

// State is the lifecycle state of a Handle.
type State int

const (
	StateUnloaded State = iota
	StateLoaded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Source locates a classifier artifact. An empty Path selects the artifact
// bundled into the binary.
type Source struct {
	Path string
}

// Describe returns the path or a marker for the bundled artifact.
func (s Source) Describe() string {
	if s.Path == "" {
		return model.BundledPath
	}
	return s.Path
}

func (s Source) load() (*model.Artifact, error) {
	if s.Path == "" {
		return model.Bundled()
	}
	return model.Load(s.Path)
}

// Handle is a read-only, process-wide classifier handle. It loads at most
// once; Loaded and Failed are terminal. All methods are safe for concurrent
// use.
type Handle struct {
	source Source
	logger *slog.Logger

	once     sync.Once
	mu       sync.RWMutex
	state    State
	clf      model.Classifier
	artifact *model.Artifact
	loadErr  error
}

// NewHandle wraps an already constructed classifier. The handle starts in
// StateLoaded and never touches disk. A nil clf yields a StateFailed handle.
func NewHandle(clf model.Classifier) *Handle {
	h := &Handle{
		logger: slog.Default(),
		state:  StateLoaded,
		clf:    clf,
	}
	if clf == nil {
		h.state = StateFailed
		h.loadErr = errNilClassifier
	}
	h.once.Do(func() {})
	return h
}

// OpenHandle returns a handle that loads src on first use.
func OpenHandle(src Source, logger *slog.Logger) *Handle {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handle{source: src, logger: logger}
}

// Load forces the artifact load and returns its error, if any. Calling Load
// again returns the memoised outcome; a failed load is not retried.
func (h *Handle) Load() error {
	h.once.Do(h.load)

	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.loadErr
}

func (h *Handle) load() {
	a, err := h.source.load()

	h.mu.Lock()
	defer h.mu.Unlock()
	if err != nil {
		h.state = StateFailed
		h.loadErr = err
		h.logger.Error("model load failed",
			slog.String("path", h.source.Describe()),
			slog.String("error", err.Error()))
		return
	}

	h.state = StateLoaded
	h.artifact = a
	h.clf = a.Classifier()
	h.logger.Debug("model loaded",
		slog.String("path", h.source.Describe()),
		slog.String("name", a.Name),
		slog.String("kind", string(a.Kind)),
		slog.String("version", a.FormatVersion))
}

// State reports the lifecycle state without triggering a load.
func (h *Handle) State() State {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state
}

// Artifact returns the loaded artifact, or nil for handles built with
// NewHandle or not yet loaded.
func (h *Handle) Artifact() *model.Artifact {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.artifact
}

func (h *Handle) classifier() (model.Classifier, error) {
	if err := h.Load(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClassifierUnavailable, err)
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.clf, nil
}

// Predict classifies a feature record.
func (h *Handle) Predict(f features.Record) (Result, error) {
	clf, err := h.classifier()
	if err != nil {
		return Result{}, err
	}

	x := f.Vector()
	if n := clf.NumFeatures(); n != len(x) {
		return Result{}, &model.ErrPrediction{Expected: n, Actual: len(x)}
	}

	idx, err := clf.Predict(x)
	if err != nil {
		return Result{}, fmt.Errorf("predict class: %w", err)
	}
	probs, err := clf.PredictProba(x)
	if err != nil {
		return Result{}, fmt.Errorf("predict probabilities: %w", err)
	}

	label, err := LabelFromIndex(idx)
	if err != nil {
		return Result{}, &model.ErrPrediction{Err: err}
	}
	if len(probs) != NumLabels {
		return Result{}, &model.ErrPrediction{
			Err: fmt.Errorf("classifier returned %d probabilities, want %d", len(probs), NumLabels),
		}
	}

	res := Result{Label: label, Features: f}
	copy(res.Probabilities[:], probs)
	return res, nil
}

// Check extracts features from password and classifies them. It does not
// reject empty input; see ValidatePassword.
func (h *Handle) Check(password string) (Result, error) {
	return h.Predict(features.Extract(password))
}
