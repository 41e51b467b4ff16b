// Package modelfetch installs classifier artifacts published by the training
// pipeline. Downloads are checksum-verified and validated before they replace
// anything on disk.
package modelfetch

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/abhisek/pwmeter/internal/model"
)

var (
	ErrChecksum   = errors.New("checksum verification failed")
	ErrNoChecksum = errors.New("no checksum available")
)

// maxArtifactSize bounds downloads; real artifacts are a few kilobytes.
const maxArtifactSize = 16 << 20

// Fetcher downloads and installs model artifacts.
type Fetcher struct {
	client *http.Client
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.client.Timeout = d }
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) { f.client = c }
}

// New returns a Fetcher with a 30s timeout.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{client: &http.Client{Timeout: 30 * time.Second}}
	for _, o := range opts {
		o(f)
	}
	return f
}

// FetchInput describes one install.
type FetchInput struct {
	URL  string
	Dest string
	// SHA256 is the expected hex digest. When empty, the digest is read from
	// the "<URL>.sha256" sidecar.
	SHA256 string
}

// Progress reports a pipeline stage.
type Progress struct {
	Stage   string
	Message string
}

// Fetch downloads, verifies, validates and atomically installs an artifact.
// The returned artifact is the one now at Dest.
func (f *Fetcher) Fetch(ctx context.Context, in *FetchInput, progress func(Progress)) (*model.Artifact, error) {
	if progress == nil {
		progress = func(Progress) {}
	}
	if in.URL == "" || in.Dest == "" {
		return nil, fmt.Errorf("url and destination are required")
	}

	progress(Progress{Stage: "download", Message: fmt.Sprintf("Downloading %s...", in.URL)})
	data, err := f.download(ctx, in.URL)
	if err != nil {
		return nil, fmt.Errorf("download artifact: %w", err)
	}

	expected := strings.ToLower(strings.TrimSpace(in.SHA256))
	if expected == "" {
		progress(Progress{Stage: "checksum", Message: "Fetching checksum..."})
		sidecar, err := f.download(ctx, in.URL+".sha256")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoChecksum, err)
		}
		expected, err = parseChecksum(sidecar)
		if err != nil {
			return nil, err
		}
	}

	progress(Progress{Stage: "verify", Message: "Verifying checksum..."})
	if err := verifyChecksum(data, expected); err != nil {
		return nil, err
	}

	progress(Progress{Stage: "validate", Message: "Validating artifact..."})
	artifact, err := model.Parse(data)
	if err != nil {
		return nil, err
	}

	progress(Progress{Stage: "install", Message: fmt.Sprintf("Installing to %s...", in.Dest)})
	if err := install(data, in.Dest); err != nil {
		return nil, fmt.Errorf("install artifact: %w", err)
	}

	progress(Progress{Stage: "done", Message: fmt.Sprintf("Installed %s (%s %s)", artifact.Name, artifact.Kind, artifact.FormatVersion)})
	return artifact, nil
}

func (f *Fetcher) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxArtifactSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxArtifactSize {
		return nil, fmt.Errorf("%s exceeds %d bytes", url, maxArtifactSize)
	}
	return data, nil
}

// parseChecksum reads a sha256sum-style sidecar: "<hex>  <name>" or "<hex>".
func parseChecksum(data []byte) (string, error) {
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		sum := strings.ToLower(fields[0])
		if len(sum) != sha256.Size*2 {
			return "", fmt.Errorf("%w: malformed sidecar line %q", ErrNoChecksum, line)
		}
		if _, err := hex.DecodeString(sum); err != nil {
			return "", fmt.Errorf("%w: malformed sidecar line %q", ErrNoChecksum, line)
		}
		return sum, nil
	}
	return "", fmt.Errorf("%w: empty sidecar", ErrNoChecksum)
}

func verifyChecksum(data []byte, expectedHex string) error {
	h := sha256.Sum256(data)
	actual := hex.EncodeToString(h[:])
	if actual != expectedHex {
		return fmt.Errorf("%w: expected %s, got %s", ErrChecksum, expectedHex, actual)
	}
	return nil
}

// install writes data beside dest and renames it into place.
func install(data []byte, dest string) error {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".pwmeter-model-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	// Post-write verification: re-read and compare.
	written, err := os.ReadFile(tmpPath)
	if err != nil {
		return fmt.Errorf("re-read temp file: %w", err)
	}
	if !bytes.Equal(written, data) {
		return fmt.Errorf("%w: temp file changed after write", ErrChecksum)
	}

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
