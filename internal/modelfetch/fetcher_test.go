package modelfetch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pwmeter/internal/model"
)

func treeFixture(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "model", "testdata", "tree.json"))
	require.NoError(t, err)
	return data
}

func sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

func serve(t *testing.T, files map[string][]byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, ok := files[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(data)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch_WithExplicitChecksum(t *testing.T) {
	data := treeFixture(t)
	srv := serve(t, map[string][]byte{"/model.json": data})
	dest := filepath.Join(t.TempDir(), "models", "model.json")

	var stages []string
	a, err := New().Fetch(context.Background(), &FetchInput{
		URL:    srv.URL + "/model.json",
		Dest:   dest,
		SHA256: sum(data),
	}, func(p Progress) { stages = append(stages, p.Stage) })
	require.NoError(t, err)
	assert.Equal(t, model.KindTree, a.Kind)
	assert.Equal(t, []string{"download", "verify", "validate", "install", "done"}, stages)

	installed, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, data, installed)

	_, err = model.Load(dest)
	assert.NoError(t, err)
}

func TestFetch_WithSidecar(t *testing.T) {
	data := treeFixture(t)
	srv := serve(t, map[string][]byte{
		"/model.json":        data,
		"/model.json.sha256": []byte(sum(data) + "  model.json\n"),
	})
	dest := filepath.Join(t.TempDir(), "model.json")

	_, err := New().Fetch(context.Background(), &FetchInput{URL: srv.URL + "/model.json", Dest: dest}, nil)
	require.NoError(t, err)
	assert.FileExists(t, dest)
}

func TestFetch_ChecksumMismatchLeavesDestUntouched(t *testing.T) {
	data := treeFixture(t)
	srv := serve(t, map[string][]byte{"/model.json": data})
	dest := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(dest, []byte("previous"), 0o644))

	_, err := New().Fetch(context.Background(), &FetchInput{
		URL:    srv.URL + "/model.json",
		Dest:   dest,
		SHA256: sum([]byte("something else")),
	}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrChecksum))

	kept, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(kept))
}

func TestFetch_MissingSidecar(t *testing.T) {
	srv := serve(t, map[string][]byte{"/model.json": treeFixture(t)})
	_, err := New().Fetch(context.Background(), &FetchInput{
		URL:  srv.URL + "/model.json",
		Dest: filepath.Join(t.TempDir(), "model.json"),
	}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoChecksum))
}

func TestFetch_InvalidArtifactNotInstalled(t *testing.T) {
	bad := []byte(`{"format_version": "v1.0.0", "features": ["length"], "classes": ["Weak","Medium","Strong"], "kind": "tree", "tree": {"nodes": [{"feature": -1, "value": [1,1,1]}]}}`)
	srv := serve(t, map[string][]byte{"/model.json": bad})
	dest := filepath.Join(t.TempDir(), "model.json")

	_, err := New().Fetch(context.Background(), &FetchInput{URL: srv.URL + "/model.json", Dest: dest, SHA256: sum(bad)}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrSchemaMismatch))
	assert.NoFileExists(t, dest)
}

func TestFetch_HTTPError(t *testing.T) {
	srv := serve(t, map[string][]byte{})
	_, err := New().Fetch(context.Background(), &FetchInput{URL: srv.URL + "/absent.json", Dest: filepath.Join(t.TempDir(), "m.json"), SHA256: "00"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestFetch_RequiresInput(t *testing.T) {
	_, err := New().Fetch(context.Background(), &FetchInput{}, nil)
	assert.Error(t, err)
}

func TestParseChecksum(t *testing.T) {
	valid := sum([]byte("x"))
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"bare", valid, valid, false},
		{"with name", valid + "  model.json\n", valid, false},
		{"leading blank lines", "\n\n" + valid + "\n", valid, false},
		{"upper case", "  " + hexUpper(valid), valid, false},
		{"empty", "", "", true},
		{"too short", "abc123  model.json", "", true},
		{"not hex", "zz" + valid[2:], "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseChecksum([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func hexUpper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'f' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("artifact")
	assert.NoError(t, verifyChecksum(data, sum(data)))
	assert.ErrorIs(t, verifyChecksum(data, sum([]byte("other"))), ErrChecksum)
}
