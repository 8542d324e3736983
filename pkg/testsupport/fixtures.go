package testsupport

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// MustReadGoldenLines reads a golden file and splits it into lines, dropping
// the trailing line break.
func MustReadGoldenLines(t *testing.T, path string) []string {
	t.Helper()
	content := strings.TrimSuffix(MustReadGoldenString(t, path), "\n")
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureOutput executes a function that writes to an io.Writer, returning
// the writer contents.
func CaptureOutput(t *testing.T, write func(io.Writer) error) string {
	t.Helper()

	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		t.Fatalf("write output: %v", err)
	}
	return buf.String()
}
