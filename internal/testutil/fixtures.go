// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/treeschema/value"
)

// Ptr returns a pointer to the given value. Useful for optional fields
// in test fixtures.
func Ptr[T any](v T) *T {
	return &v
}

// Obj builds a mapping Value from generic Go literals, panicking on
// unsupported content. Keeps schema fixtures in tests readable.
func Obj(fields map[string]any) value.Value {
	return value.MustFromGo(fields)
}

// Arr builds a sequence Value from generic Go literals.
func Arr(items ...any) value.Value {
	return value.MustFromGo(items)
}

// WriteFile writes content to a file under the test's temp directory and
// returns its path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
	return path
}
