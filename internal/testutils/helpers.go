package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFile creates name inside a fresh temporary directory with the given content.
// It returns the absolute path to the file and fails the test immediately on error.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	absDir, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	path := filepath.Join(absDir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600), "Failed to write %s", name)
	return path
}

// Env returns a lookup function backed by vars, in the shape of os.LookupEnv.
func Env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}
