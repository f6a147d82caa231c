// Package testutil provides common test helpers for the hbgen project.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempConfigFile creates a temporary config.toml with the given content
// and returns its path. The file is automatically cleaned up.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()
	return tempFile(t, "config.toml", content)
}

// TempStorageFile creates a temporary storage.json with the given content
// and returns its path.
func TempStorageFile(t *testing.T, content string) string {
	t.Helper()
	return tempFile(t, "storage.json", content)
}

// TempHome points HOME (and USERPROFILE) at a fresh temporary directory
// and returns it.
func TempHome(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("USERPROFILE", dir)
	return dir
}

func tempFile(t *testing.T, name, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("testutil: write %s failed: %v", name, err)
	}

	return path
}
