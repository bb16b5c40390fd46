// Package testutil provides file-based fixtures for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SetUpFromFileContent creates a temp file based on the given file content.
func SetUpFromFileContent(t *testing.T, filename string, content string) string {
	dir := t.TempDir()
	return WriteFileNamed(t, dir, filename, content)
}

// SetUpFromDirContent populates a temp directory with the given files.
func SetUpFromDirContent(t *testing.T, files map[string]string) string {
	dir := t.TempDir()
	for filename, content := range files {
		WriteFileNamed(t, dir, filename, content)
	}
	return dir
}

// WriteFileNamed creates a file with the given content inside an existing directory.
func WriteFileNamed(t *testing.T, dir string, filename string, content string) string {
	path := filepath.Join(dir, filename)
	err := os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		t.Fatal(err)
	}
	return path
}
