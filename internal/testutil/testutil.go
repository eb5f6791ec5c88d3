package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// StoreFile is the store file name used in a workspace
const StoreFile = "notes.json"

// TempWorkspace is a temporary working directory for command tests
type TempWorkspace struct {
	Path  string
	T     *testing.T
	oldWd string
}

// NewTempWorkspace creates a temporary directory and changes into it
func NewTempWorkspace(t *testing.T) *TempWorkspace {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "notes-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	oldWd, err := os.Getwd()
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("failed to get working directory: %v", err)
	}

	if err := os.Chdir(tmpDir); err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("failed to change directory: %v", err)
	}

	return &TempWorkspace{
		Path:  tmpDir,
		T:     t,
		oldWd: oldWd,
	}
}

// Cleanup restores the working directory and removes the workspace
func (w *TempWorkspace) Cleanup() {
	w.T.Helper()
	if err := os.Chdir(w.oldWd); err != nil {
		w.T.Errorf("failed to restore working directory: %v", err)
	}
	if err := os.RemoveAll(w.Path); err != nil {
		w.T.Errorf("failed to cleanup workspace: %v", err)
	}
}

// StorePath returns the absolute path of the store file
func (w *TempWorkspace) StorePath() string {
	return filepath.Join(w.Path, StoreFile)
}

// CreateFile creates a file in the workspace
func (w *TempWorkspace) CreateFile(name, content string) {
	w.T.Helper()
	path := filepath.Join(w.Path, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		w.T.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		w.T.Fatalf("failed to create file: %v", err)
	}
}

// WriteStore replaces the store file content
func (w *TempWorkspace) WriteStore(content string) {
	w.T.Helper()
	w.CreateFile(StoreFile, content)
}

// ReadStore returns the raw store file content
func (w *TempWorkspace) ReadStore() string {
	w.T.Helper()
	data, err := os.ReadFile(w.StorePath())
	if err != nil {
		w.T.Fatalf("failed to read store: %v", err)
	}
	return string(data)
}

// StoreExists checks if the store file has been created
func (w *TempWorkspace) StoreExists() bool {
	w.T.Helper()
	_, err := os.Stat(w.StorePath())
	return err == nil
}
