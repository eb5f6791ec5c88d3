// Package store persists the note collection as a single JSON file.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pders01/notes/internal/models"
	"github.com/spf13/afero"
)

// Store reads and writes the full note collection at a fixed path
type Store struct {
	fs   afero.Fs
	path string
}

// New creates a store backed by the given filesystem
func New(fsys afero.Fs, path string) *Store {
	return &Store{
		fs:   fsys,
		path: path,
	}
}

// Path returns the location of the store file
func (s *Store) Path() string {
	return s.path
}

// Load reads the collection. A missing file yields an empty collection.
func (s *Store) Load() ([]models.Note, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Note{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var notes []models.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	if notes == nil {
		notes = []models.Note{}
	}

	return notes, nil
}

// Save overwrites the store file with the full collection
func (s *Store) Save(notes []models.Note) error {
	if notes == nil {
		notes = []models.Note{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(notes); err != nil {
		return fmt.Errorf("failed to marshal notes: %w", err)
	}

	if err := afero.WriteFile(s.fs, s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}

	return nil
}
