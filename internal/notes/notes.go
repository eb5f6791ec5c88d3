// Package notes implements the note operations on top of the store.
// Every operation loads the full collection, mutates it and saves it back.
package notes

import (
	"errors"
	"fmt"
	"time"

	"github.com/pders01/notes/internal/models"
	"github.com/pders01/notes/internal/store"
)

var (
	// ErrNotFound is returned when no note has the requested id
	ErrNotFound = errors.New("note not found")
	// ErrInvalidDate is returned when a date filter is not YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid date format")
)

// IDStrategy selects how new note ids are assigned
type IDStrategy string

const (
	// IDCount assigns len(notes)+1. Ids can repeat after a deletion.
	IDCount IDStrategy = "count"
	// IDMax assigns max(existing ids)+1
	IDMax IDStrategy = "max"
)

// IsValid reports whether s is a known strategy
func (s IDStrategy) IsValid() bool {
	switch s {
	case IDCount, IDMax:
		return true
	default:
		return false
	}
}

// Service runs note operations against a store
type Service struct {
	store    *store.Store
	now      func() time.Time
	strategy IDStrategy
}

// Option configures a Service
type Option func(*Service)

// WithClock overrides the time source used for timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithIDStrategy sets the id assignment strategy. Unknown values are ignored.
func WithIDStrategy(strategy IDStrategy) Option {
	return func(s *Service) {
		if strategy.IsValid() {
			s.strategy = strategy
		}
	}
}

// New creates a Service. Defaults: time.Now and IDCount.
func New(st *store.Store, opts ...Option) *Service {
	s := &Service{
		store:    st,
		now:      time.Now,
		strategy: IDCount,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends a new note and saves the collection
func (s *Service) Add(title, body string) (models.Note, error) {
	notes, err := s.store.Load()
	if err != nil {
		return models.Note{}, err
	}

	note := models.Note{
		ID:        s.nextID(notes),
		Title:     title,
		Body:      body,
		Timestamp: models.FormatTimestamp(s.now()),
	}
	notes = append(notes, note)

	if err := s.store.Save(notes); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// List returns all notes in file order
func (s *Service) List() ([]models.Note, error) {
	return s.store.Load()
}

// ByDate returns the notes whose timestamp falls on date (YYYY-MM-DD),
// preserving file order. The store is not read if date is malformed.
func (s *Service) ByDate(date string) ([]models.Note, error) {
	target, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q (use YYYY-MM-DD)", ErrInvalidDate, date)
	}
	want := target.Format(models.DateLayout)

	notes, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	matches := []models.Note{}
	for _, note := range notes {
		day, err := note.Date()
		if err != nil {
			return nil, err
		}
		if day == want {
			matches = append(matches, note)
		}
	}

	return matches, nil
}

// Edit replaces the title and body of the first note with id and refreshes
// its timestamp. Nothing is saved when the id is unknown.
func (s *Service) Edit(id int, title, body string) (models.Note, error) {
	notes, err := s.store.Load()
	if err != nil {
		return models.Note{}, err
	}

	for i := range notes {
		if notes[i].ID != id {
			continue
		}

		notes[i].Title = title
		notes[i].Body = body
		notes[i].Timestamp = models.FormatTimestamp(s.now())

		if err := s.store.Save(notes); err != nil {
			return models.Note{}, err
		}
		return notes[i], nil
	}

	return models.Note{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
}

// Delete removes every note with id and returns how many were removed.
// Nothing is saved when the id is unknown.
func (s *Service) Delete(id int) (int, error) {
	notes, err := s.store.Load()
	if err != nil {
		return 0, err
	}

	kept := make([]models.Note, 0, len(notes))
	for _, note := range notes {
		if note.ID != id {
			kept = append(kept, note)
		}
	}

	removed := len(notes) - len(kept)
	if removed == 0 {
		return 0, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	if err := s.store.Save(kept); err != nil {
		return 0, err
	}

	return removed, nil
}

func (s *Service) nextID(notes []models.Note) int {
	if s.strategy == IDMax {
		highest := 0
		for _, note := range notes {
			if note.ID > highest {
				highest = note.ID
			}
		}
		return highest + 1
	}

	return len(notes) + 1
}
