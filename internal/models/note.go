package models

import (
	"fmt"
	"time"
)

const (
	// TimestampLayout is the on-disk format of Note.Timestamp
	TimestampLayout = "2006-01-02 15:04:05"
	// DateLayout is the format accepted by date filters
	DateLayout = "2006-01-02"
)

// Note represents a single user-authored note as stored in notes.json
type Note struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Timestamp string `json:"timestamp"` // last modification, local time
}

// FormatTimestamp renders t in the stored timestamp format
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Date returns the calendar date part of the note's timestamp
// Format: YYYY-MM-DD
func (n Note) Date() (string, error) {
	ts, err := time.ParseInLocation(TimestampLayout, n.Timestamp, time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid timestamp for note %d: %w", n.ID, err)
	}
	return ts.Format(DateLayout), nil
}
