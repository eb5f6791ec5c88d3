package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alpkeskin/gotoon"
	"github.com/pders01/notes/internal/models"
)

// printNoteLines writes one summary line per note; the body is omitted
func printNoteLines(w io.Writer, notes []models.Note) {
	for _, n := range notes {
		fmt.Fprintf(w, "ID: %d, Title: %s, Timestamp: %s\n", n.ID, n.Title, n.Timestamp)
	}
}

// writeNotes encodes full notes as JSON or toon.
// It returns false when neither format was requested.
func writeNotes(w io.Writer, notes []models.Note, asJSON, asToon bool) (bool, error) {
	if notes == nil {
		notes = []models.Note{}
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(notes); err != nil {
			return true, fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return true, nil
	}

	if asToon {
		output, err := gotoon.Encode(notes)
		if err != nil {
			return true, fmt.Errorf("failed to encode Toon: %w", err)
		}
		fmt.Fprintln(w, output)
		return true, nil
	}

	return false, nil
}
