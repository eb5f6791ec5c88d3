package cmd

import (
	"errors"
	"fmt"

	"github.com/pders01/notes/internal/notes"
	"github.com/spf13/cobra"
)

var (
	readJSON bool
	readToon bool
)

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Show notes from a given day",
	Long: `Show the notes whose timestamp falls on the given date.

Example:
  notes read --date 2024-01-15`,
	Args: cobra.NoArgs,
	RunE: runRead,
}

func init() {
	rootCmd.AddCommand(readCmd)

	readCmd.Flags().BoolVar(&readJSON, "json", false, "Output as JSON")
	readCmd.Flags().BoolVar(&readToon, "toon", false, "Output in LLM-friendly toon format")
}

func runRead(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if !noteDate.set {
		fmt.Fprintln(out, "To read notes by date, provide --date (YYYY-MM-DD).")
		return nil
	}

	date := noteDate.value
	matches, err := newService().ByDate(date)
	if errors.Is(err, notes.ErrInvalidDate) {
		fmt.Fprintln(out, "Invalid date format. Use YYYY-MM-DD.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read notes: %w", err)
	}

	if done, err := writeNotes(out, matches, readJSON, readToon); done {
		return err
	}

	if len(matches) == 0 {
		fmt.Fprintf(out, "No notes found for %s.\n", date)
		return nil
	}

	fmt.Fprintf(out, "Notes for %s:\n", date)
	printNoteLines(out, matches)
	return nil
}
