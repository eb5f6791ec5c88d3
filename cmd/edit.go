package cmd

import (
	"errors"
	"fmt"

	"github.com/pders01/notes/internal/notes"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Replace a note's title and body",
	Long: `Replace the title and body of the note with the given ID and refresh
its timestamp.

Example:
  notes edit --id 3 --title "Groceries" --msg "milk, eggs, bread"`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if !noteID.set || !noteTitle.set || !noteMsg.set {
		fmt.Fprintln(out, "To edit a note, provide an ID (--id), a title (--title) and a body (--msg).")
		return nil
	}

	id := noteID.value
	_, err := newService().Edit(id, noteTitle.value, noteMsg.value)
	if errors.Is(err, notes.ErrNotFound) {
		fmt.Fprintf(out, "Note with ID %d not found.\n", id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to edit note: %w", err)
	}

	fmt.Fprintf(out, "Note with ID %d updated.\n", id)
	return nil
}
