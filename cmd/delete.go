package cmd

import (
	"errors"
	"fmt"

	"github.com/pders01/notes/internal/notes"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a note",
	Long: `Delete the note with the given ID. If several notes share the ID,
all of them are removed.

Example:
  notes delete --id 3`,
	Args: cobra.NoArgs,
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if !noteID.set {
		fmt.Fprintln(out, "To delete a note, provide an ID (--id).")
		return nil
	}

	id := noteID.value
	removed, err := newService().Delete(id)
	if errors.Is(err, notes.ErrNotFound) {
		fmt.Fprintf(out, "Note with ID %d not found.\n", id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	if removed > 1 {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %d notes shared ID %d\n", removed, id)
	}
	fmt.Fprintf(out, "Note with ID %d deleted.\n", id)
	return nil
}
