package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new note",
	Long: `Add a note with a title and a body. The note gets the next ID and the
current local time as its timestamp.

Example:
  notes add --title "Groceries" --msg "milk, eggs"`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if !noteTitle.set || !noteMsg.set {
		fmt.Fprintln(out, "To add a note, provide a title (--title) and a body (--msg).")
		return nil
	}

	note, err := newService().Add(noteTitle.value, noteMsg.value)
	if err != nil {
		return fmt.Errorf("failed to add note: %w", err)
	}

	fmt.Fprintf(out, "Note saved (ID: %d).\n", note.ID)
	return nil
}
