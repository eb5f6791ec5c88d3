package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	listJSON bool
	listToon bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	Long: `List every note in file order with its ID, title and timestamp.

Examples:
  notes list
  notes list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listCmd.Flags().BoolVar(&listToon, "toon", false, "Output in LLM-friendly toon format")
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	all, err := newService().List()
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}

	if done, err := writeNotes(out, all, listJSON, listToon); done {
		return err
	}

	if len(all) == 0 {
		fmt.Fprintln(out, "The note list is empty.")
		return nil
	}

	fmt.Fprintln(out, "Notes:")
	printNoteLines(out, all)
	return nil
}
