package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/pders01/notes/internal/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long: `Write a config file with default settings if it doesn't exist.

The file is $HOME/.config/notes/config.toml unless --config is given.
Settings:
  store.path         notes file (default notes.json)
  notes.id_strategy  "count" (number of notes + 1) or "max" (highest ID + 1)`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	configPath := cfgFile
	if configPath == "" {
		configDir, err := config.GetConfigDir()
		if err != nil {
			return err
		}
		configPath = filepath.Join(configDir, "config.toml")
	}

	created, err := config.WriteDefault(afero.NewOsFs(), configPath)
	if err != nil {
		return err
	}

	if !created {
		fmt.Fprintf(out, "Config already exists: %s\n", configPath)
		return nil
	}

	fmt.Fprintf(out, "✓ Created default config: %s\n", configPath)
	return nil
}
