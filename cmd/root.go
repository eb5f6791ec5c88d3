package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/pders01/notes/internal/config"
	"github.com/pders01/notes/internal/notes"
	"github.com/pders01/notes/internal/store"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	storePath string
)

var rootCmd = &cobra.Command{
	Use:   "notes",
	Short: "Personal note-taking from the command line",
	Long: `notes keeps short text notes in a JSON file (notes.json by default).

Commands:
  add     --title T --msg B          add a note
  list                               list all notes
  read    --date YYYY-MM-DD          show notes from a given day
  edit    --id N --title T --msg B   replace a note's title and body
  delete  --id N                     remove a note`,
	// Execute prints the error once.
	SilenceErrors: true,
	// Flags and args are valid by now; later errors are not usage errors.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cmd.SilenceUsage = true
	},
	// No command is a no-op.
	RunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/notes/config.toml)")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "notes file (default is notes.json in the working directory)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		configDir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		viper.AddConfigPath(configDir)
		viper.SetConfigType("toml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("notes")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.BindPFlag("store.path", rootCmd.PersistentFlags().Lookup("store")); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to bind --store: %v\n", err)
	}

	config.SetDefaults()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newService builds the note service from the current configuration
func newService() *notes.Service {
	strategy := notes.IDStrategy(config.GetIDStrategy())
	if !strategy.IsValid() {
		fmt.Fprintf(os.Stderr, "Warning: unknown id strategy %q, using %q\n", strategy, notes.IDCount)
	}

	st := store.New(afero.NewOsFs(), config.GetStorePath())
	return notes.New(st, notes.WithIDStrategy(strategy))
}
