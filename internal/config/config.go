package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// DefaultStorePath is the store file, relative to the working directory
	DefaultStorePath = "notes.json"
	// DefaultIDStrategy keeps ids equal to collection length + 1
	DefaultIDStrategy = "count"
)

// File mirrors config.toml
type File struct {
	Store StoreSection `toml:"store"`
	Notes NotesSection `toml:"notes"`
}

// StoreSection configures the note store
type StoreSection struct {
	Path string `toml:"path"`
}

// NotesSection configures note operations
type NotesSection struct {
	IDStrategy string `toml:"id_strategy"`
}

// SetDefaults registers default values with viper
func SetDefaults() {
	viper.SetDefault("store.path", DefaultStorePath)
	viper.SetDefault("notes.id_strategy", DefaultIDStrategy)
}

// GetStorePath returns the path of the notes file
func GetStorePath() string {
	if path := viper.GetString("store.path"); path != "" {
		return path
	}
	return DefaultStorePath
}

// GetIDStrategy returns the configured id assignment strategy
func GetIDStrategy() string {
	if strategy := viper.GetString("notes.id_strategy"); strategy != "" {
		return strategy
	}
	return DefaultIDStrategy
}

// GetConfigDir returns $HOME/.config/notes
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "notes"), nil
}

// Default returns the configuration written by WriteDefault
func Default() File {
	return File{
		Store: StoreSection{Path: DefaultStorePath},
		Notes: NotesSection{IDStrategy: DefaultIDStrategy},
	}
}

// WriteDefault creates a config file with default values.
// It returns false without touching anything if the file already exists.
func WriteDefault(fsys afero.Fs, path string) (created bool, err error) {
	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return false, fmt.Errorf("failed to stat config file: %w", err)
	}
	if exists {
		return false, nil
	}

	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := fsys.Create(path)
	if err != nil {
		return false, fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			created = false
			err = fmt.Errorf("failed to close config file: %w", cerr)
		}
	}()

	if err := toml.NewEncoder(f).Encode(Default()); err != nil {
		return false, fmt.Errorf("failed to encode config: %w", err)
	}

	return true, nil
}
