package config

import (
	"fmt"
	"os"
	"path/filepath"
)

type Config struct {
	Home      string
	GoalsDir  string
	DataPath  string
	IndexPath string
}

// New resolves the journal home directory. An empty home falls back to
// TOOBUFF_HOME, then ~/.toobuff.
func New(home string) (Config, error) {
	if home == "" {
		home = os.Getenv("TOOBUFF_HOME")
	}
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory: %w", err)
		}
		home = filepath.Join(userHome, ".toobuff")
	}
	return Config{
		Home:      home,
		GoalsDir:  filepath.Join(home, "goals"),
		DataPath:  filepath.Join(home, "journal.json"),
		IndexPath: filepath.Join(home, "index.db"),
	}, nil
}
