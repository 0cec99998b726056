package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/colonyops/taskboard/internal/core/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "taskboard", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/taskboard/taskboard.log
// On Linux: $XDG_STATE_HOME/taskboard/taskboard.log (defaults to ~/.local/state/taskboard/taskboard.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "taskboard", "taskboard.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "taskboard", "taskboard.log")
	}

	return filepath.Join(home, ".local", "state", "taskboard", "taskboard.log")
}

// LoadConfig reads the config file into flags.Config. The config and init
// commands accept an invalid file, since they report on it or replace it;
// every other command requires a valid one.
func LoadConfig(flags *Flags, command string) error {
	cfg, err := config.Read(flags.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	flags.Config = cfg

	switch command {
	case "config", "init":
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
