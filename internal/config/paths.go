package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// EnvConfigPath is the environment variable for an explicit config path.
	EnvConfigPath = "OSIVIEW_CONFIG"
	// AppName names the config, data and state directories.
	AppName = "osiview"
)

// homeDirFunc is swapped in tests.
var homeDirFunc = os.UserHomeDir

// FindConfigPath searches for a config file in priority order:
// 1. $OSIVIEW_CONFIG
// 2. $XDG_CONFIG_HOME/osiview/config.yaml
// 3. ~/.config/osiview/config.yaml
//
// Returns empty string if no config file is found.
func FindConfigPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}

	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		path := filepath.Join(xdgHome, AppName, "config.yaml")
		if fileExists(path) {
			return path
		}
	}

	if home, err := homeDirFunc(); err == nil {
		path := filepath.Join(home, ".config", AppName, "config.yaml")
		if fileExists(path) {
			return path
		}
	}

	return ""
}

// DefaultConfigPath returns the preferred location for a new config file.
func DefaultConfigPath() string {
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, AppName, "config.yaml")
	}
	return filepath.Join(homeDir(), ".config", AppName, "config.yaml")
}

// DefaultDatabasePath returns $XDG_DATA_HOME/osiview/osiview.db or the
// ~/.local/share equivalent.
func DefaultDatabasePath() string {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, AppName, AppName+".db")
	}
	return filepath.Join(homeDir(), ".local", "share", AppName, AppName+".db")
}

// DefaultLogPath returns $XDG_STATE_HOME/osiview/osiview.log or the
// ~/.local/state equivalent.
func DefaultLogPath() string {
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, AppName, AppName+".log")
	}
	return filepath.Join(homeDir(), ".local", "state", AppName, AppName+".log")
}

// EnsureConfigDir creates the directory holding path.
func EnsureConfigDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

func homeDir() string {
	home, err := homeDirFunc()
	if err != nil {
		return "."
	}
	return home
}

func expandHome(path string) string {
	if path == "~" {
		return homeDir()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir(), path[2:])
	}
	return path
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
