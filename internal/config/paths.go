package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// HomeEnv overrides the mapplock home directory
	HomeEnv = "MAPPLOCK_HOME"

	// SettingsFile is the settings file name inside the home directory
	SettingsFile = "settings.json"

	// DatabaseFile is the session database file name inside the home directory
	DatabaseFile = "state.db"
)

// GetHome returns $MAPPLOCK_HOME, or ~/.mapplock when unset
func GetHome() string {
	if home := os.Getenv(HomeEnv); home != "" {
		return ExpandPath(home)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".mapplock"
	}
	return filepath.Join(homeDir, ".mapplock")
}

// GetSettingsPath returns the path to settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), SettingsFile)
}

// GetDBPath returns the path to the session database
func GetDBPath() string {
	return filepath.Join(GetHome(), DatabaseFile)
}

// ExpandPath expands a leading ~ to the user's home directory
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return homeDir
	}
	return filepath.Join(homeDir, path[2:])
}
