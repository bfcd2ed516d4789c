package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const appDir = "shell-mommy"

// ConfigDir returns the per-user configuration directory.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, appDir)
}

// SettingsPath returns the default settings file location.
func SettingsPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// MoodDBPath returns the mood-state database location.
func MoodDBPath() string {
	return filepath.Join(xdg.DataHome, appDir, "mood.db")
}
