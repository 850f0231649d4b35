// Package common provides shared constants, types, and utilities
// used across the Buds Manager application.
package common

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// sessionID identifies one run of the application in logs and
// persisted history rows.
var sessionID = uuid.NewString()

// SessionID returns the identifier for this application run.
func SessionID() string {
	return sessionID
}

// GetConfigDir returns the path to the application configuration directory.
// It creates the directory if it doesn't exist.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", WrapError(err, "failed to get home directory")
	}

	configDir := filepath.Join(homeDir, ".config", ConfigDirName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", WrapError(err, "failed to create config directory")
	}

	return configDir, nil
}

// GetDataDir returns the path to the application data directory.
func GetDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", WrapError(err, "failed to get home directory")
	}

	dataDir := filepath.Join(homeDir, ".local", "share", ConfigDirName)
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", WrapError(err, "failed to create data directory")
	}

	return dataDir, nil
}

// DevicesPath returns the path to the device registry file maintained
// by the protocol daemon. The file is read-only from this application.
func DevicesPath() string {
	configDir, err := GetConfigDir()
	if err != nil {
		return DevicesFileName
	}
	return filepath.Join(configDir, DevicesFileName)
}

// SettingsPath returns the path to the persisted UI settings file.
func SettingsPath() string {
	configDir, err := GetConfigDir()
	if err != nil {
		return SettingsFileName
	}
	return filepath.Join(configDir, SettingsFileName)
}

// CommandSocketPath returns the unix socket the protocol daemon
// listens on for control commands.
func CommandSocketPath() string {
	dir := os.Getenv("XDG_RUNTIME_DIR")
	if dir == "" {
		dir = "/tmp"
	}
	return filepath.Join(dir, CommandSocketName)
}

// FileExists checks if a file exists at the given path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
