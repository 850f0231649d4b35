// Package config provides configuration management for Buds Manager.
// This file contains the persisted UI settings shared with the
// protocol daemon: a small JSON document holding the selected theme.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dcampos/buds-manager/common"
)

// Theme is the persisted appearance preference.
type Theme string

const (
	ThemeLight Theme = "Light"
	ThemeDark  Theme = "Dark"
)

// DefaultTheme is used when the settings file is missing or malformed.
const DefaultTheme = ThemeDark

// Themes returns the selectable themes in display order.
func Themes() []Theme {
	return []Theme{ThemeLight, ThemeDark}
}

// IsDark reports whether the theme prefers a dark color scheme.
func (t Theme) IsDark() bool {
	return t == ThemeDark
}

// settingsFile is the on-disk layout of the settings document. The
// protocol daemon reads the same file, so the key name is a contract.
type settingsFile struct {
	Theme Theme `json:"theme"`
}

// SettingsStore reads and writes the persisted UI settings file.
type SettingsStore struct {
	path string
}

// NewSettingsStore creates a store backed by the given file path.
func NewSettingsStore(path string) *SettingsStore {
	return &SettingsStore{path: path}
}

// DefaultSettingsStore creates a store at the standard settings path.
func DefaultSettingsStore() *SettingsStore {
	return NewSettingsStore(common.SettingsPath())
}

// Theme returns the persisted theme. A missing or malformed file, or
// an unknown theme value, yields DefaultTheme rather than an error.
func (s *SettingsStore) Theme() Theme {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return DefaultTheme
	}

	var settings settingsFile
	if err := json.Unmarshal(data, &settings); err != nil {
		common.LogWarn("Malformed settings file %s: %v", s.path, err)
		return DefaultTheme
	}

	switch settings.Theme {
	case ThemeLight, ThemeDark:
		return settings.Theme
	default:
		return DefaultTheme
	}
}

// SetTheme writes the whole settings file synchronously. The write is
// small and infrequent, so blocking the caller is acceptable.
func (s *SettingsStore) SetTheme(theme Theme) error {
	data, err := json.Marshal(settingsFile{Theme: theme})
	if err != nil {
		return common.WrapError(err, "error serializing settings")
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("%w: %v", common.ErrSettingsSave, err)
	}
	return nil
}
