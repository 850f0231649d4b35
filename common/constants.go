// Package common provides shared constants, types, and utilities
// used across the Buds Manager application.
package common

// Application metadata.
const (
	// AppID is the unique identifier for the application.
	AppID = "com.budsmanager.app"
	// AppName is the display name of the application.
	AppName = "Buds Manager"
	// ConfigDirName is the name of the configuration directory.
	ConfigDirName = "buds-manager"
)

// File names used by the application.
const (
	ConfigFileName    = "config.yaml"
	SettingsFileName  = "settings.json"
	DevicesFileName   = "devices.json"
	HistoryFileName   = "history.db"
	LogFileName       = "buds-manager.log"
	CommandSocketName = "buds-protocol.sock"
)

// UI constants.
const (
	// DefaultWindowWidth is the default main window width.
	DefaultWindowWidth = 800
	// DefaultWindowHeight is the default main window height.
	DefaultWindowHeight = 600
	// MinWindowWidth is the minimum window width.
	MinWindowWidth = 400
	// MinWindowHeight is the minimum window height.
	MinWindowHeight = 300
	// SidebarRatio is the initial sidebar share of the split layout.
	SidebarRatio = 0.2
	// TrayIconSize is the width and height of the tray icon in pixels.
	TrayIconSize = 64
)
