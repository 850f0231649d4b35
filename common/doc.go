// Package common provides shared constants, types, and utilities
// used throughout the Buds Manager application.
//
// This package serves as the foundation for cross-cutting concerns:
//
//   - Constants: Application-wide constants like file names and UI dimensions
//   - Errors: Sentinel errors for consistent error handling across packages
//   - Logger: Leveled logging with optional rotated file output
//   - Utils: Path helpers for the config, data, and runtime directories
//
// # Usage
//
// Import the package to access shared functionality:
//
//	import "github.com/dcampos/buds-manager/common"
//
//	// Use logger
//	common.LogInfo("Device connected: %s", addr)
//
//	// Check errors
//	if errors.Is(err, common.ErrDeviceNotFound) {
//	    // Handle missing device
//	}
package common
