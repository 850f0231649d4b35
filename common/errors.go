// Package common provides shared constants, types, and utilities
// used across the Buds Manager application.
package common

import "errors"

// Sentinel errors for device and UI operations.
// These can be checked with errors.Is() for proper error handling.
var (
	// Registry errors.
	ErrDeviceNotFound = errors.New("device not found in registry")

	// Settings errors.
	ErrSettingsSave = errors.New("failed to save settings")

	// Configuration errors.
	ErrConfigLoad = errors.New("failed to load configuration")
	ErrConfigSave = errors.New("failed to save configuration")

	// Command channel errors.
	ErrDaemonUnavailable = errors.New("protocol daemon not reachable")
)

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
