// Package ui provides the graphical user interface for Buds Manager.
//
// This package implements the GTK4-based user interface including:
//
//   - Main application window with a device sidebar and detail pane
//   - System tray indicator with battery icon and device controls
//   - Status icon rasterizer for the tray
//   - Desktop notifications
//
// # Architecture
//
// The UI follows a single update loop: every input — a device event
// resolved from the bridge, a sidebar click, a tray menu click — is a
// Message fed through Update, a pure (state, message) -> (state,
// effects) function. Effects are executed by the Application shell
// afterwards, so the update itself never blocks and never touches the
// toolkit.
//
// # Thread Safety
//
// GTK operations must execute on the main thread. Background
// goroutines (the bridge pump, tray click handlers) hand their
// messages to the loop via DispatchAsync, which schedules through
// glib.IdleAdd().
//
// # File Organization
//
//   - app.go: Application lifecycle and effect execution
//   - state.go: Application state and the update function
//   - messages.go: Message and effect variants
//   - main_window.go: Main window and split layout
//   - device_view.go: Device detail pane
//   - settings_view.go: Settings pane
//   - tray.go: System tray presenter
//   - icons.go: Status icon rasterizer
//   - styles.go: CSS styling
//   - notifications.go: Desktop notification integration
package ui
