package ui

import (
	"github.com/dcampos/buds-manager/config"
	"github.com/dcampos/buds-manager/device"
)

// WindowHandle identifies one toolkit window instance. Handles are
// opaque and never reused within a process.
type WindowHandle uint64

// Message is one input to the UI update loop. The loop is
// single-threaded: every state change in the application flows through
// exactly one of these variants.
type Message interface {
	isMessage()
}

// BridgeEvent wraps an event resolved from the event bridge.
type BridgeEvent struct {
	Event device.Event
}

// WindowOpened reports that the toolkit finished creating the main
// window requested earlier.
type WindowOpened struct {
	Handle WindowHandle
}

// WindowClosed reports that the toolkit destroyed the window with the
// given handle.
type WindowClosed struct {
	Handle WindowHandle
}

// PaneResized reports a user drag of the sidebar divider.
type PaneResized struct {
	Ratio float64
}

// RowSelected reports a sidebar row activation.
type RowSelected struct {
	Selection Selection
}

// ThemeSelected reports a theme choice in the settings pane.
type ThemeSelected struct {
	Theme config.Theme
}

// CopySerial asks for a serial number string to be placed on the
// clipboard, verbatim.
type CopySerial struct {
	Text string
}

// ListeningModeSelected reports a tray listening-mode menu click.
type ListeningModeSelected struct {
	Mode uint8
}

// ConversationDetectToggled reports a tray toggle of conversation
// detection.
type ConversationDetectToggled struct {
	Enabled bool
}

func (BridgeEvent) isMessage()               {}
func (WindowOpened) isMessage()              {}
func (WindowClosed) isMessage()              {}
func (PaneResized) isMessage()               {}
func (RowSelected) isMessage()               {}
func (ThemeSelected) isMessage()             {}
func (CopySerial) isMessage()                {}
func (ListeningModeSelected) isMessage()     {}
func (ConversationDetectToggled) isMessage() {}

// Effect is one unit of deferred work emitted by Update. Effects are
// executed outside the update function so the update itself never
// blocks.
type Effect interface {
	isEffect()
}

// EffectAwaitNext re-arms the event bridge for the next event.
type EffectAwaitNext struct{}

// EffectCreateWindow asks the toolkit for a new main window.
type EffectCreateWindow struct{}

// EffectFocusWindow raises the existing main window.
type EffectFocusWindow struct {
	Handle WindowHandle
}

// EffectRefreshTray pushes the current status snapshot into the tray
// presenter.
type EffectRefreshTray struct{}

// EffectRefreshWindow re-renders the sidebar and content panes.
type EffectRefreshWindow struct{}

// EffectSendCommand delivers an outbound control command to the
// protocol layer.
type EffectSendCommand struct {
	Command device.Command
}

// EffectSaveTheme writes the theme preference through to disk and
// applies it to the running toolkit.
type EffectSaveTheme struct {
	Theme config.Theme
}

// EffectCopyClipboard places text on the system clipboard.
type EffectCopyClipboard struct {
	Text string
}

// EffectNotify shows a desktop notification.
type EffectNotify struct {
	Summary string
	Body    string
}

// EffectRecordBattery persists the current battery readings for the
// given device.
type EffectRecordBattery struct {
	Addr string
}

func (EffectAwaitNext) isEffect()     {}
func (EffectCreateWindow) isEffect()  {}
func (EffectFocusWindow) isEffect()   {}
func (EffectRefreshTray) isEffect()   {}
func (EffectRefreshWindow) isEffect() {}
func (EffectSendCommand) isEffect()   {}
func (EffectSaveTheme) isEffect()     {}
func (EffectCopyClipboard) isEffect() {}
func (EffectNotify) isEffect()        {}
func (EffectRecordBattery) isEffect() {}
