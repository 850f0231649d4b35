package ui

import (
	"fmt"

	"github.com/dcampos/buds-manager/common"
	"github.com/dcampos/buds-manager/config"
	"github.com/dcampos/buds-manager/device"
)

// NoDeviceAddr is the sidebar selection sentinel used before the user
// has picked a device.
const NoDeviceAddr = "none"

// SelectionKind distinguishes the two sidebar row families.
type SelectionKind int

const (
	SelectDevice SelectionKind = iota
	SelectSettings
)

// Selection is the active sidebar choice: a device row (by address,
// with the NoDeviceAddr sentinel) or the settings row. Exactly one is
// active at a time.
type Selection struct {
	Kind SelectionKind
	Addr string
}

// SelectionForDevice returns a device selection for the given address.
func SelectionForDevice(addr string) Selection {
	return Selection{Kind: SelectDevice, Addr: addr}
}

// SelectionForSettings returns the settings selection.
func SelectionForSettings() Selection {
	return Selection{Kind: SelectSettings}
}

// WindowPhase is the lifecycle phase of the single main window.
type WindowPhase int

const (
	// PhaseClosed means no window exists and none is being created.
	PhaseClosed WindowPhase = iota
	// PhasePending means creation was requested and the toolkit has
	// not yet confirmed it.
	PhasePending
	// PhaseOpen means the window exists; Handle identifies it.
	PhaseOpen
)

// WindowState tracks the main window through its
// Closed -> Pending -> Open -> Closed cycle. The application never
// owns more than one main window.
type WindowState struct {
	Phase  WindowPhase
	Handle WindowHandle
}

// AppState is the whole mutable state of the UI, threaded explicitly
// through Update. Nothing in it is shared: the update loop is the
// single owner and runs one pass at a time.
type AppState struct {
	Window    WindowState
	Selection Selection
	PaneRatio float64
	Theme     config.Theme

	// ConnectedSet holds the addresses currently connected. ActiveAddr
	// is the device whose status the tray mirrors.
	ConnectedSet map[string]struct{}
	ActiveAddr   string
	Status       device.StatusSnapshot

	ShowNotifications   bool
	OpenWindowOnConnect bool
}

// NewAppState builds the initial state from configuration and the
// persisted theme.
func NewAppState(cfg *config.Config, theme config.Theme) AppState {
	return AppState{
		Selection:           SelectionForDevice(NoDeviceAddr),
		PaneRatio:           common.SidebarRatio,
		Theme:               theme,
		ConnectedSet:        make(map[string]struct{}),
		ShowNotifications:   cfg.ShowNotifications,
		OpenWindowOnConnect: cfg.OpenWindowOnConnect,
	}
}

// Update is the single state transition function:
// (state, message) -> (state, effects). It never blocks and never
// touches the toolkit; all side effects are returned for the caller to
// execute.
//
// Liveness contract: every BridgeEvent, whatever its variant, emits
// exactly one EffectAwaitNext so the event pipeline stays armed.
func Update(state AppState, msg Message) (AppState, []Effect) {
	switch m := msg.(type) {
	case BridgeEvent:
		state, effects := applyEvent(state, m.Event)
		return state, append(effects, EffectAwaitNext{})

	case WindowOpened:
		if state.Window.Phase != PhasePending {
			common.LogWarn("Window %d opened in phase %d, ignoring", m.Handle, state.Window.Phase)
			return state, nil
		}
		state.Window = WindowState{Phase: PhaseOpen, Handle: m.Handle}
		return state, []Effect{EffectRefreshWindow{}}

	case WindowClosed:
		if state.Window.Phase != PhaseOpen || state.Window.Handle != m.Handle {
			return state, nil
		}
		state.Window = WindowState{Phase: PhaseClosed}
		return state, nil

	case PaneResized:
		state.PaneRatio = m.Ratio
		return state, nil

	case RowSelected:
		state.Selection = m.Selection
		return state, []Effect{EffectRefreshWindow{}}

	case ThemeSelected:
		state.Theme = m.Theme
		return state, []Effect{EffectSaveTheme{Theme: m.Theme}}

	case CopySerial:
		return state, []Effect{EffectCopyClipboard{Text: m.Text}}

	case ListeningModeSelected:
		mode := m.Mode
		state.Status.ListeningMode = &mode
		cmd := device.Command{ID: device.CmdListeningMode, Payload: []byte{mode}}
		return state, []Effect{EffectSendCommand{Command: cmd}, EffectRefreshTray{}}

	case ConversationDetectToggled:
		// Optimistic: flip local state now, let the device confirm via
		// a later status event.
		enabled := m.Enabled
		state.Status.ConversationDetect = &enabled
		code := byte(device.ConversationDetectOff)
		if enabled {
			code = device.ConversationDetectOn
		}
		cmd := device.Command{ID: device.CmdConversationDetect, Payload: []byte{code}}
		return state, []Effect{EffectSendCommand{Command: cmd}, EffectRefreshTray{}}
	}

	return state, nil
}

// applyEvent handles one inbound bridge event. The caller appends the
// re-arm effect.
func applyEvent(state AppState, ev device.Event) (AppState, []Effect) {
	switch e := ev.(type) {
	case device.OpenWindowRequested:
		return openWindow(state)

	case device.Connected:
		state.ConnectedSet[e.Addr] = struct{}{}
		state.ActiveAddr = e.Addr
		state.Status = device.StatusSnapshot{Connected: true}

		effects := []Effect{EffectRefreshTray{}, EffectRefreshWindow{}}
		if state.ShowNotifications {
			effects = append(effects, EffectNotify{
				Summary: common.AppName,
				Body:    fmt.Sprintf("Device %s connected", e.Addr),
			})
		}
		if state.OpenWindowOnConnect {
			state, effects = openWindowWith(state, effects)
		}
		return state, effects

	case device.Disconnected:
		delete(state.ConnectedSet, e.Addr)
		if e.Addr != state.ActiveAddr {
			// The sidebar and detail view render from the connected
			// set, so they still need a redraw.
			return state, []Effect{EffectRefreshWindow{}}
		}
		state.ActiveAddr = ""
		state.Status = device.StatusSnapshot{}
		effects := []Effect{EffectRefreshTray{}, EffectRefreshWindow{}}
		if state.ShowNotifications {
			effects = append(effects, EffectNotify{
				Summary: common.AppName,
				Body:    fmt.Sprintf("Device %s disconnected", e.Addr),
			})
		}
		return state, effects

	case device.StatusEvent:
		if state.ActiveAddr == "" {
			state.ActiveAddr = e.Addr
			state.Status.Connected = true
		}
		if e.Addr != state.ActiveAddr {
			return state, nil
		}
		state.Status.Apply(e.Update)
		return state, []Effect{EffectRefreshTray{}, EffectRefreshWindow{}, EffectRecordBattery{Addr: e.Addr}}

	case device.NoOp:
		return state, nil
	}

	return state, nil
}

// openWindow runs the open/focus policy for the window state machine.
func openWindow(state AppState) (AppState, []Effect) {
	return openWindowWith(state, nil)
}

func openWindowWith(state AppState, effects []Effect) (AppState, []Effect) {
	switch state.Window.Phase {
	case PhaseClosed:
		state.Window = WindowState{Phase: PhasePending}
		return state, append(effects, EffectCreateWindow{})
	case PhasePending:
		// Creation already in flight; the toolkit will confirm.
		return state, effects
	case PhaseOpen:
		return state, append(effects, EffectFocusWindow{Handle: state.Window.Handle})
	}
	return state, effects
}
