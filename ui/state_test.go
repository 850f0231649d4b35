package ui

import (
	"testing"

	"github.com/dcampos/buds-manager/config"
	"github.com/dcampos/buds-manager/device"
)

func newTestState() AppState {
	return NewAppState(config.DefaultConfig(), config.DefaultTheme)
}

func countAwaits(effects []Effect) int {
	n := 0
	for _, e := range effects {
		if _, ok := e.(EffectAwaitNext); ok {
			n++
		}
	}
	return n
}

func hasCreate(effects []Effect) bool {
	for _, e := range effects {
		if _, ok := e.(EffectCreateWindow); ok {
			return true
		}
	}
	return false
}

func hasFocus(effects []Effect) bool {
	for _, e := range effects {
		if _, ok := e.(EffectFocusWindow); ok {
			return true
		}
	}
	return false
}

func firstCommand(t *testing.T, effects []Effect) device.Command {
	t.Helper()
	for _, e := range effects {
		if send, ok := e.(EffectSendCommand); ok {
			return send.Command
		}
	}
	t.Fatal("no EffectSendCommand emitted")
	return device.Command{}
}

func TestUpdate_WindowLifecycle(t *testing.T) {
	state := newTestState()

	// Closed: an open request creates a window and moves to Pending.
	state, effects := Update(state, BridgeEvent{Event: device.OpenWindowRequested{}})
	if state.Window.Phase != PhasePending {
		t.Fatalf("phase = %d, want Pending", state.Window.Phase)
	}
	if !hasCreate(effects) || hasFocus(effects) {
		t.Error("open from Closed should create, not focus")
	}

	// Pending: a second request neither creates nor focuses.
	state, effects = Update(state, BridgeEvent{Event: device.OpenWindowRequested{}})
	if hasCreate(effects) || hasFocus(effects) {
		t.Error("open while Pending must not create a second window")
	}

	// Toolkit confirms creation.
	state, _ = Update(state, WindowOpened{Handle: 7})
	if state.Window.Phase != PhaseOpen || state.Window.Handle != 7 {
		t.Fatalf("window = %+v, want Open(7)", state.Window)
	}

	// Open: a further request focuses the existing window only.
	state, effects = Update(state, BridgeEvent{Event: device.OpenWindowRequested{}})
	if hasCreate(effects) {
		t.Error("open while Open must not create a second window")
	}
	if !hasFocus(effects) {
		t.Error("open while Open should focus the existing window")
	}

	// A stale handle does not close the current window.
	state, _ = Update(state, WindowClosed{Handle: 3})
	if state.Window.Phase != PhaseOpen {
		t.Error("mismatched close handle must be ignored")
	}

	state, _ = Update(state, WindowClosed{Handle: 7})
	if state.Window.Phase != PhaseClosed {
		t.Error("matching close handle should return to Closed")
	}
}

func TestUpdate_EveryBridgeEventRearmsOnce(t *testing.T) {
	events := []struct {
		name  string
		event device.Event
	}{
		{"open window", device.OpenWindowRequested{}},
		{"connected", device.Connected{Addr: "AA"}},
		{"disconnected", device.Disconnected{Addr: "AA"}},
		{"status", device.StatusEvent{Addr: "AA"}},
		{"noop", device.NoOp{}},
	}

	for _, tt := range events {
		t.Run(tt.name, func(t *testing.T) {
			state := newTestState()
			_, effects := Update(state, BridgeEvent{Event: tt.event})
			if got := countAwaits(effects); got != 1 {
				t.Errorf("emitted %d EffectAwaitNext, want exactly 1", got)
			}
		})
	}
}

func TestUpdate_NonBridgeMessagesDoNotRearm(t *testing.T) {
	state := newTestState()
	messages := []Message{
		WindowOpened{Handle: 1},
		PaneResized{Ratio: 0.3},
		RowSelected{Selection: SelectionForSettings()},
		ThemeSelected{Theme: config.ThemeLight},
	}
	for _, msg := range messages {
		var effects []Effect
		state, effects = Update(state, msg)
		if countAwaits(effects) != 0 {
			t.Errorf("%T re-armed the bridge; only bridge events may", msg)
		}
	}
}

func TestUpdate_ConnectDoesNotOpenWindow(t *testing.T) {
	state := newTestState()

	state, effects := Update(state, BridgeEvent{Event: device.Connected{Addr: "AA"}})
	if hasCreate(effects) {
		t.Error("device connect must not force a window open by default")
	}
	if state.Window.Phase != PhaseClosed {
		t.Errorf("phase = %d, want Closed", state.Window.Phase)
	}
	if !state.Status.Connected {
		t.Error("connect should mark the status snapshot connected")
	}
	if _, ok := state.ConnectedSet["AA"]; !ok {
		t.Error("connect should add the address to the connected set")
	}
}

func TestUpdate_ConnectOpensWindowWhenConfigured(t *testing.T) {
	state := newTestState()
	state.OpenWindowOnConnect = true

	state, effects := Update(state, BridgeEvent{Event: device.Connected{Addr: "AA"}})
	if !hasCreate(effects) {
		t.Error("open_window_on_connect should surface the window")
	}
	if state.Window.Phase != PhasePending {
		t.Errorf("phase = %d, want Pending", state.Window.Phase)
	}
}

func TestUpdate_DisconnectClearsOnlyActiveDevice(t *testing.T) {
	state := newTestState()
	state, _ = Update(state, BridgeEvent{Event: device.Connected{Addr: "AA"}})

	level := uint8(60)
	state, _ = Update(state, BridgeEvent{Event: device.StatusEvent{
		Addr:   "AA",
		Update: device.StatusUpdate{BatteryLeft: &level},
	}})

	// A different device going away leaves the active snapshot alone.
	state, _ = Update(state, BridgeEvent{Event: device.Disconnected{Addr: "BB"}})
	if state.Status.BatteryLeft == nil {
		t.Error("disconnect of another device must not clear status")
	}

	state, _ = Update(state, BridgeEvent{Event: device.Disconnected{Addr: "AA"}})
	if state.Status.Connected || state.Status.BatteryLeft != nil {
		t.Error("disconnect of the active device should reset the snapshot")
	}
	if _, ok := state.ConnectedSet["AA"]; ok {
		t.Error("disconnect should remove the address from the connected set")
	}
}

func TestUpdate_DisconnectOfOtherDeviceRedrawsWindow(t *testing.T) {
	state := newTestState()
	state, _ = Update(state, BridgeEvent{Event: device.Connected{Addr: "AA"}})
	state, _ = Update(state, BridgeEvent{Event: device.Connected{Addr: "BB"}})
	state, _ = Update(state, BridgeEvent{Event: device.Connected{Addr: "AA"}})

	// BB is connected but not active; its row still shows "Connected",
	// so dropping it has to redraw the window.
	state, effects := Update(state, BridgeEvent{Event: device.Disconnected{Addr: "BB"}})
	if _, ok := state.ConnectedSet["BB"]; ok {
		t.Error("disconnect should remove the address from the connected set")
	}
	refreshed := false
	for _, e := range effects {
		if _, ok := e.(EffectRefreshWindow); ok {
			refreshed = true
		}
	}
	if !refreshed {
		t.Error("disconnect of a non-active device should refresh the window")
	}
	if !state.Status.Connected || state.ActiveAddr != "AA" {
		t.Error("disconnect of a non-active device must leave the active snapshot alone")
	}
}

func TestUpdate_StatusEventMergesAndRecords(t *testing.T) {
	state := newTestState()
	state, _ = Update(state, BridgeEvent{Event: device.Connected{Addr: "AA"}})

	left := uint8(45)
	state, effects := Update(state, BridgeEvent{Event: device.StatusEvent{
		Addr:   "AA",
		Update: device.StatusUpdate{BatteryLeft: &left},
	}})

	if state.Status.BatteryLeft == nil || *state.Status.BatteryLeft != 45 {
		t.Error("status event should merge into the snapshot")
	}
	recorded := false
	for _, e := range effects {
		if rec, ok := e.(EffectRecordBattery); ok && rec.Addr == "AA" {
			recorded = true
		}
	}
	if !recorded {
		t.Error("status event should emit a battery record effect")
	}
}

func TestUpdate_ListeningModeSelection(t *testing.T) {
	state := newTestState()

	state, effects := Update(state, ListeningModeSelected{Mode: device.ListeningModeAdaptive})
	if state.Status.ListeningMode == nil || *state.Status.ListeningMode != device.ListeningModeAdaptive {
		t.Error("selection should update local listening mode")
	}

	cmd := firstCommand(t, effects)
	if cmd.ID != device.CmdListeningMode {
		t.Errorf("command ID = %q, want %q", cmd.ID, device.CmdListeningMode)
	}
	if len(cmd.Payload) != 1 || cmd.Payload[0] != device.ListeningModeAdaptive {
		t.Errorf("payload = %v, want [0x04]", cmd.Payload)
	}
}

func TestUpdate_ConversationDetectToggle(t *testing.T) {
	tests := []struct {
		name     string
		enabled  bool
		expected byte
	}{
		{"enable sends 0x01", true, device.ConversationDetectOn},
		{"disable sends 0x02", false, device.ConversationDetectOff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := newTestState()
			state, effects := Update(state, ConversationDetectToggled{Enabled: tt.enabled})

			// Local state flips immediately, before the device confirms.
			if state.Status.ConversationDetect == nil || *state.Status.ConversationDetect != tt.enabled {
				t.Error("toggle should update local state optimistically")
			}

			cmd := firstCommand(t, effects)
			if cmd.ID != device.CmdConversationDetect {
				t.Errorf("command ID = %q, want %q", cmd.ID, device.CmdConversationDetect)
			}
			if len(cmd.Payload) != 1 || cmd.Payload[0] != tt.expected {
				t.Errorf("payload = %v, want [%#02x]", cmd.Payload, tt.expected)
			}
		})
	}
}

func TestUpdate_ThemeAndPane(t *testing.T) {
	state := newTestState()
	if state.PaneRatio != 0.2 {
		t.Errorf("initial pane ratio = %v, want 0.2", state.PaneRatio)
	}
	if state.Selection != SelectionForDevice(NoDeviceAddr) {
		t.Errorf("initial selection = %+v, want the no-device sentinel", state.Selection)
	}

	state, _ = Update(state, PaneResized{Ratio: 0.35})
	if state.PaneRatio != 0.35 {
		t.Error("pane resize should overwrite the stored ratio")
	}

	state, effects := Update(state, ThemeSelected{Theme: config.ThemeLight})
	if state.Theme != config.ThemeLight {
		t.Error("theme selection should update state")
	}
	saved := false
	for _, e := range effects {
		if save, ok := e.(EffectSaveTheme); ok && save.Theme == config.ThemeLight {
			saved = true
		}
	}
	if !saved {
		t.Error("theme selection should emit a save effect")
	}
}

func TestUpdate_CopySerial(t *testing.T) {
	state := newTestState()
	_, effects := Update(state, CopySerial{Text: "SN-1234"})

	for _, e := range effects {
		if cp, ok := e.(EffectCopyClipboard); ok {
			if cp.Text != "SN-1234" {
				t.Errorf("clipboard text = %q, want the serial verbatim", cp.Text)
			}
			return
		}
	}
	t.Fatal("no clipboard effect emitted")
}
