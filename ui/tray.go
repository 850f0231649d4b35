// Package ui provides the graphical user interface for Buds Manager.
// This file contains the system tray presenter.
package ui

import (
	"os"
	"sync"

	"fyne.io/systray"

	"github.com/dcampos/buds-manager/common"
	"github.com/dcampos/buds-manager/device"
)

// Tray mirrors the status snapshot into the system tray: icon, tooltip,
// listening-mode selector, conversation-detection toggle, and the open
// and exit entries.
type Tray struct {
	app *Application

	mu      sync.Mutex
	ready   bool
	pending device.StatusSnapshot

	statusItem       *systray.MenuItem
	modeItems        map[uint8]*systray.MenuItem
	conversationItem *systray.MenuItem
}

// NewTray creates the tray presenter.
func NewTray(app *Application) *Tray {
	return &Tray{app: app}
}

// Run starts the tray. It blocks, so call it from a goroutine.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// onReady builds the static menu once the tray host is available.
func (t *Tray) onReady() {
	systray.SetTitle(common.AppName)

	t.statusItem = systray.AddMenuItem("Not Connected", "Battery status")
	t.statusItem.Disable()

	systray.AddSeparator()

	modeHeader := systray.AddMenuItem("Listening Mode", "")
	modeHeader.Disable()

	// All selector entries exist from the start; systray cannot remove
	// items, so composition is done by showing and hiding. Creating
	// them in full-option order keeps Off first whenever it is shown.
	labels := map[uint8][2]string{
		device.ListeningModeOff:          {"Off", "Turn listening mode off"},
		device.ListeningModeANC:          {"Noise Cancellation", "Active noise cancellation"},
		device.ListeningModeTransparency: {"Transparency", "Let outside sound in"},
		device.ListeningModeAdaptive:     {"Adaptive", "Adapt to your surroundings"},
	}
	t.modeItems = make(map[uint8]*systray.MenuItem)
	for _, mode := range device.ListeningModeOptions(true) {
		item := systray.AddMenuItemCheckbox(labels[mode][0], labels[mode][1], false)
		item.Hide()
		t.modeItems[mode] = item
		t.watchModeItem(item, mode)
	}

	systray.AddSeparator()

	t.conversationItem = systray.AddMenuItemCheckbox("Conversation Awareness", "Lower volume when you speak", false)
	t.conversationItem.Disable()
	go func() {
		for range t.conversationItem.ClickedCh {
			enabled := !t.conversationItem.Checked()
			t.app.DispatchAsync(ConversationDetectToggled{Enabled: enabled})
		}
	}()

	systray.AddSeparator()

	openItem := systray.AddMenuItem("Open "+common.AppName, "Show main window")
	go func() {
		for range openItem.ClickedCh {
			// Window requests travel through the inbound queue like
			// every other event, so the lifecycle policy applies.
			t.app.bridge.Producer() <- device.OpenWindowRequested{}
		}
	}()

	quitItem := systray.AddMenuItem("Exit", "Quit "+common.AppName)
	go func() {
		for range quitItem.ClickedCh {
			common.LogInfo("Exit requested from tray")
			common.CloseLogger()
			os.Exit(0)
		}
	}()

	t.mu.Lock()
	t.ready = true
	status := t.pending
	t.mu.Unlock()
	t.apply(status)
}

// onExit is called when the tray host shuts the indicator down.
func (t *Tray) onExit() {
	common.LogInfo("Tray indicator stopped")
}

func (t *Tray) watchModeItem(item *systray.MenuItem, mode uint8) {
	go func() {
		for range item.ClickedCh {
			t.app.DispatchAsync(ListeningModeSelected{Mode: mode})
		}
	}()
}

// Refresh pushes a status snapshot into the tray. Safe to call before
// the tray host is ready; the last snapshot wins.
func (t *Tray) Refresh(status device.StatusSnapshot) {
	t.mu.Lock()
	t.pending = status
	ready := t.ready
	t.mu.Unlock()

	if ready {
		t.apply(status)
	}
}

func (t *Tray) apply(status device.StatusSnapshot) {
	text := status.IconText()
	mode := IconGlyph
	if status.Connected && text != "?" {
		// A readable percentage gets the ring gauge; markers stay
		// textual.
		mode = IconRing
		text += "%"
	}
	systray.SetIcon(RenderStatusIconPNG(text, mode))
	systray.SetTooltip(status.TooltipTitle() + "\n" + status.TooltipBody())

	if status.Connected {
		t.statusItem.SetTitle(status.TooltipBody())
	} else {
		t.statusItem.SetTitle("Not Connected")
	}

	offered := make(map[uint8]bool)
	for _, mode := range device.ListeningModeOptions(status.AllowOffOption) {
		offered[mode] = true
	}
	for mode, item := range t.modeItems {
		if offered[mode] && status.Connected {
			item.Show()
		} else {
			item.Hide()
		}
		if status.ListeningMode != nil && *status.ListeningMode == mode {
			item.Check()
		} else {
			item.Uncheck()
		}
	}

	// The toggle is only operable when the capability is known.
	switch {
	case status.ConversationDetect == nil:
		t.conversationItem.Uncheck()
		t.conversationItem.Disable()
	case *status.ConversationDetect:
		t.conversationItem.Enable()
		t.conversationItem.Check()
	default:
		t.conversationItem.Enable()
		t.conversationItem.Uncheck()
	}
}
