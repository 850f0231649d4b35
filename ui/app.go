package ui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/dcampos/buds-manager/bridge"
	"github.com/dcampos/buds-manager/common"
	"github.com/dcampos/buds-manager/config"
	"github.com/dcampos/buds-manager/device"
	"github.com/dcampos/buds-manager/history"
)

// Application wires the GTK lifecycle, the tray, the event bridge, and
// the pure update loop together. All state mutation happens on the GTK
// main thread through Dispatch.
type Application struct {
	app      *gtk.Application
	cfg      *config.Config
	settings *config.SettingsStore
	bridge   *bridge.EventBridge
	commands *bridge.CommandQueue
	history  *history.Store
	version  string

	state      AppState
	window     *MainWindow
	tray       *Tray
	nextHandle WindowHandle
}

// NewApplication creates the application shell. The history store may
// be nil when the database could not be opened; battery recording is
// then skipped.
func NewApplication(cfg *config.Config, settings *config.SettingsStore, eventBridge *bridge.EventBridge, commands *bridge.CommandQueue, store *history.Store, version string) *Application {
	a := &Application{
		app:      gtk.NewApplication(common.AppID, gio.ApplicationFlagsNone),
		cfg:      cfg,
		settings: settings,
		bridge:   eventBridge,
		commands: commands,
		history:  store,
		version:  version,
		state:    NewAppState(cfg, settings.Theme()),
	}
	a.app.ConnectActivate(a.onActivate)
	return a
}

// Run runs the GTK main loop until exit.
func (a *Application) Run(args []string) int {
	return a.app.Run(args)
}

// onActivate is called when the application is activated.
func (a *Application) onActivate() {
	// The app must keep running tray-only, with no window alive.
	a.app.Hold()

	a.applyTheme(a.state.Theme)
	LoadStyles()

	a.tray = NewTray(a)
	go a.tray.Run()

	// Arm the first await-next; each resolved event re-arms through
	// the update loop's effects.
	a.awaitNext()

	if !a.cfg.StartMinimized {
		a.bridge.Producer() <- device.OpenWindowRequested{}
	}
}

// Dispatch feeds one message through the update function and executes
// the resulting effects. Must be called on the GTK main thread.
func (a *Application) Dispatch(msg Message) {
	state, effects := Update(a.state, msg)
	a.state = state
	for _, effect := range effects {
		a.perform(effect)
	}
}

// DispatchAsync schedules a Dispatch on the GTK main thread. Safe to
// call from the tray and bridge goroutines.
func (a *Application) DispatchAsync(msg Message) {
	glib.IdleAdd(func() {
		a.Dispatch(msg)
	})
}

func (a *Application) perform(effect Effect) {
	switch e := effect.(type) {
	case EffectAwaitNext:
		a.awaitNext()

	case EffectCreateWindow:
		a.createWindow()

	case EffectFocusWindow:
		if a.window != nil && a.window.handle == e.Handle {
			a.window.Present()
		}

	case EffectRefreshTray:
		if a.tray != nil {
			a.tray.Refresh(a.state.Status)
		}

	case EffectRefreshWindow:
		if a.window != nil {
			a.window.Refresh()
		}

	case EffectSendCommand:
		if !a.commands.Send(e.Command) {
			common.LogWarn("Command queue full, dropped %s", e.Command.ID)
		}

	case EffectSaveTheme:
		if err := a.settings.SetTheme(e.Theme); err != nil {
			common.LogError("Failed to save theme: %v", err)
		}
		a.applyTheme(e.Theme)

	case EffectCopyClipboard:
		if err := clipboard.WriteAll(e.Text); err != nil {
			common.LogWarn("Clipboard write failed: %v", err)
		}

	case EffectNotify:
		go ShowNotification(Notification{Title: e.Summary, Message: e.Body})

	case EffectRecordBattery:
		a.recordBattery(e.Addr)
	}
}

// awaitNext registers exactly one pending receive against the bridge.
// The blocking wait happens on its own goroutine; the resolved event
// re-enters the update loop on the main thread.
func (a *Application) awaitNext() {
	go func() {
		ev := a.bridge.AwaitNext()
		if _, ok := ev.(device.NoOp); ok {
			// A closed bridge yields NoOp immediately and forever;
			// pace the re-arm so the loop does not spin hot.
			time.Sleep(100 * time.Millisecond)
		}
		a.DispatchAsync(BridgeEvent{Event: ev})
	}()
}

// createWindow asks the toolkit for the main window and confirms the
// transition once it exists.
func (a *Application) createWindow() {
	a.nextHandle++
	handle := a.nextHandle

	a.window = NewMainWindow(a, handle)
	a.window.Show()
	a.Dispatch(WindowOpened{Handle: handle})
}

// windowDestroyed is called by MainWindow when the toolkit reports the
// window gone for good.
func (a *Application) windowDestroyed(handle WindowHandle) {
	if a.window != nil && a.window.handle == handle {
		a.window = nil
	}
	a.Dispatch(WindowClosed{Handle: handle})
}

// applyTheme switches the GTK color scheme.
func (a *Application) applyTheme(theme config.Theme) {
	settings := gtk.SettingsGetDefault()
	if settings == nil {
		return
	}
	settings.SetObjectProperty("gtk-application-prefer-dark-theme", theme.IsDark())
}

func (a *Application) recordBattery(addr string) {
	if a.history == nil {
		return
	}
	sample := history.Sample{
		Addr:         addr,
		Session:      common.SessionID(),
		BatteryLeft:  a.state.Status.BatteryLeft,
		BatteryRight: a.state.Status.BatteryRight,
		BatteryCase:  a.state.Status.BatteryCase,
	}
	go func() {
		if err := a.history.Record(sample); err != nil {
			common.LogWarn("Battery history write failed: %v", err)
		}
	}()
}

// GetVersion returns the application version.
func (a *Application) GetVersion() string {
	return a.version
}

// Quit closes the application.
func (a *Application) Quit() {
	a.app.Quit()
}
