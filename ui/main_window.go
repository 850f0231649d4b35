package ui

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/dcampos/buds-manager/common"
	"github.com/dcampos/buds-manager/device"
)

// MainWindow is the two-pane main window: a sidebar with one row per
// registered device plus a settings row, and a content pane rendering
// the active selection.
type MainWindow struct {
	app         *Application
	handle      WindowHandle
	window      *gtk.ApplicationWindow
	paned       *gtk.Paned
	sidebar     *gtk.ListBox
	contentHost *gtk.ScrolledWindow

	rows          []*gtk.ListBoxRow
	rowSelections []Selection
	rebuilding    bool
}

// NewMainWindow creates the main window.
func NewMainWindow(app *Application, handle WindowHandle) *MainWindow {
	mw := &MainWindow{
		app:    app,
		handle: handle,
	}

	mw.window = gtk.NewApplicationWindow(app.app)
	mw.window.SetTitle(common.AppName)
	mw.window.SetDefaultSize(common.DefaultWindowWidth, common.DefaultWindowHeight)
	mw.window.SetSizeRequest(common.MinWindowWidth, common.MinWindowHeight)
	mw.window.SetIconName("audio-headphones")

	mw.window.ConnectCloseRequest(func() bool {
		if app.cfg.MinimizeToTray {
			// Keep running in the tray; the window stays Open and a
			// later open request just presents it again.
			mw.window.SetVisible(false)
			return true
		}
		app.windowDestroyed(mw.handle)
		return false
	})

	mw.createLayout()
	return mw
}

// createLayout creates the split layout.
func (mw *MainWindow) createLayout() {
	mw.paned = gtk.NewPaned(gtk.OrientationHorizontal)
	mw.paned.SetShrinkStartChild(false)
	mw.paned.SetShrinkEndChild(false)

	// Sidebar
	mw.sidebar = gtk.NewListBox()
	mw.sidebar.SetSelectionMode(gtk.SelectionSingle)
	mw.sidebar.AddCSSClass("sidebar-list")
	mw.sidebar.ConnectRowSelected(mw.onRowSelected)

	sidebarScroll := gtk.NewScrolledWindow()
	sidebarScroll.SetPolicy(gtk.PolicyNever, gtk.PolicyAutomatic)
	sidebarScroll.SetChild(mw.sidebar)
	mw.paned.SetStartChild(sidebarScroll)

	// Content
	mw.contentHost = gtk.NewScrolledWindow()
	mw.contentHost.SetPolicy(gtk.PolicyNever, gtk.PolicyAutomatic)
	mw.contentHost.SetHExpand(true)
	mw.paned.SetEndChild(mw.contentHost)

	// 20/80 initial split; later drags just overwrite the ratio.
	mw.paned.SetPosition(int(float64(common.DefaultWindowWidth) * mw.app.state.PaneRatio))
	mw.paned.NotifyProperty("position", mw.onPaneMoved)

	mw.window.SetChild(mw.paned)
}

// Show presents the window and renders the current state.
func (mw *MainWindow) Show() {
	mw.Refresh()
	mw.window.Present()
}

// Present raises the window, restoring it if it was hidden to tray.
func (mw *MainWindow) Present() {
	mw.window.SetVisible(true)
	mw.window.Present()
}

// Refresh re-reads the device registry and rebuilds both panes. The
// registry file is read fresh every pass; staleness is worse than the
// extra read.
func (mw *MainWindow) Refresh() {
	registry := device.LoadRegistry(common.DevicesPath())
	mw.rebuildSidebar(registry)
	mw.renderContent(registry)
}

func (mw *MainWindow) rebuildSidebar(registry device.Registry) {
	mw.rebuilding = true
	defer func() { mw.rebuilding = false }()

	for _, row := range mw.rows {
		mw.sidebar.Remove(row)
	}
	mw.rows = mw.rows[:0]
	mw.rowSelections = mw.rowSelections[:0]

	for _, entry := range registry.Sorted() {
		mw.appendRow(entry.Record.Name, mw.deviceRowSubtitle(entry.Addr), SelectionForDevice(entry.Addr))
	}
	mw.appendRow("Settings", "", SelectionForSettings())

	// Restore highlight from state, not from widget defaults.
	for i, sel := range mw.rowSelections {
		if sel == mw.app.state.Selection {
			mw.sidebar.SelectRow(mw.rows[i])
			break
		}
	}
}

func (mw *MainWindow) deviceRowSubtitle(addr string) string {
	if _, ok := mw.app.state.ConnectedSet[addr]; ok {
		return "Connected - " + addr
	}
	return addr
}

func (mw *MainWindow) appendRow(title, subtitle string, sel Selection) {
	box := gtk.NewBox(gtk.OrientationVertical, 2)
	box.SetMarginTop(8)
	box.SetMarginBottom(8)
	box.SetMarginStart(12)
	box.SetMarginEnd(12)

	titleLabel := gtk.NewLabel(title)
	titleLabel.SetXAlign(0)
	titleLabel.AddCSSClass("row-title")
	box.Append(titleLabel)

	if subtitle != "" {
		subtitleLabel := gtk.NewLabel(subtitle)
		subtitleLabel.SetXAlign(0)
		subtitleLabel.AddCSSClass("row-subtitle")
		box.Append(subtitleLabel)
	}

	row := gtk.NewListBoxRow()
	row.SetChild(box)
	mw.sidebar.Append(row)

	mw.rows = append(mw.rows, row)
	mw.rowSelections = append(mw.rowSelections, sel)
}

func (mw *MainWindow) onRowSelected(row *gtk.ListBoxRow) {
	if mw.rebuilding || row == nil {
		return
	}
	index := row.Index()
	if index < 0 || index >= len(mw.rowSelections) {
		return
	}
	sel := mw.rowSelections[index]
	if sel == mw.app.state.Selection {
		return
	}
	mw.app.Dispatch(RowSelected{Selection: sel})
}

func (mw *MainWindow) onPaneMoved() {
	width := mw.paned.AllocatedWidth()
	if width <= 0 {
		return
	}
	ratio := float64(mw.paned.Position()) / float64(width)
	if ratio == mw.app.state.PaneRatio {
		return
	}
	mw.app.Dispatch(PaneResized{Ratio: ratio})
}

// renderContent rebuilds the content pane for the active selection.
func (mw *MainWindow) renderContent(registry device.Registry) {
	state := mw.app.state

	var content gtk.Widgetter
	switch state.Selection.Kind {
	case SelectSettings:
		content = newSettingsView(mw.app)
	default:
		content = newDeviceView(mw.app, state.Selection.Addr, registry)
	}
	mw.contentHost.SetChild(content)
}
