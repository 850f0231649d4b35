package ui

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/dcampos/buds-manager/config"
)

// newSettingsView builds the settings pane: currently a single theme
// selector that writes through to the settings file on change.
func newSettingsView(app *Application) gtk.Widgetter {
	box := gtk.NewBox(gtk.OrientationVertical, 12)
	box.SetMarginTop(24)
	box.SetMarginBottom(24)
	box.SetMarginStart(24)
	box.SetMarginEnd(24)

	title := gtk.NewLabel("Settings")
	title.SetXAlign(0)
	title.AddCSSClass("view-title")
	box.Append(title)

	themes := config.Themes()
	names := make([]string, len(themes))
	selected := uint(0)
	for i, theme := range themes {
		names[i] = string(theme)
		if theme == app.state.Theme {
			selected = uint(i)
		}
	}

	dropdown := gtk.NewDropDownFromStrings(names)
	dropdown.SetSelected(selected)
	dropdown.NotifyProperty("selected", func() {
		index := dropdown.Selected()
		if int(index) >= len(themes) {
			return
		}
		theme := themes[index]
		if theme == app.state.Theme {
			return
		}
		app.Dispatch(ThemeSelected{Theme: theme})
	})

	row := gtk.NewBox(gtk.OrientationHorizontal, 12)
	themeLabel := gtk.NewLabel("Theme")
	themeLabel.SetXAlign(0)
	themeLabel.SetSizeRequest(140, -1)
	row.Append(themeLabel)
	row.Append(dropdown)
	box.Append(row)

	version := gtk.NewLabel("Version " + app.GetVersion())
	version.SetXAlign(0)
	version.AddCSSClass("dim-label")
	version.SetMarginTop(24)
	box.Append(version)

	return box
}
