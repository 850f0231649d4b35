// Package ui provides the graphical user interface for Buds Manager.
// This file contains the CSS styles for the main window.
package ui

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// Theme-aware styles that follow the system dark/light preference.
const appCSS = `
.view-title {
    font-weight: 700;
    font-size: 20px;
}

.section-heading {
    font-weight: 600;
    font-size: 13px;
    opacity: 0.7;
    margin-top: 8px;
}

.detail-name {
    opacity: 0.7;
}

.status-connected {
    color: #2ec27e;
    font-weight: 600;
}

.status-disconnected {
    opacity: 0.6;
}

.placeholder {
    opacity: 0.5;
    font-size: 15px;
}

.sidebar-list {
    background-color: transparent;
}

.row-title {
    font-weight: 600;
}

.row-subtitle {
    font-size: 11px;
    opacity: 0.6;
}

.sidebar-list > row:selected {
    border-left: 3px solid #3584e4;
}

button.flat {
    background-color: transparent;
}

button.flat:hover {
    background-color: alpha(currentColor, 0.1);
}
`

// LoadStyles loads the custom CSS styles for the application.
// Should be called during application startup.
func LoadStyles() {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return
	}

	provider := gtk.NewCSSProvider()
	provider.LoadFromString(appCSS)

	gtk.StyleContextAddProviderForDisplay(
		display,
		provider,
		gtk.STYLE_PROVIDER_PRIORITY_APPLICATION,
	)
}
