package ui

import (
	"fmt"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/dcampos/buds-manager/common"
	"github.com/dcampos/buds-manager/device"
)

// newDeviceView builds the content pane for a device selection.
func newDeviceView(app *Application, addr string, registry device.Registry) gtk.Widgetter {
	if addr == NoDeviceAddr {
		return placeholderView("Select a device from the sidebar")
	}

	record, ok := registry[addr]
	if !ok {
		common.LogWarn("Selected device %s not in registry", addr)
		return placeholderView("Device not found")
	}

	box := gtk.NewBox(gtk.OrientationVertical, 12)
	box.SetMarginTop(24)
	box.SetMarginBottom(24)
	box.SetMarginStart(24)
	box.SetMarginEnd(24)

	title := gtk.NewLabel(record.Name)
	title.SetXAlign(0)
	title.AddCSSClass("view-title")
	box.Append(title)

	box.Append(connectionLabel(app, addr))

	if _, connected := app.state.ConnectedSet[addr]; connected && addr == app.state.ActiveAddr {
		box.Append(batterySection(app.state.Status))
	} else if last := lastKnownSection(app, addr); last != nil {
		box.Append(last)
	}

	box.Append(infoSection(app, addr, record))
	return box
}

func placeholderView(text string) gtk.Widgetter {
	label := gtk.NewLabel(text)
	label.AddCSSClass("placeholder")
	label.SetVExpand(true)
	label.SetHExpand(true)
	return label
}

func connectionLabel(app *Application, addr string) *gtk.Label {
	var label *gtk.Label
	if _, ok := app.state.ConnectedSet[addr]; ok {
		label = gtk.NewLabel("Connected - " + addr)
		label.AddCSSClass("status-connected")
	} else {
		label = gtk.NewLabel("Disconnected")
		label.AddCSSClass("status-disconnected")
	}
	label.SetXAlign(0)
	return label
}

// batterySection renders the live battery readings. Unknown channels
// render as "?", never as a made-up value.
func batterySection(status device.StatusSnapshot) gtk.Widgetter {
	box := sectionBox("Battery")
	box.Append(detailRow("Left", channelValue(status.BatteryLeft, status.BatteryLeftState)))
	box.Append(detailRow("Right", channelValue(status.BatteryRight, status.BatteryRightState)))
	box.Append(detailRow("Case", channelValue(status.BatteryCase, status.BatteryCaseState)))
	return box
}

func channelValue(percent *uint8, state *device.BatteryState) string {
	if percent == nil {
		return "?"
	}
	text := fmt.Sprintf("%d%%", *percent)
	if state != nil {
		text += fmt.Sprintf(" (%s)", *state)
	}
	return text
}

// lastKnownSection shows the most recent recorded battery reading for
// a device that is not currently connected.
func lastKnownSection(app *Application, addr string) gtk.Widgetter {
	if app.history == nil {
		return nil
	}
	sample, ok := app.history.LastKnown(addr)
	if !ok {
		return nil
	}

	box := sectionBox("Last Known Battery")
	box.Append(detailRow("Left", channelValue(sample.BatteryLeft, nil)))
	box.Append(detailRow("Right", channelValue(sample.BatteryRight, nil)))
	box.Append(detailRow("Case", channelValue(sample.BatteryCase, nil)))
	box.Append(detailRow("Recorded", sample.Taken.Format("2006-01-02 15:04")))
	return box
}

// infoSection renders the nested device information. A record whose
// class does not carry the expected info shape is logged and rendered
// as an empty block; the rest of the view stays usable.
func infoSection(app *Application, addr string, record device.Record) gtk.Widgetter {
	box := sectionBox("Device Information")

	if record.Class != device.ClassAccessory {
		if record.Info != nil {
			common.LogWarn("Device %s has class %q with accessory info, ignoring", addr, record.Class)
		}
		return box
	}
	if record.Info == nil {
		common.LogWarn("Accessory %s has no device information", addr)
		return box
	}

	info := record.Info
	box.Append(detailRow("Model", info.ModelNumber))
	box.Append(detailRow("Manufacturer", info.Manufacturer))
	box.Append(serialRow(app, "Serial Number", info.SerialNumber))
	box.Append(serialRow(app, "Left Serial", info.LeftSerialNumber))
	box.Append(serialRow(app, "Right Serial", info.RightSerialNumber))
	box.Append(detailRow("Firmware", info.Version1))
	box.Append(detailRow("Firmware (Left)", info.Version2))
	box.Append(detailRow("Firmware (Right)", info.Version3))
	return box
}

func sectionBox(heading string) *gtk.Box {
	box := gtk.NewBox(gtk.OrientationVertical, 6)
	box.SetMarginTop(12)

	label := gtk.NewLabel(heading)
	label.SetXAlign(0)
	label.AddCSSClass("section-heading")
	box.Append(label)
	return box
}

func detailRow(name, value string) gtk.Widgetter {
	row := gtk.NewBox(gtk.OrientationHorizontal, 12)

	nameLabel := gtk.NewLabel(name)
	nameLabel.SetXAlign(0)
	nameLabel.SetSizeRequest(140, -1)
	nameLabel.AddCSSClass("detail-name")
	row.Append(nameLabel)

	valueLabel := gtk.NewLabel(value)
	valueLabel.SetXAlign(0)
	valueLabel.SetSelectable(true)
	row.Append(valueLabel)
	return row
}

// serialRow is a detail row with a copy button delivering the serial
// to the clipboard verbatim.
func serialRow(app *Application, name, value string) gtk.Widgetter {
	row := gtk.NewBox(gtk.OrientationHorizontal, 12)

	nameLabel := gtk.NewLabel(name)
	nameLabel.SetXAlign(0)
	nameLabel.SetSizeRequest(140, -1)
	nameLabel.AddCSSClass("detail-name")
	row.Append(nameLabel)

	valueLabel := gtk.NewLabel(value)
	valueLabel.SetXAlign(0)
	valueLabel.SetSelectable(true)
	row.Append(valueLabel)

	if value != "" {
		copyButton := gtk.NewButtonFromIconName("edit-copy-symbolic")
		copyButton.AddCSSClass("flat")
		copyButton.SetTooltipText("Copy to clipboard")
		serial := value
		copyButton.ConnectClicked(func() {
			app.Dispatch(CopySerial{Text: serial})
		})
		row.Append(copyButton)
	}
	return row
}
