// Package cli provides command-line access to device information
// without launching the GUI application.
package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dcampos/buds-manager/bluez"
	"github.com/dcampos/buds-manager/common"
	"github.com/dcampos/buds-manager/device"
	"github.com/dcampos/buds-manager/history"
)

// CLI represents the command-line interface.
type CLI struct {
	registry device.Registry
	store    *history.Store
}

// New creates a new CLI instance. The history store is optional; when
// it cannot be opened, battery columns show as unknown.
func New() *CLI {
	c := &CLI{
		registry: device.LoadRegistry(common.DevicesPath()),
	}

	store, err := history.OpenDefault()
	if err != nil {
		common.LogWarn("Battery history unavailable: %v", err)
	} else {
		c.store = store
	}
	return c
}

// Close releases the history store.
func (c *CLI) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// ListDevices prints all registered devices.
func (c *CLI) ListDevices() error {
	entries := c.registry.Sorted()
	if len(entries) == 0 {
		fmt.Println("No devices registered.")
		fmt.Println("Pair a device and run the daemon to populate the registry.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ADDRESS\tNAME\tTYPE\tMODEL")
	fmt.Fprintln(w, "-------\t----\t----\t-----")

	for _, entry := range entries {
		model := "-"
		if entry.Record.Info != nil && entry.Record.Info.ModelNumber != "" {
			model = entry.Record.Info.ModelNumber
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			entry.Addr, entry.Record.Name, entry.Record.Class, model)
	}

	w.Flush()
	return nil
}

// Status prints the connection state and last known battery readings
// for every registered device.
func (c *CLI) Status() error {
	entries := c.registry.Sorted()
	if len(entries) == 0 {
		fmt.Println("No devices registered.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCONNECTED\tBATTERY (L/R/C)\tRECORDED")
	fmt.Fprintln(w, "----\t---------\t---------------\t--------")

	for _, entry := range entries {
		connected := "?"
		if state, err := bluez.DeviceConnected(entry.Addr); err == nil {
			connected = "No"
			if state {
				connected = "Yes"
			}
		}

		battery := "-"
		recorded := "-"
		if c.store != nil {
			if sample, ok := c.store.LastKnown(entry.Addr); ok {
				battery = fmt.Sprintf("%s/%s/%s",
					percentText(sample.BatteryLeft),
					percentText(sample.BatteryRight),
					percentText(sample.BatteryCase))
				recorded = sample.Taken.Format("2006-01-02 15:04")
			}
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", entry.Record.Name, connected, battery, recorded)
	}

	w.Flush()
	return nil
}

func percentText(v *uint8) string {
	if v == nil {
		return "?"
	}
	return fmt.Sprintf("%d%%", *v)
}

// PrintHelp prints CLI usage help.
func PrintHelp() {
	fmt.Println(`Buds Manager - Command Line Interface

Usage:
  buds-manager [OPTIONS]

Options:
  --version     Show version and exit
  --verbose     Enable verbose logging
  --minimized   Start in the tray without opening the window
  --devices     List registered devices
  --status      Show connection and battery status
  --help        Show this help message

Examples:
  buds-manager --devices
  buds-manager --status
  buds-manager --minimized

Notes:
  - Run without options to launch the GUI
  - Battery readings come from the history recorded while the GUI runs`)
}
