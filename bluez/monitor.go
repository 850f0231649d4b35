// Package bluez feeds Bluetooth connectivity changes into the event
// bridge and relays control commands to the protocol daemon.
package bluez

import (
	"strings"

	"github.com/godbus/dbus/v5"

	"github.com/dcampos/buds-manager/common"
	"github.com/dcampos/buds-manager/device"
)

const (
	busName      = "org.bluez"
	adapterPath  = "/org/bluez/hci0"
	deviceIface  = "org.bluez.Device1"
	propsIface   = "org.freedesktop.DBus.Properties"
	propsSignal  = "org.freedesktop.DBus.Properties.PropertiesChanged"
	signalBuffer = 16
)

// deviceObjectPath converts a MAC address like "AA:BB:CC:DD:EE:FF" to
// its BlueZ object path.
func deviceObjectPath(addr string) dbus.ObjectPath {
	escaped := strings.ReplaceAll(addr, ":", "_")
	return dbus.ObjectPath(adapterPath + "/dev_" + escaped)
}

// macFromPath extracts a MAC address from a BlueZ device object path
// like "/org/bluez/hci0/dev_AA_BB_CC_DD_EE_FF".
func macFromPath(path dbus.ObjectPath) string {
	s := string(path)
	prefix := adapterPath + "/dev_"
	if !strings.HasPrefix(s, prefix) {
		return ""
	}
	return strings.ReplaceAll(s[len(prefix):], "_", ":")
}

// DeviceConnected queries BlueZ for the current Connected property of
// the given device. Used by the CLI; the UI relies on the monitor
// stream instead.
func DeviceConnected(addr string) (bool, error) {
	conn, err := dbus.SystemBus()
	if err != nil {
		return false, common.WrapError(err, "failed to connect to system bus")
	}

	obj := conn.Object(busName, deviceObjectPath(addr))
	var v dbus.Variant
	if err := obj.Call(propsIface+".Get", 0, deviceIface, "Connected").Store(&v); err != nil {
		return false, common.WrapError(err, "failed to query device")
	}
	connected, ok := v.Value().(bool)
	if !ok {
		return false, common.WrapError(common.ErrDeviceNotFound, addr)
	}
	return connected, nil
}

// Monitor watches BlueZ device properties on the system bus and
// translates Connected flips into bridge events.
type Monitor struct {
	conn     *dbus.Conn
	producer chan<- device.Event
	done     chan struct{}
}

// NewMonitor connects to the system bus and verifies BlueZ is
// reachable. Events are sent to the given producer channel.
func NewMonitor(producer chan<- device.Event) (*Monitor, error) {
	conn, err := dbus.SystemBus()
	if err != nil {
		return nil, common.WrapError(err, "failed to connect to system bus")
	}

	var names []string
	if err := conn.BusObject().Call("org.freedesktop.DBus.ListNames", 0).Store(&names); err != nil {
		conn.Close()
		return nil, common.WrapError(err, "failed to list bus names")
	}
	found := false
	for _, n := range names {
		if n == busName {
			found = true
			break
		}
	}
	if !found {
		conn.Close()
		return nil, common.ErrDaemonUnavailable
	}

	return &Monitor{
		conn:     conn,
		producer: producer,
		done:     make(chan struct{}),
	}, nil
}

// Start subscribes to PropertiesChanged under /org/bluez and begins
// forwarding connectivity events. It runs until Stop is called.
func (m *Monitor) Start() {
	m.conn.BusObject().Call(
		"org.freedesktop.DBus.AddMatch", 0,
		"type='signal',interface='"+propsIface+"',member='PropertiesChanged',path_namespace='/org/bluez'",
	)
	signals := make(chan *dbus.Signal, signalBuffer)
	m.conn.Signal(signals)

	go m.watch(signals)
}

// Stop closes the bus connection, which ends the watch goroutine.
func (m *Monitor) Stop() {
	close(m.done)
	m.conn.Close()
}

func (m *Monitor) watch(signals chan *dbus.Signal) {
	for sig := range signals {
		if sig.Name != propsSignal {
			continue
		}
		// Body: [interface_name string, changed_props map[string]Variant, invalidated []string]
		if len(sig.Body) < 2 {
			continue
		}
		iface, ok := sig.Body[0].(string)
		if !ok || iface != deviceIface {
			continue
		}
		changed, ok := sig.Body[1].(map[string]dbus.Variant)
		if !ok {
			continue
		}
		connVar, ok := changed["Connected"]
		if !ok {
			continue
		}
		connected, ok := connVar.Value().(bool)
		if !ok {
			continue
		}
		mac := macFromPath(sig.Path)
		if mac == "" {
			continue
		}

		var ev device.Event
		if connected {
			ev = device.Connected{Addr: mac}
		} else {
			ev = device.Disconnected{Addr: mac}
		}

		select {
		case m.producer <- ev:
		case <-m.done:
			return
		}
	}
}
