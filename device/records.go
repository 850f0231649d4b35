// Package device defines the device registry records, status
// snapshots, and the event and command types exchanged with the
// protocol daemon.
package device

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/dcampos/buds-manager/common"
)

// Class tags the kind of paired device a registry record describes.
type Class string

const (
	ClassAccessory Class = "accessory"
	ClassOther     Class = "other"
)

// Info carries the identity details reported by an accessory.
// All fields are free-form strings as received from the device.
type Info struct {
	ModelNumber       string `json:"model_number"`
	Manufacturer      string `json:"manufacturer"`
	SerialNumber      string `json:"serial_number"`
	LeftSerialNumber  string `json:"left_serial_number"`
	RightSerialNumber string `json:"right_serial_number"`
	Version1          string `json:"version1"`
	Version2          string `json:"version2"`
	Version3          string `json:"version3"`
}

// Record is one entry of the device registry, keyed externally by the
// device's hardware address.
type Record struct {
	Name  string `json:"name"`
	Class Class  `json:"type"`
	Info  *Info  `json:"information,omitempty"`
}

// Registry maps hardware address to device record. The registry file
// is owned by the protocol daemon; this application only reads it.
type Registry map[string]Record

// LoadRegistry reads the registry file fresh. Freshness is preferred
// over caching: the daemon may rewrite the file at any time. A
// missing or malformed file degrades to an empty registry.
func LoadRegistry(path string) Registry {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			common.LogError("Failed to read device registry %s: %v", path, err)
		}
		return Registry{}
	}

	var registry Registry
	if err := json.Unmarshal(data, &registry); err != nil {
		common.LogError("Device registry deserialization failed: %v", err)
		return Registry{}
	}
	return registry
}

// Entry pairs an address with its record for ordered traversal.
type Entry struct {
	Addr   string
	Record Record
}

// Sorted returns the registry entries ordered by display name using
// case-sensitive lexicographic comparison, with the address breaking
// ties so equal names always render in a stable order.
func (r Registry) Sorted() []Entry {
	entries := make([]Entry, 0, len(r))
	for addr, rec := range r {
		entries = append(entries, Entry{Addr: addr, Record: rec})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Record.Name != entries[j].Record.Name {
			return entries[i].Record.Name < entries[j].Record.Name
		}
		return entries[i].Addr < entries[j].Addr
	})
	return entries
}
