package device

import (
	"os"
	"path/filepath"
	"testing"
)

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "devices.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadRegistry_Missing(t *testing.T) {
	registry := LoadRegistry(filepath.Join(t.TempDir(), "absent.json"))
	if len(registry) != 0 {
		t.Errorf("LoadRegistry() on missing file = %d entries, want 0", len(registry))
	}
}

func TestLoadRegistry_Malformed(t *testing.T) {
	path := writeRegistry(t, "{broken")
	registry := LoadRegistry(path)
	if len(registry) != 0 {
		t.Errorf("LoadRegistry() on malformed file = %d entries, want 0", len(registry))
	}
}

func TestLoadRegistry_Valid(t *testing.T) {
	path := writeRegistry(t, `{
		"AA:BB:CC:DD:EE:FF": {
			"name": "My Buds",
			"type": "accessory",
			"information": {
				"model_number": "A2931",
				"manufacturer": "Example Inc.",
				"serial_number": "SN123",
				"left_serial_number": "SNL",
				"right_serial_number": "SNR",
				"version1": "6A300",
				"version2": "6A300",
				"version3": "6A300"
			}
		},
		"11:22:33:44:55:66": {"name": "Speaker", "type": "other"}
	}`)

	registry := LoadRegistry(path)
	if len(registry) != 2 {
		t.Fatalf("LoadRegistry() = %d entries, want 2", len(registry))
	}

	buds, ok := registry["AA:BB:CC:DD:EE:FF"]
	if !ok {
		t.Fatal("registry missing accessory entry")
	}
	if buds.Class != ClassAccessory {
		t.Errorf("Class = %v, want %v", buds.Class, ClassAccessory)
	}
	if buds.Info == nil || buds.Info.SerialNumber != "SN123" {
		t.Errorf("Info = %+v, want serial SN123", buds.Info)
	}

	speaker := registry["11:22:33:44:55:66"]
	if speaker.Info != nil {
		t.Error("entry without information should have nil Info")
	}
}

func TestRegistry_Sorted_CaseSensitive(t *testing.T) {
	registry := Registry{
		"03": {Name: "beta"},
		"02": {Name: "Zeta"},
		"01": {Name: "Alpha"},
	}

	entries := registry.Sorted()

	// Case-sensitive lexicographic order: uppercase sorts before
	// lowercase under ASCII. Pinned so a collation change is caught.
	want := []string{"Alpha", "Zeta", "beta"}
	if len(entries) != len(want) {
		t.Fatalf("Sorted() = %d entries, want %d", len(entries), len(want))
	}
	for i, name := range want {
		if entries[i].Record.Name != name {
			t.Errorf("Sorted()[%d].Name = %q, want %q", i, entries[i].Record.Name, name)
		}
	}
}

func TestRegistry_Sorted_TieBreakByAddr(t *testing.T) {
	registry := Registry{
		"BB": {Name: "Buds"},
		"AA": {Name: "Buds"},
	}

	entries := registry.Sorted()
	if entries[0].Addr != "AA" || entries[1].Addr != "BB" {
		t.Errorf("equal names should order by address, got %q then %q",
			entries[0].Addr, entries[1].Addr)
	}
}
