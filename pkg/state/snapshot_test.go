package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/nexusadmin/nexus-cli/pkg/models"
)

func TestFileSnapshotStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := NewFileSnapshotStore(path)

	snap := Snapshot{
		SidebarCollapsed: true,
		ActiveStoreID:    "s2",
		Stores:           []models.Store{storeA(), storeB()},
		ActiveStore:      storeB(),
		Notifications:    NotificationPrefs{NewOrders: true},
	}

	if err := store.Save(snap); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, ok := store.Load()
	if !ok {
		t.Fatal("Load reported no snapshot after Save")
	}
	if loaded.ActiveStoreID != "s2" || !loaded.SidebarCollapsed {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
	if len(loaded.Stores) != 2 || loaded.Stores[1] != storeB() {
		t.Errorf("store list mangled: %+v", loaded.Stores)
	}
	if !loaded.Notifications.NewOrders || loaded.Notifications.LowStock {
		t.Errorf("notification prefs mangled: %+v", loaded.Notifications)
	}
}

func TestFileSnapshotStoreMissingFile(t *testing.T) {
	store := NewFileSnapshotStore(filepath.Join(t.TempDir(), "nope.json"))

	if _, ok := store.Load(); ok {
		t.Error("expected ok=false for missing file")
	}
}

func TestFileSnapshotStoreCorruptFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid json", "{broken"},
		{"wrong shape", `"just a string"`},
		{"empty store list", `{"activeStoreId":"s1","stores":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "state.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			if _, ok := NewFileSnapshotStore(path).Load(); ok {
				t.Error("expected ok=false for corrupt snapshot")
			}
		})
	}
}

func TestSnapshotExcludesEphemeralFlags(t *testing.T) {
	st := State{
		Stores:            []models.Store{storeA()},
		ActiveStoreID:     "s1",
		ActiveStore:       storeA(),
		CommandBarOpen:    true,
		MobileSidebarOpen: true,
	}

	content, err := json.Marshal(snapshotOf(st))
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(content, &raw); err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{"commandBarOpen", "mobileSidebarOpen"} {
		if _, present := raw[field]; present {
			t.Errorf("ephemeral field %s leaked into snapshot", field)
		}
	}
}

func TestSaveOverwritesPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := NewFileSnapshotStore(path)

	first := Snapshot{ActiveStoreID: "s1", Stores: []models.Store{storeA()}, ActiveStore: storeA()}
	second := Snapshot{ActiveStoreID: "s2", Stores: []models.Store{storeA(), storeB()}, ActiveStore: storeB()}

	if err := store.Save(first); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(second); err != nil {
		t.Fatal(err)
	}

	loaded, ok := store.Load()
	if !ok {
		t.Fatal("Load failed after overwrite")
	}
	if loaded.ActiveStoreID != "s2" || len(loaded.Stores) != 2 {
		t.Errorf("overwrite semantics broken: %+v", loaded)
	}
}
