package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nexusadmin/nexus-cli/pkg/models"
)

func strptr(s string) *string { return &s }

func testConfig() *models.PanelConfig {
	return &models.PanelConfig{
		Stores: []models.Store{
			{ID: "s1", Name: "Nexus Store", Provider: models.ProviderShopify, Domain: "nexus-store.myshopify.com", Currency: "USD"},
			{ID: "s2", Name: "EU Warehouse", Provider: models.ProviderMedusa, Domain: "eu.nexus-store.com", Currency: "EUR"},
		},
		DefaultStoreID: "s1",
	}
}

func TestNewSeedsFromConfig(t *testing.T) {
	c := New(testConfig(), nil)

	st := c.State()
	if len(st.Stores) != 2 {
		t.Fatalf("expected 2 stores, got %d", len(st.Stores))
	}
	if st.ActiveStoreID != "s1" {
		t.Errorf("expected active store s1, got %s", st.ActiveStoreID)
	}
	if st.ActiveStore.Name != "Nexus Store" {
		t.Errorf("expected active store Nexus Store, got %s", st.ActiveStore.Name)
	}
	if st.CommandBarOpen || st.MobileSidebarOpen {
		t.Error("overlay flags should start closed")
	}
}

func TestNewFallsBackOnUnknownDefaultStore(t *testing.T) {
	cfg := testConfig()
	cfg.DefaultStoreID = "missing"
	c := New(cfg, nil)

	if got := c.ActiveStore().ID; got != "s1" {
		t.Errorf("expected fallback to first store s1, got %s", got)
	}
}

func TestSetActiveStore(t *testing.T) {
	tests := []struct {
		name       string
		switchTo   string
		wantActive string
	}{
		{"known store", "s2", "s2"},
		{"unknown store is a no-op", "does-not-exist", "s1"},
		{"empty id is a no-op", "", "s1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(testConfig(), nil)
			c.SetActiveStore(tt.switchTo)

			st := c.State()
			if st.ActiveStoreID != tt.wantActive {
				t.Errorf("expected active %s, got %s", tt.wantActive, st.ActiveStoreID)
			}
			if st.ActiveStore.ID != st.ActiveStoreID {
				t.Errorf("denormalization broken: ActiveStore.ID=%s ActiveStoreID=%s", st.ActiveStore.ID, st.ActiveStoreID)
			}
		})
	}
}

func TestSetActiveStoreMirrorsListEntry(t *testing.T) {
	c := New(testConfig(), nil)

	for _, s := range c.Stores() {
		c.SetActiveStore(s.ID)
		st := c.State()
		found, ok := findStore(st.Stores, s.ID)
		if !ok {
			t.Fatalf("store %s vanished from list", s.ID)
		}
		if st.ActiveStore != found {
			t.Errorf("ActiveStore %+v does not mirror list entry %+v", st.ActiveStore, found)
		}
	}
}

func TestSetActiveStoreInvalidAfterValid(t *testing.T) {
	c := New(testConfig(), nil)

	c.SetActiveStore("s2")
	c.SetActiveStore("does-not-exist")

	if got := c.ActiveStore().ID; got != "s2" {
		t.Errorf("invalid switch changed selection: got %s, want s2", got)
	}
}

func TestUpdateStore(t *testing.T) {
	c := New(testConfig(), nil)

	c.UpdateStore("s1", models.StorePatch{Name: strptr("Nexus HQ")})

	st := c.State()
	if st.ActiveStore.Name != "Nexus HQ" {
		t.Errorf("expected active store renamed, got %s", st.ActiveStore.Name)
	}
	if st.Stores[0].Name != "Nexus HQ" {
		t.Errorf("expected list entry renamed, got %s", st.Stores[0].Name)
	}
	if st.Stores[1].Name != "EU Warehouse" {
		t.Errorf("expected s2 untouched, got %s", st.Stores[1].Name)
	}
}

func TestUpdateStoreInactiveTarget(t *testing.T) {
	c := New(testConfig(), nil)

	c.UpdateStore("s2", models.StorePatch{Domain: strptr("eu2.nexus-store.com")})

	st := c.State()
	if st.Stores[1].Domain != "eu2.nexus-store.com" {
		t.Errorf("expected s2 domain updated, got %s", st.Stores[1].Domain)
	}
	if st.ActiveStore.ID != "s1" || st.ActiveStore.Domain != "nexus-store.myshopify.com" {
		t.Errorf("active store should be untouched, got %+v", st.ActiveStore)
	}
}

func TestUpdateStoreUnknownID(t *testing.T) {
	c := New(testConfig(), nil)
	before := c.State()

	c.UpdateStore("nope", models.StorePatch{Name: strptr("Ghost")})

	after := c.State()
	if after.ActiveStore != before.ActiveStore {
		t.Errorf("active store changed: %+v", after.ActiveStore)
	}
	for i := range before.Stores {
		if after.Stores[i] != before.Stores[i] {
			t.Errorf("store %d changed: %+v", i, after.Stores[i])
		}
	}
}

func TestUpdateStoreIdempotent(t *testing.T) {
	patch := models.StorePatch{Name: strptr("Renamed"), Currency: strptr("GBP")}

	once := New(testConfig(), nil)
	once.UpdateStore("s1", patch)

	twice := New(testConfig(), nil)
	twice.UpdateStore("s1", patch)
	twice.UpdateStore("s1", patch)

	a, b := once.State(), twice.State()
	if a.ActiveStore != b.ActiveStore {
		t.Errorf("patch not idempotent: %+v vs %+v", a.ActiveStore, b.ActiveStore)
	}
	for i := range a.Stores {
		if a.Stores[i] != b.Stores[i] {
			t.Errorf("store %d differs after repeat patch", i)
		}
	}
}

func TestUpdateStoreCannotTouchIDOrProvider(t *testing.T) {
	c := New(testConfig(), nil)

	c.UpdateStore("s1", models.StorePatch{
		Name:     strptr("Renamed"),
		Domain:   strptr("new.example.com"),
		Currency: strptr("GBP"),
		LogoURL:  strptr("https://cdn.example.com/logo.png"),
	})

	s := c.ActiveStore()
	if s.ID != "s1" {
		t.Errorf("ID changed to %s", s.ID)
	}
	if s.Provider != models.ProviderShopify {
		t.Errorf("Provider changed to %s", s.Provider)
	}
}

func TestSidebarToggle(t *testing.T) {
	c := New(testConfig(), nil)

	c.ToggleSidebar()
	if !c.State().SidebarCollapsed {
		t.Error("expected collapsed after toggle")
	}
	c.ToggleSidebar()
	if c.State().SidebarCollapsed {
		t.Error("expected expanded after second toggle")
	}
	c.SetSidebarCollapsed(true)
	if !c.State().SidebarCollapsed {
		t.Error("expected collapsed after explicit set")
	}
}

func TestSubscribersNotifiedOnCommit(t *testing.T) {
	c := New(testConfig(), nil)

	var seen []string
	c.Subscribe(func(st State) {
		seen = append(seen, st.ActiveStoreID)
	})

	c.SetActiveStore("s2")
	c.SetActiveStore("s1")
	c.SetActiveStore("unknown") // no commit, no notification

	if len(seen) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(seen))
	}
	if seen[0] != "s2" || seen[1] != "s1" {
		t.Errorf("unexpected notification order: %v", seen)
	}
}

func TestStateCopiesAreIsolated(t *testing.T) {
	c := New(testConfig(), nil)

	st := c.State()
	st.Stores[0].Name = "mutated"

	if c.State().Stores[0].Name != "Nexus Store" {
		t.Error("caller mutation leaked into container")
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")

	c := New(testConfig(), NewFileSnapshotStore(path))
	c.SetActiveStore("s2")
	c.SetSidebarCollapsed(true)
	c.UpdateStore("s2", models.StorePatch{Name: strptr("EU Hub")})
	c.SetCommandBarOpen(true)
	c.SetMobileSidebarOpen(true)

	// Fresh container over the same snapshot simulates a reload.
	c2 := New(testConfig(), NewFileSnapshotStore(path))
	st := c2.State()

	if st.ActiveStoreID != "s2" {
		t.Errorf("active store not rehydrated, got %s", st.ActiveStoreID)
	}
	if st.ActiveStore.Name != "EU Hub" {
		t.Errorf("store rename not rehydrated, got %s", st.ActiveStore.Name)
	}
	if !st.SidebarCollapsed {
		t.Error("sidebar collapse not rehydrated")
	}
	if st.CommandBarOpen {
		t.Error("command bar flag must reset on reload")
	}
	if st.MobileSidebarOpen {
		t.Error("mobile sidebar flag must reset on reload")
	}
}

func TestEphemeralMutationsDoNotPersist(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")

	c := New(testConfig(), NewFileSnapshotStore(path))
	c.SetCommandBarOpen(true)

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("ephemeral mutation wrote a snapshot")
	}
}

func TestCorruptSnapshotFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	c := New(testConfig(), NewFileSnapshotStore(path))

	st := c.State()
	if st.ActiveStoreID != "s1" {
		t.Errorf("expected config default s1, got %s", st.ActiveStoreID)
	}
	if len(st.Stores) != 2 {
		t.Errorf("expected config store list, got %d stores", len(st.Stores))
	}
}

func TestSnapshotWithDanglingActiveStore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")

	snaps := NewFileSnapshotStore(path)
	cfg := testConfig()
	err := snaps.Save(Snapshot{
		ActiveStoreID: "deleted-store",
		Stores:        cfg.Stores,
		ActiveStore:   cfg.Stores[0],
	})
	if err != nil {
		t.Fatal(err)
	}

	c := New(cfg, NewFileSnapshotStore(path))

	st := c.State()
	if st.ActiveStoreID != "s1" {
		t.Errorf("expected fallback to default store, got %s", st.ActiveStoreID)
	}
	if st.ActiveStore.ID != st.ActiveStoreID {
		t.Error("denormalization broken after dangling rehydration")
	}
}
