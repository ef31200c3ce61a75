package state

import (
	"testing"

	"github.com/nexusadmin/nexus-cli/pkg/models"
)

func storeA() models.Store {
	return models.Store{ID: "s1", Name: "Nexus Store", Provider: models.ProviderShopify, Domain: "nexus-store.myshopify.com", Currency: "USD"}
}

func storeB() models.Store {
	return models.Store{ID: "s2", Name: "EU Warehouse", Provider: models.ProviderMedusa, Domain: "eu.nexus-store.com", Currency: "EUR"}
}

func TestNewFormBufferMirrorsStore(t *testing.T) {
	b := NewFormBuffer(storeA())

	if b.Phase() != FormClean {
		t.Errorf("expected clean phase, got %v", b.Phase())
	}
	if b.Name() != "Nexus Store" || b.Domain() != "nexus-store.myshopify.com" || b.Currency() != "USD" {
		t.Errorf("fields do not mirror store: %q %q %q", b.Name(), b.Domain(), b.Currency())
	}
}

func TestEditMarksDirty(t *testing.T) {
	b := NewFormBuffer(storeA())

	b.SetName("Nexus HQ")

	if !b.Dirty() {
		t.Error("expected dirty after edit")
	}
	if b.Name() != "Nexus HQ" {
		t.Errorf("expected edited name, got %q", b.Name())
	}
}

func TestDirtyGuardSuppressesSync(t *testing.T) {
	b := NewFormBuffer(storeA())
	b.SetName("Nexus HQ")

	// Rehydration renames the same store underneath the form.
	changed := storeA()
	changed.Name = "Renamed Elsewhere"
	b.Sync(changed)

	if b.Name() != "Nexus HQ" {
		t.Errorf("dirty edit was clobbered by sync: %q", b.Name())
	}
	if !b.Dirty() {
		t.Error("expected buffer to stay dirty")
	}
}

func TestCleanSyncPicksUpExternalChange(t *testing.T) {
	b := NewFormBuffer(storeA())

	changed := storeA()
	changed.Name = "Renamed Elsewhere"
	b.Sync(changed)

	if b.Name() != "Renamed Elsewhere" {
		t.Errorf("clean buffer did not re-sync, got %q", b.Name())
	}
}

func TestStoreSwitchDiscardsEdits(t *testing.T) {
	b := NewFormBuffer(storeA())
	b.SetName("unsaved edit")

	b.Sync(storeB())

	if b.Phase() != FormClean {
		t.Errorf("expected clean after switch, got %v", b.Phase())
	}
	if b.Name() != "EU Warehouse" {
		t.Errorf("expected fields from store B, got %q", b.Name())
	}

	// Switching back shows A's saved values, not the discarded edit.
	b.Sync(storeA())
	if b.Name() != "Nexus Store" {
		t.Errorf("discarded edit reappeared: %q", b.Name())
	}
}

func TestSaveCommitsAndEntersSavedPhase(t *testing.T) {
	b := NewFormBuffer(storeA())
	b.SetName("Nexus HQ")
	b.SetCurrency("GBP")

	patch := b.Save()

	if b.Phase() != FormSaved {
		t.Errorf("expected saved phase, got %v", b.Phase())
	}
	if b.Dirty() {
		t.Error("dirty flag must clear immediately on save")
	}
	if patch.Name == nil || *patch.Name != "Nexus HQ" {
		t.Errorf("patch name wrong: %v", patch.Name)
	}
	if patch.Currency == nil || *patch.Currency != "GBP" {
		t.Errorf("patch currency wrong: %v", patch.Currency)
	}
	if patch.Domain == nil || *patch.Domain != "nexus-store.myshopify.com" {
		t.Errorf("untouched field should carry its current value: %v", patch.Domain)
	}

	b.ClearSaved()
	if b.Phase() != FormClean {
		t.Errorf("expected clean after confirmation window, got %v", b.Phase())
	}
}

func TestSaveBlankFieldFallsBack(t *testing.T) {
	b := NewFormBuffer(storeA())
	b.SetName("")
	b.SetDomain("new.nexus.com")

	patch := b.Save()

	if patch.Name == nil || *patch.Name != "Nexus Store" {
		t.Errorf("blank name should fall back to pre-edit value, got %v", patch.Name)
	}
	if b.Name() != "Nexus Store" {
		t.Errorf("buffer should display the fallback, got %q", b.Name())
	}
	if patch.Domain == nil || *patch.Domain != "new.nexus.com" {
		t.Errorf("edited domain lost: %v", patch.Domain)
	}
}

func TestSavePatchIsDetachedFromBuffer(t *testing.T) {
	b := NewFormBuffer(storeA())
	b.SetName("First")
	patch := b.Save()

	b.SetName("Second")

	if *patch.Name != "First" {
		t.Errorf("later edits leaked into issued patch: %q", *patch.Name)
	}
}

func TestCancelRestoresLastSynced(t *testing.T) {
	b := NewFormBuffer(storeA())
	b.SetName("garbage")
	b.SetDomain("garbage.example")

	b.Cancel()

	if b.Phase() != FormClean {
		t.Errorf("expected clean after cancel, got %v", b.Phase())
	}
	if b.Name() != "Nexus Store" || b.Domain() != "nexus-store.myshopify.com" {
		t.Errorf("cancel did not restore fields: %q %q", b.Name(), b.Domain())
	}
}

func TestSavedPhaseSyncsLikeClean(t *testing.T) {
	b := NewFormBuffer(storeA())
	b.SetName("Nexus HQ")
	b.Save()

	changed := storeA()
	changed.Domain = "rehydrated.example"
	b.Sync(changed)

	if b.Domain() != "rehydrated.example" {
		t.Errorf("saved phase should accept re-sync, got %q", b.Domain())
	}
}

func TestEditAfterSaveDirtiesAgain(t *testing.T) {
	b := NewFormBuffer(storeA())
	b.SetName("Nexus HQ")
	b.Save()

	b.SetName("Nexus HQ 2")

	if !b.Dirty() {
		t.Error("edit after save should re-enter dirty")
	}
}

// Full loop against the container: edit, save via UpdateStore, verify the
// denormalized state, then confirm a rehydration-style sync is harmless.
func TestFormBufferAgainstContainer(t *testing.T) {
	c := New(testConfig(), nil)
	b := NewFormBuffer(c.ActiveStore())

	b.SetName("Nexus HQ")
	c.UpdateStore(b.StoreID(), b.Save())

	st := c.State()
	if st.ActiveStore.Name != "Nexus HQ" || st.Stores[0].Name != "Nexus HQ" {
		t.Errorf("saved edit not visible in state: %+v", st.ActiveStore)
	}

	b.Sync(c.ActiveStore())
	if b.Name() != "Nexus HQ" {
		t.Errorf("post-save sync changed fields: %q", b.Name())
	}
}
