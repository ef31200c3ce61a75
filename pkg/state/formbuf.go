package state

import "github.com/nexusadmin/nexus-cli/pkg/models"

// FormPhase is the lifecycle phase of the store profile edit buffer.
type FormPhase int

const (
	// FormClean mirrors the active store; external changes re-sync freely.
	FormClean FormPhase = iota
	// FormDirty holds unsaved user edits; external re-sync is suppressed.
	FormDirty
	// FormSaved is a transient display phase right after a save. Edits are
	// already committed, so it behaves like FormClean for syncing.
	FormSaved
)

// FormBuffer is the working copy of one store's editable fields backing
// the settings screen. Three writers touch the same data: the user
// typing, a store switch elsewhere in the UI, and snapshot rehydration.
// The phase guard decides who wins: user edits are never overwritten by
// a re-sync, while a store switch always discards them.
type FormBuffer struct {
	storeID  string
	phase    FormPhase
	name     string
	domain   string
	currency string
	// field values at last sync/save, used for blank-field fallback
	origName     string
	origDomain   string
	origCurrency string
}

// NewFormBuffer creates a clean buffer mirroring the given store.
func NewFormBuffer(s models.Store) *FormBuffer {
	b := &FormBuffer{}
	b.reset(s)
	return b
}

func (b *FormBuffer) reset(s models.Store) {
	b.storeID = s.ID
	b.phase = FormClean
	b.name = s.Name
	b.domain = s.Domain
	b.currency = s.Currency
	b.origName = s.Name
	b.origDomain = s.Domain
	b.origCurrency = s.Currency
}

// StoreID returns the id of the store this buffer edits.
func (b *FormBuffer) StoreID() string { return b.storeID }

// Phase returns the current lifecycle phase.
func (b *FormBuffer) Phase() FormPhase { return b.phase }

// Dirty reports whether unsaved edits are pending.
func (b *FormBuffer) Dirty() bool { return b.phase == FormDirty }

// Name returns the buffered store name.
func (b *FormBuffer) Name() string { return b.name }

// Domain returns the buffered domain.
func (b *FormBuffer) Domain() string { return b.domain }

// Currency returns the buffered currency code.
func (b *FormBuffer) Currency() string { return b.currency }

// SetName records a user edit to the store name.
func (b *FormBuffer) SetName(v string) {
	b.name = v
	b.phase = FormDirty
}

// SetDomain records a user edit to the domain.
func (b *FormBuffer) SetDomain(v string) {
	b.domain = v
	b.phase = FormDirty
}

// SetCurrency records a user edit to the currency code.
func (b *FormBuffer) SetCurrency(v string) {
	b.currency = v
	b.phase = FormDirty
}

// Sync reconciles the buffer with the current active store.
//
// A different store id means the user switched stores: the buffer resets
// unconditionally, discarding any unsaved edits. The same store id with
// pending edits leaves the buffer alone, so a delayed rehydration can
// never clobber in-progress typing. Otherwise the fields re-mirror the
// store.
func (b *FormBuffer) Sync(s models.Store) {
	if s.ID != b.storeID {
		b.reset(s)
		return
	}
	if b.phase == FormDirty {
		return
	}
	b.reset(s)
}

// Save commits the edits as a patch for Container.UpdateStore. Blank
// fields fall back to their pre-edit values rather than saving empty.
// Only meaningful while Dirty; the buffer moves to FormSaved with the
// committed values as the new baseline.
func (b *FormBuffer) Save() models.StorePatch {
	if b.name == "" {
		b.name = b.origName
	}
	if b.domain == "" {
		b.domain = b.origDomain
	}
	if b.currency == "" {
		b.currency = b.origCurrency
	}

	name, domain, currency := b.name, b.domain, b.currency
	patch := models.StorePatch{
		Name:     &name,
		Domain:   &domain,
		Currency: &currency,
	}

	b.origName = b.name
	b.origDomain = b.domain
	b.origCurrency = b.currency
	b.phase = FormSaved

	return patch
}

// Cancel discards pending edits and re-mirrors the last synced values.
func (b *FormBuffer) Cancel() {
	b.name = b.origName
	b.domain = b.origDomain
	b.currency = b.origCurrency
	b.phase = FormClean
}

// ClearSaved ends the post-save confirmation display.
func (b *FormBuffer) ClearSaved() {
	if b.phase == FormSaved {
		b.phase = FormClean
	}
}
