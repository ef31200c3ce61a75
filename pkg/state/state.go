// Package state holds the panel's UI state: which store is active, the
// store list, sidebar and overlay flags, and the store profile edit buffer.
// All mutation goes through Container operations; readers get copies.
package state

import (
	"sync"

	"github.com/nexusadmin/nexus-cli/pkg/models"
)

// NotificationPrefs are the alert toggles from the settings screen.
type NotificationPrefs struct {
	NewOrders    bool `json:"newOrders"`
	LowStock     bool `json:"lowStock"`
	NewCustomers bool `json:"newCustomers"`
}

// DefaultNotificationPrefs mirrors the settings screen defaults.
func DefaultNotificationPrefs() NotificationPrefs {
	return NotificationPrefs{NewOrders: true, LowStock: true, NewCustomers: false}
}

// State is the complete UI state at one point in time.
//
// ActiveStore is denormalized from Stores: it is always equal to the list
// element whose ID matches ActiveStoreID. CommandBarOpen and
// MobileSidebarOpen are session-only and reset to false on reload.
type State struct {
	Stores            []models.Store
	ActiveStoreID     string
	ActiveStore       models.Store
	SidebarCollapsed  bool
	CommandBarOpen    bool
	MobileSidebarOpen bool
	Notifications     NotificationPrefs
}

// clone returns a deep copy so callers can never alias the container's
// internal slices.
func (s State) clone() State {
	out := s
	out.Stores = make([]models.Store, len(s.Stores))
	copy(out.Stores, s.Stores)
	return out
}

// Subscriber is notified with a copy of the state after every committed
// mutation.
type Subscriber func(State)

// Container is the single source of truth for panel UI state. It is
// created once at bootstrap, injected into every consumer, and lives for
// the process lifetime.
type Container struct {
	mu    sync.RWMutex
	state State
	subs  []Subscriber
	snaps SnapshotStore
}

// New builds a container seeded from the panel configuration, then
// rehydrated from the snapshot store. A missing or unreadable snapshot
// leaves the configuration defaults in place. A snapshot whose active
// store id no longer resolves falls back to the configured default store.
func New(cfg *models.PanelConfig, snaps SnapshotStore) *Container {
	def := cfg.DefaultStore()
	st := State{
		Stores:        append([]models.Store(nil), cfg.Stores...),
		ActiveStoreID: def.ID,
		ActiveStore:   def,
		Notifications: DefaultNotificationPrefs(),
	}

	if snaps != nil {
		if snap, ok := snaps.Load(); ok {
			if len(snap.Stores) > 0 {
				st.Stores = snap.Stores
			}
			st.SidebarCollapsed = snap.SidebarCollapsed
			st.Notifications = snap.Notifications
			if s, ok := findStore(st.Stores, snap.ActiveStoreID); ok {
				st.ActiveStoreID = s.ID
				st.ActiveStore = s
			} else if s, ok := findStore(st.Stores, def.ID); ok {
				st.ActiveStoreID = s.ID
				st.ActiveStore = s
			} else {
				st.ActiveStoreID = st.Stores[0].ID
				st.ActiveStore = st.Stores[0]
			}
		}
	}

	return &Container{state: st, snaps: snaps}
}

func findStore(stores []models.Store, id string) (models.Store, bool) {
	for _, s := range stores {
		if s.ID == id {
			return s, true
		}
	}
	return models.Store{}, false
}

// State returns a copy of the current state.
func (c *Container) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.clone()
}

// ActiveStore returns the currently selected store.
func (c *Container) ActiveStore() models.Store {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.ActiveStore
}

// Stores returns a copy of the store list.
func (c *Container) Stores() []models.Store {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Store, len(c.state.Stores))
	copy(out, c.state.Stores)
	return out
}

// Subscribe registers fn to run after every committed mutation. There is
// no unsubscribe: consumers share the container's process lifetime.
func (c *Container) Subscribe(fn Subscriber) {
	c.mu.Lock()
	c.subs = append(c.subs, fn)
	c.mu.Unlock()
}

// commit replaces the state and notifies subscribers. When persist is
// true the snapshot store is asked to write the persisted subset; write
// failures are swallowed, preference state is best effort.
func (c *Container) commit(st State, persist bool) {
	c.mu.Lock()
	c.state = st
	subs := append([]Subscriber(nil), c.subs...)
	snaps := c.snaps
	c.mu.Unlock()

	for _, fn := range subs {
		fn(st.clone())
	}
	if persist && snaps != nil {
		_ = snaps.Save(snapshotOf(st))
	}
}

// SetActiveStore switches the active store. An unknown id is silently
// ignored: the current selection is never cleared and ActiveStore never
// points outside the list.
func (c *Container) SetActiveStore(storeID string) {
	c.mu.RLock()
	st := c.state.clone()
	c.mu.RUnlock()

	s, ok := findStore(st.Stores, storeID)
	if !ok {
		return
	}
	st.ActiveStoreID = s.ID
	st.ActiveStore = s
	c.commit(st, true)
}

// UpdateStore applies a partial update to the store with the given id.
// When that store is active, the denormalized ActiveStore copy receives
// the same patch in the same commit. An unknown id leaves the state
// unchanged.
func (c *Container) UpdateStore(storeID string, patch models.StorePatch) {
	c.mu.RLock()
	st := c.state.clone()
	c.mu.RUnlock()

	found := false
	for i, s := range st.Stores {
		if s.ID == storeID {
			st.Stores[i] = patch.Apply(s)
			found = true
			break
		}
	}
	if !found {
		return
	}
	if st.ActiveStoreID == storeID {
		st.ActiveStore = patch.Apply(st.ActiveStore)
	}
	c.commit(st, true)
}

// ToggleSidebar flips the sidebar collapse flag.
func (c *Container) ToggleSidebar() {
	c.mu.RLock()
	st := c.state.clone()
	c.mu.RUnlock()
	st.SidebarCollapsed = !st.SidebarCollapsed
	c.commit(st, true)
}

// SetSidebarCollapsed sets the sidebar collapse flag.
func (c *Container) SetSidebarCollapsed(collapsed bool) {
	c.mu.RLock()
	st := c.state.clone()
	c.mu.RUnlock()
	st.SidebarCollapsed = collapsed
	c.commit(st, true)
}

// SetNotificationPrefs replaces the alert toggles.
func (c *Container) SetNotificationPrefs(prefs NotificationPrefs) {
	c.mu.RLock()
	st := c.state.clone()
	c.mu.RUnlock()
	st.Notifications = prefs
	c.commit(st, true)
}

// SetCommandBarOpen sets the command bar overlay flag. Ephemeral: no
// snapshot write.
func (c *Container) SetCommandBarOpen(open bool) {
	c.mu.RLock()
	st := c.state.clone()
	c.mu.RUnlock()
	st.CommandBarOpen = open
	c.commit(st, false)
}

// SetMobileSidebarOpen sets the compact-layout sidebar overlay flag.
// Ephemeral: no snapshot write.
func (c *Container) SetMobileSidebarOpen(open bool) {
	c.mu.RLock()
	st := c.state.clone()
	c.mu.RUnlock()
	st.MobileSidebarOpen = open
	c.commit(st, false)
}
