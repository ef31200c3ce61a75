package state

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/nexusadmin/nexus-cli/pkg/models"
)

// Snapshot is the persisted subset of State. CommandBarOpen and
// MobileSidebarOpen are deliberately absent so a reload always starts
// with both overlays closed.
type Snapshot struct {
	SidebarCollapsed bool              `json:"sidebarCollapsed"`
	ActiveStoreID    string            `json:"activeStoreId"`
	Stores           []models.Store    `json:"stores"`
	ActiveStore      models.Store      `json:"activeStore"`
	Notifications    NotificationPrefs `json:"notifications"`
}

func snapshotOf(st State) Snapshot {
	return Snapshot{
		SidebarCollapsed: st.SidebarCollapsed,
		ActiveStoreID:    st.ActiveStoreID,
		Stores:           st.Stores,
		ActiveStore:      st.ActiveStore,
		Notifications:    st.Notifications,
	}
}

// SnapshotStore persists the snapshot across sessions. Load reports
// ok=false for a missing or unreadable snapshot; the container then
// keeps its configuration defaults.
type SnapshotStore interface {
	Load() (Snapshot, bool)
	Save(Snapshot) error
}

// FileSnapshotStore keeps the snapshot as a single JSON file, rewritten
// in full on every persisted mutation.
type FileSnapshotStore struct {
	path string
}

// NewFileSnapshotStore creates a snapshot store backed by path.
func NewFileSnapshotStore(path string) *FileSnapshotStore {
	return &FileSnapshotStore{path: path}
}

// Load reads the snapshot file. A missing file, unreadable file, corrupt
// JSON, or empty store list is treated as no snapshot at all.
func (f *FileSnapshotStore) Load() (Snapshot, bool) {
	content, err := os.ReadFile(f.path)
	if err != nil {
		return Snapshot{}, false
	}

	var snap Snapshot
	if err := json.Unmarshal(content, &snap); err != nil {
		return Snapshot{}, false
	}
	if len(snap.Stores) == 0 {
		return Snapshot{}, false
	}
	return snap, true
}

// Save writes the snapshot, replacing whatever was there. The write goes
// through a temp file and rename so a crash mid-write cannot leave a
// half-written snapshot behind.
func (f *FileSnapshotStore) Save(snap Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return err
	}

	content, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, content, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
