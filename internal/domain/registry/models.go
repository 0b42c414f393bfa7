package registry

import (
	"time"

	"github.com/google/uuid"
)

// OwnerRecord is what a plate resolves to: the owner's name and phone as
// they appear in the source row.
type OwnerRecord struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Snapshot is one immutable build of the lookup structures. Plates and
// Phones always come from the same set of rows; a reload replaces the
// whole snapshot, never a part of it.
type Snapshot struct {
	ID       uuid.UUID
	LoadedAt time.Time
	RowCount int
	Plates   map[string]OwnerRecord
	Phones   map[string]struct{}
}

// Stats describes the live snapshot for operators.
type Stats struct {
	SnapshotID uuid.UUID `json:"snapshot_id"`
	LoadedAt   time.Time `json:"loaded_at"`
	Rows       int       `json:"rows"`
	Plates     int       `json:"plates"`
	Phones     int       `json:"phones"`
}
