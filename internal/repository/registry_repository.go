package repository

import (
	"sync"

	"plate-bot/internal/domain/registry"
)

// RegistryRepository owns the live dataset snapshot. Lookups and reloads
// run concurrently: readers take the current snapshot pointer under a read
// lock, a reload swaps the pointer wholesale. A reader never sees plates
// from one load and phones from another.
type RegistryRepository struct {
	mu       sync.RWMutex
	snapshot *registry.Snapshot
}

func NewRegistryRepository() *RegistryRepository {
	return &RegistryRepository{}
}

// Snapshot returns the current snapshot, or nil before the first
// successful load.
func (r *RegistryRepository) Snapshot() *registry.Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot
}

// ReplaceSnapshot installs a freshly built snapshot. The previous one
// stays valid for readers that already hold it.
func (r *RegistryRepository) ReplaceSnapshot(s *registry.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshot = s
}
