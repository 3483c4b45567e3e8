package models

import (
	"sync"
	"sync/atomic"
)

// SnapshotRepo holds the currently published RoutingSnapshot. Readers
// load it atomically and never block on a publish in progress; the
// mutex serializes only the compare-and-publish step so that a stale
// reconciliation can never overwrite a newer table.
type SnapshotRepo struct {
	mutex   sync.Mutex
	current atomic.Value
}

// Get returns the published snapshot, or (nil, false) before the first
// successful publish.
func (r *SnapshotRepo) Get() (*RoutingSnapshot, bool) {
	snapshot, ok := r.current.Load().(*RoutingSnapshot)
	if !ok || snapshot == nil {
		return nil, false
	}
	return snapshot, true
}

// Publish makes snapshot the current table unless a snapshot with an
// equal or newer version has already been published. It reports whether
// the snapshot was stored.
func (r *SnapshotRepo) Publish(snapshot *RoutingSnapshot) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if current, ok := r.current.Load().(*RoutingSnapshot); ok && current != nil {
		if snapshot.Version <= current.Version {
			return false
		}
	}
	r.current.Store(snapshot)
	return true
}

// Version returns the published snapshot's version, or zero before the
// first publish.
func (r *SnapshotRepo) Version() uint64 {
	snapshot, ok := r.Get()
	if !ok {
		return 0
	}
	return snapshot.Version
}
