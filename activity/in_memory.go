package activity

import (
	"sync"

	"github.com/hupe1980/stockmesh/core"
)

// DefaultCapacity is the number of entries the log retains before evicting
// the oldest.
const DefaultCapacity = 100

// InMemoryLog is a volatile ActivityLog implementation. Insertion is always
// at the front; once length exceeds the capacity the oldest entries are
// dropped. Ordering is by insertion (a strictly monotonic sequence number),
// not by timestamp value, since timestamps may tie. Safe for concurrent use.
type InMemoryLog struct {
	mu       sync.RWMutex
	capacity int
	seq      uint64
	entries  []core.Entry
}

// NewInMemoryLog constructs an empty log with the given capacity. A
// non-positive capacity falls back to DefaultCapacity.
func NewInMemoryLog(capacity int) *InMemoryLog {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &InMemoryLog{capacity: capacity}
}

// Append inserts the entry at the front, assigning its sequence number, and
// evicts the oldest entry when the log is over capacity.
func (l *InMemoryLog) Append(e core.Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	e.Seq = l.seq

	l.entries = append([]core.Entry{e}, l.entries...)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[:l.capacity]
	}
}

// Entries returns a newest-first copy of the retained entries.
func (l *InMemoryLog) Entries() []core.Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]core.Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of retained entries.
func (l *InMemoryLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
