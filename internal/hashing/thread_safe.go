package hashing

import "sync"

// ThreadSafeTable wraps Table with mutex protection for concurrent access.
type ThreadSafeTable struct {
	table *Table
	mu    sync.Mutex
}

// NewThreadSafeTable creates a new thread-safe table.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeTable(maxCapacity int) *ThreadSafeTable {
	return &ThreadSafeTable{table: NewTable(maxCapacity)}
}

// Lookup returns the count stored for key at depth.
func (t *ThreadSafeTable) Lookup(key uint64, depth int) (uint64, bool) {
	// Lookup updates the hit counters, so it takes the write lock.
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Lookup(key, depth)
}

// Store records a count.
func (t *ThreadSafeTable) Store(key uint64, depth int, nodes uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.table.Store(key, depth, nodes)
}

// Len returns the number of stored entries.
func (t *ThreadSafeTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Len()
}

// Stats returns the lookup hit and miss counts.
func (t *ThreadSafeTable) Stats() (hits, misses int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Stats()
}

// IsFull returns true if the table has reached its capacity limit.
func (t *ThreadSafeTable) IsFull() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.IsFull()
}
