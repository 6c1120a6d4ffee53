package hashing

// entryKey identifies a stored count: the same position searched to a
// different depth has a different node count.
type entryKey struct {
	Key   uint64
	Depth int
}

// Table stores perft node counts by position key and depth.
type Table struct {
	entries map[entryKey]uint64
	// maxCapacity limits stored entries (0 = unlimited)
	maxCapacity int
	hits        int
	misses      int
}

// NewTable creates a table. maxCapacity of 0 means unlimited capacity.
func NewTable(maxCapacity int) *Table {
	return &Table{
		entries:     make(map[entryKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the count stored for key at depth.
func (t *Table) Lookup(key uint64, depth int) (uint64, bool) {
	nodes, ok := t.entries[entryKey{key, depth}]
	if ok {
		t.hits++
	} else {
		t.misses++
	}
	return nodes, ok
}

// Store records a count. When the table is full new entries are dropped.
func (t *Table) Store(key uint64, depth int, nodes uint64) {
	k := entryKey{key, depth}
	if _, exists := t.entries[k]; !exists && t.IsFull() {
		return
	}
	t.entries[k] = nodes
}

// IsFull returns true if the table has reached its capacity limit.
func (t *Table) IsFull() bool {
	return t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}

// Len returns the number of stored entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Stats returns the lookup hit and miss counts.
func (t *Table) Stats() (hits, misses int) {
	return t.hits, t.misses
}

// Reset clears the table.
func (t *Table) Reset() {
	t.entries = make(map[entryKey]uint64)
	t.hits, t.misses = 0, 0
}
