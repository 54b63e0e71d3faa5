package mathexpr

// SideTable is a generic store keyed by NodeID, used to attach parser-time
// metadata (operator attributes during normalization, source direction) to
// tree nodes without widening Expr's own field set: a stable index embedded
// in the node, not an inheritance hierarchy or an extra interface method.
type SideTable[T any] struct {
	next    NodeID
	entries map[NodeID]T
}

// NewSideTable creates an empty side table.
func NewSideTable[T any]() *SideTable[T] {
	return &SideTable[T]{entries: make(map[NodeID]T)}
}

// Allocate reserves a fresh NodeID with no entry yet.
func (t *SideTable[T]) Allocate() NodeID {
	t.next++
	return t.next
}

// Set stores (or replaces) the side info for id.
func (t *SideTable[T]) Set(id NodeID, v T) {
	t.entries[id] = v
}

// Get retrieves the side info for id, if any.
func (t *SideTable[T]) Get(id NodeID) (T, bool) {
	v, ok := t.entries[id]
	return v, ok
}

// GetOrZero retrieves the side info for id, or the zero value if absent.
func (t *SideTable[T]) GetOrZero(id NodeID) T {
	return t.entries[id]
}
