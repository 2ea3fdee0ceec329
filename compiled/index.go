package compiled

import "fmt"

// Index is a bidirectional mapping between arbitrary comparable identifiers
// and the dense integer range [0, N).
//
// Indices are assigned in first-seen order, form a contiguous range with no
// gaps, and are never reassigned. The assignment order is deterministic for a
// deterministic intern sequence but carries no semantic meaning.
//
// Index is mutated only during compilation; afterwards it is read-only and
// safe to share across goroutines.
type Index[K comparable] struct {
	forward  map[K]int
	backward []K
}

// NewIndex returns an empty Index.
func NewIndex[K comparable]() *Index[K] {
	return &Index[K]{forward: make(map[K]int)}
}

// Intern returns the index of id, assigning the next unused index on first
// sight. Complexity: O(1) amortized.
func (ix *Index[K]) Intern(id K) int {
	if i, ok := ix.forward[id]; ok {
		return i
	}
	i := len(ix.backward)
	ix.forward[id] = i
	ix.backward = append(ix.backward, id)

	return i
}

// Lookup returns the index of id without interning, and whether it exists.
// Complexity: O(1).
func (ix *Index[K]) Lookup(id K) (int, bool) {
	i, ok := ix.forward[id]

	return i, ok
}

// Resolve returns the identifier assigned to index i, the exact inverse of
// Intern. Returns ErrIndexOutOfRange when i is not in [0, N).
// Complexity: O(1).
func (ix *Index[K]) Resolve(i int) (K, error) {
	if i < 0 || i >= len(ix.backward) {
		var zero K
		return zero, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(ix.backward))
	}

	return ix.backward[i], nil
}

// Size returns N, the number of interned identifiers.
// Complexity: O(1).
func (ix *Index[K]) Size() int { return len(ix.backward) }
