package compiled

// Store is a compressed-sparse-row adjacency over dense node indices.
//
// For N nodes and M directed arc entries it holds:
//
//   - offsets: N+1 monotonically non-decreasing integers;
//     offsets[u+1]-offsets[u] is the out-degree of node u.
//   - targets: M node indices; targets[offsets[u]:offsets[u+1]] are the
//     out-neighbors of u, contiguous per node, duplicates and self-loops
//     preserved.
//   - weights: M float64 values aligned with targets.
//
// Invariants: offsets[0] == 0, offsets[N] == M, every target lies in [0, N).
// A Store is immutable after construction and safe for concurrent readers.
type Store struct {
	offsets []int
	targets []int
	weights []float64
}

// NumNodes returns N.
func (s *Store) NumNodes() int { return len(s.offsets) - 1 }

// NumArcs returns M, the number of directed arc entries.
func (s *Store) NumArcs() int { return len(s.targets) }

// OutDegree returns the number of outgoing arcs of node u.
// u must be in [0, N); out-of-range values are a caller bug and panic via
// slice bounds, same as indexing any array-backed structure.
func (s *Store) OutDegree(u int) int { return s.offsets[u+1] - s.offsets[u] }

// Arcs returns the out-neighbors and aligned weights of node u as sub-slices
// of the shared arenas. Callers must treat both as read-only.
// Complexity: O(1).
func (s *Store) Arcs(u int) (targets []int, weights []float64) {
	lo, hi := s.offsets[u], s.offsets[u+1]

	return s.targets[lo:hi], s.weights[lo:hi]
}

// Transpose returns a new Store with every arc reversed, sharing nothing with
// the receiver. Used to drive the backward frontier of bidirectional search
// and incoming-arc floods in component labeling.
// Complexity: O(N + M) time and memory (counting sort by target).
func (s *Store) Transpose() *Store {
	n, m := s.NumNodes(), s.NumArcs()
	offsets := make([]int, n+1)
	for _, v := range s.targets {
		offsets[v+1]++
	}
	for u := 0; u < n; u++ {
		offsets[u+1] += offsets[u]
	}

	targets := make([]int, m)
	weights := make([]float64, m)
	next := make([]int, n)
	copy(next, offsets[:n])
	for u := 0; u < n; u++ {
		lo, hi := s.offsets[u], s.offsets[u+1]
		for k := lo; k < hi; k++ {
			v := s.targets[k]
			targets[next[v]] = u
			weights[next[v]] = s.weights[k]
			next[v]++
		}
	}

	return &Store{offsets: offsets, targets: targets, weights: weights}
}
