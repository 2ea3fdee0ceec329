// Package dijkstra implements shortest-path queries over the compiled
// adjacency store: single-source Dijkstra and point-to-point bidirectional
// Dijkstra.
//
// Both engines work purely on dense integer indices and the CSR arenas of
// compiled.Store; the generic wrappers From and Between translate between
// external identifiers and indices at the boundary only.
//
// The priority queue is container/heap with the lazy decrease-key pattern:
// improving a tentative distance pushes a fresh entry, and stale entries are
// discarded on pop by comparing the popped key against the recorded best.
//
// Bidirectional search runs two frontiers, forward over the forward store and
// backward over the reverse store, and stops as soon as the sum of the two
// queues' minimum keys can no longer beat the best meeting distance found.
// On long paths this prunes most of the graph and is where the large
// point-to-point speedups come from.
//
// Complexity:
//
//   - SingleSource:  O((V + E) log V) time, O(V + E) space.
//   - Bidirectional: same bound, typically far less work in practice.
//
// Weight semantics: non-negative weights only. Negative weights break the
// settled-node invariant; WithWeightCheck pre-scans the store and fails fast
// with ErrNegativeWeight before any relaxation. Zero-weight, self-loop and
// parallel edges are all handled (a relaxation that does not strictly improve
// a distance is ignored).
package dijkstra
