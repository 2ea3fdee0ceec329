// Package compiled transforms a general-purpose graph into a compact,
// array-based representation optimized for repeated read-only queries.
//
// What:
//
//   - Index maps arbitrary comparable identifiers to dense integers 0..N-1
//     and back.
//   - Store is a compressed-sparse-row (CSR) adjacency: one offsets table plus
//     two flat arenas (targets, weights) holding every directed arc.
//   - Compile builds both from any Source (a lazy, restartable ingest view)
//     and reports the one-time compilation cost separately from query time.
//   - Graph bundles the index, the forward store, a lazily built reverse
//     store, and the compilation report.
//
// Why:
//
//	Dictionary-backed graphs pay for hashing and pointer chasing on every
//	neighbor visit. Compiling once into contiguous arrays makes each
//	relaxation a couple of slice reads, which is where the speedup of the
//	dijkstra and components packages comes from. The break-even point is
//	typically a handful of queries; Report carries the numbers needed to
//	compute it.
//
// The compiled form is immutable: any change to the underlying graph requires
// compiling again. Immutability is also what makes a *Graph safe for any
// number of concurrent readers — queries allocate all their scratch state.
//
// Complexity:
//
//   - Compile:   O(V + E) time and memory.
//   - Intern:    O(1) amortized; Resolve: O(1).
//   - Arcs(u):   O(1) (returns sub-slices of the arenas).
//   - Transpose: O(V + E).
//
// Errors:
//
//   - ErrNilSource:         Compile received a nil ingest view.
//   - ErrBadWeight:         the ingest view produced a NaN edge weight.
//   - ErrUnknownIdentifier: a query referenced an identifier never seen
//     during compilation.
//   - ErrIndexOutOfRange:   an internal index escaped [0, N); indicates a
//     compiler bug, not a caller mistake.
package compiled
