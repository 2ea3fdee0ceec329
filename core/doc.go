// Package core provides the general-purpose, dictionary-backed graph used as
// the mutable front end (and correctness baseline) for the compiled query
// engine.
//
// What:
//
//   - Graph stores vertices and weighted arcs in nested maps/slices, guarded
//     by an RWMutex, supporting directed and undirected edges, self-loops and
//     parallel edges.
//   - Graph exposes a lazy, restartable ingest view (Nodes, OutEdges) that the
//     compiled package consumes without ever mutating the graph.
//
// Why:
//
//   - Flexible construction: identifiers are arbitrary strings, edges can be
//     added in any order, and the structure is easy to inspect.
//   - The same representation doubles as the reference implementation that the
//     oracle package cross-checks compiled query results against.
//
// The trade-off is query latency: map lookups and pointer chasing dominate
// repeated traversals. For read-heavy workloads, compile the graph once with
// compiled.Compile and run queries against the array-based form instead.
//
// Complexity:
//
//   - AddVertex / HasVertex: O(1)
//   - AddEdge: O(1) amortized
//   - Vertices: O(V log V) (sorted for deterministic enumeration)
//   - Neighbors: O(deg(v)) copy
//
// Errors:
//
//   - ErrEmptyVertexID: vertex ID is the empty string.
//   - ErrVertexNotFound: requested vertex does not exist.
//   - ErrBadWeight: edge weight is NaN.
package core
