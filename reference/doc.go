// Package reference implements the baseline graph queries directly over the
// dictionary-backed core.Graph: single-source Dijkstra, point-to-point
// shortest path, and connected-component labeling.
//
// These are the implementations the compiled engines are measured against and
// verified against (see the oracle package). They favor clarity over speed:
// distances and predecessors live in maps keyed by vertex ID, and every
// neighbor visit pays for a map lookup — exactly the overhead the compiled
// representation removes.
//
// Complexity:
//
//   - Dijkstra / ShortestPath: O((V + E) log V) time, O(V + E) space,
//     with larger constants than the compiled engine.
//   - Components: O(V + E).
package reference
