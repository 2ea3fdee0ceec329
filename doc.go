// Package compiledgraph turns a mutable, dictionary-backed graph into a
// compact, immutable form tuned for repeated queries.
//
// 🚀 What is compiledgraph?
//
//	A compile-once / query-many toolkit that brings together:
//		• Core primitives: a thread-safe reference graph for ingest & baselines
//		• Compilation: identifier interning + compressed sparse-row adjacency
//		• Shortest paths: single-source Dijkstra, bidirectional point-to-point
//		• Components: weakly-connected component labeling
//		• Traversals: BFS, DFS visit orders over the compiled store
//		• Verification: a correctness oracle cross-checking compiled answers
//		  against the dictionary baseline
//		• Benchmarking: query timing, speedup and break-even amortization
//
// ✨ Why compile?
//
//   - Dense integer node handles – no map lookups on the hot path
//   - Contiguous arc arenas – cache-friendly relaxation loops
//   - Immutable after compile – safe for concurrent readers, no locks
//   - Honest bookkeeping – every compile reports its cost so callers can
//     decide when amortization pays off
//
// Everything is organized under a handful of subpackages:
//
//	core/        — mutable reference graph (ingest surface & oracle baseline)
//	compiled/    — index, CSR store, compiler, compiled graph bundle
//	dijkstra/    — single-source & bidirectional shortest paths
//	components/  — weakly-connected component labeling
//	traverse/    — BFS/DFS visit orders
//	reference/   — dictionary-based baseline algorithms
//	oracle/      — compiled-vs-baseline cross-checking
//	bench/       — workload generation & timing
//	cmd/cgbench/ — benchmark CLI
//
// Quick ASCII example:
//
//	    A──2──B
//	    │     │
//	    1     3
//	    │     │
//	    C──4──D
//
//	compile once, then answer A→D (A-B-D, cost 5) thousands of times from
//	the flat arrays.
//
//	go get github.com/ckibe-opt/compiledgraph
package compiledgraph
