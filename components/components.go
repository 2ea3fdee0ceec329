// Package components labels the weakly connected components of a compiled
// graph: two nodes share a label iff some undirected chain of arcs joins
// them, direction ignored.
//
// The labeler floods from each unlabeled node with an iterative BFS over both
// outgoing arcs (forward store) and incoming arcs (reverse store), assigning
// a fresh integer label per flood. Isolated nodes each get a singleton label.
// Self-loops and parallel arcs are no-ops beyond the first visit.
//
// Labels are small integers in first-visited order. They are not guaranteed
// stable across runs by contract; only the induced partition is meaningful.
//
// Complexity: O(N + M) time, O(N) memory.
package components

import (
	"errors"

	"github.com/ckibe-opt/compiledgraph/compiled"
)

// Sentinel errors for component labeling.
var (
	// ErrNilStore indicates a nil forward or reverse store.
	ErrNilStore = errors.New("components: store is nil")

	// ErrStoreMismatch indicates forward and reverse stores of different sizes.
	ErrStoreMismatch = errors.New("components: forward and reverse stores disagree on node count")
)

// Label computes a component label for every node index. fwd and rev must
// describe the same graph in opposite arc directions (rev == fwd.Transpose()).
//
// The result has length N; result[u] == result[v] iff u and v are weakly
// connected. Every node is visited exactly once overall.
//
// Complexity: O(N + M) time, O(N) memory.
func Label(fwd, rev *compiled.Store) ([]int, error) {
	if fwd == nil || rev == nil {
		return nil, ErrNilStore
	}
	if fwd.NumNodes() != rev.NumNodes() {
		return nil, ErrStoreMismatch
	}

	n := fwd.NumNodes()
	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}

	next := 0
	queue := make([]int, 0, n)
	for root := 0; root < n; root++ {
		if labels[root] != -1 {
			continue
		}
		labels[root] = next
		queue = append(queue[:0], root)

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			out, _ := fwd.Arcs(u)
			for _, v := range out {
				if labels[v] == -1 {
					labels[v] = next
					queue = append(queue, v)
				}
			}
			in, _ := rev.Arcs(u)
			for _, v := range in {
				if labels[v] == -1 {
					labels[v] = next
					queue = append(queue, v)
				}
			}
		}
		next++
	}

	return labels, nil
}

// Of labels the components of g keyed by external identifier.
//
// Complexity: O(N + M), plus the one-time reverse-store build on first use.
func Of[K comparable](g *compiled.Graph[K]) (map[K]int, error) {
	labels, err := Label(g.Forward(), g.Reverse())
	if err != nil {
		return nil, err
	}

	out := make(map[K]int, len(labels))
	for i, c := range labels {
		id, err := g.Resolve(i)
		if err != nil {
			return nil, err
		}
		out[id] = c
	}

	return out, nil
}
