// Package traverse provides breadth-first and depth-first visit orders over
// the compiled adjacency store.
//
// Both traversals are iterative (explicit queue/stack, no recursion), work on
// dense indices, and visit each node at most once; self-loops and parallel
// arcs are skipped after the first visit. The generic wrappers translate the
// orders back to external identifiers.
//
// Complexity: O(N + M) time, O(N) memory per traversal.
package traverse

import (
	"errors"

	"github.com/ckibe-opt/compiledgraph/compiled"
)

// Sentinel errors for traversals.
var (
	// ErrNilStore indicates a nil *compiled.Store.
	ErrNilStore = errors.New("traverse: store is nil")

	// ErrNodeOutOfRange indicates a source index outside [0, N).
	ErrNodeOutOfRange = errors.New("traverse: node index out of range")
)

// BFS returns the breadth-first visit order from source: nodes in
// non-decreasing hop distance, neighbors explored in arc order.
func BFS(s *compiled.Store, source int) ([]int, error) {
	if s == nil {
		return nil, ErrNilStore
	}
	n := s.NumNodes()
	if source < 0 || source >= n {
		return nil, ErrNodeOutOfRange
	}

	visited := make([]bool, n)
	visited[source] = true
	queue := make([]int, 0, n)
	queue = append(queue, source)
	order := make([]int, 0, n)

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		order = append(order, u)
		targets, _ := s.Arcs(u)
		for _, v := range targets {
			if !visited[v] {
				visited[v] = true
				queue = append(queue, v)
			}
		}
	}

	return order, nil
}

// DFS returns the iterative depth-first visit order from source. Arcs are
// pushed in reverse so siblings are visited in arc order, matching what a
// recursive descent would produce.
func DFS(s *compiled.Store, source int) ([]int, error) {
	if s == nil {
		return nil, ErrNilStore
	}
	n := s.NumNodes()
	if source < 0 || source >= n {
		return nil, ErrNodeOutOfRange
	}

	visited := make([]bool, n)
	stack := make([]int, 0, n)
	stack = append(stack, source)
	order := make([]int, 0, n)

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[u] {
			continue
		}
		visited[u] = true
		order = append(order, u)
		targets, _ := s.Arcs(u)
		for k := len(targets) - 1; k >= 0; k-- {
			if !visited[targets[k]] {
				stack = append(stack, targets[k])
			}
		}
	}

	return order, nil
}

// BFSOrder returns the breadth-first visit order from source as external
// identifiers. Returns compiled.ErrUnknownIdentifier for unknown sources.
func BFSOrder[K comparable](g *compiled.Graph[K], source K) ([]K, error) {
	return order(g, source, BFS)
}

// DFSOrder returns the depth-first visit order from source as external
// identifiers. Returns compiled.ErrUnknownIdentifier for unknown sources.
func DFSOrder[K comparable](g *compiled.Graph[K], source K) ([]K, error) {
	return order(g, source, DFS)
}

func order[K comparable](g *compiled.Graph[K], source K, walk func(*compiled.Store, int) ([]int, error)) ([]K, error) {
	src, err := g.IndexOf(source)
	if err != nil {
		return nil, err
	}
	idx, err := walk(g.Forward(), src)
	if err != nil {
		return nil, err
	}

	out := make([]K, len(idx))
	for i, u := range idx {
		if out[i], err = g.Resolve(u); err != nil {
			return nil, err
		}
	}

	return out, nil
}
