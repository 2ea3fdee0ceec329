package compiled

import (
	"fmt"
	"math"
	"sync"
	"time"
)

// halfArc is a buffered (target, weight) pair awaiting flattening.
type halfArc struct {
	to     int
	weight float64
}

// Graph bundles everything one compilation produces: the identifier index,
// the forward CSR store, a reverse store built on first demand, and the
// compilation report.
//
// A Graph is immutable after Compile returns. Any number of goroutines may
// query it concurrently; each query allocates its own scratch state.
type Graph[K comparable] struct {
	index   *Index[K]
	forward *Store
	report  Report

	revOnce sync.Once
	reverse *Store
}

// Index returns the identifier index. Read-only after compilation.
func (g *Graph[K]) Index() *Index[K] { return g.index }

// Forward returns the forward-direction CSR store.
func (g *Graph[K]) Forward() *Store { return g.forward }

// Reverse returns the CSR store over reversed arcs, building it on first
// call. The build is guarded by sync.Once, so concurrent bidirectional
// queries observe exactly one transpose.
// Complexity: O(N + M) once, O(1) after.
func (g *Graph[K]) Reverse() *Store {
	g.revOnce.Do(func() { g.reverse = g.forward.Transpose() })

	return g.reverse
}

// Report returns the compilation cost report.
func (g *Graph[K]) Report() Report { return g.report }

// Resolve maps an internal index back to its external identifier.
func (g *Graph[K]) Resolve(i int) (K, error) { return g.index.Resolve(i) }

// IndexOf maps an external identifier to its internal index, returning
// ErrUnknownIdentifier for identifiers absent at compilation time.
func (g *Graph[K]) IndexOf(id K) (int, error) {
	i, ok := g.index.Lookup(id)
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownIdentifier, id)
	}

	return i, nil
}

// Compile builds the dense representation of src in three passes:
//
//  1. Intern every node from src.Nodes, isolated nodes included, so each one
//     owns an index and a row in offsets.
//  2. For each node in index order, intern its out-neighbors and buffer
//     (target, weight) pairs. Neighbors unseen during pass 1 are interned
//     here and processed in turn, so a view whose edge set mentions extra
//     nodes still compiles completely.
//  3. Flatten the per-node buffers into the targets/weights arenas, recording
//     cumulative counts into offsets.
//
// Self-loops and parallel edges are preserved verbatim; deduplication is the
// query engines' concern (a relaxation that does not improve a distance is
// simply ignored). src is never mutated. The elapsed wall time lands in the
// returned Graph's Report, separate from any later query timing.
//
// Returns ErrNilSource for a nil view and ErrBadWeight if any edge weight is
// NaN; no partial Graph is ever returned.
//
// Complexity: O(V + E) time and memory.
func Compile[K comparable](src Source[K]) (*Graph[K], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	start := time.Now()

	index := NewIndex[K]()
	for id := range src.Nodes() {
		index.Intern(id)
	}

	// Pass 2: buffers grows as interning discovers edge-only nodes, and the
	// loop bound is re-read so those nodes get their edges enumerated too.
	buffers := make([][]halfArc, index.Size())
	arcs := 0
	for u := 0; u < index.Size(); u++ {
		id, err := index.Resolve(u)
		if err != nil {
			return nil, err
		}
		for nbr, w := range src.OutEdges(id) {
			if math.IsNaN(w) {
				return nil, fmt.Errorf("%w: edge %v->%v", ErrBadWeight, id, nbr)
			}
			v := index.Intern(nbr)
			for len(buffers) < index.Size() {
				buffers = append(buffers, nil)
			}
			buffers[u] = append(buffers[u], halfArc{to: v, weight: w})
			arcs++
		}
	}

	// Pass 3: flatten into CSR arenas. Nodes discovered last may not have a
	// buffer row yet when they carry no out-edges of their own.
	n := index.Size()
	for len(buffers) < n {
		buffers = append(buffers, nil)
	}
	store := &Store{
		offsets: make([]int, n+1),
		targets: make([]int, 0, arcs),
		weights: make([]float64, 0, arcs),
	}
	for u := 0; u < n; u++ {
		for _, a := range buffers[u] {
			store.targets = append(store.targets, a.to)
			store.weights = append(store.weights, a.weight)
		}
		store.offsets[u+1] = len(store.targets)
	}

	return &Graph[K]{
		index:   index,
		forward: store,
		report: Report{
			Duration: time.Since(start),
			Nodes:    n,
			Arcs:     arcs,
		},
	}, nil
}
