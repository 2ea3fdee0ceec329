package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates an edge weight that is NaN.
	ErrBadWeight = errors.New("core: edge weight is NaN")
)

// Arc is a single outgoing connection: a target vertex and an edge weight.
//
// An undirected edge contributes one Arc to each endpoint's adjacency;
// a directed edge contributes an Arc only to its source.
type Arc struct {
	// To is the target vertex ID.
	To string

	// Weight is the edge cost. Negative values are representable here;
	// shortest-path engines reject them at query time.
	Weight float64
}

// GraphOption configures a Graph before first use.
type GraphOption func(*Graph)

// WithDirected sets the directedness of all edges added to the graph
// (true = one-way arcs, false = each edge is traversable both ways).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the mutable, dictionary-backed graph.
//
// Vertices are identified by non-empty strings. Edges carry float64 weights.
// Self-loops and parallel edges are always permitted, matching what the
// compiled representation preserves verbatim.
//
// All exported methods are safe for concurrent use; mu guards both the vertex
// set and the adjacency slices.
type Graph struct {
	mu       sync.RWMutex
	directed bool

	// vertices holds every known vertex ID, including isolated ones.
	vertices map[string]struct{}

	// adjacency maps a vertex ID to its outgoing arcs in insertion order.
	// Insertion order is what makes compilation deterministic for a fixed
	// construction sequence.
	adjacency map[string][]Arc

	// edgeCount counts logical edges (an undirected edge counts once).
	edgeCount int
}

// NewGraph creates an empty Graph. By default the graph is undirected;
// use WithDirected(true) for one-way edges.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string][]Arc),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges added to this graph are one-way.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}
