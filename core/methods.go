package core

import (
	"math"
	"sort"
)

// AddVertex registers id as a vertex, with or without edges.
// Adding an existing vertex is a no-op.
// Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[id] = struct{}{}

	return nil
}

// AddEdge adds an edge from → to with the given weight, creating missing
// endpoints automatically. Self-loops and parallel edges are preserved,
// never merged. In undirected graphs the edge becomes traversable from both
// endpoints.
// Returns ErrEmptyVertexID for empty endpoints, ErrBadWeight for NaN weights.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if math.IsNaN(weight) {
		return ErrBadWeight
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}

	g.adjacency[from] = append(g.adjacency[from], Arc{To: to, Weight: weight})
	// Mirror the arc for undirected edges; an undirected self-loop is stored
	// once so neighbor enumeration does not report it twice.
	if !g.directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], Arc{To: from, Weight: weight})
	}
	g.edgeCount++

	return nil
}

// HasVertex reports whether id is a known vertex.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of logical edges added via AddEdge
// (an undirected edge counts once).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Vertices returns all vertex IDs in sorted order. Sorting makes vertex
// enumeration deterministic regardless of map iteration order, which in turn
// makes compilation of the same graph reproducible.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids
}

// Neighbors returns a copy of the outgoing arcs of id, in insertion order.
// Returns ErrVertexNotFound if id is unknown.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]Arc, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	arcs := make([]Arc, len(g.adjacency[id]))
	copy(arcs, g.adjacency[id])

	return arcs, nil
}
