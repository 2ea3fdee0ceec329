package core

import "iter"

// Nodes returns a lazy, restartable sequence over every vertex ID, isolated
// vertices included, in sorted order. Together with OutEdges this makes
// *Graph a valid ingest view for compiled.Compile.
// Complexity: O(V log V) per restart.
func (g *Graph) Nodes() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, id := range g.Vertices() {
			if !yield(id) {
				return
			}
		}
	}
}

// OutEdges returns a lazy, restartable sequence of (neighbor, weight) pairs
// for the outgoing arcs of id, in insertion order. Unknown vertices yield an
// empty sequence: the compiler only asks about vertices it received from
// Nodes, so absence here is indistinguishable from degree zero.
// Complexity: O(deg(id)) per restart.
func (g *Graph) OutEdges(id string) iter.Seq2[string, float64] {
	return func(yield func(string, float64) bool) {
		arcs, err := g.Neighbors(id)
		if err != nil {
			return
		}
		for _, a := range arcs {
			if !yield(a.To, a.Weight) {
				return
			}
		}
	}
}
