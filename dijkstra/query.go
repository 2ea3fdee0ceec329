package dijkstra

import (
	"math"

	"github.com/ckibe-opt/compiledgraph/compiled"
)

// From computes shortest-path distances from source to every reachable node,
// keyed by external identifier. Unreachable nodes are omitted, so the key set
// doubles as the reachability set.
//
// Returns compiled.ErrUnknownIdentifier when source was not part of the
// compiled graph.
//
// Complexity: O((V + E) log V) plus O(V) to map indices back.
func From[K comparable](g *compiled.Graph[K], source K, opts ...Option) (map[K]float64, error) {
	src, err := g.IndexOf(source)
	if err != nil {
		return nil, err
	}
	dist, err := SingleSource(g.Forward(), src, opts...)
	if err != nil {
		return nil, err
	}

	out := make(map[K]float64)
	for i, d := range dist {
		if math.IsInf(d, 1) {
			continue
		}
		id, err := g.Resolve(i)
		if err != nil {
			return nil, err
		}
		out[id] = d
	}

	return out, nil
}

// Between finds the shortest path from source to target via bidirectional
// search, with the path expressed as external identifiers. An unreachable
// target is reported through PathResult.Found, not as an error.
//
// Returns compiled.ErrUnknownIdentifier when either endpoint was not part of
// the compiled graph.
func Between[K comparable](g *compiled.Graph[K], source, target K) (PathResult[K], error) {
	none := PathResult[K]{Distance: math.Inf(1)}
	src, err := g.IndexOf(source)
	if err != nil {
		return none, err
	}
	dst, err := g.IndexOf(target)
	if err != nil {
		return none, err
	}

	route, err := Bidirectional(g.Forward(), g.Reverse(), src, dst)
	if err != nil {
		return none, err
	}
	if !route.Found {
		return none, nil
	}

	path := make([]K, len(route.Nodes))
	for i, u := range route.Nodes {
		if path[i], err = g.Resolve(u); err != nil {
			return none, err
		}
	}

	return PathResult[K]{Distance: route.Distance, Path: path, Found: true}, nil
}
