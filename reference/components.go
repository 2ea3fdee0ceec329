package reference

import "github.com/ckibe-opt/compiledgraph/core"

// Components labels the weakly connected components of g, keyed by vertex ID.
// Direction is ignored: for a directed graph, an edge u→v joins u and v.
// Labels are integers in first-visited (sorted vertex) order; only the
// partition they induce is meaningful.
//
// Complexity: O(V + E) time, O(V + E) memory for the undirected view.
func Components(g *core.Graph) map[string]int {
	vertices := g.Vertices()

	// Build an undirected neighbor view once; for directed graphs the arc
	// u→v must also be walkable v→u.
	undirected := make(map[string][]string, len(vertices))
	for _, u := range vertices {
		arcs, err := g.Neighbors(u)
		if err != nil {
			continue
		}
		for _, a := range arcs {
			undirected[u] = append(undirected[u], a.To)
			if g.Directed() {
				undirected[a.To] = append(undirected[a.To], u)
			}
		}
	}

	labels := make(map[string]int, len(vertices))
	next := 0
	for _, root := range vertices {
		if _, seen := labels[root]; seen {
			continue
		}
		labels[root] = next
		queue := []string{root}
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range undirected[u] {
				if _, seen := labels[v]; !seen {
					labels[v] = next
					queue = append(queue, v)
				}
			}
		}
		next++
	}

	return labels
}
