package reference

import (
	"container/heap"
	"errors"
	"fmt"
	"math"

	"github.com/ckibe-opt/compiledgraph/core"
)

// Sentinel errors for reference shortest-path queries.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("reference: graph is nil")

	// ErrVertexNotFound indicates a source or target absent from the graph.
	ErrVertexNotFound = errors.New("reference: vertex not found")

	// ErrNegativeWeight indicates a negative edge weight, which Dijkstra's
	// settled-node invariant cannot tolerate.
	ErrNegativeWeight = errors.New("reference: negative edge weight encountered")
)

// Dijkstra computes shortest distances from source to every reachable vertex,
// keyed by vertex ID. Unreachable vertices are omitted from the result.
//
// Negative edge weights are rejected with ErrNegativeWeight as soon as one is
// encountered during relaxation.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, source string) (map[string]float64, error) {
	r, err := newRunner(g, source, false)
	if err != nil {
		return nil, err
	}
	if err = r.run(""); err != nil {
		return nil, err
	}

	return r.dist, nil
}

// ShortestPath computes the shortest path from source to target. The third
// return value reports whether target is reachable; false is an outcome, not
// an error. The path lists vertex IDs from source to target inclusive.
//
// Complexity: O((V + E) log V), though the run stops once target settles.
func ShortestPath(g *core.Graph, source, target string) (float64, []string, bool, error) {
	r, err := newRunner(g, source, true)
	if err != nil {
		return math.Inf(1), nil, false, err
	}
	if !g.HasVertex(target) {
		return math.Inf(1), nil, false, fmt.Errorf("%w: %q", ErrVertexNotFound, target)
	}
	if err = r.run(target); err != nil {
		return math.Inf(1), nil, false, err
	}

	d, ok := r.dist[target]
	if !ok {
		return math.Inf(1), nil, false, nil
	}

	// Walk predecessors back from target, then reverse in place.
	path := []string{target}
	for cur := target; cur != source; {
		cur = r.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return d, path, true, nil
}

// runner holds the mutable state of one Dijkstra execution over map storage.
type runner struct {
	g       *core.Graph
	source  string
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      vertexQueue
}

func newRunner(g *core.Graph, source string, wantPath bool) (*runner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, source)
	}

	r := &runner{
		g:       g,
		source:  source,
		dist:    make(map[string]float64),
		visited: make(map[string]bool),
	}
	if wantPath {
		r.prev = make(map[string]string)
	}

	return r, nil
}

// run executes the main loop. When stopAt is non-empty, the loop ends as soon
// as that vertex settles.
func (r *runner) run(stopAt string) error {
	r.dist[r.source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, vertexItem{id: r.source, dist: 0})

	for r.pq.Len() > 0 {
		it := heap.Pop(&r.pq).(vertexItem)
		if r.visited[it.id] {
			continue // stale lazy decrease-key entry
		}
		r.visited[it.id] = true
		if stopAt != "" && it.id == stopAt {
			return nil
		}
		if err := r.relax(it.id, it.dist); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve the distance of every neighbor of u.
func (r *runner) relax(u string, d float64) error {
	arcs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("reference: neighbors of %q: %w", u, err)
	}
	for _, a := range arcs {
		if a.Weight < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%v", ErrNegativeWeight, u, a.To, a.Weight)
		}
		candidate := d + a.Weight
		best, seen := r.dist[a.To]
		if seen && candidate >= best {
			continue
		}
		r.dist[a.To] = candidate
		if r.prev != nil {
			r.prev[a.To] = u
		}
		heap.Push(&r.pq, vertexItem{id: a.To, dist: candidate})
	}

	return nil
}

// vertexItem pairs a vertex ID with its tentative distance from the source.
type vertexItem struct {
	id   string
	dist float64
}

// vertexQueue is a min-heap of vertexItems ordered by distance ascending,
// used with the lazy decrease-key pattern.
type vertexQueue []vertexItem

func (q vertexQueue) Len() int { return len(q) }

func (q vertexQueue) Less(i, j int) bool { return q[i].dist < q[j].dist }

func (q vertexQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *vertexQueue) Push(x interface{}) { *q = append(*q, x.(vertexItem)) }

func (q *vertexQueue) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]

	return it
}
