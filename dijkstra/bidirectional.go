package dijkstra

import (
	"container/heap"
	"math"

	"github.com/ckibe-opt/compiledgraph/compiled"
)

// frontier is one half of a bidirectional search: its own distance array,
// predecessor links, priority queue, and the store it expands over (the
// forward store for the source side, the reverse store for the target side).
type frontier struct {
	store  *compiled.Store
	dist   []float64
	parent []int
	pq     queue
}

// newFrontier seeds a frontier at root with distance 0.
func newFrontier(store *compiled.Store, root int) *frontier {
	n := store.NumNodes()
	f := &frontier{
		store:  store,
		dist:   make([]float64, n),
		parent: make([]int, n),
		pq:     make(queue, 0, n),
	}
	for i := range f.dist {
		f.dist[i] = math.Inf(1)
		f.parent[i] = -1
	}
	f.dist[root] = 0
	heap.Init(&f.pq)
	heap.Push(&f.pq, entry{node: root, dist: 0})

	return f
}

// step pops and settles at most one node, relaxing its outgoing arcs.
// Whenever the settled node already carries a finite distance on the other
// frontier, the combined distance is a candidate meeting: best and meeting
// are updated if it improves on them.
func (f *frontier) step(other *frontier, best *float64, meeting *int) {
	if f.pq.Len() == 0 {
		return
	}
	it := heap.Pop(&f.pq).(entry)
	u := it.node
	if it.dist > f.dist[u] {
		return // stale lazy decrease-key entry
	}
	if !math.IsInf(other.dist[u], 1) {
		if candidate := f.dist[u] + other.dist[u]; candidate < *best {
			*best = candidate
			*meeting = u
		}
	}
	targets, weights := f.store.Arcs(u)
	for k, v := range targets {
		candidate := it.dist + weights[k]
		if candidate < f.dist[v] {
			f.dist[v] = candidate
			f.parent[v] = u
			heap.Push(&f.pq, entry{node: v, dist: candidate})
		}
	}
}

// Bidirectional finds the shortest path between two nodes by running a
// forward Dijkstra frontier from source over fwd and a backward frontier from
// target over rev (the transpose of fwd), alternating one settle step each.
//
// A running best meeting distance is maintained from nodes finalized by both
// sides; the search stops when the sum of the two queues' minimum keys
// reaches that best, at which point no further relaxation can improve it.
//
// "No path" is a defined outcome (Route.Found == false, Distance == +Inf),
// not an error. source == target yields a zero-length route.
//
// Preconditions: both stores non-nil (ErrNilStore), equal node counts
// (ErrStoreMismatch), both indices in range (ErrNodeOutOfRange).
//
// Complexity: O((V + E) log V) worst case; usually a small fraction of the
// graph is touched before the termination rule fires.
func Bidirectional(fwd, rev *compiled.Store, source, target int) (Route, error) {
	none := Route{Distance: math.Inf(1)}
	if fwd == nil || rev == nil {
		return none, ErrNilStore
	}
	if fwd.NumNodes() != rev.NumNodes() {
		return none, ErrStoreMismatch
	}
	n := fwd.NumNodes()
	if source < 0 || source >= n || target < 0 || target >= n {
		return none, ErrNodeOutOfRange
	}
	if source == target {
		return Route{Distance: 0, Nodes: []int{source}, Found: true}, nil
	}

	forward := newFrontier(fwd, source)
	backward := newFrontier(rev, target)

	best := math.Inf(1)
	meeting := -1

	for forward.pq.Len() > 0 || backward.pq.Len() > 0 {
		forward.step(backward, &best, &meeting)
		backward.step(forward, &best, &meeting)

		if meeting != -1 && forward.pq.minKey()+backward.pq.minKey() >= best {
			break
		}
	}

	if meeting == -1 || math.IsInf(best, 1) {
		return none, nil
	}

	return Route{Distance: best, Nodes: splicePath(forward, backward, meeting), Found: true}, nil
}

// splicePath rebuilds source→target through the meeting node: the forward
// parent chain walked back to the source and reversed, then the backward
// parent chain walked onward to the target.
func splicePath(forward, backward *frontier, meeting int) []int {
	var head []int
	for u := meeting; u != -1; u = forward.parent[u] {
		head = append(head, u)
	}
	for i, j := 0, len(head)-1; i < j; i, j = i+1, j-1 {
		head[i], head[j] = head[j], head[i]
	}
	for u := backward.parent[meeting]; u != -1; u = backward.parent[u] {
		head = append(head, u)
	}

	return head
}
