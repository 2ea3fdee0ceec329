package dijkstra

import (
	"container/heap"
	"math"

	"github.com/ckibe-opt/compiledgraph/compiled"
)

// SingleSource computes the shortest distance from source to every node in
// the store. The result is indexed by node: unreachable nodes carry +Inf,
// the source carries 0.
//
// Preconditions (validated in order):
//  1. s must be non-nil (ErrNilStore).
//  2. source must lie in [0, N) (ErrNodeOutOfRange).
//  3. With WithWeightCheck, every arc weight must be non-negative
//     (ErrNegativeWeight).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func SingleSource(s *compiled.Store, source int, opts ...Option) ([]float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if s == nil {
		return nil, ErrNilStore
	}
	if source < 0 || source >= s.NumNodes() {
		return nil, ErrNodeOutOfRange
	}
	if cfg.WeightCheck {
		if err := scanWeights(s); err != nil {
			return nil, err
		}
	}

	return relaxAll(s, source), nil
}

// scanWeights walks every arc weight once and reports the first negative one.
func scanWeights(s *compiled.Store) error {
	for u := 0; u < s.NumNodes(); u++ {
		_, weights := s.Arcs(u)
		for _, w := range weights {
			if w < 0 {
				return ErrNegativeWeight
			}
		}
	}

	return nil
}

// relaxAll runs the full Dijkstra relaxation loop from source over s and
// returns the distance array.
func relaxAll(s *compiled.Store, source int) []float64 {
	n := s.NumNodes()
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[source] = 0

	pq := make(queue, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, entry{node: source, dist: 0})

	for pq.Len() > 0 {
		it := heap.Pop(&pq).(entry)
		u := it.node
		// Stale entry from the lazy decrease-key scheme: a better distance for
		// u was already settled, so this copy carries no information.
		if it.dist > dist[u] {
			continue
		}
		targets, weights := s.Arcs(u)
		for k, v := range targets {
			candidate := it.dist + weights[k]
			if candidate < dist[v] {
				dist[v] = candidate
				heap.Push(&pq, entry{node: v, dist: candidate})
			}
		}
	}

	return dist
}

// entry pairs a node index with its tentative distance from the source.
type entry struct {
	node int
	dist float64
}

// queue is a min-heap of entries ordered by distance, used with the lazy
// decrease-key pattern: duplicates are pushed and stale ones skipped on pop.
type queue []entry

func (q queue) Len() int { return len(q) }

func (q queue) Less(i, j int) bool { return q[i].dist < q[j].dist }

func (q queue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *queue) Push(x interface{}) { *q = append(*q, x.(entry)) }

func (q *queue) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]

	return it
}

// minKey returns the smallest tentative distance currently queued, or +Inf
// when the queue is empty.
func (q queue) minKey() float64 {
	if len(q) == 0 {
		return math.Inf(1)
	}

	return q[0].dist
}
