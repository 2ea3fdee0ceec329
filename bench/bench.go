// Package bench is the benchmark collaborator for the compiled query engine:
// it generates randomized workloads, times individual queries against both
// the reference and compiled implementations, and folds the measurements into
// a report with speedup and amortization break-even figures.
//
// Timing is returned as explicit values — never accumulated into shared
// counters — so the core stays reusable and testable in isolation.
package bench

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ckibe-opt/compiledgraph/core"
)

// Sentinel errors for benchmark configuration.
var (
	// ErrNoQueries indicates a non-positive query count.
	ErrNoQueries = errors.New("bench: query count must be positive")

	// ErrNilQuery indicates a nil query function.
	ErrNilQuery = errors.New("bench: query function is nil")

	// ErrBadShape indicates non-positive node count or degree.
	ErrBadShape = errors.New("bench: node count and average degree must be positive")
)

// SparseGraph generates a connected, undirected sparse graph: a chain through
// all n vertices guarantees connectivity, then extra random edges are added
// until the average degree is roughly avgDegree. Weights are uniform integers
// in [1, 10]. The same seed always yields the same graph.
//
// Complexity: O(n · avgDegree).
func SparseGraph(n, avgDegree int, seed int64) (*core.Graph, error) {
	if n <= 0 || avgDegree <= 0 {
		return nil, ErrBadShape
	}
	rng := rand.New(rand.NewSource(seed))
	g := core.NewGraph()

	id := func(i int) string { return fmt.Sprintf("n%d", i) }
	for i := 0; i < n; i++ {
		if err := g.AddVertex(id(i)); err != nil {
			return nil, err
		}
	}
	for i := 0; i+1 < n; i++ {
		if err := g.AddEdge(id(i), id(i+1), float64(1+rng.Intn(10))); err != nil {
			return nil, err
		}
	}
	extra := n * avgDegree / 2
	for e := 0; e < extra; e++ {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v {
			continue
		}
		if err := g.AddEdge(id(u), id(v), float64(1+rng.Intn(10))); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Stats aggregates per-query wall-clock measurements.
type Stats struct {
	Samples int
	Total   time.Duration
	Min     time.Duration
	Max     time.Duration
}

// Mean returns the average per-query latency.
func (s Stats) Mean() time.Duration {
	if s.Samples == 0 {
		return 0
	}

	return s.Total / time.Duration(s.Samples)
}

// fold accumulates one sample.
func (s *Stats) fold(d time.Duration) {
	if s.Samples == 0 || d < s.Min {
		s.Min = d
	}
	if d > s.Max {
		s.Max = d
	}
	s.Total += d
	s.Samples++
}

// Measure runs fn for i in [0, queries), timing each call individually.
// One untimed warmup call of fn(0) precedes the measured runs. The first
// error aborts the measurement.
func Measure(queries int, fn func(i int) error) (Stats, error) {
	if queries <= 0 {
		return Stats{}, ErrNoQueries
	}
	if fn == nil {
		return Stats{}, ErrNilQuery
	}
	if err := fn(0); err != nil {
		return Stats{}, fmt.Errorf("bench: warmup query: %w", err)
	}

	var stats Stats
	for i := 0; i < queries; i++ {
		start := time.Now()
		if err := fn(i); err != nil {
			return Stats{}, fmt.Errorf("bench: query %d: %w", i, err)
		}
		stats.fold(time.Since(start))
	}

	return stats, nil
}

// MeasureParallel runs the same workload fanned out over the given number of
// workers, exercising the compiled graph's concurrent-reader guarantee. Each
// query is still timed individually; the aggregate reflects per-query
// latency, not throughput.
func MeasureParallel(ctx context.Context, workers, queries int, fn func(i int) error) (Stats, error) {
	if queries <= 0 {
		return Stats{}, ErrNoQueries
	}
	if fn == nil {
		return Stats{}, ErrNilQuery
	}
	if workers < 1 {
		workers = 1
	}
	if err := fn(0); err != nil {
		return Stats{}, fmt.Errorf("bench: warmup query: %w", err)
	}

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(workers)
	elapsed := make([]time.Duration, queries)
	for i := 0; i < queries; i++ {
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			if err := fn(i); err != nil {
				return fmt.Errorf("bench: query %d: %w", i, err)
			}
			elapsed[i] = time.Since(start)

			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return Stats{}, err
	}

	var stats Stats
	for _, d := range elapsed {
		stats.fold(d)
	}

	return stats, nil
}

// Report pairs baseline and optimized measurements for one workload with the
// one-time compilation cost, ready for amortization analysis.
type Report struct {
	// Label names the workload (e.g. "single-source shortest paths").
	Label string

	// Nodes and Arcs describe the graph the workload ran on.
	Nodes int
	Arcs  int

	// CompileCost is the one-time cost of building the compiled form.
	CompileCost time.Duration

	// Baseline holds the reference implementation's timings.
	Baseline Stats

	// Optimized holds the compiled engine's timings.
	Optimized Stats
}

// Speedup returns baseline mean latency divided by optimized mean latency,
// or 0 when either side has no samples.
func (r Report) Speedup() float64 {
	if r.Baseline.Samples == 0 || r.Optimized.Samples == 0 || r.Optimized.Mean() == 0 {
		return 0
	}

	return float64(r.Baseline.Mean()) / float64(r.Optimized.Mean())
}

// BreakEven returns the number of queries after which the per-query savings
// of the compiled engine have paid back the compilation cost, or -1 when the
// compiled engine is not faster.
func (r Report) BreakEven() int {
	saving := r.Baseline.Mean() - r.Optimized.Mean()
	if saving <= 0 {
		return -1
	}

	return int(math.Ceil(float64(r.CompileCost) / float64(saving)))
}
