package bench_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ckibe-opt/compiledgraph/bench"
	"github.com/ckibe-opt/compiledgraph/compiled"
	"github.com/ckibe-opt/compiledgraph/dijkstra"
	"github.com/ckibe-opt/compiledgraph/reference"
)

func TestSparseGraph_Shape(t *testing.T) {
	g, err := bench.SparseGraph(100, 4, 1)
	require.NoError(t, err)
	require.Equal(t, 100, g.VertexCount())
	// Chain (99) plus up to n*deg/2 extras (self-loop draws are skipped).
	require.GreaterOrEqual(t, g.EdgeCount(), 99)
	require.LessOrEqual(t, g.EdgeCount(), 99+200)
}

func TestSparseGraph_DeterministicForSeed(t *testing.T) {
	a, err := bench.SparseGraph(50, 4, 7)
	require.NoError(t, err)
	b, err := bench.SparseGraph(50, 4, 7)
	require.NoError(t, err)
	require.Equal(t, a.EdgeCount(), b.EdgeCount())

	ca, err := compiled.Compile[string](a)
	require.NoError(t, err)
	cb, err := compiled.Compile[string](b)
	require.NoError(t, err)
	for u := 0; u < ca.Forward().NumNodes(); u++ {
		at, aw := ca.Forward().Arcs(u)
		bt, bw := cb.Forward().Arcs(u)
		require.Equal(t, at, bt)
		require.Equal(t, aw, bw)
	}
}

func TestSparseGraph_Connected(t *testing.T) {
	g, err := bench.SparseGraph(200, 2, 3)
	require.NoError(t, err)
	dist, err := reference.Dijkstra(g, "n0")
	require.NoError(t, err)
	require.Len(t, dist, 200, "chain guarantees full reachability")
}

func TestSparseGraph_BadShape(t *testing.T) {
	_, err := bench.SparseGraph(0, 4, 1)
	require.ErrorIs(t, err, bench.ErrBadShape)
	_, err = bench.SparseGraph(10, 0, 1)
	require.ErrorIs(t, err, bench.ErrBadShape)
}

func TestMeasure_Validation(t *testing.T) {
	_, err := bench.Measure(0, func(int) error { return nil })
	require.ErrorIs(t, err, bench.ErrNoQueries)
	_, err = bench.Measure(5, nil)
	require.ErrorIs(t, err, bench.ErrNilQuery)
}

func TestMeasure_CollectsStats(t *testing.T) {
	calls := 0
	stats, err := bench.Measure(10, func(int) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 11, calls, "10 measured plus 1 warmup")
	require.Equal(t, 10, stats.Samples)
	require.GreaterOrEqual(t, stats.Max, stats.Min)
	require.GreaterOrEqual(t, stats.Total, time.Duration(0))
}

func TestMeasure_PropagatesQueryError(t *testing.T) {
	boom := errors.New("boom")
	_, err := bench.Measure(3, func(i int) error {
		if i == 2 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
}

func TestMeasureParallel_RunsAllQueries(t *testing.T) {
	g, err := bench.SparseGraph(100, 4, 11)
	require.NoError(t, err)
	cg, err := compiled.Compile[string](g)
	require.NoError(t, err)

	// Concurrent single-source queries against one shared compiled graph.
	stats, err := bench.MeasureParallel(context.Background(), 4, 20, func(i int) error {
		_, err := dijkstra.SingleSource(cg.Forward(), i%cg.Forward().NumNodes())
		return err
	})
	require.NoError(t, err)
	require.Equal(t, 20, stats.Samples)
}

func TestStats_Mean(t *testing.T) {
	require.Equal(t, time.Duration(0), bench.Stats{}.Mean())
}

func TestReport_SpeedupAndBreakEven(t *testing.T) {
	r := bench.Report{
		CompileCost: 100 * time.Millisecond,
		Baseline:    bench.Stats{Samples: 1, Total: 10 * time.Millisecond},
		Optimized:   bench.Stats{Samples: 1, Total: 2 * time.Millisecond},
	}
	require.InDelta(t, 5.0, r.Speedup(), 1e-9)
	// 100ms / 8ms saving = 12.5 → 13 queries to break even.
	require.Equal(t, 13, r.BreakEven())
}

func TestReport_NoWinNoBreakEven(t *testing.T) {
	r := bench.Report{
		CompileCost: time.Second,
		Baseline:    bench.Stats{Samples: 1, Total: time.Millisecond},
		Optimized:   bench.Stats{Samples: 1, Total: 2 * time.Millisecond},
	}
	require.Equal(t, -1, r.BreakEven())
}
