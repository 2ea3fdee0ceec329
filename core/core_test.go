package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ckibe-opt/compiledgraph/core"
)

func TestAddVertex_EmptyID(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"))
	require.Equal(t, 1, g.VertexCount())
	require.True(t, g.HasVertex("A"))
	require.False(t, g.HasVertex("B"))
}

func TestAddEdge_AutoCreatesEndpoints(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 2.5))
	require.True(t, g.HasVertex("A"))
	require.True(t, g.HasVertex("B"))
	require.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_NaNWeight(t *testing.T) {
	g := core.NewGraph()
	nan := func() float64 { var z float64; return z / z }()
	require.ErrorIs(t, g.AddEdge("A", "B", nan), core.ErrBadWeight)
}

func TestAddEdge_UndirectedMirrorsArc(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))

	fromA, err := g.Neighbors("A")
	require.NoError(t, err)
	fromB, err := g.Neighbors("B")
	require.NoError(t, err)
	require.Equal(t, []core.Arc{{To: "B", Weight: 1}}, fromA)
	require.Equal(t, []core.Arc{{To: "A", Weight: 1}}, fromB)
}

func TestAddEdge_DirectedOneWay(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 1))

	fromB, err := g.Neighbors("B")
	require.NoError(t, err)
	require.Empty(t, fromB)
}

func TestAddEdge_SelfLoopStoredOnce(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "A", 4))

	arcs, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Equal(t, []core.Arc{{To: "A", Weight: 4}}, arcs)
}

func TestAddEdge_ParallelEdgesPreserved(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "B", 3))

	arcs, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, arcs, 2)
	require.Equal(t, 2, g.EdgeCount())
}

func TestNeighbors_UnknownVertex(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Neighbors("missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestVertices_SortedAndComplete(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("C", "B", 1))
	require.NoError(t, g.AddVertex("A")) // isolated

	require.Equal(t, []string{"A", "B", "C"}, g.Vertices())
}

func TestNodes_RestartableAndLazy(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddVertex("C"))

	// First partial pass stops early; second pass must start over.
	var first []string
	for id := range g.Nodes() {
		first = append(first, id)
		break
	}
	var second []string
	for id := range g.Nodes() {
		second = append(second, id)
	}
	require.Equal(t, []string{"A"}, first)
	require.Equal(t, []string{"A", "B", "C"}, second)
}

func TestOutEdges_YieldsWeights(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 1.5))
	require.NoError(t, g.AddEdge("A", "C", 2.5))

	got := map[string]float64{}
	for to, w := range g.OutEdges("A") {
		got[to] = w
	}
	require.Equal(t, map[string]float64{"B": 1.5, "C": 2.5}, got)

	// Unknown vertex: empty sequence, no panic.
	for range g.OutEdges("nope") {
		t.Fatal("unexpected arc from unknown vertex")
	}
}

func TestGraph_ConcurrentMutation(t *testing.T) {
	g := core.NewGraph()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			ids := []string{"A", "B", "C", "D"}
			from := ids[k%len(ids)]
			to := ids[(k+1)%len(ids)]
			_ = g.AddEdge(from, to, float64(k))
			_ = g.Vertices()
			_, _ = g.Neighbors(from)
		}(i)
	}
	wg.Wait()
	require.Equal(t, 4, g.VertexCount())
}
