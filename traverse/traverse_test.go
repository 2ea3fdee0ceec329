package traverse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ckibe-opt/compiledgraph/compiled"
	"github.com/ckibe-opt/compiledgraph/core"
	"github.com/ckibe-opt/compiledgraph/traverse"
)

// tree compiles:
//
//	    A
//	   / \
//	  B   C
//	 / \
//	D   E
func tree(t *testing.T) *compiled.Graph[string] {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("B", "D", 1))
	require.NoError(t, g.AddEdge("B", "E", 1))
	cg, err := compiled.Compile[string](g)
	require.NoError(t, err)

	return cg
}

func TestBFS_Validation(t *testing.T) {
	_, err := traverse.BFS(nil, 0)
	require.ErrorIs(t, err, traverse.ErrNilStore)

	cg := tree(t)
	_, err = traverse.BFS(cg.Forward(), 99)
	require.ErrorIs(t, err, traverse.ErrNodeOutOfRange)
}

func TestBFSOrder_LevelByLevel(t *testing.T) {
	order, err := traverse.BFSOrder(tree(t), "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D", "E"}, order)
}

func TestDFSOrder_DepthFirstInArcOrder(t *testing.T) {
	order, err := traverse.DFSOrder(tree(t), "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "D", "E", "C"}, order)
}

func TestTraversal_StopsAtUnreachable(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddVertex("Z"))
	cg, err := compiled.Compile[string](g)
	require.NoError(t, err)

	order, err := traverse.BFSOrder(cg, "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, order)
}

func TestTraversal_CyclesAndSelfLoops(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "A", 1))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "A", 1))
	cg, err := compiled.Compile[string](g)
	require.NoError(t, err)

	bfs, err := traverse.BFSOrder(cg, "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, bfs)

	dfs, err := traverse.DFSOrder(cg, "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, dfs)
}

func TestTraversal_UnknownSource(t *testing.T) {
	cg := tree(t)
	_, err := traverse.BFSOrder(cg, "nope")
	require.ErrorIs(t, err, compiled.ErrUnknownIdentifier)
	_, err = traverse.DFSOrder(cg, "nope")
	require.ErrorIs(t, err, compiled.ErrUnknownIdentifier)
}
