package compiled_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ckibe-opt/compiledgraph/compiled"
)

func TestIndex_InternAssignsFirstSeenOrder(t *testing.T) {
	ix := compiled.NewIndex[string]()
	require.Equal(t, 0, ix.Intern("C"))
	require.Equal(t, 1, ix.Intern("A"))
	require.Equal(t, 2, ix.Intern("B"))
	// Re-interning never reassigns.
	require.Equal(t, 0, ix.Intern("C"))
	require.Equal(t, 3, ix.Size())
}

func TestIndex_Bijection(t *testing.T) {
	ix := compiled.NewIndex[string]()
	ids := []string{"x", "y", "z", "x", "w"}
	for _, id := range ids {
		ix.Intern(id)
	}

	// resolve(intern(x)) == x and intern(resolve(i)) == i for all i.
	for _, id := range ids {
		got, err := ix.Resolve(ix.Intern(id))
		require.NoError(t, err)
		require.Equal(t, id, got)
	}
	for i := 0; i < ix.Size(); i++ {
		id, err := ix.Resolve(i)
		require.NoError(t, err)
		require.Equal(t, i, ix.Intern(id))
	}
}

func TestIndex_Lookup(t *testing.T) {
	ix := compiled.NewIndex[int]()
	ix.Intern(42)

	i, ok := ix.Lookup(42)
	require.True(t, ok)
	require.Equal(t, 0, i)

	_, ok = ix.Lookup(7)
	require.False(t, ok)
	require.Equal(t, 1, ix.Size(), "Lookup must not intern")
}

func TestIndex_ResolveOutOfRange(t *testing.T) {
	ix := compiled.NewIndex[string]()
	ix.Intern("only")

	_, err := ix.Resolve(-1)
	require.ErrorIs(t, err, compiled.ErrIndexOutOfRange)
	_, err = ix.Resolve(1)
	require.ErrorIs(t, err, compiled.ErrIndexOutOfRange)
}

func TestIndex_NonStringKeys(t *testing.T) {
	type coord struct{ X, Y int }
	ix := compiled.NewIndex[coord]()
	a := coord{1, 2}
	b := coord{3, 4}
	require.Equal(t, 0, ix.Intern(a))
	require.Equal(t, 1, ix.Intern(b))
	require.Equal(t, 0, ix.Intern(coord{1, 2}))
}
