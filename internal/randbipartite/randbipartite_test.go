package randbipartite

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerate_EdgesStayWithinDeclaredRanges(t *testing.T) {
	inst := Generate(10, 20, 0.3, rand.New(rand.NewSource(42)))
	require.Equal(t, 10, inst.N0)
	require.Equal(t, 20, inst.N1)
	for _, e := range inst.Edges {
		require.GreaterOrEqual(t, e.A, 0)
		require.Less(t, e.A, inst.N0)
		require.GreaterOrEqual(t, e.B, 0)
		require.Less(t, e.B, inst.N1)
	}
}

func TestGenerate_ZeroProbabilityProducesNoEdges(t *testing.T) {
	inst := Generate(5, 5, 0, rand.New(rand.NewSource(1)))
	require.Empty(t, inst.Edges)
}

func TestGenerate_OneProbabilityProducesCompleteBipartiteEdgeSet(t *testing.T) {
	inst := Generate(3, 2, 1, rand.New(rand.NewSource(1)))
	require.Len(t, inst.Edges, 6)
}
