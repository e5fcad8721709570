package pace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReduce_IsolatedVerticesStrippedInAscendingOrder(t *testing.T) {
	inst := &Instance{N0: 1, N1: 3}
	g := Reduce(inst)
	require.Equal(t, 0, g.N1)
	require.Equal(t, []int{0, 1, 2}, g.Isolated)
}

func TestReduce_TwinsMergeIntoOneRepresentative(t *testing.T) {
	inst := &Instance{
		N0: 3,
		N1: 3,
		Edges: []Edge{
			{A: 0, B: 0}, {A: 1, B: 0},
			{A: 0, B: 1}, {A: 1, B: 1}, // same neighborhood as vertex 0 -> twin
			{A: 2, B: 2},
		},
	}
	g := Reduce(inst)
	require.Equal(t, 2, g.N1)
	require.Equal(t, []int{0, 1}, g.Ids[0])
	require.Equal(t, []int{2}, g.Ids[1])
	require.Empty(t, g.Isolated)
}

func TestReduce_DistinctNeighborhoodsStayUnmerged(t *testing.T) {
	inst := &Instance{
		N0: 2,
		N1: 2,
		Edges: []Edge{
			{A: 0, B: 0},
			{A: 1, B: 1},
		},
	}
	g := Reduce(inst)
	require.Equal(t, 2, g.N1)
	require.Equal(t, []int{0}, g.Ids[0])
	require.Equal(t, []int{1}, g.Ids[1])
}
