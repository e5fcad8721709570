package bipartite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPairCrossingNumber_NoCrossingsWhenMonotone(t *testing.T) {
	// u's neighbors all below v's neighbors: placing u before v never crosses.
	g, err := New(4, 2, [][]int{{0}, {1}}, [][]int{{0}, {1}}, nil)
	require.NoError(t, err)
	require.Equal(t, uint64(0), g.PairCrossingNumber(0, 1))
	require.Equal(t, uint64(1), g.PairCrossingNumber(1, 0)) // reversed: one inversion
}

func TestPairCrossingNumber_SumsToTotalPairwiseCrossings(t *testing.T) {
	g, err := New(5, 2, [][]int{{0, 3}, {1, 2, 4}}, [][]int{{0}, {1}}, nil)
	require.NoError(t, err)

	uv := g.PairCrossingNumber(0, 1)
	vu := g.PairCrossingNumber(1, 0)

	// Brute force: count pairs (a,b), a in Adjs[0], b in Adjs[1], a != b.
	var want uint64
	for _, a := range []int{0, 3} {
		for _, b := range []int{1, 2, 4} {
			if a != b {
				want++
			}
		}
	}
	require.Equal(t, want, uv+vu)
}

func TestNew_RejectsUnsortedNeighbors(t *testing.T) {
	_, err := New(3, 1, [][]int{{2, 1}}, [][]int{{0}}, nil)
	require.ErrorIs(t, err, ErrUnsortedNeighbors)
}

func TestReduce_NoCrossingPossibleWhenNeighborhoodsDisjoint(t *testing.T) {
	// n0=2, n1=2, edges (1,3),(2,4) 1-indexed -> 0-indexed: vertex0 adj {0}, vertex1 adj {1}.
	g, err := New(2, 2, [][]int{{0}, {1}}, [][]int{{0}, {1}}, nil)
	require.NoError(t, err)

	problems := g.Reduce()
	// No ties: w[0][1]=0 < w[1][0]=1, so 0 strictly precedes 1 -> two singleton SCCs.
	require.Len(t, problems, 2)
	require.Equal(t, 1, problems[0].N())
	require.Equal(t, 1, problems[1].N())
	require.Equal(t, []int{0}, problems[0].Labels)
	require.Equal(t, []int{1}, problems[1].Labels)
}

func TestReduce_TieYieldsNoPrecedenceEdge(t *testing.T) {
	// Identical neighborhoods -> w[0][1] == w[1][0] == 1, no precedence edge either way -> two singleton SCCs.
	g, err := New(3, 2, [][]int{{0, 1}, {0, 1}}, [][]int{{0}, {1}}, nil)
	require.NoError(t, err)

	problems := g.Reduce()
	require.Len(t, problems, 2)
	require.Equal(t, 1, problems[0].N())
}
