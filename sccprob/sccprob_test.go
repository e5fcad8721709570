package sccprob

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_DimensionMismatch(t *testing.T) {
	_, err := New([]int{0, 1}, [][]uint64{{0, 1}}, [][]int{{}, {}})
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestEval_IdentityPermutation(t *testing.T) {
	// 3 vertices; w[a][b] = crossing weight when a precedes b.
	w := [][]uint64{
		{0, 1, 2},
		{3, 0, 4},
		{5, 6, 0},
	}
	p, err := New([]int{0, 1, 2}, w, [][]int{{}, {}, {}})
	require.NoError(t, err)

	// perm = [0, 1, 2]: pairs (0,1),(0,2),(1,2) contribute w[0][1]+w[0][2]+w[1][2].
	require.Equal(t, w[0][1]+w[0][2]+w[1][2], p.Eval([]int{0, 1, 2}))
}

func TestEval_PermutationInvariantUnderRelabeling(t *testing.T) {
	w := [][]uint64{
		{0, 7, 2},
		{1, 0, 9},
		{4, 3, 0},
	}
	p, err := New([]int{10, 20, 30}, w, [][]int{{}, {}, {}})
	require.NoError(t, err)

	perm := []int{2, 0, 1}
	var want uint64
	for i := 0; i < len(perm); i++ {
		for j := i + 1; j < len(perm); j++ {
			want += w[perm[i]][perm[j]]
		}
	}
	require.Equal(t, want, p.Eval(perm))
}
