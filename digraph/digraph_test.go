package digraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInducedSubgraph(t *testing.T) {
	// 0 -> 1 -> 2 -> 0 (triangle), plus 3 -> 1 (outside the subset).
	g := Graph{
		0: {1},
		1: {2},
		2: {0},
		3: {1},
	}
	h := InducedSubgraph(g, []int{2, 0, 1})
	// local: 2->0, 0->1, 1->2
	require.Equal(t, Graph{
		0: {1}, // 2 -> 0  becomes local 0 -> local 1
		1: {2}, // 0 -> 1  becomes local 1 -> local 2
		2: {0}, // 1 -> 2  becomes local 2 -> local 0
	}, h)
}

func TestTopologicalOrder_DAG(t *testing.T) {
	// 0 -> 1 -> 3, 0 -> 2 -> 3
	g := Graph{
		0: {1, 2},
		1: {3},
		2: {3},
		3: {},
	}
	order := TopologicalOrder(g)
	pos := make(map[int]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	require.Less(t, pos[0], pos[1])
	require.Less(t, pos[0], pos[2])
	require.Less(t, pos[1], pos[3])
	require.Less(t, pos[2], pos[3])
}

func TestTopologicalOrder_AscendingTieBreak(t *testing.T) {
	// Three isolated vertices: ties broken by ascending start index, so the
	// postorder is 0, 1, 2 and the reversed order is 2, 1, 0.
	g := Graph{0: {}, 1: {}, 2: {}}
	require.Equal(t, []int{2, 1, 0}, TopologicalOrder(g))
}

func TestSCCs_CondensationIsAcyclicAndComponentsAreStronglyConnected(t *testing.T) {
	// Two triangles (0,1,2) and (3,4,5) with a single bridge 2 -> 3.
	g := Graph{
		0: {1},
		1: {2},
		2: {0, 3},
		3: {4},
		4: {5},
		5: {3},
	}
	sccs := SCCs(g)
	require.Len(t, sccs, 2)

	componentOf := make(map[int]int, 6)
	for ci, comp := range sccs {
		for _, v := range comp {
			componentOf[v] = ci
		}
	}
	require.Equal(t, componentOf[0], componentOf[1])
	require.Equal(t, componentOf[1], componentOf[2])
	require.Equal(t, componentOf[3], componentOf[4])
	require.Equal(t, componentOf[4], componentOf[5])
	require.NotEqual(t, componentOf[0], componentOf[3])

	// The bridge 2 -> 3 means component(0) must precede component(3) in the
	// returned (condensation-topological) order.
	require.Less(t, componentOf[0], componentOf[3])
}

func TestSCCs_SingletonsWhenAcyclic(t *testing.T) {
	g := Graph{
		0: {1, 2},
		1: {3},
		2: {3},
		3: {},
	}
	sccs := SCCs(g)
	require.Len(t, sccs, 4)
	for _, comp := range sccs {
		require.Len(t, comp, 1)
	}
}
