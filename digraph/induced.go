package digraph

// InducedSubgraph returns the subgraph of g induced by subset: local vertex
// i in the result corresponds to subset[i] in g, and the result contains
// edge (i, j) iff g contains the edge (subset[i], subset[j]). Neighbor order
// within each resulting adjacency list matches g's original order restricted
// to subset.
//
// Complexity: O(|subset| + sum of degrees of vertices in subset).
func InducedSubgraph(g Graph, subset []int) Graph {
	// local[original] = local index in the induced graph, or -1 if excluded.
	local := make([]int, len(g))
	for i := range local {
		local[i] = -1
	}
	for i, v := range subset {
		local[v] = i
	}

	h := make(Graph, len(subset))
	for i, v := range subset {
		for _, u := range g[v] {
			if j := local[u]; j != -1 {
				h[i] = append(h[i], j)
			}
		}
	}

	return h
}
