package largesift

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/ocmsift/bipartite"
)

// MeanHeuristic seeds an ordering of side-B vertices [0, g.N1) by the mean
// of each vertex's neighbor ids on side A, ascending, vertices with no
// neighbors sorting as mean 0. Ties preserve the original (ascending id)
// relative order, matching the original mean_heuristic's stable sort.
func MeanHeuristic(g *bipartite.Graph) []int {
	means := make([]float64, g.N1)
	for u := 0; u < g.N1; u++ {
		if len(g.Adjs[u]) == 0 {
			continue
		}
		xs := make([]float64, len(g.Adjs[u]))
		for i, a := range g.Adjs[u] {
			xs[i] = float64(a)
		}
		means[u] = stat.Mean(xs, nil)
	}

	ordering := make([]int, g.N1)
	for i := range ordering {
		ordering[i] = i
	}
	sort.SliceStable(ordering, func(i, j int) bool {
		return means[ordering[i]] < means[ordering[j]]
	})

	return ordering
}
