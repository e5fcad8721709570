package bipartite

import (
	"github.com/katalvlaran/ocmsift/digraph"
	"github.com/katalvlaran/ocmsift/sccprob"
)

// Reduce builds the precedence graph on the free side — edge u -> v iff
// PairCrossingNumber(u, v) < PairCrossingNumber(v, u), a strict preference
// for u before v — and returns the strongly connected components of that
// graph, each as an sccprob.Problem carrying its own crossing-weight
// sub-matrix, its own precedence edges, and labels mapping local indices
// back to free-vertex ids. No precedence edge crosses an SCC boundary by
// construction, so sifters only ever need to permute within one Problem at a
// time; the relative order across Problems is already fixed by the
// condensation's topological order, which digraph.SCCs returns directly.
//
// Complexity: O(N1^2 * avg-degree) to build the full pairwise weight matrix,
// dominated by the same cost the meta-optimizer's phase-2 re-reduction pays
// per SCC; acceptable at the C8 dispatch threshold (N1 < 10_000).
func (g *Graph) Reduce() []*sccprob.Problem {
	w := g.weightMatrix()
	h := precedenceGraph(w)

	sccs := digraph.SCCs(h)
	problems := make([]*sccprob.Problem, 0, len(sccs))
	for _, comp := range sccs {
		problems = append(problems, buildProblem(comp, w, h))
	}

	return problems
}

// PrecedenceGraph rebuilds the full free-side precedence digraph: edge
// u -> v iff PairCrossingNumber(u, v) < PairCrossingNumber(v, u). Exposed for
// debug visualization; Reduce computes the same graph internally.
func (g *Graph) PrecedenceGraph() digraph.Graph {
	return precedenceGraph(g.weightMatrix())
}

func (g *Graph) weightMatrix() [][]uint64 {
	n := g.N1
	w := make([][]uint64, n)
	for i := range w {
		w[i] = make([]uint64, n)
	}
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			w[u][v] = g.PairCrossingNumber(u, v)
			w[v][u] = g.PairCrossingNumber(v, u)
		}
	}

	return w
}

func precedenceGraph(w [][]uint64) digraph.Graph {
	n := len(w)
	h := make(digraph.Graph, n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v && w[u][v] < w[v][u] {
				h[u] = append(h[u], v)
			}
		}
	}

	return h
}

// buildProblem slices the full weight matrix w and precedence graph h down
// to the vertices in comp, relabeling to local indices [0, len(comp)).
func buildProblem(comp []int, w [][]uint64, h digraph.Graph) *sccprob.Problem {
	n := len(w)
	local := make([]int, n)
	for i := range local {
		local[i] = -1
	}
	for i, v := range comp {
		local[v] = i
	}

	m := len(comp)
	labels := make([]int, m)
	copy(labels, comp)

	subW := make([][]uint64, m)
	subG := make([][]int, m)
	for i, u := range comp {
		subW[i] = make([]uint64, m)
		for j, v := range comp {
			subW[i][j] = w[u][v]
		}
		for _, nb := range h[u] {
			if lj := local[nb]; lj != -1 {
				subG[i] = append(subG[i], lj)
			}
		}
	}

	p, err := sccprob.New(labels, subW, subG)
	if err != nil {
		// Shapes are derived internally from comp/w and cannot mismatch.
		panic(err)
	}

	return p
}
