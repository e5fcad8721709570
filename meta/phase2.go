package meta

import (
	"sort"

	"github.com/katalvlaran/ocmsift/digraph"
	"github.com/katalvlaran/ocmsift/sccprob"
)

// refine builds phase 2's input: for every original SCC problem, sparsify
// its precedence graph down to edges whose phase-1 frequency exceeds
// cntruns/sparsifyDivisor, re-decompose via digraph.SCCs, and build one new
// sccprob.Problem per resulting sub-SCC with weights sliced from the
// original, a precedence graph of all nonzero-weight pairs, and a seed
// ordering that preserves phase 1's relative order within the sub-SCC.
func refine(problems []*sccprob.Problem, freqs freqTable, cntruns int, bestPerm [][]int) (newProblems []*sccprob.Problem, bestPerm2 [][]int, bestVal2 []uint64) {
	threshold := uint64(cntruns / sparsifyDivisor)

	for i, p := range problems {
		n := p.N()
		h := make(digraph.Graph, n)
		for j := 0; j < n; j++ {
			for _, k := range p.G[j] {
				if freqs[i][j][k] > threshold {
					h[j] = append(h[j], k)
				}
			}
		}

		invBest := make([]int, n)
		for pos, v := range bestPerm[i] {
			invBest[v] = pos
		}

		for _, hscc := range digraph.SCCs(h) {
			newP := sliceSubProblem(p, hscc)
			newProblems = append(newProblems, newP)

			seed := seedOrdering(hscc, invBest)
			bestPerm2 = append(bestPerm2, seed)
			bestVal2 = append(bestVal2, newP.Eval(seed))
		}
	}

	return newProblems, bestPerm2, bestVal2
}

// sliceSubProblem builds the sub-SCC problem for hscc (local indices into
// p), with a fresh precedence graph of every nonzero-weight ordered pair.
func sliceSubProblem(p *sccprob.Problem, hscc []int) *sccprob.Problem {
	m := len(hscc)
	w := make([][]uint64, m)
	g := make([][]int, m)
	for a := 0; a < m; a++ {
		w[a] = make([]uint64, m)
		for b := 0; b < m; b++ {
			w[a][b] = p.W[hscc[a]][hscc[b]]
			if w[a][b] != 0 {
				g[a] = append(g[a], b)
			}
		}
	}

	labels := make([]int, m)
	for a, local := range hscc {
		labels[a] = p.Labels[local]
	}

	newP, err := sccprob.New(labels, w, g)
	if err != nil {
		// Shapes are derived internally and cannot mismatch.
		panic(err)
	}

	return newP
}

// seedOrdering returns hscc's local indices [0, len(hscc)) sorted by the
// inverse of phase 1's best permutation, preserving phase 1's relative
// order of these vertices within the sub-SCC.
func seedOrdering(hscc []int, invBest []int) []int {
	local := make([]int, len(hscc))
	for a := range local {
		local[a] = a
	}
	sort.Slice(local, func(x, y int) bool {
		return invBest[hscc[local[x]]] < invBest[hscc[local[y]]]
	})

	return local
}
