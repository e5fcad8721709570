package sift

import (
	"math/rand"

	"github.com/katalvlaran/ocmsift/abortflag"
	"github.com/katalvlaran/ocmsift/sccprob"
)

// Insertion runs the randomized greedy insertion sifter (C5) independently
// on every problem: choose a uniformly random processing order for the
// SCC's vertices, then insert each one at a cost-minimizing position (ties
// broken uniformly at random) into the partial ordering built so far.
//
// If the abort flag is observed while processing a vertex, that vertex is
// appended to the end of the partial ordering rather than inserted at cost,
// so every returned ordering remains a full-length permutation of its SCC
// even on an aborted run: callers downstream rely on the ordering always
// being well-formed.
func Insertion(problems []*sccprob.Problem, flag *abortflag.Flag, rng *rand.Rand) [][]int {
	orderings := make([][]int, len(problems))
	for i, p := range problems {
		orderings[i] = insertionSCC(p, flag, rng)
	}

	return orderings
}

// insertionSCC runs C5 on a single SCC problem.
func insertionSCC(p *sccprob.Problem, flag *abortflag.Flag, rng *rand.Rand) []int {
	order := shuffledRange(p.N(), rng)
	partial := make([]int, 0, p.N())

	for _, v := range order {
		if flag.IsSet() {
			partial = append(partial, v)
			continue
		}
		cost := InsertCostPerPosition(p, partial, v)
		_, idxs := minima(cost)
		pos := idxs[rng.Intn(len(idxs))]
		partial = insertAt(partial, pos, v)
	}

	return partial
}
