package sift

import (
	"math/rand"

	"github.com/katalvlaran/ocmsift/abortflag"
	"github.com/katalvlaran/ocmsift/sccprob"
)

// HillClimber runs C7: repeated remove-and-reinsert-at-best-position passes
// over initial, one independent ordering per problem, until four full outer
// sweeps elapse without any improvement anywhere, or the abort flag is set.
//
// In each sweep, every SCC of size >= 2 has its vertices visited in a fresh
// uniformly random order; for each vertex, locate it, remove it, compute
// insertion cost at every position, and reinsert at a uniformly random
// minimum-cost position — excluding the original position when it is not
// the unique minimum, so a tied best never silently keeps the status quo.
func HillClimber(problems []*sccprob.Problem, initial [][]int, flag *abortflag.Flag, rng *rand.Rand) [][]int {
	ordering := make([][]int, len(initial))
	for i, o := range initial {
		ordering[i] = append([]int(nil), o...)
	}

	iter := 0
	lastImprovement := 0
	for iter-lastImprovement < 4 {
		for i, p := range problems {
			if p.N() < 2 {
				continue
			}
			visitOrder := shuffledRange(p.N(), rng)
			for _, v := range visitOrder {
				if flag.IsSet() {
					return ordering
				}

				pos := indexOf(ordering[i], v)
				remaining, _ := removeAt(ordering[i], pos)

				cost := InsertCostPerPosition(p, remaining, v)
				minCost, idxs := minima(cost)
				baseline := cost[pos]
				if minCost < baseline {
					lastImprovement = iter
				}

				insPos := pickReinsertPosition(idxs, pos, rng)
				ordering[i] = insertAt(remaining, insPos, v)
			}
		}
		iter++
	}

	return ordering
}

// indexOf returns the position of v in s.
func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}

	return -1
}
