package sift

import (
	"math/rand"

	"github.com/katalvlaran/ocmsift/abortflag"
	"github.com/katalvlaran/ocmsift/sccprob"
)

// InsertionPlus runs C6: the same randomized insertion as C5, except every
// 50 insertions it runs a short local hillclimb on the current partial
// ordering before continuing.
func InsertionPlus(problems []*sccprob.Problem, flag *abortflag.Flag, rng *rand.Rand) [][]int {
	orderings := make([][]int, len(problems))
	for i, p := range problems {
		orderings[i] = insertionPlusSCC(p, flag, rng)
	}

	return orderings
}

func insertionPlusSCC(p *sccprob.Problem, flag *abortflag.Flag, rng *rand.Rand) []int {
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

		if len(partial) > 0 && len(partial)%50 == 0 {
			partial = localHillclimb(p, partial, flag, rng)
		}
	}

	return partial
}

// localHillclimb repeatedly removes a uniformly random element of ordering
// and reinserts it at a cost-minimizing position, tracking the iteration
// index of the last strict improvement. It stops once the number of
// iterations since the last improvement exceeds twice the ordering's
// length, or once the abort flag is set.
func localHillclimb(p *sccprob.Problem, ordering []int, flag *abortflag.Flag, rng *rand.Rand) []int {
	iter := 0
	lastImprovement := 0

	for iter-lastImprovement < 2*len(ordering) {
		if flag.IsSet() {
			break
		}

		pos := rng.Intn(len(ordering))
		var v int
		ordering, v = removeAt(ordering, pos)

		cost := InsertCostPerPosition(p, ordering, v)
		minCost, idxs := minima(cost)
		baseline := cost[pos] // cost of reinserting at the position the vertex was removed from
		if baseline > minCost {
			lastImprovement = iter
		}

		insPos := pickReinsertPosition(idxs, pos, rng)
		ordering = insertAt(ordering, insPos, v)

		iter++
	}

	return ordering
}

// pickReinsertPosition chooses uniformly among idxs, excluding original when
// more than one candidate ties for the minimum (so a no-op move is only
// chosen when it is the unique minimum).
func pickReinsertPosition(idxs []int, original int, rng *rand.Rand) int {
	if len(idxs) == 1 {
		return idxs[0]
	}
	for {
		pick := idxs[rng.Intn(len(idxs))]
		if pick != original {
			return pick
		}
	}
}
