package largesift

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/ocmsift/abortflag"
	"github.com/katalvlaran/ocmsift/bipartite"
)

// Run is sifting_large (C9): seed from MeanHeuristic, then repeatedly visit
// every vertex (in random order each full pass) and relocate it to the
// position, among a range-limited scan up and down its current slot, that
// minimizes accumulated crossing delta. Runs until flag is set, at which
// point it returns the best ordering found so far.
func Run(g *bipartite.Graph, flag *abortflag.Flag, rng *rand.Rand) []int {
	perm := MeanHeuristic(g)
	pos := make([]int, len(perm))
	for i, v := range perm {
		pos[v] = i
	}

	cm := newCrossingCache(g.N1)

	for iter := 0; ; iter++ {
		vertices := shuffledRange(len(perm), rng)
		rangeMode := iter % 3
		for _, vert := range vertices {
			if flag.IsSet() {
				return perm
			}
			v := pos[vert]

			minvalUp, minidxUp := bestReinsert(g, perm, cm, v, true, rangeMode, flag)
			if flag.IsSet() {
				return perm
			}
			minvalDown, minidxDown := bestReinsert(g, perm, cm, v, false, rangeMode, flag)
			if flag.IsSet() {
				return perm
			}

			minval, minidx := pickBest(minvalUp, minidxUp, minvalDown, minidxDown, rng)
			if minval <= 0 {
				relocate(perm, pos, v, minidx)
			}
		}
	}
}

// bestReinsert scans from v either upward (toward the end) or downward
// (toward the start), accumulating the crossing-count delta of moving the
// vertex at v past each scanned neighbor, and returns the minimal
// accumulated delta and the position at which it occurs. The scan is capped
// by rangeMode: 0 and 1 stop after 500 steps without a new minimum or once
// the running delta exceeds 1000; 2 relaxes those caps to 5000 and 10000,
// trading speed for thoroughness every third pass.
func bestReinsert(g *bipartite.Graph, perm []int, cm crossingCache, v int, up bool, rangeMode int, flag *abortflag.Flag) (int64, int) {
	minval := int64(math.MaxInt64)
	minidx := 0
	var acc int64
	stepsSinceMin := 0

	numSteps := v
	if up {
		numSteps = len(perm) - v - 1
	}

	for step := 0; step < numSteps; step++ {
		if flag.IsSet() {
			return minval, minidx
		}

		var i int
		if up {
			i = v + step + 1
		} else {
			i = v - step - 1
		}
		stepsSinceMin++

		if rangeMode < 2 && (stepsSinceMin > 500 || acc > 1000) {
			break
		}
		if rangeMode == 2 && (stepsSinceMin > 5000 || acc > 10000) {
			break
		}

		if up {
			acc += int64(cm.get(g, perm[i], perm[v])) - int64(cm.get(g, perm[v], perm[i]))
		} else {
			acc += int64(cm.get(g, perm[v], perm[i])) - int64(cm.get(g, perm[i], perm[v]))
		}

		if acc <= minval {
			minval = acc
			minidx = i
			stepsSinceMin = 0
		}
	}

	return minval, minidx
}

// pickBest resolves a tie between the up-scan and down-scan results with a
// coin flip, matching the reference's uniform 0..=1 draw.
func pickBest(valUp int64, idxUp int, valDown int64, idxDown int, rng *rand.Rand) (int64, int) {
	switch {
	case valUp < valDown:
		return valUp, idxUp
	case valUp > valDown:
		return valDown, idxDown
	default:
		if rng.Intn(2) == 0 {
			return valUp, idxUp
		}

		return valDown, idxDown
	}
}

// relocate shifts perm[v] to position target via adjacent swaps, keeping
// pos in sync at every step.
func relocate(perm, pos []int, v, target int) {
	if target > v {
		for i := v; i < target; i++ {
			swapAdjacent(perm, pos, i)
		}
	} else {
		for i := v - 1; i >= target; i-- {
			swapAdjacent(perm, pos, i)
		}
	}
}

func swapAdjacent(perm, pos []int, i int) {
	perm[i], perm[i+1] = perm[i+1], perm[i]
	pos[perm[i]] = i
	pos[perm[i+1]] = i + 1
}

// shuffledRange returns a Fisher-Yates shuffled permutation of [0, n).
func shuffledRange(n int, rng *rand.Rand) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}

	return perm
}
