package meta

import (
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/ocmsift/abortflag"
	"github.com/katalvlaran/ocmsift/sccprob"
	"github.com/katalvlaran/ocmsift/sift"
)

// freqTable[i][j][k] counts, across phase-1 iterations, how often local
// vertex j preceded local vertex k within SCC i, over every candidate, not
// just the best-so-far; see updateFrequencies.
type freqTable [][][]uint64

func newFreqTable(problems []*sccprob.Problem) freqTable {
	freqs := make(freqTable, len(problems))
	for i, p := range problems {
		n := p.N()
		rows := make([][]uint64, n)
		for j := range rows {
			rows[j] = make([]uint64, n)
		}
		freqs[i] = rows
	}

	return freqs
}

// phase1 harvests per-SCC pair-precedence frequencies: for every candidate
// permutation produced, each ordered pair of local vertices (j, k) with j
// placed before k has its count in freqs incremented, feeding phase 2's
// edge sparsification. If the run is interrupted before phase 1 would
// otherwise hand off to phase 2, finished is false and bestPerm already
// holds the ordering Run must return immediately (mapped through the
// original problems' labels).
func phase1(problems []*sccprob.Problem, flag *abortflag.Flag, rng *rand.Rand, opts Options) (bestPerm [][]int, bestVal []uint64, freqs freqTable, cntruns int, finished bool) {
	freqs = newFreqTable(problems)
	bestVal = make([]uint64, len(problems))
	for i := range bestVal {
		bestVal[i] = math.MaxUint64
	}
	bestPerm = make([][]int, len(problems))

	start := time.Now()
	for time.Since(start) <= opts.PhaseOneBudget {
		perm := runOnce(problems, flag, rng)
		if flag.IsSet() {
			return abortedPhase1Result(perm, bestPerm, bestVal)
		}
		updateFrequencies(freqs, problems, perm, bestPerm, bestVal, flag)
		if flag.IsSet() {
			return bestPerm, bestVal, freqs, cntruns, false
		}
		cntruns++
	}

	if cntruns < opts.MinPhaseOneRuns {
		// Should rarely happen: the instance is large enough that even
		// MinPhaseOneRuns iterations didn't fit in the budget. Keep
		// sampling (best-per-SCC bookkeeping only, frequencies are not
		// yet meaningful at this sample size) until interrupted.
		for {
			perm := runOnce(problems, flag, rng)
			if flag.IsSet() {
				return abortedPhase1Result(perm, bestPerm, bestVal)
			}
			updateBest(problems, perm, bestPerm, bestVal)
		}
	}

	return bestPerm, bestVal, freqs, cntruns, true
}

// runOnce produces one phase-1 candidate: C7 on the result of C5.
func runOnce(problems []*sccprob.Problem, flag *abortflag.Flag, rng *rand.Rand) [][]int {
	return sift.HillClimber(problems, sift.Insertion(problems, flag, rng), flag, rng)
}

func updateBest(problems []*sccprob.Problem, perm, bestPerm [][]int, bestVal []uint64) {
	for i, p := range problems {
		v := p.Eval(perm[i])
		if v < bestVal[i] {
			bestVal[i] = v
			bestPerm[i] = perm[i]
		}
	}
}

func updateFrequencies(freqs freqTable, problems []*sccprob.Problem, perm, bestPerm [][]int, bestVal []uint64, flag *abortflag.Flag) {
	updateBest(problems, perm, bestPerm, bestVal)

	for i := range problems {
		if flag.IsSet() {
			return
		}
		for j := 0; j < len(perm[i]); j++ {
			for k := j + 1; k < len(perm[i]); k++ {
				freqs[i][perm[i][j]][perm[i][k]]++
			}
		}
	}
}

// abortedPhase1Result picks what to return when interrupted: the current
// candidate if no best has been recorded yet for any SCC, otherwise the
// best-so-far.
func abortedPhase1Result(candidate, bestPerm [][]int, bestVal []uint64) (perm [][]int, val []uint64, freqs freqTable, cntruns int, finished bool) {
	haveBest := len(bestVal) > 0 && bestVal[0] != math.MaxUint64
	if !haveBest && candidate != nil {
		return candidate, bestVal, nil, 0, false
	}

	return bestPerm, bestVal, nil, 0, false
}
