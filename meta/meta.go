package meta

import (
	"math/rand"

	"github.com/katalvlaran/ocmsift/abortflag"
	"github.com/katalvlaran/ocmsift/sccprob"
	"github.com/katalvlaran/ocmsift/sift"
)

// Run is sifting_heuristic (C8): phase 1 harvests pair-precedence
// frequencies from repeated C7-on-C5 candidates for up to
// opts.PhaseOneBudget (if fewer than MinPhaseOneRuns iterations completed in
// that time, it keeps sampling until the abort flag is set and phase 2 never
// runs); phase 2 sparsifies each SCC's precedence graph to the
// edges that survived phase 1, re-decomposes, and loops C7-on-C6 against
// the refined SCCs until the abort flag is set. The result is the best
// ordering found per (possibly refined) SCC, concatenated in SCC order and
// mapped back through each problem's labels to original free-vertex ids.
func Run(problems []*sccprob.Problem, flag *abortflag.Flag, rng *rand.Rand, opts Options) []int {
	if len(problems) == 0 {
		return nil
	}

	bestPerm, _, freqs, cntruns, finished := phase1(problems, flag, rng, opts)
	if !finished {
		return mapToOriginalLabels(bestPerm, problems)
	}

	newProblems, bestPerm2, bestVal2 := refine(problems, freqs, cntruns, bestPerm)

	for !flag.IsSet() {
		perm := sift.HillClimber(newProblems, sift.InsertionPlus(newProblems, flag, rng), flag, rng)
		if flag.IsSet() {
			break
		}
		for i, p := range newProblems {
			v := p.Eval(perm[i])
			if v < bestVal2[i] {
				bestVal2[i] = v
				bestPerm2[i] = perm[i]
			}
		}
	}

	return mapToOriginalLabels(bestPerm2, newProblems)
}

// mapToOriginalLabels flattens a per-problem local ordering into a single
// slice of original free-vertex ids, in problem order.
func mapToOriginalLabels(perm [][]int, problems []*sccprob.Problem) []int {
	var ordering []int
	for i, p := range problems {
		for _, local := range perm[i] {
			ordering = append(ordering, p.Labels[local])
		}
	}

	return ordering
}
