package sccprob

import "github.com/katalvlaran/ocmsift/abortflag"

// AbortedEval is the sentinel Eval returns when interrupted mid-computation.
// Callers must treat it as "interrupted; do not use for comparison" rather
// than a real crossing count — math.MaxUint64-1, matching the sentinel used
// by the reference implementation this was ported from, kept so it can
// never collide with a real (much smaller) crossing total.
const AbortedEval uint64 = ^uint64(0) - 1

// Eval computes the total crossing cost of perm, a permutation of
// [0, p.N()): the sum, over every ordered pair of positions i<j, of
// W[perm[i]][perm[j]] — the cost of the earlier-placed vertex preceding the
// later-placed one. This is invariant to how perm was constructed: an
// insertion sifter's output evaluates the same way a from-scratch
// full-permutation scoring would.
//
// Complexity: O(n^2).
func (p *Problem) Eval(perm []int) uint64 {
	var total uint64
	for i := 0; i < len(perm); i++ {
		for j := i + 1; j < len(perm); j++ {
			total += p.W[perm[i]][perm[j]]
		}
	}

	return total
}

// EvalAbortable is Eval but polls flag once per outer iteration and returns
// AbortedEval as soon as the abort flag is observed set.
func (p *Problem) EvalAbortable(perm []int, flag *abortflag.Flag) uint64 {
	var total uint64
	for i := 0; i < len(perm); i++ {
		if flag.IsSet() {
			return AbortedEval
		}
		for j := i + 1; j < len(perm); j++ {
			total += p.W[perm[i]][perm[j]]
		}
	}

	return total
}
