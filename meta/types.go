package meta

import "time"

// Default knobs, named the way github.com/katalvlaran/lvlath/tsp names
// DefaultEps / DefaultTwoOptMaxIters.
const (
	// DefaultPhaseOneBudget is the wall-clock budget for frequency
	// harvesting before phase 2's edge sparsification kicks in.
	DefaultPhaseOneBudget = 60 * time.Second

	// DefaultMinPhaseOneRuns is the minimum number of completed phase-1
	// iterations required before its frequency counts are trusted enough
	// to sparsify on. Below this, phase 1 keeps running (best-per-SCC
	// bookkeeping only) until interrupted.
	DefaultMinPhaseOneRuns = 10

	// sparsifyDivisor: an edge survives phase 1 when its frequency exceeds
	// cntruns / sparsifyDivisor (~3.3% of samples at the default 30).
	sparsifyDivisor = 30
)

// Options configures Run. The zero value is not meaningful; use
// DefaultOptions and override fields as needed.
type Options struct {
	// PhaseOneBudget bounds phase 1's frequency-harvesting wall-clock time.
	PhaseOneBudget time.Duration

	// MinPhaseOneRuns is the minimum completed iteration count before
	// phase 1 is allowed to hand off to phase 2.
	MinPhaseOneRuns int
}

// DefaultOptions returns the production-ready default knobs for Run.
func DefaultOptions() Options {
	return Options{
		PhaseOneBudget:  DefaultPhaseOneBudget,
		MinPhaseOneRuns: DefaultMinPhaseOneRuns,
	}
}
