// Package sift implements the small/medium-scale sifting local searches
// (C5 insertion, C6 insertion-plus, C7 hillclimber) and the shared
// insertion-cost-at-every-position primitive they are built on: for a
// partial ordering and a vertex not yet placed, the crossing cost of
// inserting that vertex at each candidate position.
//
// Shape follows github.com/katalvlaran/lvlath/tsp: dense per-call buffers
// computed with prefix/suffix scans (tsp/two_opt.go's linearized weight
// prefetch), a seeded *rand.Rand threaded in rather than a package-level
// global (tsp/rng.go), and cooperative cancellation polled at inner-loop
// boundaries rather than a context.Context, per abortflag's design.
package sift
