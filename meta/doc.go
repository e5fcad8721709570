// Package meta implements the two-phase time-bounded sifting driver (C8):
// sifting_heuristic. Phase 1 harvests per-SCC pair-precedence frequencies by
// repeatedly running sift.HillClimber on sift.Insertion output; phase 2
// sparsifies each SCC's precedence graph down to the high-confidence edges
// that survived phase 1, re-decomposes via digraph.SCCs, and runs
// sift.HillClimber on sift.InsertionPlus output against the refined SCCs
// until interrupted.
//
// Shape follows github.com/katalvlaran/lvlath/tsp/bb.go: a dedicated engine
// struct holding search state and policy, a soft wall-clock budget checked
// at loop boundaries, and deterministic tie-breaking driven by a caller-
// supplied *rand.Rand rather than a package-level source.
package meta
