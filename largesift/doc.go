// Package largesift is the C9 large-scale sifter: a single adjacent-swap
// hillclimb over a mean-heuristic seed ordering, driven by a byte-capped
// crossing-count cache and a range-limited best-reinsertion scan so that it
// scales to n1 in the tens of thousands where the SCC-matrix approach of
// sccprob/sift/meta (which needs an O(n1^2) weight matrix) is no longer
// affordable.
//
// Grounded on github.com/katalvlaran/lvlath/tsp/two_opt.go for the
// dense-slice hot-loop style and deadline/abort polling discipline, and on
// gonum.org/v1/gonum/stat for the mean-heuristic seed.
package largesift
