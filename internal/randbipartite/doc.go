// Package randbipartite generates random OCM instances for benchmarking and
// property-based testing, grounded on github.com/katalvlaran/lvlath/builder:
// its RandomSparse constructor's Erdős–Rényi-style independent Bernoulli
// edge trial, and CompleteBipartite's deterministic (i ascending over the
// fixed side, j ascending over the free side) emission order.
package randbipartite
