// Package sccprob defines the per-SCC crossing problem (C3): a crossing-weight
// matrix over a strongly connected component of the precedence graph, the
// precedence edges within it, and a label mapping back to original free-side
// vertex ids.
//
// Problem is produced by bipartite.Graph.Reduce and consumed by sift and
// meta. It is immutable once constructed, in the same shape as
// github.com/katalvlaran/lvlath/tsp's small, data-only result types
// (tsp.TSResult) with a handful of methods.
package sccprob
