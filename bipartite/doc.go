// Package bipartite holds the free side of a one-sided crossing minimization
// instance and the crossing oracle over it (C2): pairwise crossing counts
// between free vertices, and reduction of the free side into SCC crossing
// problems (sccprob.Problem) via the precedence graph's strongly connected
// components.
//
// Graph is built once, by internal/pace, from an already twin-merged,
// isolated-stripped instance — that grouping is an external-adapter
// concern, not this package's. Graph itself only carries the Ids/Isolated
// bookkeeping needed to map a computed ordering back to the original
// 1-indexed vertex ids; it never computes twin equivalence classes itself.
//
// Shape follows github.com/katalvlaran/lvlath/core: a single exported struct
// with sentinel errors and a constructor, rather than a fluent builder.
package bipartite
