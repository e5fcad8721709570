// Package digraph implements the three operations the sifting optimizer
// needs on directed graphs represented as adjacency lists over [0, n):
// induced-subgraph extraction, reverse-postorder topological ordering, and
// Kosaraju strongly-connected-component decomposition.
//
// Graphs here are plain [][]int adjacency lists rather than a general,
// string-keyed graph type: the optimizer operates on dense integer vertex
// ids (up to ~1e5 for the large-scale sifter) and has no use for a
// mutex-protected, multi-edge representation built for interactive use. The
// traversal shape — reverse postorder, ascending-index tie-break — follows
// github.com/katalvlaran/lvlath/dfs; a single visited flag per vertex takes
// the place of that package's three-color marking.
//
// DFS and label propagation run on an explicit stack rather than recursing,
// since the original recursive shape blows the goroutine stack at the
// ~1e5-vertex sizes the large-scale sifter dispatches to.
package digraph
