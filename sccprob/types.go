package sccprob

import "errors"

// ErrDimensionMismatch indicates W or G does not have the shape implied by
// Labels.
var ErrDimensionMismatch = errors.New("sccprob: dimension mismatch")

// Problem is the crossing-minimization sub-problem restricted to a single
// SCC of the precedence graph.
type Problem struct {
	// Labels maps local vertex index i to its original free-side vertex id.
	Labels []int

	// W[i][j] is the crossing weight incurred when local i precedes local j.
	// W[i][i] is always 0.
	W [][]uint64

	// G[i] lists local successors of i. For problems built by
	// bipartite.Graph.Reduce, j is in G[i] iff placing i before j is strictly
	// cheaper than the reverse (ties give no edge); problems built by meta's
	// phase-2 refinement list every j with W[i][j] != 0 instead. No edge in G
	// crosses what would be an SCC boundary in the graph G was derived from.
	G [][]int
}

// New validates shapes and returns a Problem. W and G must each have exactly
// len(labels) rows, and every row of W must have len(labels) columns.
func New(labels []int, w [][]uint64, g [][]int) (*Problem, error) {
	n := len(labels)
	if len(w) != n || len(g) != n {
		return nil, ErrDimensionMismatch
	}
	for _, row := range w {
		if len(row) != n {
			return nil, ErrDimensionMismatch
		}
	}

	return &Problem{Labels: labels, W: w, G: g}, nil
}

// N returns the number of vertices in the SCC.
func (p *Problem) N() int {
	return len(p.Labels)
}
