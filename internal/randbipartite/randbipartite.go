package randbipartite

import (
	"math/rand"

	"github.com/katalvlaran/ocmsift/internal/pace"
)

// Generate returns a random OCM instance on a fixed side of size n0 and a
// free side of size n1: each of the n0*n1 possible (a, b) pairs is included
// independently with probability p, trialed in ascending a, then ascending
// b order for a fixed edge-trial sequence given rng's state.
func Generate(n0, n1 int, p float64, rng *rand.Rand) *pace.Instance {
	var edges []pace.Edge
	for a := 0; a < n0; a++ {
		for b := 0; b < n1; b++ {
			if rng.Float64() < p {
				edges = append(edges, pace.Edge{A: a, B: b})
			}
		}
	}

	return &pace.Instance{N0: n0, N1: n1, Edges: edges}
}
