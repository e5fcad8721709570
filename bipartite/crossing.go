package bipartite

// PairCrossingNumber returns the number of crossings contributed by placing
// free vertex u immediately before free vertex v: the count of neighbor
// pairs (a ∈ Adjs[u], b ∈ Adjs[v]) with a > b, i.e. inversions with respect
// to A's fixed order. PairCrossingNumber(u, v) and PairCrossingNumber(v, u)
// together account for every pair with a != b, so they sum to the total
// pairwise crossings between u's and v's edge sets.
//
// Both Adjs rows are sorted ascending (an invariant checked by New), so this
// runs as a single merge-style pass rather than the naive O(du*dv) nested
// loop: as b walks Adjs[v] ascending, the count of Adjs[u] elements already
// "used up" (<=b) only grows, so one shared pointer suffices.
//
// Complexity: O(len(Adjs[u]) + len(Adjs[v])).
func (g *Graph) PairCrossingNumber(u, v int) uint64 {
	return countGreater(g.Adjs[u], g.Adjs[v])
}

// TotalCrossings sums PairCrossingNumber over every pair of free vertices in
// the order perm places them, i.e. the crossing count of the drawing perm
// induces. perm must be a permutation of [0, g.N1).
func (g *Graph) TotalCrossings(perm []int) uint64 {
	var total uint64
	for i := 0; i < len(perm); i++ {
		for j := i + 1; j < len(perm); j++ {
			total += g.PairCrossingNumber(perm[i], perm[j])
		}
	}

	return total
}

// countGreater counts pairs (a ∈ au, b ∈ bv) with a > b, given both slices
// sorted ascending.
func countGreater(au, bv []int) uint64 {
	var total uint64
	idx := 0
	du := len(au)
	for _, b := range bv {
		for idx < du && au[idx] <= b {
			idx++
		}
		total += uint64(du - idx)
	}

	return total
}
