package sift

import "github.com/katalvlaran/ocmsift/sccprob"

// InsertCostPerPosition returns, for every insertion position
// i = 0..len(perm), the crossing cost of inserting v at position i in perm:
// pre[i] (crossings against everything strictly to v's left, which precedes
// v) plus suf[i] (crossings against everything strictly to v's right, which
// v precedes).
//
// pre is a forward prefix scan, suf a reverse prefix scan; each costs O(n),
// so the whole call is O(n) rather than the O(n^2) of scoring every position
// from scratch.
//
// Boundary identity: cost[len(perm)] == sum_k W[perm[k]][v] (everything
// precedes v), and cost[0] == sum_k W[v][perm[k]] (v precedes everything).
func InsertCostPerPosition(p *sccprob.Problem, perm []int, v int) []uint64 {
	n := len(perm)

	pre := make([]uint64, n+1)
	for i := 0; i < n; i++ {
		pre[i+1] = pre[i] + p.W[perm[i]][v]
	}

	suf := make([]uint64, n+1)
	for i := n - 1; i >= 0; i-- {
		suf[i] = suf[i+1] + p.W[v][perm[i]]
	}

	cost := make([]uint64, n+1)
	for i := 0; i <= n; i++ {
		cost[i] = pre[i] + suf[i]
	}

	return cost
}

// minima returns the minimum value in vals and every index achieving it.
// vals is never empty in practice: insertion positions always number
// len(perm)+1 >= 1.
func minima(vals []uint64) (uint64, []int) {
	min := vals[0]
	for _, x := range vals[1:] {
		if x < min {
			min = x
		}
	}

	idxs := make([]int, 0, len(vals))
	for i, x := range vals {
		if x == min {
			idxs = append(idxs, i)
		}
	}

	return min, idxs
}
