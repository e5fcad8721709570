package largesift

import "github.com/katalvlaran/ocmsift/bipartite"

// unknownCrossing marks a cache slot that has not been populated yet, or
// that holds a true crossing count too large to fit in a byte. It is never
// itself treated as a valid crossing count.
const unknownCrossing uint8 = 255

// crossingCache memoizes pair_crossing_number(u, v) in a byte per ordered
// pair, using O(n1^2) bytes instead of O(n1^2) eight-byte words; a true count
// of 255 or more is never stored and recomputes every time rather than
// aliasing the sentinel, so get always returns the exact count.
type crossingCache [][]uint8

func newCrossingCache(n int) crossingCache {
	cm := make(crossingCache, n)
	for i := range cm {
		row := make([]uint8, n)
		for j := range row {
			row[j] = unknownCrossing
		}
		cm[i] = row
	}

	return cm
}

func (cm crossingCache) get(g *bipartite.Graph, u, v int) uint64 {
	if cm[u][v] != unknownCrossing {
		return uint64(cm[u][v])
	}
	x := g.PairCrossingNumber(u, v)
	if x < uint64(unknownCrossing) {
		cm[u][v] = uint8(x)
	}

	return x
}
