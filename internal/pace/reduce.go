package pace

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/ocmsift/bipartite"
)

// Reduce strips isolated free vertices and merges twins (free vertices with
// identical A-side neighborhoods) into a single canonical representative,
// producing the smaller bipartite.Graph the core operates on.
//
// A twin group's canonical representative is whichever original vertex is
// encountered first in ascending original-id order; Ids[v] lists the whole
// group in that same ascending order, which is also the order they are
// re-expanded in on the way out.
func Reduce(inst *Instance) *bipartite.Graph {
	adjs := make([][]int, inst.N1)
	for _, e := range inst.Edges {
		adjs[e.B] = append(adjs[e.B], e.A)
	}
	for _, row := range adjs {
		sort.Ints(row)
	}

	var isolated []int
	repByKey := make(map[string]int)
	var reducedAdjs [][]int
	var reducedIds [][]int

	for v := 0; v < inst.N1; v++ {
		if len(adjs[v]) == 0 {
			isolated = append(isolated, v)
			continue
		}
		key := neighborKey(adjs[v])
		if rep, ok := repByKey[key]; ok {
			reducedIds[rep] = append(reducedIds[rep], v)
			continue
		}
		rep := len(reducedAdjs)
		repByKey[key] = rep
		reducedAdjs = append(reducedAdjs, adjs[v])
		reducedIds = append(reducedIds, []int{v})
	}

	g, err := bipartite.New(inst.N0, len(reducedAdjs), reducedAdjs, reducedIds, isolated)
	if err != nil {
		// Adjs rows are sorted above and shapes match reducedIds 1:1 by
		// construction; this cannot fail.
		panic(err)
	}

	return g
}

// neighborKey builds a canonical map key from an already-sorted neighbor
// list; two vertices are twins iff their keys are equal.
func neighborKey(sorted []int) string {
	var b strings.Builder
	for i, a := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(a))
	}

	return b.String()
}
