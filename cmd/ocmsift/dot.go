package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/ocmsift/digraph"
	"github.com/katalvlaran/ocmsift/internal/pace"
)

// dumpPrecedenceGraph reduces inst and writes the resulting free-side
// precedence graph (the edges bipartite.Reduce splits into SCCs) as DOT to
// path, purely for debugging a run; it never affects the computed ordering.
func dumpPrecedenceGraph(inst *pace.Instance, path string) error {
	g := pace.Reduce(inst)
	h := g.PrecedenceGraph()

	dot := precedenceToDOT(h)

	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return fmt.Errorf("parse DOT: %w", err)
	}
	defer parsed.Close()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	return gv.Render(ctx, parsed, graphviz.XDOT, f)
}

func precedenceToDOT(h digraph.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("digraph precedence {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=circle];\n")
	for u := 0; u < h.NumVertices(); u++ {
		for _, v := range h[u] {
			fmt.Fprintf(&buf, "  %d -> %d;\n", u, v)
		}
	}
	buf.WriteString("}\n")

	return buf.String()
}
