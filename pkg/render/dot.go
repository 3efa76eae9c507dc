package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/thejimbirch/dependgen/pkg/depgraph"
)

// ToDOT converts a dependency graph to Graphviz DOT format. The root node is
// shaded to match the Mermaid rendering's distinguished root. Edge targets
// without nodes of their own (unresolved leaves) are declared implicitly by
// their edges.
func ToDOT(g *depgraph.Graph, rootName string) string {
	var buf bytes.Buffer
	buf.WriteString("digraph dependencies {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		if n.Name == rootName {
			fmt.Fprintf(&buf, "  %q [fillcolor=lightgrey];\n", n.Name)
			continue
		}
		fmt.Fprintf(&buf, "  %q;\n", n.Name)
	}

	buf.WriteString("\n")
	for _, n := range g.Nodes() {
		for _, e := range n.Deps {
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", n.Name, e.Name, e.Constraint)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// SVG renders a DOT graph to SVG using Graphviz.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
