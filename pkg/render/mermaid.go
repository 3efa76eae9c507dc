// Package render serializes dependency graphs into diagram notations:
// Mermaid for embedding in the Markdown report, and Graphviz DOT/SVG for
// standalone image output.
package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/thejimbirch/dependgen/pkg/depgraph"
)

var idPattern = regexp.MustCompile(`[^A-Za-z0-9_]`)

// Mermaid renders the graph as a left-to-right Mermaid flowchart: one line
// per dependency edge, with the version constraint as the edge label. The
// root node gets stadium shape markup; every other node is a plain box.
//
// Output is deterministic: nodes are emitted in traversal order and edges in
// declaration order, so rendering the same graph twice is byte-identical.
func Mermaid(g *depgraph.Graph, rootName string) string {
	var b strings.Builder
	b.WriteString("graph LR")

	for _, n := range g.Nodes() {
		src := nodeRef(n.Name, n.Name == rootName)
		for _, e := range n.Deps {
			fmt.Fprintf(&b, "\n    %s -->|%q| %s", src, e.Constraint, nodeRef(e.Name, false))
		}
	}

	return b.String()
}

// nodeRef renders a node reference with a sanitized ID and the full package
// name as its label. Mermaid IDs cannot carry slashes, so vendor/name
// becomes vendor_name with the original name quoted.
func nodeRef(name string, root bool) string {
	id := idPattern.ReplaceAllString(name, "_")
	if root {
		return fmt.Sprintf("%s([%q])", id, name)
	}
	return fmt.Sprintf("%s[%q]", id, name)
}
