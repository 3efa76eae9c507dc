// Package report emits the combined Markdown document: the Mermaid diagram
// in a fenced block, followed by a per-repository dependency listing with
// registry hyperlinks.
package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/thejimbirch/dependgen/pkg/depgraph"
	errs "github.com/thejimbirch/dependgen/pkg/errors"
	"github.com/thejimbirch/dependgen/pkg/forge"
)

// Render builds the Markdown report for a resolved graph. Sections follow
// traversal order, so the document is deterministic for a given graph.
func Render(g *depgraph.Graph, diagram, rootName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s Dependencies\n\n", rootName)

	b.WriteString("## Dependency Graph\n\n")
	b.WriteString("```mermaid\n")
	b.WriteString(diagram)
	b.WriteString("\n```\n\n")

	b.WriteString("## Dependency List\n")
	for _, n := range g.Nodes() {
		fmt.Fprintf(&b, "\n### %s\n\n", n.Name)
		fmt.Fprintf(&b, "- Type: %s\n", n.Type)
		if len(n.Deps) == 0 {
			continue
		}
		b.WriteString("\n#### Dependencies:\n\n")
		for _, e := range n.Deps {
			fmt.Fprintf(&b, "- [%s](%s) - `%s`\n", e.Name, forge.RegistryURL(e.Name), e.Constraint)
		}
	}

	b.WriteString("\n---\n\n")
	b.WriteString("Generated using [thejimbirch/dependgen](https://github.com/thejimbirch/dependgen).\n")

	return b.String()
}

// Write renders the report and writes it to path. A failed write is fatal
// and reported as WRITE_ERROR naming the path.
func Write(g *depgraph.Graph, diagram, rootName, path string) error {
	doc := Render(g, diagram, rootName)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return errs.Wrap(errs.ErrCodeWriteError, err, "write report to %s", path)
	}
	return nil
}
