package render

import (
	"strings"
	"testing"

	"github.com/thejimbirch/dependgen/pkg/depgraph"
)

func testGraph() *depgraph.Graph {
	g := depgraph.New()
	_ = g.AddNode(depgraph.Node{Name: "acme/site", Type: "project", Deps: []depgraph.Edge{
		{Name: "org/foo", Constraint: "^1.0"},
		{Name: "php", Constraint: ">=8.1"},
	}})
	_ = g.AddNode(depgraph.Node{Name: "org/foo", Type: "library", Deps: []depgraph.Edge{
		{Name: "org/bar", Constraint: "^2.0"},
	}})
	return g
}

func TestMermaid(t *testing.T) {
	out := Mermaid(testGraph(), "acme/site")

	if !strings.HasPrefix(out, "graph LR\n") {
		t.Errorf("output must start with the graph header, got %q", out)
	}

	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4 (header + 3 edges):\n%s", len(lines), out)
	}

	wantLines := []string{
		`    acme_site(["acme/site"]) -->|"^1.0"| org_foo["org/foo"]`,
		`    acme_site(["acme/site"]) -->|">=8.1"| php["php"]`,
		`    org_foo["org/foo"] -->|"^2.0"| org_bar["org/bar"]`,
	}
	for i, want := range wantLines {
		if lines[i+1] != want {
			t.Errorf("line %d = %q, want %q", i+1, lines[i+1], want)
		}
	}
}

func TestMermaid_RootShapeOnlyOnRoot(t *testing.T) {
	out := Mermaid(testGraph(), "acme/site")

	if strings.Contains(out, `org_foo(["`) {
		t.Error("non-root node rendered with root shape markup")
	}
	if !strings.Contains(out, `acme_site(["acme/site"])`) {
		t.Error("root node missing stadium shape markup")
	}
}

func TestMermaid_Deterministic(t *testing.T) {
	g := testGraph()
	first := Mermaid(g, "acme/site")
	second := Mermaid(g, "acme/site")
	if first != second {
		t.Error("rendering the same graph twice must be byte-identical")
	}
}

func TestMermaid_EmptyGraph(t *testing.T) {
	if out := Mermaid(depgraph.New(), "acme/site"); out != "graph LR" {
		t.Errorf("empty graph = %q, want bare header", out)
	}
}
