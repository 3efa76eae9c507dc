package depgraph

import (
	"errors"
	"testing"
)

func TestGraph_InsertionOrder(t *testing.T) {
	g := New()
	names := []string{"root", "b/b", "a/a", "c/c"}
	for _, n := range names {
		if err := g.AddNode(Node{Name: n}); err != nil {
			t.Fatalf("AddNode(%q) failed: %v", n, err)
		}
	}

	nodes := g.Nodes()
	if len(nodes) != len(names) {
		t.Fatalf("got %d nodes, want %d", len(nodes), len(names))
	}
	for i, want := range names {
		if nodes[i].Name != want {
			t.Errorf("nodes[%d] = %q, want %q (insertion order)", i, nodes[i].Name, want)
		}
	}
}

func TestGraph_DuplicateNode(t *testing.T) {
	g := New()
	if err := g.AddNode(Node{Name: "a/a"}); err != nil {
		t.Fatal(err)
	}
	if err := g.AddNode(Node{Name: "a/a"}); !errors.Is(err, ErrDuplicateNode) {
		t.Errorf("error = %v, want ErrDuplicateNode", err)
	}
	if g.Len() != 1 {
		t.Errorf("Len = %d, want 1", g.Len())
	}
}

func TestGraph_EdgeCount(t *testing.T) {
	g := New()
	_ = g.AddNode(Node{Name: "root", Deps: []Edge{{Name: "a/a"}, {Name: "b/b"}}})
	_ = g.AddNode(Node{Name: "a/a", Deps: []Edge{{Name: "b/b"}}})
	_ = g.AddNode(Node{Name: "b/b"})

	if got := g.EdgeCount(); got != 3 {
		t.Errorf("EdgeCount = %d, want 3", got)
	}
	if !g.Has("b/b") {
		t.Error("expected node b/b")
	}
	if _, ok := g.Node("missing"); ok {
		t.Error("unexpected node found")
	}
}
