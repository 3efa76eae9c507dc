package render

import (
	"strings"
	"testing"
)

func TestToDOT(t *testing.T) {
	out := ToDOT(testGraph(), "acme/site")

	if !strings.HasPrefix(out, "digraph dependencies {") {
		t.Errorf("unexpected header: %q", out)
	}
	if !strings.Contains(out, `"acme/site" [fillcolor=lightgrey];`) {
		t.Error("root node missing distinguished attributes")
	}
	if !strings.Contains(out, `"org/foo";`) {
		t.Error("non-root node missing")
	}
	if !strings.Contains(out, `"acme/site" -> "org/foo" [label="^1.0"];`) {
		t.Error("edge with constraint label missing")
	}
	if !strings.Contains(out, `"acme/site" -> "php" [label=">=8.1"];`) {
		t.Error("unresolved leaf edge missing")
	}
}

func TestToDOT_Deterministic(t *testing.T) {
	g := testGraph()
	if ToDOT(g, "acme/site") != ToDOT(g, "acme/site") {
		t.Error("DOT output must be deterministic")
	}
}
