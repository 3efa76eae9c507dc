// Package depgraph holds the dependency graph model and the breadth-first
// walker that builds it by resolving manifests across forge repositories.
package depgraph

import "errors"

// ErrDuplicateNode is returned by [Graph.AddNode] when a node with the same
// name already exists. Each repository appears at most once in the graph.
var ErrDuplicateNode = errors.New("duplicate node name")

// Edge is a declared dependency of a node. The target may or may not have a
// node of its own; unresolved dependencies stay bare edges.
type Edge struct {
	Name       string
	Constraint string
}

// Node is one visited repository: its package name, manifest type, and
// declared dependencies in declaration order.
type Node struct {
	Name string
	Type string
	Deps []Edge
}

// Graph maps package names to nodes, preserving insertion order so that
// rendering the same graph twice yields identical output.
type Graph struct {
	order []string
	nodes map[string]*Node
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}

// AddNode inserts a node. Names must be unique.
func (g *Graph) AddNode(n Node) error {
	if _, exists := g.nodes[n.Name]; exists {
		return ErrDuplicateNode
	}
	node := &n
	g.nodes[node.Name] = node
	g.order = append(g.order, node.Name)
	return nil
}

// Node returns the node with the given name, if present.
func (g *Graph) Node(name string) (*Node, bool) {
	n, ok := g.nodes[name]
	return n, ok
}

// Has reports whether a node with the given name exists.
func (g *Graph) Has(name string) bool {
	_, ok := g.nodes[name]
	return ok
}

// Nodes returns all nodes in insertion (traversal) order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.order))
	for i, name := range g.order {
		out[i] = g.nodes[name]
	}
	return out
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.order) }

// EdgeCount returns the total number of declared dependency edges.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, n := range g.nodes {
		total += len(n.Deps)
	}
	return total
}
