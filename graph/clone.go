// File: clone.go
// Role: deep-copy construction for Graph.
package graph

// Clone returns a deep copy: new attribute records throughout (no shared
// mutable state with the receiver), same node/edge set and key policy.
//
// Complexity: O(V + E).
func (g *Graph[N]) Clone() *Graph[N] {
	out := NewGraph[N](WithKeyOptions(g.keyOpts...))
	mergeInto(out.attr, g.attr)
	for _, n := range g.Nodes() {
		a, _ := g.NodeAttr(n)
		out.AddNode(n, cloneAttr(a))
	}
	for _, e := range g.Edges() {
		_ = out.AddEdge(e.U, e.V, cloneAttr(e.Attr))
	}

	return out
}

// CloneEmpty returns a new empty Graph with the same graph attributes
// and key policy as the receiver, but no nodes or edges.
//
// Complexity: O(1).
func (g *Graph[N]) CloneEmpty() *Graph[N] {
	out := NewGraph[N](WithKeyOptions(g.keyOpts...))
	mergeInto(out.attr, g.attr)

	return out
}
