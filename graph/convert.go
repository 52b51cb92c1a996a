// File: convert.go
// Role: cross-variant conversions. Every conversion here produces
// independent deep copies of all attribute records; self-conversions
// (ToUndirected on an undirected variant, ToDirected on a directed one)
// behave exactly like Clone.
package graph

// ToDirected returns a DiGraph with both arcs (u,v) and (v,u) for every
// edge {u,v} of the receiver. Each arc carries its own deep copy of the
// edge's attribute record.
//
// Complexity: O(V + E).
func (g *Graph[N]) ToDirected() *DiGraph[N] {
	out := NewDiGraph[N](WithKeyOptions(g.keyOpts...))
	mergeInto(out.attr, g.attr)
	for _, n := range g.Nodes() {
		a, _ := g.NodeAttr(n)
		out.AddNode(n, cloneAttr(a))
	}
	for _, e := range g.Edges() {
		_ = out.AddEdge(e.U, e.V, cloneAttr(e.Attr))
		_ = out.AddEdge(e.V, e.U, cloneAttr(e.Attr))
	}

	return out
}

// ToUndirected on an already-undirected Graph is a self-conversion: it
// returns a deep copy, same as Clone.
func (g *Graph[N]) ToUndirected() *Graph[N] { return g.Clone() }

// ToDirected on an already-directed DiGraph is a self-conversion: it
// returns a deep copy, same as Clone.
func (g *DiGraph[N]) ToDirected() *DiGraph[N] { return g.Clone() }

// ToDirected returns a MultiDiGraph with both arcs (u,v,key) and
// (v,u,key) for every parallel edge {u,v,key} of the receiver, each arc
// carrying its own deep copy of the edge's attribute record.
//
// Complexity: O(V + E).
func (g *MultiGraph[N]) ToDirected() *MultiDiGraph[N] {
	out := NewMultiDiGraph[N](WithKeyOptions(g.keyOpts...))
	mergeInto(out.attr, g.attr)
	for _, n := range g.Nodes() {
		a, _ := g.NodeAttr(n)
		out.AddNode(n, cloneAttr(a))
	}
	for _, e := range g.EdgesKeyed() {
		_ = out.AddEdgeKeyed(e.U, e.V, e.Key, cloneAttr(e.Attr))
		_ = out.AddEdgeKeyed(e.V, e.U, e.Key, cloneAttr(e.Attr))
	}

	return out
}

// ToUndirected on an already-undirected MultiGraph is a self-conversion:
// it returns a deep copy, same as Clone.
func (g *MultiGraph[N]) ToUndirected() *MultiGraph[N] { return g.Clone() }

// ToDirected on an already-directed MultiDiGraph is a self-conversion:
// it returns a deep copy, same as Clone.
func (g *MultiDiGraph[N]) ToDirected() *MultiDiGraph[N] { return g.Clone() }
