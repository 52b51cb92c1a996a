// File: digraph_extra.go
// Role: clone/subgraph/weighted-degree support for DiGraph, mirroring
// the Graph equivalents in clone.go, subgraph.go, and degree.go.
package graph

// Clone returns a deep copy: new attribute records throughout, same
// node/arc set and key policy.
//
// Complexity: O(V + E).
func (g *DiGraph[N]) Clone() *DiGraph[N] {
	out := NewDiGraph[N](WithKeyOptions(g.keyOpts...))
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

// CloneEmpty returns a new empty DiGraph with the same graph attributes
// and key policy as the receiver, but no nodes or arcs.
func (g *DiGraph[N]) CloneEmpty() *DiGraph[N] {
	out := NewDiGraph[N](WithKeyOptions(g.keyOpts...))
	mergeInto(out.attr, g.attr)

	return out
}

// Subgraph returns a new DiGraph containing exactly the nodes in ns
// (those not already present are silently skipped) and every arc of the
// receiver with both endpoints in ns. Node and arc attribute records are
// shared with the receiver; each kept arc is re-mirrored into both the
// succ and pred maps of the result. Use Clone on the result for an
// independent copy.
//
// Complexity: O(len(ns) + E).
func (g *DiGraph[N]) Subgraph(ns []N) *DiGraph[N] {
	out := g.CloneEmpty()
	for _, n := range ns {
		if a, ok := g.NodeAttr(n); ok && !out.nodeAttr.Has(n) {
			out.nodeAttr.Set(n, a)
			out.succ.Set(n, newNeighborMap[N](g.keyOpts))
			out.pred.Set(n, newNeighborMap[N](g.keyOpts))
		}
	}
	for _, e := range g.Edges() {
		if !out.nodeAttr.Has(e.U) || !out.nodeAttr.Has(e.V) {
			continue
		}
		uSucc, _ := out.succ.Get(e.U)
		uSucc.Set(e.V, e.Attr)
		vPred, _ := out.pred.Get(e.V)
		vPred.Set(e.U, e.Attr)
	}

	return out
}

// NodesWithSelfloops returns every node with a self-loop, in node order.
func (g *DiGraph[N]) NodesWithSelfloops() []N {
	var out []N
	for _, n := range g.Nodes() {
		if g.HasEdge(n, n) {
			out = append(out, n)
		}
	}

	return out
}

// SelfloopEdges returns every self-loop arc as (n, n, attr).
func (g *DiGraph[N]) SelfloopEdges() []EdgeTuple[N] {
	var out []EdgeTuple[N]
	for _, n := range g.NodesWithSelfloops() {
		out = append(out, EdgeTuple[N]{U: n, V: n, Attr: g.GetEdgeData(n, n, nil)})
	}

	return out
}

// WeightedDegree returns InWeight + OutWeight for n under weightName
// (default "weight"), weight defaulting to 1 per arc when absent or
// non-numeric. Returns ErrNodeNotFound if n is absent.
func (g *DiGraph[N]) WeightedDegree(n N, weightName string) (float64, error) {
	if weightName == "" {
		weightName = "weight"
	}
	succ, ok := g.succ.Get(n)
	if !ok {
		return 0, ErrNodeNotFound
	}
	pred, _ := g.pred.Get(n)

	var sum float64
	for _, e := range succ.Entries() {
		sum += attrWeight(e.Val, weightName)
	}
	for _, e := range pred.Entries() {
		sum += attrWeight(e.Val, weightName)
	}

	return sum, nil
}
