// File: multigraph_extra.go
// Role: subgraph/empty-clone/self-loop support for MultiGraph.
package graph

// NewMultiGraphFromEdges constructs a MultiGraph equal to an empty
// construction followed by one auto-keyed AddEdge per element of edges
// (repeated pairs thus become parallel edges).
//
// Complexity: O(E).
func NewMultiGraphFromEdges[N any](edges []EdgeTuple[N], opts ...Option[N]) (*MultiGraph[N], error) {
	g := NewMultiGraph(opts...)
	for _, e := range edges {
		if _, err := g.AddEdge(e.U, e.V, e.Attr); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// NodesWithSelfloops returns every node with at least one self-loop, in
// node order.
func (g *MultiGraph[N]) NodesWithSelfloops() []N {
	var out []N
	for _, n := range g.Nodes() {
		if g.HasEdge(n, n) {
			out = append(out, n)
		}
	}

	return out
}

// SelfloopEdges returns every self-loop as (n, n, key, attr), one entry
// per parallel loop.
func (g *MultiGraph[N]) SelfloopEdges() []KeyedEdgeTuple[N] {
	var out []KeyedEdgeTuple[N]
	for _, n := range g.NodesWithSelfloops() {
		bucket := g.edgeBucket(n, n)
		for _, e := range bucket.Entries() {
			out = append(out, KeyedEdgeTuple[N]{U: n, V: n, Key: e.Key, Attr: e.Val})
		}
	}

	return out
}

// CloneEmpty returns a new empty MultiGraph with the same graph
// attributes and key policy as the receiver, but no nodes or edges.
func (g *MultiGraph[N]) CloneEmpty() *MultiGraph[N] {
	out := NewMultiGraph[N](WithKeyOptions(g.keyOpts...))
	mergeInto(out.attr, g.attr)

	return out
}

// IncidentEdgesKeyed returns every parallel edge touching n as (n, other,
// key, attr) — a self-loop appears once per key, not twice. Returns
// ErrNodeNotFound if n is absent.
func (g *MultiGraph[N]) IncidentEdgesKeyed(n N) ([]KeyedEdgeTuple[N], error) {
	nbrs, ok := g.adj.Get(n)
	if !ok {
		return nil, ErrNodeNotFound
	}
	var out []KeyedEdgeTuple[N]
	for _, nb := range nbrs.Entries() {
		for _, e := range nb.Val.Entries() {
			out = append(out, KeyedEdgeTuple[N]{U: n, V: nb.Key, Key: e.Key, Attr: e.Val})
		}
	}

	return out, nil
}

// Subgraph returns a new MultiGraph containing exactly the nodes in ns
// (those not already present are silently skipped) and every parallel
// edge of the receiver with both endpoints in ns, keys preserved. Node
// and edge attribute records are shared with the receiver; the key-maps
// themselves are fresh (so removals in the subgraph never touch the
// original), mirrored between both sides of each pair. Use Clone on the
// result for an independent copy.
func (g *MultiGraph[N]) Subgraph(ns []N) *MultiGraph[N] {
	out := g.CloneEmpty()
	for _, n := range ns {
		if a, ok := g.NodeAttr(n); ok && !out.nodeAttr.Has(n) {
			out.nodeAttr.Set(n, a)
			out.adj.Set(n, newMultiNeighborMap[N](g.keyOpts))
		}
	}
	for _, e := range g.EdgesKeyed() {
		if !out.nodeAttr.Has(e.U) || !out.nodeAttr.Has(e.V) {
			continue
		}
		uNbrs, _ := out.adj.Get(e.U)
		bucket, ok := uNbrs.Get(e.V)
		if !ok {
			bucket = newKeyMap()
			uNbrs.Set(e.V, bucket)
			if !out.nodeAttr.KeysEqual(e.U, e.V) {
				vNbrs, _ := out.adj.Get(e.V)
				vNbrs.Set(e.U, bucket)
			}
		}
		bucket.Set(e.Key, e.Attr)
	}

	return out
}
