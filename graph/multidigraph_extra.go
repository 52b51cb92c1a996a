// File: multidigraph_extra.go
// Role: subgraph/empty-clone/self-loop support for MultiDiGraph.
package graph

// NewMultiDiGraphFromEdges constructs a MultiDiGraph equal to an empty
// construction followed by one auto-keyed AddEdge per element of edges
// (repeated ordered pairs thus become parallel arcs).
//
// Complexity: O(E).
func NewMultiDiGraphFromEdges[N any](edges []EdgeTuple[N], opts ...Option[N]) (*MultiDiGraph[N], error) {
	g := NewMultiDiGraph(opts...)
	for _, e := range edges {
		if _, err := g.AddEdge(e.U, e.V, e.Attr); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// NodesWithSelfloops returns every node with at least one self-loop, in
// node order.
func (g *MultiDiGraph[N]) NodesWithSelfloops() []N {
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
func (g *MultiDiGraph[N]) SelfloopEdges() []KeyedEdgeTuple[N] {
	var out []KeyedEdgeTuple[N]
	for _, n := range g.NodesWithSelfloops() {
		bucket := g.succBucket(n, n)
		for _, e := range bucket.Entries() {
			out = append(out, KeyedEdgeTuple[N]{U: n, V: n, Key: e.Key, Attr: e.Val})
		}
	}

	return out
}

// CloneEmpty returns a new empty MultiDiGraph with the same graph
// attributes and key policy as the receiver, but no nodes or arcs.
func (g *MultiDiGraph[N]) CloneEmpty() *MultiDiGraph[N] {
	out := NewMultiDiGraph[N](WithKeyOptions(g.keyOpts...))
	mergeInto(out.attr, g.attr)

	return out
}

// Subgraph returns a new MultiDiGraph containing exactly the nodes in ns
// (those not already present are silently skipped) and every parallel
// arc of the receiver with both endpoints in ns, keys preserved. Node
// and arc attribute records are shared with the receiver; each kept
// pair's key-map is fresh and re-mirrored into both the succ and pred
// maps of the result. Use Clone on the result for an independent copy.
func (g *MultiDiGraph[N]) Subgraph(ns []N) *MultiDiGraph[N] {
	out := g.CloneEmpty()
	for _, n := range ns {
		if a, ok := g.NodeAttr(n); ok && !out.nodeAttr.Has(n) {
			out.nodeAttr.Set(n, a)
			out.succ.Set(n, newMultiNeighborMap[N](g.keyOpts))
			out.pred.Set(n, newMultiNeighborMap[N](g.keyOpts))
		}
	}
	for _, e := range g.EdgesKeyed() {
		if !out.nodeAttr.Has(e.U) || !out.nodeAttr.Has(e.V) {
			continue
		}
		uSucc, _ := out.succ.Get(e.U)
		bucket, ok := uSucc.Get(e.V)
		if !ok {
			bucket = newKeyMap()
			uSucc.Set(e.V, bucket)
			vPred, _ := out.pred.Get(e.V)
			vPred.Set(e.U, bucket)
		}
		bucket.Set(e.Key, e.Attr)
	}

	return out
}
