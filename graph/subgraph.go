// File: subgraph.go
// Role: induced-subgraph construction for Graph — a fresh graph with its
// own adjacency catalog, not a live filter over the parent. Attribute
// records are shared with the parent: the subgraph is a shallow view,
// and Clone on the result produces the independent deep copy.
package graph

// Subgraph returns a new Graph containing exactly the nodes in ns (those
// not already present in the receiver are silently skipped) and every
// edge of the receiver with both endpoints in ns. Node and edge attribute
// records are shared with the receiver: mutating an attribute through the
// subgraph is visible from the original and vice versa. Use Clone on the
// result for an independent copy.
//
// Complexity: O(len(ns) + E).
func (g *Graph[N]) Subgraph(ns []N) *Graph[N] {
	out := g.CloneEmpty()
	for _, n := range ns {
		if a, ok := g.NodeAttr(n); ok && !out.nodeAttr.Has(n) {
			out.nodeAttr.Set(n, a)
			out.adj.Set(n, newNeighborMap[N](g.keyOpts))
		}
	}
	for _, e := range g.Edges() {
		if !out.nodeAttr.Has(e.U) || !out.nodeAttr.Has(e.V) {
			continue
		}
		out.setMirrored(e.U, e.V, e.Attr)
	}

	return out
}

// setMirrored installs rec as edge {u,v}'s shared attribute record on
// both sides of the adjacency, without copying it. Both nodes must
// already be present.
func (g *Graph[N]) setMirrored(u, v N, rec AttrRecord) {
	uNbrs, _ := g.adj.Get(u)
	uNbrs.Set(v, rec)
	if g.nodeAttr.KeysEqual(u, v) {
		return
	}
	vNbrs, _ := g.adj.Get(v)
	vNbrs.Set(u, rec)
}

// EdgeSubgraph returns a new Graph containing every node touched by
// edges in pairs and exactly those edges that exist in the receiver.
// Pairs not present as edges are silently skipped. Like Subgraph, the
// result shares attribute records with the receiver.
//
// Complexity: O(len(pairs)).
func (g *Graph[N]) EdgeSubgraph(pairs []EdgeTuple2[N]) *Graph[N] {
	out := g.CloneEmpty()
	for _, p := range pairs {
		if !g.HasEdge(p.U, p.V) {
			continue
		}
		for _, n := range []N{p.U, p.V} {
			if a, ok := g.NodeAttr(n); ok && !out.nodeAttr.Has(n) {
				out.nodeAttr.Set(n, a)
				out.adj.Set(n, newNeighborMap[N](g.keyOpts))
			}
		}
		out.setMirrored(p.U, p.V, g.GetEdgeData(p.U, p.V, nil))
	}

	return out
}
