// File: edges.go
// Role: edge lifecycle, iteration, and tuple ingestion for Graph.
package graph

import "github.com/nx-graph/netx/kmap"

// AddEdge adds u and v if missing, then creates (or merges into) the
// shared attribute record for edge {u,v}. attr may be nil.
//
// Complexity: O(1) expected.
func (g *Graph[N]) AddEdge(u, v N, attr AttrRecord) error {
	g.AddNode(u, nil)
	g.AddNode(v, nil)

	uNbrs, _ := g.adj.Get(u)
	if existing, ok := uNbrs.Get(v); ok {
		mergeInto(existing, attr)
		return nil
	}

	rec := newAttr(nil, attr)
	uNbrs.Set(v, rec)
	if g.nodeAttr.KeysEqual(u, v) {
		return nil // self-loop: the single entry already mirrors itself
	}
	vNbrs, _ := g.adj.Get(v)
	vNbrs.Set(u, rec)

	return nil
}

// EdgeTuple2 is a (u, v) pair, used by RemoveEdges.
type EdgeTuple2[N any] struct{ U, V N }

// AddEdgesFrom adds each element of edges; attr is the base record and
// each element's own Attr (if non-nil) overrides it per key.
//
// Complexity: O(len(edges)).
func (g *Graph[N]) AddEdgesFrom(edges []EdgeTuple[N], attr AttrRecord) error {
	for _, e := range edges {
		if err := g.AddEdge(e.U, e.V, newAttr(attr, e.Attr)); err != nil {
			return err
		}
	}

	return nil
}

// WeightedEdgeTuple is a (u, v, weight) triple for AddWeightedEdgesFrom.
type WeightedEdgeTuple[N any] struct {
	U, V   N
	Weight float64
}

// AddWeightedEdgesFrom adds each (u, v, w) triple, synthesizing
// {weightName: w} merged over attr. weightName defaults to "weight".
//
// Complexity: O(len(edges)).
func (g *Graph[N]) AddWeightedEdgesFrom(edges []WeightedEdgeTuple[N], weightName string, attr AttrRecord) error {
	if weightName == "" {
		weightName = "weight"
	}
	for _, e := range edges {
		wAttr := newAttr(attr, AttrRecord{weightName: e.Weight})
		if err := g.AddEdge(e.U, e.V, wAttr); err != nil {
			return err
		}
	}

	return nil
}

// RemoveEdge deletes edge {u,v}. Returns ErrEdgeNotFound if it is absent.
//
// Complexity: O(1) expected.
func (g *Graph[N]) RemoveEdge(u, v N) error {
	uNbrs, ok := g.adj.Get(u)
	if !ok || !uNbrs.Has(v) {
		return ErrEdgeNotFound
	}
	uNbrs.Delete(v)
	if vNbrs, ok := g.adj.Get(v); ok {
		vNbrs.Delete(u)
	}

	return nil
}

// RemoveEdges deletes every edge in pairs that is present, silently
// ignoring those that are not.
//
// Complexity: O(len(pairs)).
func (g *Graph[N]) RemoveEdges(pairs []EdgeTuple2[N]) {
	for _, p := range pairs {
		_ = g.RemoveEdge(p.U, p.V)
	}
}

// HasEdge reports whether edge {u,v} exists. Does not raise on missing
// nodes.
//
// Complexity: O(1) expected.
func (g *Graph[N]) HasEdge(u, v N) bool {
	uNbrs, ok := g.adj.Get(u)
	if !ok {
		return false
	}

	return uNbrs.Has(v)
}

// GetEdgeData returns edge {u,v}'s attribute record, or def if the edge
// (or either endpoint) is absent.
//
// Complexity: O(1) expected.
func (g *Graph[N]) GetEdgeData(u, v N, def AttrRecord) AttrRecord {
	uNbrs, ok := g.adj.Get(u)
	if !ok {
		return def
	}
	if rec, ok := uNbrs.Get(v); ok {
		return rec
	}

	return def
}

// Neighbors returns the neighbor set of n in insertion order. Returns
// ErrNodeNotFound if n is absent.
//
// Complexity: O(deg(n)).
func (g *Graph[N]) Neighbors(n N) ([]N, error) {
	nbrs, ok := g.adj.Get(n)
	if !ok {
		return nil, ErrNodeNotFound
	}

	return nbrs.Keys(), nil
}

// Edges returns every edge exactly once as (u, v, attr): while iterating
// n's neighbors, any neighbor already marked "seen" is skipped; n itself
// is marked seen only after its neighbors are exhausted.
//
// Complexity: O(V + E).
func (g *Graph[N]) Edges() []EdgeTuple[N] {
	seen := kmap.New[N, bool](g.keyOpts...)
	var out []EdgeTuple[N]
	for _, u := range g.Nodes() {
		nbrs, _ := g.adj.Get(u)
		for _, e := range nbrs.Entries() {
			if seen.Has(e.Key) {
				continue
			}
			out = append(out, EdgeTuple[N]{U: u, V: e.Key, Attr: e.Val})
		}
		seen.Set(u, true)
	}

	return out
}

// EdgeTuples implements GraphLike.
func (g *Graph[N]) EdgeTuples() []EdgeTuple[N] { return g.Edges() }

// Size returns the number of edges (alias: NumberOfEdges).
//
// Complexity: O(V + E).
func (g *Graph[N]) Size() int { return len(g.Edges()) }

// NumberOfEdges returns the number of edges.
//
// Complexity: O(V + E).
func (g *Graph[N]) NumberOfEdges() int { return g.Size() }

// NodesWithSelfloops returns every node with a self-loop, in node order.
//
// Complexity: O(V).
func (g *Graph[N]) NodesWithSelfloops() []N {
	var out []N
	for _, n := range g.Nodes() {
		if g.HasEdge(n, n) {
			out = append(out, n)
		}
	}

	return out
}

// SelfloopEdges returns every self-loop edge as (n, n, attr).
//
// Complexity: O(V).
func (g *Graph[N]) SelfloopEdges() []EdgeTuple[N] {
	var out []EdgeTuple[N]
	for _, n := range g.NodesWithSelfloops() {
		out = append(out, EdgeTuple[N]{U: n, V: n, Attr: g.GetEdgeData(n, n, nil)})
	}

	return out
}
