// File: digraph.go
// Role: DiGraph — the simple directed variant. Twin succ/pred adjacency,
// mirrored the same way Graph mirrors adj[u][v]/adj[v][u], but across
// two separate maps instead of one.
package graph

import "github.com/nx-graph/netx/kmap"

// DiGraph is a simple (no parallel edges) directed graph over nodes of
// type N. For edge u->v, succ[u][v] and pred[v][u] always hold the same
// AttrRecord value.
type DiGraph[N any] struct {
	attr     AttrRecord
	nodeAttr *kmap.Map[N, AttrRecord]
	succ     *kmap.Map[N, *kmap.Map[N, AttrRecord]]
	pred     *kmap.Map[N, *kmap.Map[N, AttrRecord]]
	keyOpts  []kmap.Option[N]
}

// NewDiGraph constructs an empty DiGraph.
//
// Complexity: O(1).
func NewDiGraph[N any](opts ...Option[N]) *DiGraph[N] {
	c := resolveConfig(opts)

	return &DiGraph[N]{
		attr:     c.attr,
		nodeAttr: kmap.New[N, AttrRecord](c.keyOpts...),
		succ:     kmap.New[N, *kmap.Map[N, AttrRecord]](c.keyOpts...),
		pred:     kmap.New[N, *kmap.Map[N, AttrRecord]](c.keyOpts...),
		keyOpts:  c.keyOpts,
	}
}

// NewDiGraphFromEdges constructs a DiGraph equal to an empty
// construction followed by AddEdgesFrom(edges, nil).
//
// Complexity: O(E).
func NewDiGraphFromEdges[N any](edges []EdgeTuple[N], opts ...Option[N]) (*DiGraph[N], error) {
	g := NewDiGraph(opts...)
	if err := g.AddEdgesFrom(edges, nil); err != nil {
		return nil, err
	}

	return g, nil
}

// NewDiGraphFromGraph copy-constructs a DiGraph from any other variant's
// current nodes and edges. Undirected sources contribute both (u,v) and
// (v,u) arcs for each edge; directed sources preserve direction.
// Parallel edges collapse to one.
//
// Complexity: O(V + E).
func NewDiGraphFromGraph[N any](src GraphLike[N], opts ...Option[N]) *DiGraph[N] {
	g := NewDiGraph(opts...)
	mergeInto(g.attr, src.GraphAttr())
	for _, n := range src.Nodes() {
		a, _ := src.NodeAttr(n)
		g.AddNode(n, a)
	}
	for _, e := range src.EdgeTuples() {
		_ = g.AddEdge(e.U, e.V, e.Attr)
		if !src.IsDirected() {
			_ = g.AddEdge(e.V, e.U, cloneAttr(e.Attr))
		}
	}

	return g
}

// AddNode inserts n if missing, or merges attr into its existing record.
//
// Complexity: O(1) expected.
func (g *DiGraph[N]) AddNode(n N, attr AttrRecord) {
	if existing, ok := g.nodeAttr.Get(n); ok {
		mergeInto(existing, attr)
		return
	}
	g.nodeAttr.Set(n, newAttr(nil, attr))
	g.succ.Set(n, newNeighborMap[N](g.keyOpts))
	g.pred.Set(n, newNeighborMap[N](g.keyOpts))
}

// AddNodesFrom adds every node in ns, each merged with attr.
func (g *DiGraph[N]) AddNodesFrom(ns []N, attr AttrRecord) {
	for _, n := range ns {
		g.AddNode(n, attr)
	}
}

// HasNode reports whether n is present.
func (g *DiGraph[N]) HasNode(n N) bool { return g.nodeAttr.Has(n) }

// Nodes returns all nodes in insertion order.
func (g *DiGraph[N]) Nodes() []N { return g.nodeAttr.Keys() }

// Order returns the number of nodes.
func (g *DiGraph[N]) Order() int { return g.nodeAttr.Len() }

// NodeAttr returns n's attribute record and whether n is present.
func (g *DiGraph[N]) NodeAttr(n N) (AttrRecord, bool) { return g.nodeAttr.Get(n) }

// RemoveNode deletes n and every arc incident to it (incoming or
// outgoing). Returns ErrNodeNotFound if n is absent.
//
// Complexity: O(deg(n)).
func (g *DiGraph[N]) RemoveNode(n N) error {
	succ, ok := g.succ.Get(n)
	if !ok {
		return ErrNodeNotFound
	}
	pred, _ := g.pred.Get(n)
	for _, v := range succ.Keys() {
		if p, ok := g.pred.Get(v); ok {
			p.Delete(n)
		}
	}
	for _, u := range pred.Keys() {
		if s, ok := g.succ.Get(u); ok {
			s.Delete(n)
		}
	}
	g.succ.Delete(n)
	g.pred.Delete(n)
	g.nodeAttr.Delete(n)

	return nil
}

// RemoveNodes deletes every node in ns that is present, silently
// ignoring those that are not.
func (g *DiGraph[N]) RemoveNodes(ns []N) {
	for _, n := range ns {
		_ = g.RemoveNode(n)
	}
}

// Clear resets the graph to empty, preserving graph-level attributes.
func (g *DiGraph[N]) Clear() {
	g.nodeAttr = newNodeMap[N](g.keyOpts)
	g.succ = newAdjMap[N](g.keyOpts)
	g.pred = newAdjMap[N](g.keyOpts)
}

// AddEdge adds arc u->v, creating or merging into its shared attribute
// record. A self-loop (u == v per the node map's equality policy) is a
// single entry present in both succ[u] and pred[u].
//
// Complexity: O(1) expected.
func (g *DiGraph[N]) AddEdge(u, v N, attr AttrRecord) error {
	g.AddNode(u, nil)
	g.AddNode(v, nil)

	uSucc, _ := g.succ.Get(u)
	if existing, ok := uSucc.Get(v); ok {
		mergeInto(existing, attr)
		return nil
	}

	rec := newAttr(nil, attr)
	uSucc.Set(v, rec)
	vPred, _ := g.pred.Get(v)
	vPred.Set(u, rec)

	return nil
}

// AddEdgesFrom adds each element of edges as an arc U->V.
func (g *DiGraph[N]) AddEdgesFrom(edges []EdgeTuple[N], attr AttrRecord) error {
	for _, e := range edges {
		if err := g.AddEdge(e.U, e.V, newAttr(attr, e.Attr)); err != nil {
			return err
		}
	}

	return nil
}

// AddWeightedEdgesFrom adds each (u, v, w) triple as an arc with
// weightName (default "weight") set to w.
func (g *DiGraph[N]) AddWeightedEdgesFrom(edges []WeightedEdgeTuple[N], weightName string, attr AttrRecord) error {
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

// RemoveEdge deletes arc u->v. Returns ErrEdgeNotFound if absent.
func (g *DiGraph[N]) RemoveEdge(u, v N) error {
	uSucc, ok := g.succ.Get(u)
	if !ok || !uSucc.Has(v) {
		return ErrEdgeNotFound
	}
	uSucc.Delete(v)
	if vPred, ok := g.pred.Get(v); ok {
		vPred.Delete(u)
	}

	return nil
}

// RemoveEdges deletes every arc in pairs that is present, silently
// ignoring those that are not.
func (g *DiGraph[N]) RemoveEdges(pairs []EdgeTuple2[N]) {
	for _, p := range pairs {
		_ = g.RemoveEdge(p.U, p.V)
	}
}

// HasEdge reports whether arc u->v exists.
func (g *DiGraph[N]) HasEdge(u, v N) bool {
	uSucc, ok := g.succ.Get(u)
	if !ok {
		return false
	}

	return uSucc.Has(v)
}

// GetEdgeData returns arc u->v's attribute record, or def if absent.
func (g *DiGraph[N]) GetEdgeData(u, v N, def AttrRecord) AttrRecord {
	uSucc, ok := g.succ.Get(u)
	if !ok {
		return def
	}
	if rec, ok := uSucc.Get(v); ok {
		return rec
	}

	return def
}

// Successors returns n's out-neighbors in insertion order (alias:
// Neighbors). Returns ErrNodeNotFound if n is absent.
func (g *DiGraph[N]) Successors(n N) ([]N, error) {
	succ, ok := g.succ.Get(n)
	if !ok {
		return nil, ErrNodeNotFound
	}

	return succ.Keys(), nil
}

// Neighbors is an alias for Successors, satisfying the same spelling
// Graph uses.
func (g *DiGraph[N]) Neighbors(n N) ([]N, error) { return g.Successors(n) }

// Predecessors returns n's in-neighbors in insertion order. Returns
// ErrNodeNotFound if n is absent.
func (g *DiGraph[N]) Predecessors(n N) ([]N, error) {
	pred, ok := g.pred.Get(n)
	if !ok {
		return nil, ErrNodeNotFound
	}

	return pred.Keys(), nil
}

// OutDegree returns the number of outgoing arcs from n, a self-loop
// counting once on the out side. Returns ErrNodeNotFound if n is absent.
func (g *DiGraph[N]) OutDegree(n N) (int, error) {
	succ, ok := g.succ.Get(n)
	if !ok {
		return 0, ErrNodeNotFound
	}

	return succ.Len(), nil
}

// InDegree returns the number of incoming arcs to n, a self-loop
// counting once on the in side. Returns ErrNodeNotFound if n is absent.
func (g *DiGraph[N]) InDegree(n N) (int, error) {
	pred, ok := g.pred.Get(n)
	if !ok {
		return 0, ErrNodeNotFound
	}

	return pred.Len(), nil
}

// Degree returns n's total degree: InDegree(n) + OutDegree(n) (a
// self-loop is thus counted twice, once on each side).
func (g *DiGraph[N]) Degree(n N) (int, error) {
	in, err := g.InDegree(n)
	if err != nil {
		return 0, err
	}
	out, _ := g.OutDegree(n)

	return in + out, nil
}

// OutDegreeIter returns every node's out-degree, in node order.
func (g *DiGraph[N]) OutDegreeIter() []NodeDegree[N] {
	out := make([]NodeDegree[N], 0, g.Order())
	for _, n := range g.Nodes() {
		d, _ := g.OutDegree(n)
		out = append(out, NodeDegree[N]{Node: n, Degree: d})
	}

	return out
}

// InDegreeIter returns every node's in-degree, in node order.
func (g *DiGraph[N]) InDegreeIter() []NodeDegree[N] {
	out := make([]NodeDegree[N], 0, g.Order())
	for _, n := range g.Nodes() {
		d, _ := g.InDegree(n)
		out = append(out, NodeDegree[N]{Node: n, Degree: d})
	}

	return out
}

// DegreeIter returns every node's total degree, in node order.
func (g *DiGraph[N]) DegreeIter() []NodeDegree[N] {
	out := make([]NodeDegree[N], 0, g.Order())
	for _, n := range g.Nodes() {
		d, _ := g.Degree(n)
		out = append(out, NodeDegree[N]{Node: n, Degree: d})
	}

	return out
}

// Edges returns every arc exactly once as (u, v, attr), in node order of
// u and then insertion order of v within u's successor set.
//
// Complexity: O(V + E).
func (g *DiGraph[N]) Edges() []EdgeTuple[N] {
	var out []EdgeTuple[N]
	for _, u := range g.Nodes() {
		succ, _ := g.succ.Get(u)
		for _, e := range succ.Entries() {
			out = append(out, EdgeTuple[N]{U: u, V: e.Key, Attr: e.Val})
		}
	}

	return out
}

// EdgeTuples implements GraphLike.
func (g *DiGraph[N]) EdgeTuples() []EdgeTuple[N] { return g.Edges() }

// Size returns the number of arcs (alias: NumberOfEdges).
func (g *DiGraph[N]) Size() int { return len(g.Edges()) }

// NumberOfEdges returns the number of arcs.
func (g *DiGraph[N]) NumberOfEdges() int { return g.Size() }

// Name returns the graph's "name" attribute, or "" if unset.
func (g *DiGraph[N]) Name() string {
	if v, ok := g.attr[NameKey]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}

	return ""
}

// SetName sets the graph's "name" attribute.
func (g *DiGraph[N]) SetName(name string) { g.attr[NameKey] = name }

// GraphAttr returns the live graph-level attribute record.
func (g *DiGraph[N]) GraphAttr() AttrRecord { return g.attr }

// IsDirected reports true: DiGraph is always directed.
func (g *DiGraph[N]) IsDirected() bool { return true }

// IsMulti reports false: DiGraph never allows parallel edges.
func (g *DiGraph[N]) IsMulti() bool { return false }

// Reverse flips every arc's direction. When doCopy is true it returns an
// independent deep copy with succ and pred swapped, leaving the receiver
// untouched. When doCopy is false the swap happens in place — O(1), no
// records are copied — and the receiver itself is returned.
//
// Complexity: O(V + E) with doCopy, O(1) without.
func (g *DiGraph[N]) Reverse(doCopy bool) *DiGraph[N] {
	if !doCopy {
		g.succ, g.pred = g.pred, g.succ
		return g
	}

	out := NewDiGraph[N](WithKeyOptions(g.keyOpts...))
	mergeInto(out.attr, g.attr)
	for _, n := range g.Nodes() {
		a, _ := g.NodeAttr(n)
		out.AddNode(n, cloneAttr(a))
	}
	for _, e := range g.Edges() {
		_ = out.AddEdge(e.V, e.U, cloneAttr(e.Attr))
	}

	return out
}

// ToUndirected returns a Graph collapsing each pair of arcs between u and
// v into a single edge. If reciprocal is true, only pairs with arcs in
// both directions become an edge; otherwise either direction suffices.
//
// Complexity: O(V + E).
func (g *DiGraph[N]) ToUndirected(reciprocal bool) *Graph[N] {
	out := NewGraph[N](WithKeyOptions(g.keyOpts...))
	mergeInto(out.attr, g.attr)
	for _, n := range g.Nodes() {
		a, _ := g.NodeAttr(n)
		out.AddNode(n, cloneAttr(a))
	}
	for _, e := range g.Edges() {
		if reciprocal && !g.HasEdge(e.V, e.U) {
			continue
		}
		_ = out.AddEdge(e.U, e.V, cloneAttr(e.Attr))
	}

	return out
}
