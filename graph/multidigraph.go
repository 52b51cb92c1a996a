// File: multidigraph.go
// Role: MultiDiGraph — the multi-edge directed variant. Twin succ/pred
// key-maps, one level deeper than DiGraph the same way MultiGraph is one
// level deeper than Graph.
package graph

import "github.com/nx-graph/netx/kmap"

// MultiDiGraph is a directed graph permitting parallel arcs between the
// same ordered pair of nodes, each distinguished by an EdgeKey. For
// every arc pair (u,v), succ[u][v] and pred[v][u] hold the very same
// key-map.
type MultiDiGraph[N any] struct {
	attr     AttrRecord
	nodeAttr *kmap.Map[N, AttrRecord]
	succ     *kmap.Map[N, *kmap.Map[N, *kmap.Map[EdgeKey, AttrRecord]]]
	pred     *kmap.Map[N, *kmap.Map[N, *kmap.Map[EdgeKey, AttrRecord]]]
	keyOpts  []kmap.Option[N]
}

// NewMultiDiGraph constructs an empty MultiDiGraph.
func NewMultiDiGraph[N any](opts ...Option[N]) *MultiDiGraph[N] {
	c := resolveConfig(opts)

	return &MultiDiGraph[N]{
		attr:     c.attr,
		nodeAttr: kmap.New[N, AttrRecord](c.keyOpts...),
		succ:     newMultiAdjMap[N](c.keyOpts),
		pred:     newMultiAdjMap[N](c.keyOpts),
		keyOpts:  c.keyOpts,
	}
}

// NewMultiDiGraphFromGraph copy-constructs a MultiDiGraph from any other
// variant. If src is a MultiSource its edge keys are preserved;
// otherwise each edge becomes a single auto-keyed parallel edge.
// Undirected sources contribute both (u,v) and (v,u) arcs per edge.
func NewMultiDiGraphFromGraph[N any](src GraphLike[N], opts ...Option[N]) *MultiDiGraph[N] {
	g := NewMultiDiGraph(opts...)
	mergeInto(g.attr, src.GraphAttr())
	for _, n := range src.Nodes() {
		a, _ := src.NodeAttr(n)
		g.AddNode(n, a)
	}
	if ms, ok := src.(MultiSource[N]); ok {
		for _, e := range ms.EdgeTuplesKeyed() {
			_ = g.AddEdgeKeyed(e.U, e.V, e.Key, e.Attr)
			if !src.IsDirected() {
				_ = g.AddEdgeKeyed(e.V, e.U, e.Key, cloneAttr(e.Attr))
			}
		}

		return g
	}
	for _, e := range src.EdgeTuples() {
		_, _ = g.AddEdge(e.U, e.V, e.Attr)
		if !src.IsDirected() {
			_, _ = g.AddEdge(e.V, e.U, cloneAttr(e.Attr))
		}
	}

	return g
}

// AddNode inserts n if missing, or merges attr into its existing record.
func (g *MultiDiGraph[N]) AddNode(n N, attr AttrRecord) {
	if existing, ok := g.nodeAttr.Get(n); ok {
		mergeInto(existing, attr)
		return
	}
	g.nodeAttr.Set(n, newAttr(nil, attr))
	g.succ.Set(n, newMultiNeighborMap[N](g.keyOpts))
	g.pred.Set(n, newMultiNeighborMap[N](g.keyOpts))
}

// AddNodesFrom adds every node in ns, each merged with attr.
func (g *MultiDiGraph[N]) AddNodesFrom(ns []N, attr AttrRecord) {
	for _, n := range ns {
		g.AddNode(n, attr)
	}
}

// HasNode reports whether n is present.
func (g *MultiDiGraph[N]) HasNode(n N) bool { return g.nodeAttr.Has(n) }

// Nodes returns all nodes in insertion order.
func (g *MultiDiGraph[N]) Nodes() []N { return g.nodeAttr.Keys() }

// Order returns the number of nodes.
func (g *MultiDiGraph[N]) Order() int { return g.nodeAttr.Len() }

// NodeAttr returns n's attribute record and whether n is present.
func (g *MultiDiGraph[N]) NodeAttr(n N) (AttrRecord, bool) { return g.nodeAttr.Get(n) }

// RemoveNode deletes n and every arc incident to it. Returns
// ErrNodeNotFound if n is absent.
func (g *MultiDiGraph[N]) RemoveNode(n N) error {
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
func (g *MultiDiGraph[N]) RemoveNodes(ns []N) {
	for _, n := range ns {
		_ = g.RemoveNode(n)
	}
}

// Clear resets the graph to empty, preserving graph-level attributes.
func (g *MultiDiGraph[N]) Clear() {
	g.nodeAttr = newNodeMap[N](g.keyOpts)
	g.succ = newMultiAdjMap[N](g.keyOpts)
	g.pred = newMultiAdjMap[N](g.keyOpts)
}

func (g *MultiDiGraph[N]) succBucket(u, v N) *kmap.Map[EdgeKey, AttrRecord] {
	uSucc, ok := g.succ.Get(u)
	if !ok {
		return nil
	}
	bucket, ok := uSucc.Get(v)
	if !ok {
		return nil
	}

	return bucket
}

// AddEdge adds a new parallel arc from u to v with an auto-assigned
// integer key, the smallest non-negative integer not already a key for
// this ordered pair. Returns the assigned key.
func (g *MultiDiGraph[N]) AddEdge(u, v N, attr AttrRecord) (EdgeKey, error) {
	g.AddNode(u, nil)
	g.AddNode(v, nil)

	key := EdgeKey(0)
	if bucket := g.succBucket(u, v); bucket != nil {
		key = nextFreeKey(bucket)
	}

	return key, g.AddEdgeKeyed(u, v, key, attr)
}

// AddEdgeKeyed adds (or merges attr into) the parallel arc u->v
// identified by key. succ[u][v] and pred[v][u] hold the very same
// key-map, created once and installed on both sides.
func (g *MultiDiGraph[N]) AddEdgeKeyed(u, v N, key EdgeKey, attr AttrRecord) error {
	g.AddNode(u, nil)
	g.AddNode(v, nil)

	uSucc, _ := g.succ.Get(u)
	bucket, ok := uSucc.Get(v)
	if !ok {
		bucket = newKeyMap()
		uSucc.Set(v, bucket)
		vPred, _ := g.pred.Get(v)
		vPred.Set(u, bucket)
	}
	if existing, ok := bucket.Get(key); ok {
		mergeInto(existing, attr)
		return nil
	}
	bucket.Set(key, newAttr(nil, attr))

	return nil
}

// RemoveEdgeKeyed deletes the parallel arc u->v identified by key. When
// the last parallel arc for the ordered pair goes, the now-empty (u,v)
// entry is removed from both succ and pred. Returns ErrEdgeNotFound if
// absent.
func (g *MultiDiGraph[N]) RemoveEdgeKeyed(u, v N, key EdgeKey) error {
	bucket := g.succBucket(u, v)
	if bucket == nil || !bucket.Has(key) {
		return ErrEdgeNotFound
	}
	bucket.Delete(key)
	if bucket.Len() == 0 {
		if uSucc, ok := g.succ.Get(u); ok {
			uSucc.Delete(v)
		}
		if vPred, ok := g.pred.Get(v); ok {
			vPred.Delete(u)
		}
	}

	return nil
}

// RemoveEdge deletes one arbitrary parallel arc from u to v (the first
// one encountered in insertion order). Returns ErrEdgeNotFound if none
// exists.
func (g *MultiDiGraph[N]) RemoveEdge(u, v N) error {
	bucket := g.succBucket(u, v)
	if bucket == nil || bucket.Len() == 0 {
		return ErrEdgeNotFound
	}
	key := bucket.Keys()[0]

	return g.RemoveEdgeKeyed(u, v, key)
}

// HasEdge reports whether at least one parallel arc exists from u to v.
func (g *MultiDiGraph[N]) HasEdge(u, v N) bool {
	bucket := g.succBucket(u, v)

	return bucket != nil && bucket.Len() > 0
}

// HasEdgeKeyed reports whether the specific parallel arc (u, v, key)
// exists.
func (g *MultiDiGraph[N]) HasEdgeKeyed(u, v N, key EdgeKey) bool {
	bucket := g.succBucket(u, v)

	return bucket != nil && bucket.Has(key)
}

// GetEdgeData returns the attribute record of the parallel arc (u, v,
// key), or def if absent.
func (g *MultiDiGraph[N]) GetEdgeData(u, v N, key EdgeKey, def AttrRecord) AttrRecord {
	bucket := g.succBucket(u, v)
	if bucket == nil {
		return def
	}
	if rec, ok := bucket.Get(key); ok {
		return rec
	}

	return def
}

// NumberOfEdgesBetween returns the number of parallel arcs from u to v.
func (g *MultiDiGraph[N]) NumberOfEdgesBetween(u, v N) int {
	bucket := g.succBucket(u, v)
	if bucket == nil {
		return 0
	}

	return bucket.Len()
}

// Successors returns n's distinct out-neighbors in insertion order
// (alias: Neighbors). Returns ErrNodeNotFound if n is absent.
func (g *MultiDiGraph[N]) Successors(n N) ([]N, error) {
	succ, ok := g.succ.Get(n)
	if !ok {
		return nil, ErrNodeNotFound
	}

	return succ.Keys(), nil
}

// Neighbors is an alias for Successors.
func (g *MultiDiGraph[N]) Neighbors(n N) ([]N, error) { return g.Successors(n) }

// Predecessors returns n's distinct in-neighbors in insertion order.
// Returns ErrNodeNotFound if n is absent.
func (g *MultiDiGraph[N]) Predecessors(n N) ([]N, error) {
	pred, ok := g.pred.Get(n)
	if !ok {
		return nil, ErrNodeNotFound
	}

	return pred.Keys(), nil
}

// OutDegree returns the total number of outgoing parallel arcs from n.
func (g *MultiDiGraph[N]) OutDegree(n N) (int, error) {
	succ, ok := g.succ.Get(n)
	if !ok {
		return 0, ErrNodeNotFound
	}
	d := 0
	for _, e := range succ.Entries() {
		d += e.Val.Len()
	}

	return d, nil
}

// InDegree returns the total number of incoming parallel arcs to n.
func (g *MultiDiGraph[N]) InDegree(n N) (int, error) {
	pred, ok := g.pred.Get(n)
	if !ok {
		return 0, ErrNodeNotFound
	}
	d := 0
	for _, e := range pred.Entries() {
		d += e.Val.Len()
	}

	return d, nil
}

// Degree returns n's total degree: InDegree(n) + OutDegree(n).
func (g *MultiDiGraph[N]) Degree(n N) (int, error) {
	in, err := g.InDegree(n)
	if err != nil {
		return 0, err
	}
	out, _ := g.OutDegree(n)

	return in + out, nil
}

// OutEdgesKeyed returns every outgoing parallel arc of n as (n, v, key,
// attr), in insertion order.
func (g *MultiDiGraph[N]) OutEdgesKeyed(n N) ([]KeyedEdgeTuple[N], error) {
	succ, ok := g.succ.Get(n)
	if !ok {
		return nil, ErrNodeNotFound
	}
	var out []KeyedEdgeTuple[N]
	for _, nb := range succ.Entries() {
		for _, e := range nb.Val.Entries() {
			out = append(out, KeyedEdgeTuple[N]{U: n, V: nb.Key, Key: e.Key, Attr: e.Val})
		}
	}

	return out, nil
}

// InEdgesKeyed returns every incoming parallel arc of n as (u, n, key,
// attr), in insertion order.
func (g *MultiDiGraph[N]) InEdgesKeyed(n N) ([]KeyedEdgeTuple[N], error) {
	pred, ok := g.pred.Get(n)
	if !ok {
		return nil, ErrNodeNotFound
	}
	var out []KeyedEdgeTuple[N]
	for _, nb := range pred.Entries() {
		for _, e := range nb.Val.Entries() {
			out = append(out, KeyedEdgeTuple[N]{U: nb.Key, V: n, Key: e.Key, Attr: e.Val})
		}
	}

	return out, nil
}

// EdgesKeyed returns every parallel arc exactly once as (u, v, key,
// attr), in node order of u and insertion order within each bucket.
func (g *MultiDiGraph[N]) EdgesKeyed() []KeyedEdgeTuple[N] {
	var out []KeyedEdgeTuple[N]
	for _, u := range g.Nodes() {
		es, _ := g.OutEdgesKeyed(u)
		out = append(out, es...)
	}

	return out
}

// EdgeTuplesKeyed implements MultiSource.
func (g *MultiDiGraph[N]) EdgeTuplesKeyed() []KeyedEdgeTuple[N] { return g.EdgesKeyed() }

// Edges returns every parallel arc exactly once as (u, v, attr), keys
// discarded.
func (g *MultiDiGraph[N]) Edges() []EdgeTuple[N] {
	var out []EdgeTuple[N]
	for _, e := range g.EdgesKeyed() {
		out = append(out, EdgeTuple[N]{U: e.U, V: e.V, Attr: e.Attr})
	}

	return out
}

// EdgeTuples implements GraphLike.
func (g *MultiDiGraph[N]) EdgeTuples() []EdgeTuple[N] { return g.Edges() }

// Size returns the total number of parallel arcs (alias:
// NumberOfEdges).
func (g *MultiDiGraph[N]) Size() int { return len(g.EdgesKeyed()) }

// NumberOfEdges returns the total number of parallel arcs.
func (g *MultiDiGraph[N]) NumberOfEdges() int { return g.Size() }

// Name returns the graph's "name" attribute, or "" if unset.
func (g *MultiDiGraph[N]) Name() string {
	if v, ok := g.attr[NameKey]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}

	return ""
}

// SetName sets the graph's "name" attribute.
func (g *MultiDiGraph[N]) SetName(name string) { g.attr[NameKey] = name }

// GraphAttr returns the live graph-level attribute record.
func (g *MultiDiGraph[N]) GraphAttr() AttrRecord { return g.attr }

// IsDirected reports true: MultiDiGraph is always directed.
func (g *MultiDiGraph[N]) IsDirected() bool { return true }

// IsMulti reports true: MultiDiGraph always allows parallel edges.
func (g *MultiDiGraph[N]) IsMulti() bool { return true }

// Clone returns a deep copy: new attribute records throughout, same
// node/arc set, keys, and key policy.
func (g *MultiDiGraph[N]) Clone() *MultiDiGraph[N] {
	out := NewMultiDiGraph[N](WithKeyOptions(g.keyOpts...))
	mergeInto(out.attr, g.attr)
	for _, n := range g.Nodes() {
		a, _ := g.NodeAttr(n)
		out.AddNode(n, cloneAttr(a))
	}
	for _, e := range g.EdgesKeyed() {
		_ = out.AddEdgeKeyed(e.U, e.V, e.Key, cloneAttr(e.Attr))
	}

	return out
}

// Reverse returns a MultiDiGraph with every arc's direction flipped,
// keys preserved.
func (g *MultiDiGraph[N]) Reverse() *MultiDiGraph[N] {
	out := NewMultiDiGraph[N](WithKeyOptions(g.keyOpts...))
	mergeInto(out.attr, g.attr)
	for _, n := range g.Nodes() {
		a, _ := g.NodeAttr(n)
		out.AddNode(n, cloneAttr(a))
	}
	for _, e := range g.EdgesKeyed() {
		_ = out.AddEdgeKeyed(e.V, e.U, e.Key, cloneAttr(e.Attr))
	}

	return out
}

// ToUndirected collapses each directed parallel arc into a parallel edge
// of the result MultiGraph, preserving keys. If reciprocal is true, only
// arcs whose reverse also exists become edges.
func (g *MultiDiGraph[N]) ToUndirected(reciprocal bool) *MultiGraph[N] {
	out := NewMultiGraph[N](WithKeyOptions(g.keyOpts...))
	mergeInto(out.attr, g.attr)
	for _, n := range g.Nodes() {
		a, _ := g.NodeAttr(n)
		out.AddNode(n, cloneAttr(a))
	}
	for _, e := range g.EdgesKeyed() {
		if reciprocal && !g.HasEdgeKeyed(e.V, e.U, e.Key) {
			continue
		}
		_ = out.AddEdgeKeyed(e.U, e.V, e.Key, cloneAttr(e.Attr))
	}

	return out
}
