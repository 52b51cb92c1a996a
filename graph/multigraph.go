// File: multigraph.go
// Role: MultiGraph — the multi-edge undirected variant. Each node pair
// maps to a kmap.Map[EdgeKey, AttrRecord] of parallel edges instead of a
// single AttrRecord; mirroring works the same way Graph mirrors, one
// level deeper.
package graph

import "github.com/nx-graph/netx/kmap"

// MultiGraph is an undirected graph permitting parallel edges between
// the same pair of nodes, each distinguished by an EdgeKey. For every
// unordered pair {u,v}, adj[u][v] and adj[v][u] hold the very same
// key-map, so parallel-edge insertions and removals are visible from
// both endpoints by construction.
type MultiGraph[N any] struct {
	attr     AttrRecord
	nodeAttr *kmap.Map[N, AttrRecord]
	adj      *kmap.Map[N, *kmap.Map[N, *kmap.Map[EdgeKey, AttrRecord]]]
	keyOpts  []kmap.Option[N]
}

// NewMultiGraph constructs an empty MultiGraph.
func NewMultiGraph[N any](opts ...Option[N]) *MultiGraph[N] {
	c := resolveConfig(opts)

	return &MultiGraph[N]{
		attr:     c.attr,
		nodeAttr: kmap.New[N, AttrRecord](c.keyOpts...),
		adj:      newMultiAdjMap[N](c.keyOpts),
		keyOpts:  c.keyOpts,
	}
}

// NewMultiGraphFromGraph copy-constructs a MultiGraph from any other
// variant. If src is a MultiSource, parallel edges and their keys are
// preserved; otherwise each edge becomes a single auto-keyed parallel
// edge.
//
// Complexity: O(V + E).
func NewMultiGraphFromGraph[N any](src GraphLike[N], opts ...Option[N]) *MultiGraph[N] {
	g := NewMultiGraph(opts...)
	mergeInto(g.attr, src.GraphAttr())
	for _, n := range src.Nodes() {
		a, _ := src.NodeAttr(n)
		g.AddNode(n, a)
	}
	if ms, ok := src.(MultiSource[N]); ok {
		for _, e := range ms.EdgeTuplesKeyed() {
			_ = g.AddEdgeKeyed(e.U, e.V, e.Key, e.Attr)
		}

		return g
	}
	for _, e := range src.EdgeTuples() {
		_, _ = g.AddEdge(e.U, e.V, e.Attr)
	}

	return g
}

// AddNode inserts n if missing, or merges attr into its existing record.
func (g *MultiGraph[N]) AddNode(n N, attr AttrRecord) {
	if existing, ok := g.nodeAttr.Get(n); ok {
		mergeInto(existing, attr)
		return
	}
	g.nodeAttr.Set(n, newAttr(nil, attr))
	g.adj.Set(n, newMultiNeighborMap[N](g.keyOpts))
}

// AddNodesFrom adds every node in ns, each merged with attr.
func (g *MultiGraph[N]) AddNodesFrom(ns []N, attr AttrRecord) {
	for _, n := range ns {
		g.AddNode(n, attr)
	}
}

// HasNode reports whether n is present.
func (g *MultiGraph[N]) HasNode(n N) bool { return g.nodeAttr.Has(n) }

// Nodes returns all nodes in insertion order.
func (g *MultiGraph[N]) Nodes() []N { return g.nodeAttr.Keys() }

// Order returns the number of nodes.
func (g *MultiGraph[N]) Order() int { return g.nodeAttr.Len() }

// NodeAttr returns n's attribute record and whether n is present.
func (g *MultiGraph[N]) NodeAttr(n N) (AttrRecord, bool) { return g.nodeAttr.Get(n) }

// RemoveNode deletes n and every parallel edge incident to it. Returns
// ErrNodeNotFound if n is absent.
func (g *MultiGraph[N]) RemoveNode(n N) error {
	nbrs, ok := g.adj.Get(n)
	if !ok {
		return ErrNodeNotFound
	}
	for _, v := range nbrs.Keys() {
		if other, ok := g.adj.Get(v); ok {
			other.Delete(n)
		}
	}
	g.adj.Delete(n)
	g.nodeAttr.Delete(n)

	return nil
}

// RemoveNodes deletes every node in ns that is present, silently
// ignoring those that are not.
func (g *MultiGraph[N]) RemoveNodes(ns []N) {
	for _, n := range ns {
		_ = g.RemoveNode(n)
	}
}

// Clear resets the graph to empty, preserving graph-level attributes.
func (g *MultiGraph[N]) Clear() {
	g.nodeAttr = newNodeMap[N](g.keyOpts)
	g.adj = newMultiAdjMap[N](g.keyOpts)
}

func (g *MultiGraph[N]) edgeBucket(u, v N) *kmap.Map[EdgeKey, AttrRecord] {
	uNbrs, ok := g.adj.Get(u)
	if !ok {
		return nil
	}
	bucket, ok := uNbrs.Get(v)
	if !ok {
		return nil
	}

	return bucket
}

// AddEdge adds a new parallel edge between u and v with an
// auto-assigned integer key, the smallest non-negative integer not
// already a key between this pair. Returns the assigned key.
//
// Complexity: O(k) where k is the number of existing parallel edges
// between u and v (to find a free key).
func (g *MultiGraph[N]) AddEdge(u, v N, attr AttrRecord) (EdgeKey, error) {
	g.AddNode(u, nil)
	g.AddNode(v, nil)

	key := EdgeKey(0)
	if bucket := g.edgeBucket(u, v); bucket != nil {
		key = nextFreeKey(bucket)
	}

	return key, g.AddEdgeKeyed(u, v, key, attr)
}

// AddEdgeKeyed adds (or merges attr into) the parallel edge between u and
// v identified by key. adj[u][v] and adj[v][u] hold the same key-map, so
// the parallel-edge bucket is created once and installed on both sides.
//
// Complexity: O(1) expected.
func (g *MultiGraph[N]) AddEdgeKeyed(u, v N, key EdgeKey, attr AttrRecord) error {
	g.AddNode(u, nil)
	g.AddNode(v, nil)

	uNbrs, _ := g.adj.Get(u)
	bucket, ok := uNbrs.Get(v)
	if !ok {
		bucket = newKeyMap()
		uNbrs.Set(v, bucket)
		if !g.nodeAttr.KeysEqual(u, v) {
			vNbrs, _ := g.adj.Get(v)
			vNbrs.Set(u, bucket)
		}
	}
	if existing, ok := bucket.Get(key); ok {
		mergeInto(existing, attr)
		return nil
	}
	bucket.Set(key, newAttr(nil, attr))

	return nil
}

// RemoveEdgeKeyed deletes the parallel edge between u and v identified by
// key. When the last parallel edge between the pair goes, the now-empty
// (u,v) entry is removed from both sides of the adjacency. Returns
// ErrEdgeNotFound if absent.
func (g *MultiGraph[N]) RemoveEdgeKeyed(u, v N, key EdgeKey) error {
	bucket := g.edgeBucket(u, v)
	if bucket == nil || !bucket.Has(key) {
		return ErrEdgeNotFound
	}
	bucket.Delete(key)
	if bucket.Len() == 0 {
		if uNbrs, ok := g.adj.Get(u); ok {
			uNbrs.Delete(v)
		}
		if vNbrs, ok := g.adj.Get(v); ok {
			vNbrs.Delete(u)
		}
	}

	return nil
}

// RemoveEdge deletes one arbitrary parallel edge between u and v (the
// first one encountered in insertion order). Returns ErrEdgeNotFound if
// none exists.
func (g *MultiGraph[N]) RemoveEdge(u, v N) error {
	bucket := g.edgeBucket(u, v)
	if bucket == nil || bucket.Len() == 0 {
		return ErrEdgeNotFound
	}
	key := bucket.Keys()[0]

	return g.RemoveEdgeKeyed(u, v, key)
}

// HasEdge reports whether at least one parallel edge exists between u
// and v.
func (g *MultiGraph[N]) HasEdge(u, v N) bool {
	bucket := g.edgeBucket(u, v)

	return bucket != nil && bucket.Len() > 0
}

// HasEdgeKeyed reports whether the specific parallel edge (u, v, key)
// exists.
func (g *MultiGraph[N]) HasEdgeKeyed(u, v N, key EdgeKey) bool {
	bucket := g.edgeBucket(u, v)

	return bucket != nil && bucket.Has(key)
}

// GetEdgeData returns the attribute record of the parallel edge (u, v,
// key), or def if absent.
func (g *MultiGraph[N]) GetEdgeData(u, v N, key EdgeKey, def AttrRecord) AttrRecord {
	bucket := g.edgeBucket(u, v)
	if bucket == nil {
		return def
	}
	if rec, ok := bucket.Get(key); ok {
		return rec
	}

	return def
}

// NumberOfEdgesBetween returns the number of parallel edges between u and
// v (0 if either is absent or there are none).
func (g *MultiGraph[N]) NumberOfEdgesBetween(u, v N) int {
	bucket := g.edgeBucket(u, v)
	if bucket == nil {
		return 0
	}

	return bucket.Len()
}

// Neighbors returns the distinct neighbor set of n in insertion order
// (a neighbor reachable by several parallel edges appears once). Returns
// ErrNodeNotFound if n is absent.
func (g *MultiGraph[N]) Neighbors(n N) ([]N, error) {
	nbrs, ok := g.adj.Get(n)
	if !ok {
		return nil, ErrNodeNotFound
	}

	return nbrs.Keys(), nil
}

// Degree returns n's degree: the total number of incident parallel
// edges, a self-loop's edges each counted twice. Returns ErrNodeNotFound
// if n is absent.
func (g *MultiGraph[N]) Degree(n N) (int, error) {
	nbrs, ok := g.adj.Get(n)
	if !ok {
		return 0, ErrNodeNotFound
	}
	d := 0
	for _, e := range nbrs.Entries() {
		d += e.Val.Len()
		if g.nodeAttr.KeysEqual(n, e.Key) {
			d += e.Val.Len()
		}
	}

	return d, nil
}

// DegreeIter returns every node's degree, in node order.
func (g *MultiGraph[N]) DegreeIter() []NodeDegree[N] {
	out := make([]NodeDegree[N], 0, g.Order())
	for _, n := range g.Nodes() {
		d, _ := g.Degree(n)
		out = append(out, NodeDegree[N]{Node: n, Degree: d})
	}

	return out
}

// Edges returns every parallel edge exactly once as (u, v, attr),
// direction and order as EdgeTuples for Graph. Keys are discarded; use
// EdgesKeyed to retain them.
//
// Complexity: O(V + E).
func (g *MultiGraph[N]) Edges() []EdgeTuple[N] {
	var out []EdgeTuple[N]
	for _, e := range g.EdgesKeyed() {
		out = append(out, EdgeTuple[N]{U: e.U, V: e.V, Attr: e.Attr})
	}

	return out
}

// EdgeTuples implements GraphLike.
func (g *MultiGraph[N]) EdgeTuples() []EdgeTuple[N] { return g.Edges() }

// EdgesKeyed returns every parallel edge exactly once as (u, v, key,
// attr), visiting each node's neighbor buckets in insertion order and
// each bucket's keys in insertion order; a node pair already visited
// from the other direction is skipped.
//
// Complexity: O(V + E).
func (g *MultiGraph[N]) EdgesKeyed() []KeyedEdgeTuple[N] {
	seen := kmap.New[N, bool](g.keyOpts...)
	var out []KeyedEdgeTuple[N]
	for _, u := range g.Nodes() {
		nbrs, _ := g.adj.Get(u)
		for _, nb := range nbrs.Entries() {
			v := nb.Key
			if seen.Has(v) {
				continue
			}
			for _, e := range nb.Val.Entries() {
				out = append(out, KeyedEdgeTuple[N]{U: u, V: v, Key: e.Key, Attr: e.Val})
			}
		}
		seen.Set(u, true)
	}

	return out
}

// EdgeTuplesKeyed implements MultiSource.
func (g *MultiGraph[N]) EdgeTuplesKeyed() []KeyedEdgeTuple[N] { return g.EdgesKeyed() }

// Size returns the total number of parallel edges (alias:
// NumberOfEdges).
func (g *MultiGraph[N]) Size() int { return len(g.EdgesKeyed()) }

// NumberOfEdges returns the total number of parallel edges.
func (g *MultiGraph[N]) NumberOfEdges() int { return g.Size() }

// Name returns the graph's "name" attribute, or "" if unset.
func (g *MultiGraph[N]) Name() string {
	if v, ok := g.attr[NameKey]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}

	return ""
}

// SetName sets the graph's "name" attribute.
func (g *MultiGraph[N]) SetName(name string) { g.attr[NameKey] = name }

// GraphAttr returns the live graph-level attribute record.
func (g *MultiGraph[N]) GraphAttr() AttrRecord { return g.attr }

// IsDirected reports false: MultiGraph is always undirected.
func (g *MultiGraph[N]) IsDirected() bool { return false }

// IsMulti reports true: MultiGraph always allows parallel edges.
func (g *MultiGraph[N]) IsMulti() bool { return true }

// Clone returns a deep copy: new attribute records throughout, same
// node/edge set, keys, and key policy.
func (g *MultiGraph[N]) Clone() *MultiGraph[N] {
	out := NewMultiGraph[N](WithKeyOptions(g.keyOpts...))
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
