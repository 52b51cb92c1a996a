// File: iter.go
// Role: lazy iterator accessors paired with the materializing ones.
// Every iterator here is built on kmap.Iterator, so a structural mutation
// of the underlying maps between creation and exhaustion surfaces as
// kmap.ErrMapChanged from the next Next call.
package graph

import "github.com/nx-graph/netx/kmap"

// NodeIterator lazily walks a graph's nodes in insertion order.
type NodeIterator[N any] struct {
	it *kmap.Iterator[N, AttrRecord]
}

// Next returns the next node and its attribute record. The bool is false
// once the nodes are exhausted.
func (it *NodeIterator[N]) Next() (N, AttrRecord, bool, error) {
	e, ok, err := it.it.Next()

	return e.Key, e.Val, ok, err
}

// NodesIter returns a lazy iterator over the graph's nodes.
func (g *Graph[N]) NodesIter() *NodeIterator[N] { return &NodeIterator[N]{it: g.nodeAttr.Iter()} }

// NodesIter returns a lazy iterator over the graph's nodes.
func (g *DiGraph[N]) NodesIter() *NodeIterator[N] { return &NodeIterator[N]{it: g.nodeAttr.Iter()} }

// NodesIter returns a lazy iterator over the graph's nodes.
func (g *MultiGraph[N]) NodesIter() *NodeIterator[N] { return &NodeIterator[N]{it: g.nodeAttr.Iter()} }

// NodesIter returns a lazy iterator over the graph's nodes.
func (g *MultiDiGraph[N]) NodesIter() *NodeIterator[N] {
	return &NodeIterator[N]{it: g.nodeAttr.Iter()}
}

// NeighborIterator lazily walks one node's neighbors in insertion order,
// yielding each neighbor with the shared edge attribute record.
type NeighborIterator[N any] struct {
	it *kmap.Iterator[N, AttrRecord]
}

// Next returns the next neighbor and the edge's attribute record.
func (it *NeighborIterator[N]) Next() (N, AttrRecord, bool, error) {
	e, ok, err := it.it.Next()

	return e.Key, e.Val, ok, err
}

// NeighborsIter returns a lazy iterator over n's neighbors. Returns
// ErrNodeNotFound if n is absent.
func (g *Graph[N]) NeighborsIter(n N) (*NeighborIterator[N], error) {
	nbrs, ok := g.adj.Get(n)
	if !ok {
		return nil, ErrNodeNotFound
	}

	return &NeighborIterator[N]{it: nbrs.Iter()}, nil
}

// SuccessorsIter returns a lazy iterator over n's out-neighbors. Returns
// ErrNodeNotFound if n is absent.
func (g *DiGraph[N]) SuccessorsIter(n N) (*NeighborIterator[N], error) {
	succ, ok := g.succ.Get(n)
	if !ok {
		return nil, ErrNodeNotFound
	}

	return &NeighborIterator[N]{it: succ.Iter()}, nil
}

// NeighborsIter is an alias for SuccessorsIter.
func (g *DiGraph[N]) NeighborsIter(n N) (*NeighborIterator[N], error) {
	return g.SuccessorsIter(n)
}

// PredecessorsIter returns a lazy iterator over n's in-neighbors. Returns
// ErrNodeNotFound if n is absent.
func (g *DiGraph[N]) PredecessorsIter(n N) (*NeighborIterator[N], error) {
	pred, ok := g.pred.Get(n)
	if !ok {
		return nil, ErrNodeNotFound
	}

	return &NeighborIterator[N]{it: pred.Iter()}, nil
}

// EdgeIterator lazily walks an undirected graph's edges, yielding each
// edge exactly once via the seen-set rule: neighbors already fully
// visited as an outer node are skipped.
type EdgeIterator[N any] struct {
	outer *kmap.Iterator[N, *kmap.Map[N, AttrRecord]]
	inner *kmap.Iterator[N, AttrRecord]
	cur   N
	seen  *kmap.Map[N, bool]
}

// EdgesIter returns a lazy iterator over the graph's edges.
func (g *Graph[N]) EdgesIter() *EdgeIterator[N] {
	return &EdgeIterator[N]{outer: g.adj.Iter(), seen: kmap.New[N, bool](g.keyOpts...)}
}

// Next returns the next edge as (u, v, attr).
func (it *EdgeIterator[N]) Next() (EdgeTuple[N], bool, error) {
	for {
		if it.inner == nil {
			o, ok, err := it.outer.Next()
			if err != nil || !ok {
				return EdgeTuple[N]{}, false, err
			}
			it.cur = o.Key
			it.inner = o.Val.Iter()
		}
		e, ok, err := it.inner.Next()
		if err != nil {
			return EdgeTuple[N]{}, false, err
		}
		if !ok {
			it.seen.Set(it.cur, true)
			it.inner = nil
			continue
		}
		if it.seen.Has(e.Key) {
			continue
		}

		return EdgeTuple[N]{U: it.cur, V: e.Key, Attr: e.Val}, true, nil
	}
}

// ArcIterator lazily walks a directed graph's arcs, each yielded exactly
// once (no seen set needed: every arc lives in exactly one successor
// map).
type ArcIterator[N any] struct {
	outer *kmap.Iterator[N, *kmap.Map[N, AttrRecord]]
	inner *kmap.Iterator[N, AttrRecord]
	cur   N
}

// EdgesIter returns a lazy iterator over the graph's arcs.
func (g *DiGraph[N]) EdgesIter() *ArcIterator[N] {
	return &ArcIterator[N]{outer: g.succ.Iter()}
}

// Next returns the next arc as (u, v, attr).
func (it *ArcIterator[N]) Next() (EdgeTuple[N], bool, error) {
	for {
		if it.inner == nil {
			o, ok, err := it.outer.Next()
			if err != nil || !ok {
				return EdgeTuple[N]{}, false, err
			}
			it.cur = o.Key
			it.inner = o.Val.Iter()
		}
		e, ok, err := it.inner.Next()
		if err != nil {
			return EdgeTuple[N]{}, false, err
		}
		if !ok {
			it.inner = nil
			continue
		}

		return EdgeTuple[N]{U: it.cur, V: e.Key, Attr: e.Val}, true, nil
	}
}

// KeyedEdgeIterator lazily walks a multi variant's parallel edges as
// (u, v, key, attr) tuples. For the undirected variant a seen set skips
// pairs already visited from the other side; the directed variant leaves
// it nil.
type KeyedEdgeIterator[N any] struct {
	outer *kmap.Iterator[N, *kmap.Map[N, *kmap.Map[EdgeKey, AttrRecord]]]
	mid   *kmap.Iterator[N, *kmap.Map[EdgeKey, AttrRecord]]
	inner *kmap.Iterator[EdgeKey, AttrRecord]
	u, v  N
	seen  *kmap.Map[N, bool]
}

// EdgesKeyedIter returns a lazy iterator over the graph's parallel
// edges.
func (g *MultiGraph[N]) EdgesKeyedIter() *KeyedEdgeIterator[N] {
	return &KeyedEdgeIterator[N]{outer: g.adj.Iter(), seen: kmap.New[N, bool](g.keyOpts...)}
}

// EdgesKeyedIter returns a lazy iterator over the graph's parallel arcs.
func (g *MultiDiGraph[N]) EdgesKeyedIter() *KeyedEdgeIterator[N] {
	return &KeyedEdgeIterator[N]{outer: g.succ.Iter()}
}

// IncidentKeyedIterator lazily walks one node's outgoing (or incoming)
// parallel arcs in a MultiDiGraph.
type IncidentKeyedIterator[N any] struct {
	mid      *kmap.Iterator[N, *kmap.Map[EdgeKey, AttrRecord]]
	inner    *kmap.Iterator[EdgeKey, AttrRecord]
	n, other N
	incoming bool
}

// OutEdgesKeyedIter returns a lazy iterator over n's outgoing parallel
// arcs as (n, v, key, attr). Returns ErrNodeNotFound if n is absent.
func (g *MultiDiGraph[N]) OutEdgesKeyedIter(n N) (*IncidentKeyedIterator[N], error) {
	succ, ok := g.succ.Get(n)
	if !ok {
		return nil, ErrNodeNotFound
	}

	return &IncidentKeyedIterator[N]{mid: succ.Iter(), n: n}, nil
}

// InEdgesKeyedIter returns a lazy iterator over n's incoming parallel
// arcs as (u, n, key, attr). Returns ErrNodeNotFound if n is absent.
func (g *MultiDiGraph[N]) InEdgesKeyedIter(n N) (*IncidentKeyedIterator[N], error) {
	pred, ok := g.pred.Get(n)
	if !ok {
		return nil, ErrNodeNotFound
	}

	return &IncidentKeyedIterator[N]{mid: pred.Iter(), n: n, incoming: true}, nil
}

// Next returns the next incident arc, source and destination oriented by
// the iterator's direction.
func (it *IncidentKeyedIterator[N]) Next() (KeyedEdgeTuple[N], bool, error) {
	for {
		if it.inner == nil {
			m, ok, err := it.mid.Next()
			if err != nil || !ok {
				return KeyedEdgeTuple[N]{}, false, err
			}
			it.other = m.Key
			it.inner = m.Val.Iter()
		}
		e, ok, err := it.inner.Next()
		if err != nil {
			return KeyedEdgeTuple[N]{}, false, err
		}
		if !ok {
			it.inner = nil
			continue
		}
		if it.incoming {
			return KeyedEdgeTuple[N]{U: it.other, V: it.n, Key: e.Key, Attr: e.Val}, true, nil
		}

		return KeyedEdgeTuple[N]{U: it.n, V: it.other, Key: e.Key, Attr: e.Val}, true, nil
	}
}

// Next returns the next parallel edge as (u, v, key, attr).
func (it *KeyedEdgeIterator[N]) Next() (KeyedEdgeTuple[N], bool, error) {
	for {
		if it.mid == nil {
			o, ok, err := it.outer.Next()
			if err != nil || !ok {
				return KeyedEdgeTuple[N]{}, false, err
			}
			it.u = o.Key
			it.mid = o.Val.Iter()
		}
		if it.inner == nil {
			m, ok, err := it.mid.Next()
			if err != nil {
				return KeyedEdgeTuple[N]{}, false, err
			}
			if !ok {
				if it.seen != nil {
					it.seen.Set(it.u, true)
				}
				it.mid = nil
				continue
			}
			if it.seen != nil && it.seen.Has(m.Key) {
				continue
			}
			it.v = m.Key
			it.inner = m.Val.Iter()
		}
		e, ok, err := it.inner.Next()
		if err != nil {
			return KeyedEdgeTuple[N]{}, false, err
		}
		if !ok {
			it.inner = nil
			continue
		}

		return KeyedEdgeTuple[N]{U: it.u, V: it.v, Key: e.Key, Attr: e.Val}, true, nil
	}
}
