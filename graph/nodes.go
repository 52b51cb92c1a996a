// File: nodes.go
// Role: node lifecycle and queries for Graph.
package graph

// AddNode inserts n if missing (empty attribute record), or merges attr
// into n's existing record if already present. A nil attr is treated as
// empty.
//
// Complexity: O(1) expected.
func (g *Graph[N]) AddNode(n N, attr AttrRecord) {
	if existing, ok := g.nodeAttr.Get(n); ok {
		mergeInto(existing, attr)
		return
	}
	g.nodeAttr.Set(n, newAttr(nil, attr))
	g.adj.Set(n, newNeighborMap[N](g.keyOpts))
}

// AddNodesFrom adds every node in ns, each merged with attr.
//
// Complexity: O(len(ns)).
func (g *Graph[N]) AddNodesFrom(ns []N, attr AttrRecord) {
	for _, n := range ns {
		g.AddNode(n, attr)
	}
}

// HasNode reports whether n is present.
//
// Complexity: O(1) expected.
func (g *Graph[N]) HasNode(n N) bool { return g.nodeAttr.Has(n) }

// Nodes returns all nodes in insertion order.
//
// Complexity: O(V).
func (g *Graph[N]) Nodes() []N { return g.nodeAttr.Keys() }

// Order returns the number of nodes.
//
// Complexity: O(1).
func (g *Graph[N]) Order() int { return g.nodeAttr.Len() }

// NodeAttr returns n's attribute record and whether n is present.
//
// Complexity: O(1) expected.
func (g *Graph[N]) NodeAttr(n N) (AttrRecord, bool) { return g.nodeAttr.Get(n) }

// RemoveNode deletes n and every edge incident to it. Returns
// ErrNodeNotFound if n is absent.
//
// Complexity: O(deg(n)).
func (g *Graph[N]) RemoveNode(n N) error {
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
//
// Complexity: O(sum of deg(n) for n in ns).
func (g *Graph[N]) RemoveNodes(ns []N) {
	for _, n := range ns {
		_ = g.RemoveNode(n)
	}
}

// Clear resets the graph to empty, preserving graph-level attributes.
//
// Complexity: O(1).
func (g *Graph[N]) Clear() {
	g.nodeAttr = newNodeMap[N](g.keyOpts)
	g.adj = newAdjMap[N](g.keyOpts)
}
