// File: relabel_multidigraph.go
// Role: RelabelMultiDiGraph — copy and in-place renaming for the
// multi-edge directed variant. The in-place rewrite enumerates both
// in-edges (rewriting the destination) and out-edges (rewriting the
// source), preserving each edge's key.
package relabel

import "github.com/nx-graph/netx/graph"

// RelabelMultiDiGraph renames nodes of g according to mapping, preserving
// every parallel arc's key.
func RelabelMultiDiGraph[N comparable](g *graph.MultiDiGraph[N], mapping map[N]N, keys []N, doCopy bool) (*graph.MultiDiGraph[N], error) {
	if doCopy {
		return relabelMultiDiGraphCopy(g, mapping), nil
	}

	order, err := rewriteOrder(mapping, keys)
	if err != nil {
		return nil, err
	}
	for _, old := range order {
		if err := rewriteNodeMultiDiGraph(g, old, mapping[old]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// RelabelMultiDiGraphFunc materializes f over g's current nodes, then
// calls RelabelMultiDiGraph with the resulting mapping.
func RelabelMultiDiGraphFunc[N comparable](g *graph.MultiDiGraph[N], f func(N) N, doCopy bool) (*graph.MultiDiGraph[N], error) {
	keys := g.Nodes()
	mapping := materialize(keys, f)

	return RelabelMultiDiGraph(g, mapping, keys, doCopy)
}

func relabelMultiDiGraphCopy[N comparable](g *graph.MultiDiGraph[N], mapping map[N]N) *graph.MultiDiGraph[N] {
	h := g.CloneEmpty()
	h.SetName("(" + g.Name() + ")")
	for _, e := range g.EdgesKeyed() {
		u, v := rewrite(mapping, e.U), rewrite(mapping, e.V)
		_ = h.AddEdgeKeyed(u, v, e.Key, cloneRecord(e.Attr))
	}
	for _, n := range g.Nodes() {
		a, _ := g.NodeAttr(n)
		h.AddNode(rewrite(mapping, n), cloneRecord(a))
	}

	return h
}

func rewriteNodeMultiDiGraph[N comparable](g *graph.MultiDiGraph[N], old, newLabel N) error {
	if !g.HasNode(old) {
		return graph.ErrNodeNotFound
	}
	oldAttr, _ := g.NodeAttr(old)
	outEdges, err := g.OutEdgesKeyed(old)
	if err != nil {
		return err
	}
	inEdges, err := g.InEdgesKeyed(old)
	if err != nil {
		return err
	}
	inEdges = withoutSelfLoops(inEdges, old)

	_ = g.RemoveNode(old)
	g.AddNode(newLabel, oldAttr)
	for _, e := range outEdges {
		dst := e.V
		if dst == old {
			dst = newLabel
		}
		_ = g.AddEdgeKeyed(newLabel, dst, e.Key, e.Attr)
	}
	for _, e := range inEdges {
		_ = g.AddEdgeKeyed(e.U, newLabel, e.Key, e.Attr)
	}

	return nil
}

// withoutSelfLoops drops entries already captured by the out-edge pass
// (where u == old), since a self-loop is enumerated by both
// OutEdgesKeyed and InEdgesKeyed.
func withoutSelfLoops[N comparable](edges []graph.KeyedEdgeTuple[N], old N) []graph.KeyedEdgeTuple[N] {
	out := make([]graph.KeyedEdgeTuple[N], 0, len(edges))
	for _, e := range edges {
		if e.U == old {
			continue
		}
		out = append(out, e)
	}

	return out
}
