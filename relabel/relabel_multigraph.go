// File: relabel_multigraph.go
// Role: RelabelMultiGraph — copy and in-place renaming for the
// multi-edge undirected variant, preserving edge keys.
package relabel

import "github.com/nx-graph/netx/graph"

// RelabelMultiGraph renames nodes of g according to mapping, preserving
// every parallel edge's key.
func RelabelMultiGraph[N comparable](g *graph.MultiGraph[N], mapping map[N]N, keys []N, doCopy bool) (*graph.MultiGraph[N], error) {
	if doCopy {
		return relabelMultiGraphCopy(g, mapping), nil
	}

	order, err := rewriteOrder(mapping, keys)
	if err != nil {
		return nil, err
	}
	for _, old := range order {
		if err := rewriteNodeMultiGraph(g, old, mapping[old]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// RelabelMultiGraphFunc materializes f over g's current nodes, then calls
// RelabelMultiGraph with the resulting mapping.
func RelabelMultiGraphFunc[N comparable](g *graph.MultiGraph[N], f func(N) N, doCopy bool) (*graph.MultiGraph[N], error) {
	keys := g.Nodes()
	mapping := materialize(keys, f)

	return RelabelMultiGraph(g, mapping, keys, doCopy)
}

func relabelMultiGraphCopy[N comparable](g *graph.MultiGraph[N], mapping map[N]N) *graph.MultiGraph[N] {
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

func rewriteNodeMultiGraph[N comparable](g *graph.MultiGraph[N], old, newLabel N) error {
	if !g.HasNode(old) {
		return graph.ErrNodeNotFound
	}
	oldAttr, _ := g.NodeAttr(old)
	incident, err := g.IncidentEdgesKeyed(old)
	if err != nil {
		return err
	}

	_ = g.RemoveNode(old)
	g.AddNode(newLabel, oldAttr)
	for _, e := range incident {
		other := e.V
		if other == old {
			other = newLabel
		}
		_ = g.AddEdgeKeyed(newLabel, other, e.Key, e.Attr)
	}

	return nil
}
