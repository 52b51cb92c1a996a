// File: relabel.go
// Role: RelabelGraph / RelabelDiGraph — copy and in-place renaming for
// the simple variants.
package relabel

import "github.com/nx-graph/netx/graph"

// RelabelGraph renames nodes of g according to mapping (old -> new).
// keys optionally fixes a deterministic rewrite order for the in-place
// path's disjoint case (entries absent from mapping are ignored); pass
// nil to rewrite in map iteration order. When doCopy is true, a new
// Graph is returned and g is untouched. When doCopy is false, g is
// rewritten in place and returned; ErrCycle is returned (g unmodified)
// if the mapping's induced digraph has a non-self-loop cycle, and
// graph.ErrNodeNotFound is returned if a key of mapping is absent from
// g.
func RelabelGraph[N comparable](g *graph.Graph[N], mapping map[N]N, keys []N, doCopy bool) (*graph.Graph[N], error) {
	if doCopy {
		return relabelGraphCopy(g, mapping), nil
	}

	order, err := rewriteOrder(mapping, keys)
	if err != nil {
		return nil, err
	}
	for _, old := range order {
		if err := rewriteNodeGraph(g, old, mapping[old]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// RelabelGraphFunc materializes f over g's current nodes, then calls
// RelabelGraph with the resulting mapping.
func RelabelGraphFunc[N comparable](g *graph.Graph[N], f func(N) N, doCopy bool) (*graph.Graph[N], error) {
	keys := g.Nodes()
	mapping := materialize(keys, f)

	return RelabelGraph(g, mapping, keys, doCopy)
}

func relabelGraphCopy[N comparable](g *graph.Graph[N], mapping map[N]N) *graph.Graph[N] {
	h := g.CloneEmpty()
	h.SetName("(" + g.Name() + ")")
	for _, e := range g.Edges() {
		u, v := rewrite(mapping, e.U), rewrite(mapping, e.V)
		_ = h.AddEdge(u, v, cloneRecord(e.Attr))
	}
	for _, n := range g.Nodes() {
		a, _ := g.NodeAttr(n)
		h.AddNode(rewrite(mapping, n), cloneRecord(a))
	}

	return h
}

func rewriteNodeGraph[N comparable](g *graph.Graph[N], old, newLabel N) error {
	if !g.HasNode(old) {
		return graph.ErrNodeNotFound
	}
	oldAttr, _ := g.NodeAttr(old)
	nbrs, _ := g.Neighbors(old)

	type incident struct {
		other N
		attr  graph.AttrRecord
		loop  bool
	}
	rec := make([]incident, 0, len(nbrs))
	for _, nb := range nbrs {
		rec = append(rec, incident{other: nb, attr: g.GetEdgeData(old, nb, nil), loop: nb == old})
	}

	_ = g.RemoveNode(old)
	g.AddNode(newLabel, oldAttr)
	for _, e := range rec {
		other := e.other
		if e.loop {
			other = newLabel
		}
		_ = g.AddEdge(newLabel, other, e.attr)
	}

	return nil
}

// rewrite returns mapping[n] if present, else n unchanged.
func rewrite[N comparable](mapping map[N]N, n N) N {
	if nw, ok := mapping[n]; ok {
		return nw
	}

	return n
}

// cloneRecord deep-copies a single-level attribute record; nil stays nil.
func cloneRecord(a graph.AttrRecord) graph.AttrRecord {
	if a == nil {
		return nil
	}
	out := make(graph.AttrRecord, len(a))
	for k, v := range a {
		out[k] = v
	}

	return out
}
