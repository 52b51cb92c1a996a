// File: relabel_digraph.go
// Role: RelabelDiGraph — copy and in-place renaming for the directed
// variant, rewriting both out- and in-edges of each relabeled node.
package relabel

import "github.com/nx-graph/netx/graph"

// RelabelDiGraph renames nodes of g according to mapping, analogous to
// RelabelGraph but over arcs: rewriting a node updates both its outgoing
// and incoming arcs.
func RelabelDiGraph[N comparable](g *graph.DiGraph[N], mapping map[N]N, keys []N, doCopy bool) (*graph.DiGraph[N], error) {
	if doCopy {
		return relabelDiGraphCopy(g, mapping), nil
	}

	order, err := rewriteOrder(mapping, keys)
	if err != nil {
		return nil, err
	}
	for _, old := range order {
		if err := rewriteNodeDiGraph(g, old, mapping[old]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// RelabelDiGraphFunc materializes f over g's current nodes, then calls
// RelabelDiGraph with the resulting mapping.
func RelabelDiGraphFunc[N comparable](g *graph.DiGraph[N], f func(N) N, doCopy bool) (*graph.DiGraph[N], error) {
	keys := g.Nodes()
	mapping := materialize(keys, f)

	return RelabelDiGraph(g, mapping, keys, doCopy)
}

func relabelDiGraphCopy[N comparable](g *graph.DiGraph[N], mapping map[N]N) *graph.DiGraph[N] {
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

func rewriteNodeDiGraph[N comparable](g *graph.DiGraph[N], old, newLabel N) error {
	if !g.HasNode(old) {
		return graph.ErrNodeNotFound
	}
	oldAttr, _ := g.NodeAttr(old)
	succ, _ := g.Successors(old)
	pred, _ := g.Predecessors(old)

	type incident struct {
		other N
		attr  graph.AttrRecord
		loop  bool
	}
	outRec := make([]incident, 0, len(succ))
	for _, v := range succ {
		outRec = append(outRec, incident{other: v, attr: g.GetEdgeData(old, v, nil), loop: v == old})
	}
	inRec := make([]incident, 0, len(pred))
	for _, u := range pred {
		if u == old {
			continue // the self-loop is already captured via outRec
		}
		inRec = append(inRec, incident{other: u, attr: g.GetEdgeData(u, old, nil)})
	}

	_ = g.RemoveNode(old)
	g.AddNode(newLabel, oldAttr)
	for _, e := range outRec {
		other := e.other
		if e.loop {
			other = newLabel
		}
		_ = g.AddEdge(newLabel, other, e.attr)
	}
	for _, e := range inRec {
		_ = g.AddEdge(e.other, newLabel, e.attr)
	}

	return nil
}
