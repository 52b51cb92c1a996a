package relabel_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nx-graph/netx/graph"
	"github.com/nx-graph/netx/relabel"
)

// pawGraph builds the four-node "paw": a triangle A-B-C with a pendant
// edge C-D.
func pawGraph(t *testing.T) *graph.Graph[string] {
	t.Helper()
	g := graph.NewGraph[string]()
	require.NoError(t, g.AddEdgesFrom([]graph.EdgeTuple[string]{
		{U: "A", V: "B"},
		{U: "A", V: "C"},
		{U: "B", V: "C"},
		{U: "C", V: "D"},
	}, nil))

	return g
}

func sortedNodes[N interface{ ~string | ~int }](ns []N) []N {
	out := make([]N, len(ns))
	copy(out, ns)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

func TestRelabelGraph_CopyRewritesNodesAndEdges(t *testing.T) {
	r := require.New(t)
	g := pawGraph(t)
	mapping := map[string]string{"A": "aardvark", "B": "bear", "C": "cat", "D": "dog"}

	h, err := relabel.RelabelGraph(g, mapping, nil, true)
	r.NoError(err)
	r.Equal([]string{"aardvark", "bear", "cat", "dog"}, sortedNodes(h.Nodes()))
	r.True(h.HasEdge("aardvark", "bear"))
	r.True(h.HasEdge("aardvark", "cat"))
	r.True(h.HasEdge("bear", "cat"))
	r.True(h.HasEdge("cat", "dog"))
	r.Equal(4, h.Size())

	r.Equal([]string{"A", "B", "C", "D"}, sortedNodes(g.Nodes()), "copy mode leaves the original untouched")
}

func TestRelabelGraph_CopyWrapsNameInParens(t *testing.T) {
	r := require.New(t)
	g := graph.NewGraph[string](graph.WithName[string]("paw"))
	r.NoError(g.AddEdge("A", "B", nil))

	h, err := relabel.RelabelGraph(g, map[string]string{"A": "X"}, nil, true)
	r.NoError(err)
	r.Equal("(paw)", h.Name())
}

func TestRelabelGraph_CopyDeepCopiesAttrRecords(t *testing.T) {
	r := require.New(t)
	g := graph.NewGraph[string]()
	r.NoError(g.AddEdge("A", "B", graph.AttrRecord{"weight": 1.0}))

	h, err := relabel.RelabelGraph(g, map[string]string{"A": "X"}, nil, true)
	r.NoError(err)
	h.GetEdgeData("X", "B", nil)["weight"] = 9.0
	r.Equal(1.0, g.GetEdgeData("A", "B", nil)["weight"])
}

func TestRelabelGraphFunc_AppliesFunctionToEveryNode(t *testing.T) {
	r := require.New(t)
	g := graph.NewGraph[any]()
	r.NoError(g.AddEdgesFrom([]graph.EdgeTuple[any]{
		{U: "A", V: "B"},
		{U: "A", V: "C"},
		{U: "B", V: "C"},
		{U: "C", V: "D"},
	}, nil))

	h, err := relabel.RelabelGraphFunc(g, func(n any) any { return int(n.(string)[0]) }, true)
	r.NoError(err)

	got := make([]int, 0, 4)
	for _, n := range h.Nodes() {
		got = append(got, n.(int))
	}
	sort.Ints(got)
	r.Equal([]int{65, 66, 67, 68}, got)
	r.True(h.HasEdge(65, 66))
}

func TestRelabelGraph_InPlaceDisjointPartialMapping(t *testing.T) {
	r := require.New(t)
	g := pawGraph(t)

	h, err := relabel.RelabelGraph(g, map[string]string{"A": "X"}, nil, false)
	r.NoError(err)
	r.Same(g, h, "in-place relabel returns the receiver")
	r.Equal([]string{"B", "C", "D", "X"}, sortedNodes(g.Nodes()))
	r.True(g.HasEdge("X", "B"))
	r.True(g.HasEdge("X", "C"))
	r.Equal(4, g.Size())
}

func TestRelabelGraph_InPlacePreservesAttrs(t *testing.T) {
	r := require.New(t)
	g := graph.NewGraph[string]()
	g.AddNode("A", graph.AttrRecord{"color": "red"})
	r.NoError(g.AddEdge("A", "B", graph.AttrRecord{"weight": 2.0}))

	_, err := relabel.RelabelGraph(g, map[string]string{"A": "X"}, nil, false)
	r.NoError(err)
	attr, ok := g.NodeAttr("X")
	r.True(ok)
	r.Equal("red", attr["color"])
	r.Equal(2.0, g.GetEdgeData("X", "B", nil)["weight"])
}

func TestRelabelGraph_InPlaceSelfLoopFollowsNewLabel(t *testing.T) {
	r := require.New(t)
	g := graph.NewGraph[string]()
	r.NoError(g.AddEdge("A", "A", nil))

	_, err := relabel.RelabelGraph(g, map[string]string{"A": "X"}, nil, false)
	r.NoError(err)
	r.True(g.HasEdge("X", "X"))
	d, _ := g.Degree("X")
	r.Equal(2, d)
}

func TestRelabelGraph_InPlaceOverlappingChainUsesReverseTopoOrder(t *testing.T) {
	r := require.New(t)
	g := graph.NewGraph[string]()
	r.NoError(g.AddEdge("a", "b", nil))

	// a->b->c overlaps: b must be renamed to c before a takes the name b.
	h, err := relabel.RelabelGraph(g, map[string]string{"a": "b", "b": "c"}, []string{"a", "b"}, false)
	r.NoError(err)
	r.Equal([]string{"b", "c"}, sortedNodes(h.Nodes()))
	r.True(h.HasEdge("b", "c"))
	r.Equal(1, h.Size())
}

func TestRelabelGraph_InPlaceSwapCycleFails(t *testing.T) {
	r := require.New(t)
	g := graph.NewGraph[string]()
	r.NoError(g.AddEdge("a", "b", nil))

	_, err := relabel.RelabelGraph(g, map[string]string{"a": "b", "b": "a"}, nil, false)
	r.ErrorIs(err, relabel.ErrCycle)
	r.True(g.HasEdge("a", "b"), "a failed in-place relabel leaves the graph unmodified")
}

func TestRelabelGraph_InPlaceIdentityMappingIsNotACycle(t *testing.T) {
	r := require.New(t)
	g := graph.NewGraph[string]()
	r.NoError(g.AddEdge("a", "b", nil))

	// a->a is a self-loop in the induced digraph and must be ignored by
	// cycle detection.
	_, err := relabel.RelabelGraph(g, map[string]string{"a": "a", "b": "c"}, []string{"a", "b"}, false)
	r.NoError(err)
	r.Equal([]string{"a", "c"}, sortedNodes(g.Nodes()))
	r.True(g.HasEdge("a", "c"))
}

func TestRelabelGraph_InPlaceMissingOldLabelFails(t *testing.T) {
	r := require.New(t)
	g := pawGraph(t)

	_, err := relabel.RelabelGraph(g, map[string]string{"Z": "aardvark"}, nil, false)
	r.ErrorIs(err, graph.ErrNodeNotFound)
}

func TestRelabelGraph_IdentityProducesEqualGraph(t *testing.T) {
	r := require.New(t)
	g := pawGraph(t)
	identity := map[string]string{"A": "A", "B": "B", "C": "C", "D": "D"}

	h, err := relabel.RelabelGraph(g, identity, nil, true)
	r.NoError(err)
	r.Equal(sortedNodes(g.Nodes()), sortedNodes(h.Nodes()))
	r.Equal(g.Size(), h.Size())
	for _, e := range g.Edges() {
		r.True(h.HasEdge(e.U, e.V))
	}
}

func TestRelabelGraph_BijectionRoundTrip(t *testing.T) {
	r := require.New(t)
	g := pawGraph(t)
	fwd := map[string]string{"A": "w", "B": "x", "C": "y", "D": "z"}
	inv := map[string]string{"w": "A", "x": "B", "y": "C", "z": "D"}

	mid, err := relabel.RelabelGraph(g, fwd, nil, true)
	r.NoError(err)
	back, err := relabel.RelabelGraph(mid, inv, nil, true)
	r.NoError(err)

	r.Equal(sortedNodes(g.Nodes()), sortedNodes(back.Nodes()))
	r.Equal(g.Size(), back.Size())
	for _, e := range g.Edges() {
		r.True(back.HasEdge(e.U, e.V))
	}
}

func TestRelabelDiGraph_InPlaceRewritesBothDirections(t *testing.T) {
	r := require.New(t)
	g := graph.NewDiGraph[string]()
	r.NoError(g.AddEdge("a", "b", nil))
	r.NoError(g.AddEdge("b", "c", nil))

	_, err := relabel.RelabelDiGraph(g, map[string]string{"b": "x"}, nil, false)
	r.NoError(err)
	r.True(g.HasEdge("a", "x"), "incoming arcs follow the rename")
	r.True(g.HasEdge("x", "c"), "outgoing arcs follow the rename")
	r.False(g.HasNode("b"))
}

func TestRelabelDiGraph_InPlaceSelfLoop(t *testing.T) {
	r := require.New(t)
	g := graph.NewDiGraph[string]()
	r.NoError(g.AddEdge("a", "a", nil))

	_, err := relabel.RelabelDiGraph(g, map[string]string{"a": "x"}, nil, false)
	r.NoError(err)
	r.True(g.HasEdge("x", "x"))
	r.Equal(1, g.Size())
}

func TestRelabelMultiGraph_InPlacePreservesParallelEdges(t *testing.T) {
	r := require.New(t)
	g := graph.NewMultiGraph[string]()
	_, err := g.AddEdge("a", "b", nil)
	r.NoError(err)
	_, err = g.AddEdge("a", "b", nil)
	r.NoError(err)

	h, err := relabel.RelabelMultiGraph(g, map[string]string{"a": "aardvark", "b": "bear"}, nil, false)
	r.NoError(err)
	r.Equal([]string{"aardvark", "bear"}, sortedNodes(h.Nodes()))
	r.Equal(2, h.NumberOfEdgesBetween("aardvark", "bear"))
	r.True(h.HasEdgeKeyed("aardvark", "bear", 0))
	r.True(h.HasEdgeKeyed("aardvark", "bear", 1), "edge keys survive the rename")
}

func TestRelabelMultiDiGraph_InPlaceRewritesInAndOutArcsWithKeys(t *testing.T) {
	r := require.New(t)
	g := graph.NewMultiDiGraph[string]()
	r.NoError(g.AddEdgeKeyed("a", "b", "k1", nil))
	r.NoError(g.AddEdgeKeyed("b", "a", "k2", nil))
	r.NoError(g.AddEdgeKeyed("b", "b", "k3", nil))

	_, err := relabel.RelabelMultiDiGraph(g, map[string]string{"b": "x"}, nil, false)
	r.NoError(err)
	r.True(g.HasEdgeKeyed("a", "x", "k1"))
	r.True(g.HasEdgeKeyed("x", "a", "k2"))
	r.True(g.HasEdgeKeyed("x", "x", "k3"), "self-loops keep their key and follow the new label")
	r.Equal(3, g.Size())
}

func TestRelabelMultiGraph_CopyMode(t *testing.T) {
	r := require.New(t)
	g := graph.NewMultiGraph[string](graph.WithName[string]("m"))
	r.NoError(g.AddEdgeKeyed("a", "b", 0, graph.AttrRecord{"weight": 1.0}))

	h, err := relabel.RelabelMultiGraph(g, map[string]string{"a": "x"}, nil, true)
	r.NoError(err)
	r.True(h.HasEdgeKeyed("x", "b", 0))
	r.Equal("(m)", h.Name())

	h.GetEdgeData("x", "b", 0, nil)["weight"] = 9.0
	r.Equal(1.0, g.GetEdgeData("a", "b", 0, nil)["weight"])
}
