package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nx-graph/netx/graph"
)

func TestMultiGraph_ParallelEdgesGetDistinctKeys(t *testing.T) {
	r := require.New(t)
	g := graph.NewMultiGraph[string]()

	k1, err := g.AddEdge("a", "b", nil)
	r.NoError(err)
	k2, err := g.AddEdge("a", "b", nil)
	r.NoError(err)
	r.NotEqual(k1, k2)

	r.Equal(2, g.NumberOfEdgesBetween("a", "b"))
	nbrs, err := g.Neighbors("a")
	r.NoError(err)
	r.Equal([]string{"b"}, nbrs, "distinct neighbor set collapses parallel edges")
}

func TestMultiGraph_AddEdgeKeyedMergesExisting(t *testing.T) {
	r := require.New(t)
	g := graph.NewMultiGraph[string]()
	r.NoError(g.AddEdgeKeyed("a", "b", "k1", graph.AttrRecord{"weight": 1.0}))
	r.NoError(g.AddEdgeKeyed("a", "b", "k1", graph.AttrRecord{"color": "red"}))

	data := g.GetEdgeData("a", "b", "k1", nil)
	r.Equal(1.0, data["weight"])
	r.Equal("red", data["color"])
}

func TestMultiGraph_MirroredKeyedAttrSharesIdentity(t *testing.T) {
	r := require.New(t)
	g := graph.NewMultiGraph[string]()
	r.NoError(g.AddEdgeKeyed("a", "b", 0, graph.AttrRecord{"weight": 1.0}))

	g.GetEdgeData("a", "b", 0, nil)["weight"] = 9.0
	r.Equal(9.0, g.GetEdgeData("b", "a", 0, nil)["weight"])
}

func TestMultiGraph_SelfLoopDegreeCountsEachParallelEdgeTwice(t *testing.T) {
	r := require.New(t)
	g := graph.NewMultiGraph[int]()
	_, err := g.AddEdge(1, 1, nil)
	r.NoError(err)
	_, err = g.AddEdge(1, 1, nil)
	r.NoError(err)

	d, err := g.Degree(1)
	r.NoError(err)
	r.Equal(4, d)
}

func TestMultiGraph_RemoveEdgeKeyedAndRemoveEdge(t *testing.T) {
	r := require.New(t)
	g := graph.NewMultiGraph[string]()
	k1, _ := g.AddEdge("a", "b", nil)
	_, _ = g.AddEdge("a", "b", nil)

	r.NoError(g.RemoveEdgeKeyed("a", "b", k1))
	r.Equal(1, g.NumberOfEdgesBetween("a", "b"))

	r.NoError(g.RemoveEdge("a", "b"))
	r.Equal(0, g.NumberOfEdgesBetween("a", "b"))
	r.ErrorIs(g.RemoveEdge("a", "b"), graph.ErrEdgeNotFound)
}

func TestMultiGraph_EdgesKeyedVisitsEveryParallelEdgeOnce(t *testing.T) {
	r := require.New(t)
	g := graph.NewMultiGraph[string]()
	_, _ = g.AddEdge("a", "b", nil)
	_, _ = g.AddEdge("a", "b", nil)
	_, _ = g.AddEdge("b", "c", nil)

	r.Len(g.EdgesKeyed(), 3)
	r.Equal(3, g.Size())
}

func TestMultiGraph_IncidentEdgesKeyedIncludesSelfLoopOnce(t *testing.T) {
	r := require.New(t)
	g := graph.NewMultiGraph[int]()
	_, _ = g.AddEdge(1, 1, nil)
	_, _ = g.AddEdge(1, 2, nil)

	inc, err := g.IncidentEdgesKeyed(1)
	r.NoError(err)
	r.Len(inc, 2, "self-loop appears once per key in IncidentEdgesKeyed, not twice")
}

func TestMultiGraph_SubgraphPreservesKeys(t *testing.T) {
	r := require.New(t)
	g := graph.NewMultiGraph[string]()
	k1, _ := g.AddEdge("a", "b", nil)
	_, _ = g.AddEdge("b", "c", nil)

	sub := g.Subgraph([]string{"a", "b"})
	r.True(sub.HasEdgeKeyed("a", "b", k1))
	r.Equal(1, sub.Size())
}

func TestMultiGraph_CloneIsIndependent(t *testing.T) {
	r := require.New(t)
	g := graph.NewMultiGraph[string]()
	_, _ = g.AddEdge("a", "b", graph.AttrRecord{"weight": 1.0})

	clone := g.Clone()
	for _, e := range clone.EdgesKeyed() {
		e.Attr["weight"] = 9.0
	}
	for _, e := range g.EdgesKeyed() {
		r.Equal(1.0, e.Attr["weight"])
	}
}
