package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nx-graph/netx/graph"
)

func TestMultiDiGraph_ParallelArcsGetDistinctKeys(t *testing.T) {
	r := require.New(t)
	g := graph.NewMultiDiGraph[string]()

	k1, err := g.AddEdge("a", "b", nil)
	r.NoError(err)
	k2, err := g.AddEdge("a", "b", nil)
	r.NoError(err)
	r.NotEqual(k1, k2)

	r.Equal(2, g.NumberOfEdgesBetween("a", "b"))
	r.Equal(0, g.NumberOfEdgesBetween("b", "a"), "parallel arcs are directional")
}

func TestMultiDiGraph_SuccPredShareKeyMap(t *testing.T) {
	r := require.New(t)
	g := graph.NewMultiDiGraph[string]()
	r.NoError(g.AddEdgeKeyed("a", "b", 0, graph.AttrRecord{"weight": 1.0}))

	// The same record must be reachable through the predecessor side.
	in, err := g.InEdgesKeyed("b")
	r.NoError(err)
	r.Len(in, 1)
	in[0].Attr["weight"] = 9.0
	r.Equal(9.0, g.GetEdgeData("a", "b", 0, nil)["weight"])
}

func TestMultiDiGraph_RemoveLastKeyDropsPairFromBothSides(t *testing.T) {
	r := require.New(t)
	g := graph.NewMultiDiGraph[string]()
	k, _ := g.AddEdge("a", "b", nil)

	r.NoError(g.RemoveEdgeKeyed("a", "b", k))
	succ, err := g.Successors("a")
	r.NoError(err)
	r.Empty(succ, "empty key-maps must not linger in succ")
	pred, err := g.Predecessors("b")
	r.NoError(err)
	r.Empty(pred, "empty key-maps must not linger in pred")
}

func TestMultiDiGraph_DegreeSplitsAndSumsParallelArcs(t *testing.T) {
	r := require.New(t)
	g := graph.NewMultiDiGraph[string]()
	_, _ = g.AddEdge("a", "b", nil)
	_, _ = g.AddEdge("a", "b", nil)
	_, _ = g.AddEdge("c", "a", nil)

	out, err := g.OutDegree("a")
	r.NoError(err)
	r.Equal(2, out)

	in, err := g.InDegree("a")
	r.NoError(err)
	r.Equal(1, in)

	total, err := g.Degree("a")
	r.NoError(err)
	r.Equal(3, total)
}

func TestMultiDiGraph_SelfLoopCountsOnceOnEachSide(t *testing.T) {
	r := require.New(t)
	g := graph.NewMultiDiGraph[int]()
	_, _ = g.AddEdge(1, 1, nil)

	in, _ := g.InDegree(1)
	out, _ := g.OutDegree(1)
	r.Equal(1, in)
	r.Equal(1, out)

	r.Equal([]int{1}, g.NodesWithSelfloops())
	r.Len(g.SelfloopEdges(), 1)
}

func TestMultiDiGraph_InAndOutEdgesKeyed(t *testing.T) {
	r := require.New(t)
	g := graph.NewMultiDiGraph[string]()
	_, _ = g.AddEdge("a", "b", nil)
	_, _ = g.AddEdge("a", "b", nil)
	_, _ = g.AddEdge("c", "b", nil)

	out, err := g.OutEdgesKeyed("a")
	r.NoError(err)
	r.Len(out, 2)

	in, err := g.InEdgesKeyed("b")
	r.NoError(err)
	r.Len(in, 3)
	for _, e := range in {
		r.Equal("b", e.V)
	}

	_, err = g.OutEdgesKeyed("ghost")
	r.ErrorIs(err, graph.ErrNodeNotFound)
}

func TestMultiDiGraph_RemoveNodeClearsBothSides(t *testing.T) {
	r := require.New(t)
	g := graph.NewMultiDiGraph[string]()
	_, _ = g.AddEdge("a", "b", nil)
	_, _ = g.AddEdge("b", "c", nil)

	r.NoError(g.RemoveNode("b"))
	r.False(g.HasNode("b"))
	r.False(g.HasEdge("a", "b"))
	r.False(g.HasEdge("b", "c"))
	r.Equal(0, g.Size())
}

func TestMultiDiGraph_ReversePreservesKeys(t *testing.T) {
	r := require.New(t)
	g := graph.NewMultiDiGraph[string]()
	r.NoError(g.AddEdgeKeyed("a", "b", "x", nil))
	r.NoError(g.AddEdgeKeyed("a", "b", "y", nil))

	rev := g.Reverse()
	r.True(rev.HasEdgeKeyed("b", "a", "x"))
	r.True(rev.HasEdgeKeyed("b", "a", "y"))
	r.False(rev.HasEdge("a", "b"))
}

func TestMultiDiGraph_ToUndirectedReciprocalMatchesKeys(t *testing.T) {
	r := require.New(t)
	g := graph.NewMultiDiGraph[string]()
	r.NoError(g.AddEdgeKeyed("a", "b", 0, nil))
	r.NoError(g.AddEdgeKeyed("b", "a", 0, nil))
	r.NoError(g.AddEdgeKeyed("b", "c", 0, nil)) // no reverse arc

	rec := g.ToUndirected(true)
	r.True(rec.HasEdgeKeyed("a", "b", 0))
	r.False(rec.HasEdge("b", "c"))

	all := g.ToUndirected(false)
	r.True(all.HasEdge("b", "c"))
}

func TestMultiDiGraph_CloneIsIndependent(t *testing.T) {
	r := require.New(t)
	g := graph.NewMultiDiGraph[string]()
	r.NoError(g.AddEdgeKeyed("a", "b", 0, graph.AttrRecord{"weight": 1.0}))

	clone := g.Clone()
	clone.GetEdgeData("a", "b", 0, nil)["weight"] = 9.0
	r.Equal(1.0, g.GetEdgeData("a", "b", 0, nil)["weight"])
}

func TestNewMultiDiGraphFromEdges_RepeatedPairsBecomeParallelArcs(t *testing.T) {
	r := require.New(t)
	g, err := graph.NewMultiDiGraphFromEdges([]graph.EdgeTuple[string]{
		{U: "a", V: "b"},
		{U: "a", V: "b"},
	})
	r.NoError(err)
	r.Equal(2, g.NumberOfEdgesBetween("a", "b"))
}

func TestNewMultiDiGraphFromGraph_PreservesKeysFromMultiSource(t *testing.T) {
	r := require.New(t)
	src := graph.NewMultiGraph[string]()
	r.NoError(src.AddEdgeKeyed("a", "b", "k", nil))

	g := graph.NewMultiDiGraphFromGraph[string](src)
	r.True(g.HasEdgeKeyed("a", "b", "k"))
	r.True(g.HasEdgeKeyed("b", "a", "k"), "undirected sources contribute both arcs")
}
