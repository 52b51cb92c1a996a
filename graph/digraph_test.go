package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nx-graph/netx/graph"
)

func TestDiGraph_SuccessorsAndPredecessors(t *testing.T) {
	r := require.New(t)
	g := graph.NewDiGraph[string]()
	r.NoError(g.AddEdge("a", "b", nil))
	r.NoError(g.AddEdge("c", "b", nil))

	succ, err := g.Successors("a")
	r.NoError(err)
	r.Equal([]string{"b"}, succ)

	pred, err := g.Predecessors("b")
	r.NoError(err)
	r.ElementsMatch([]string{"a", "c"}, pred)

	r.False(g.HasEdge("b", "a"), "DiGraph does not mirror direction")
}

func TestDiGraph_DegreeSplitsInAndOut(t *testing.T) {
	r := require.New(t)
	g := graph.NewDiGraph[string]()
	r.NoError(g.AddEdge("a", "b", nil))
	r.NoError(g.AddEdge("c", "b", nil))

	out, err := g.OutDegree("a")
	r.NoError(err)
	r.Equal(1, out)

	in, err := g.InDegree("b")
	r.NoError(err)
	r.Equal(2, in)

	total, err := g.Degree("b")
	r.NoError(err)
	r.Equal(2, total, "b has no outgoing arcs")
}

func TestDiGraph_SelfLoopCountsOnEachSide(t *testing.T) {
	r := require.New(t)
	g := graph.NewDiGraph[int]()
	r.NoError(g.AddEdge(1, 1, nil))

	out, _ := g.OutDegree(1)
	in, _ := g.InDegree(1)
	total, _ := g.Degree(1)
	r.Equal(1, out)
	r.Equal(1, in)
	r.Equal(2, total)
}

func TestDiGraph_RemoveNodeClearsBothSides(t *testing.T) {
	r := require.New(t)
	g := graph.NewDiGraph[string]()
	r.NoError(g.AddEdge("a", "b", nil))
	r.NoError(g.AddEdge("b", "c", nil))

	r.NoError(g.RemoveNode("b"))
	r.False(g.HasNode("b"))
	r.False(g.HasEdge("a", "b"))
	r.False(g.HasEdge("b", "c"))
}

func TestDiGraph_ReverseFlipsArcs(t *testing.T) {
	r := require.New(t)
	g := graph.NewDiGraph[string]()
	r.NoError(g.AddEdge("a", "b", graph.AttrRecord{"weight": 1.0}))

	rev := g.Reverse(true)
	r.True(rev.HasEdge("b", "a"))
	r.False(rev.HasEdge("a", "b"))

	rev.GetEdgeData("b", "a", nil)["weight"] = 7.0
	r.Equal(1.0, g.GetEdgeData("a", "b", nil)["weight"], "doCopy=true must not share records with the source")
}

func TestDiGraph_ReverseWithoutCopySwapsInPlace(t *testing.T) {
	r := require.New(t)
	g := graph.NewDiGraph[string]()
	r.NoError(g.AddEdge("a", "b", graph.AttrRecord{"weight": 1.0}))

	rev := g.Reverse(false)
	r.Same(g, rev, "doCopy=false reverses the receiver itself")
	r.True(g.HasEdge("b", "a"))
	r.False(g.HasEdge("a", "b"))
	r.Equal(1.0, g.GetEdgeData("b", "a", nil)["weight"])
}

func TestDiGraph_ReverseTwiceRestoresOriginal(t *testing.T) {
	r := require.New(t)
	g := graph.NewDiGraph[string]()
	r.NoError(g.AddEdge("a", "b", nil))
	r.NoError(g.AddEdge("b", "c", nil))

	rev := g.Reverse(true).Reverse(true)
	r.ElementsMatch(g.Nodes(), rev.Nodes())
	r.True(rev.HasEdge("a", "b"))
	r.True(rev.HasEdge("b", "c"))
	r.Equal(g.Size(), rev.Size())
}

func TestDiGraph_ToUndirectedReciprocalRequiresBothArcs(t *testing.T) {
	r := require.New(t)
	g := graph.NewDiGraph[string]()
	r.NoError(g.AddEdge("a", "b", nil))
	r.NoError(g.AddEdge("b", "c", nil))
	r.NoError(g.AddEdge("c", "b", nil))

	nonReciprocal := g.ToUndirected(false)
	r.Equal(2, nonReciprocal.Size())

	reciprocal := g.ToUndirected(true)
	r.Equal(1, reciprocal.Size())
	r.True(reciprocal.HasEdge("b", "c"))
}

func TestDiGraph_CloneAndSubgraph(t *testing.T) {
	r := require.New(t)
	g := graph.NewDiGraph[string]()
	r.NoError(g.AddEdge("a", "b", graph.AttrRecord{"weight": 1.0}))
	r.NoError(g.AddEdge("b", "c", nil))

	clone := g.Clone()
	clone.GetEdgeData("a", "b", nil)["weight"] = 9.0
	r.Equal(1.0, g.GetEdgeData("a", "b", nil)["weight"])

	sub := g.Subgraph([]string{"a", "b"})
	r.Equal(1, sub.Size())
	r.True(sub.HasEdge("a", "b"))
}

func TestDiGraph_WeightedDegreeSumsBothSides(t *testing.T) {
	r := require.New(t)
	g := graph.NewDiGraph[string]()
	r.NoError(g.AddEdge("a", "b", graph.AttrRecord{"weight": 2.0}))
	r.NoError(g.AddEdge("c", "a", graph.AttrRecord{"weight": 3.0}))

	wd, err := g.WeightedDegree("a", "")
	r.NoError(err)
	r.Equal(5.0, wd)
}
