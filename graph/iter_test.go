package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nx-graph/netx/graph"
	"github.com/nx-graph/netx/kmap"
)

func TestNodesIter_WalksInsertionOrder(t *testing.T) {
	r := require.New(t)
	g := graph.NewGraph[string]()
	g.AddNode("c", nil)
	g.AddNode("a", graph.AttrRecord{"tag": 1})
	g.AddNode("b", nil)

	it := g.NodesIter()
	var got []string
	for {
		n, _, ok, err := it.Next()
		r.NoError(err)
		if !ok {
			break
		}
		got = append(got, n)
	}
	r.Equal([]string{"c", "a", "b"}, got)
}

func TestNodesIter_FailsAfterNodeAdded(t *testing.T) {
	r := require.New(t)
	g := graph.NewGraph[string]()
	g.AddNode("a", nil)

	it := g.NodesIter()
	_, _, ok, err := it.Next()
	r.True(ok)
	r.NoError(err)

	g.AddNode("b", nil)

	_, _, _, err = it.Next()
	r.ErrorIs(err, kmap.ErrMapChanged)
}

func TestEdgesIter_YieldsEachEdgeExactlyOnce(t *testing.T) {
	r := require.New(t)
	g := graph.NewGraph[string]()
	r.NoError(g.AddEdge("a", "b", nil))
	r.NoError(g.AddEdge("b", "c", nil))
	r.NoError(g.AddEdge("c", "c", nil)) // self-loop appears once

	it := g.EdgesIter()
	count := 0
	for {
		_, ok, err := it.Next()
		r.NoError(err)
		if !ok {
			break
		}
		count++
	}
	r.Equal(3, count)
	r.Equal(g.Size(), count)
}

func TestEdgesIter_FailsWhenCurrentNeighborMapMutated(t *testing.T) {
	r := require.New(t)
	g := graph.NewGraph[string]()
	r.NoError(g.AddEdge("a", "b", nil))
	r.NoError(g.AddEdge("a", "c", nil))

	it := g.EdgesIter()
	_, ok, err := it.Next()
	r.True(ok)
	r.NoError(err)

	r.NoError(g.AddEdge("a", "d", nil)) // mutates a's neighbor map mid-walk

	_, _, err = it.Next()
	r.ErrorIs(err, kmap.ErrMapChanged)
}

func TestDiGraphEdgesIter_WalksEveryArc(t *testing.T) {
	r := require.New(t)
	g := graph.NewDiGraph[string]()
	r.NoError(g.AddEdge("a", "b", nil))
	r.NoError(g.AddEdge("b", "a", nil))

	it := g.EdgesIter()
	count := 0
	for {
		_, ok, err := it.Next()
		r.NoError(err)
		if !ok {
			break
		}
		count++
	}
	r.Equal(2, count, "both directions are distinct arcs")
}

func TestNeighborsIter_LazyAndChecked(t *testing.T) {
	r := require.New(t)
	g := graph.NewGraph[string]()
	r.NoError(g.AddEdge("a", "b", nil))
	r.NoError(g.AddEdge("a", "c", nil))

	it, err := g.NeighborsIter("a")
	r.NoError(err)
	n, _, ok, err := it.Next()
	r.NoError(err)
	r.True(ok)
	r.Equal("b", n)

	_, err = g.NeighborsIter("ghost")
	r.ErrorIs(err, graph.ErrNodeNotFound)
}

func TestPredecessorsIter_WalksInNeighbors(t *testing.T) {
	r := require.New(t)
	g := graph.NewDiGraph[string]()
	r.NoError(g.AddEdge("a", "b", nil))
	r.NoError(g.AddEdge("c", "b", nil))

	it, err := g.PredecessorsIter("b")
	r.NoError(err)
	var got []string
	for {
		n, _, ok, err := it.Next()
		r.NoError(err)
		if !ok {
			break
		}
		got = append(got, n)
	}
	r.Equal([]string{"a", "c"}, got)
}

func TestMultiGraphEdgesKeyedIter_MatchesMaterialized(t *testing.T) {
	r := require.New(t)
	g := graph.NewMultiGraph[string]()
	_, _ = g.AddEdge("a", "b", nil)
	_, _ = g.AddEdge("a", "b", nil)
	_, _ = g.AddEdge("b", "c", nil)

	it := g.EdgesKeyedIter()
	var got []graph.KeyedEdgeTuple[string]
	for {
		e, ok, err := it.Next()
		r.NoError(err)
		if !ok {
			break
		}
		got = append(got, e)
	}
	r.Equal(g.EdgesKeyed(), got)
}

func TestMultiDiGraphOutEdgesKeyedIter_Lazy(t *testing.T) {
	r := require.New(t)
	g := graph.NewMultiDiGraph[string]()
	_, _ = g.AddEdge("a", "b", nil)
	_, _ = g.AddEdge("a", "c", nil)

	it, err := g.OutEdgesKeyedIter("a")
	r.NoError(err)
	count := 0
	for {
		e, ok, err := it.Next()
		r.NoError(err)
		if !ok {
			break
		}
		r.Equal("a", e.U)
		count++
	}
	r.Equal(2, count)

	in, err := g.InEdgesKeyedIter("b")
	r.NoError(err)
	e, ok, err := in.Next()
	r.NoError(err)
	r.True(ok)
	r.Equal("a", e.U)
	r.Equal("b", e.V)
}
