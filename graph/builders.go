// File: builders.go
// Role: star/path/cycle topology builders for Graph and DiGraph. Nodes
// are supplied by the caller since N is an arbitrary hashable type, not
// an auto-generated ID.
package graph

import "fmt"

const (
	minStarNodes  = 1
	minPathNodes  = 2
	minCycleNodes = 3
)

// AddStar adds hub and every element of leaves, then an edge from hub to
// each leaf. Returns ErrBadEdgeTuple if leaves is empty.
//
// Complexity: O(len(leaves)).
func (g *Graph[N]) AddStar(hub N, leaves []N, attr AttrRecord) error {
	if len(leaves) < minStarNodes {
		return fmt.Errorf("AddStar: %d leaves < min=%d: %w", len(leaves), minStarNodes, ErrBadEdgeTuple)
	}
	g.AddNode(hub, nil)
	for _, leaf := range leaves {
		if err := g.AddEdge(hub, leaf, cloneAttr(attr)); err != nil {
			return fmt.Errorf("AddStar: AddEdge(%v, %v): %w", hub, leaf, err)
		}
	}

	return nil
}

// AddPath adds every node in nodes, then an edge between each consecutive
// pair. Returns ErrBadEdgeTuple if nodes has fewer than two elements.
//
// Complexity: O(len(nodes)).
func (g *Graph[N]) AddPath(nodes []N, attr AttrRecord) error {
	if len(nodes) < minPathNodes {
		return fmt.Errorf("AddPath: %d nodes < min=%d: %w", len(nodes), minPathNodes, ErrBadEdgeTuple)
	}
	for i := 1; i < len(nodes); i++ {
		if err := g.AddEdge(nodes[i-1], nodes[i], cloneAttr(attr)); err != nil {
			return fmt.Errorf("AddPath: AddEdge(%v, %v): %w", nodes[i-1], nodes[i], err)
		}
	}

	return nil
}

// AddCycle adds every node in nodes, then an edge between each
// consecutive pair and one closing the ring from the last node back to
// the first. Returns ErrBadEdgeTuple if nodes has fewer than three
// elements.
//
// Complexity: O(len(nodes)).
func (g *Graph[N]) AddCycle(nodes []N, attr AttrRecord) error {
	if len(nodes) < minCycleNodes {
		return fmt.Errorf("AddCycle: %d nodes < min=%d: %w", len(nodes), minCycleNodes, ErrBadEdgeTuple)
	}
	for i := 0; i < len(nodes); i++ {
		u := nodes[i]
		v := nodes[(i+1)%len(nodes)]
		if err := g.AddEdge(u, v, cloneAttr(attr)); err != nil {
			return fmt.Errorf("AddCycle: AddEdge(%v, %v): %w", u, v, err)
		}
	}

	return nil
}

// AddStar adds hub and every element of leaves, then an arc from hub to
// each leaf and one from each leaf back to hub, keeping the spokes
// symmetric.
func (g *DiGraph[N]) AddStar(hub N, leaves []N, attr AttrRecord) error {
	if len(leaves) < minStarNodes {
		return fmt.Errorf("AddStar: %d leaves < min=%d: %w", len(leaves), minStarNodes, ErrBadEdgeTuple)
	}
	g.AddNode(hub, nil)
	for _, leaf := range leaves {
		if err := g.AddEdge(hub, leaf, cloneAttr(attr)); err != nil {
			return fmt.Errorf("AddStar: AddEdge(%v, %v): %w", hub, leaf, err)
		}
		if err := g.AddEdge(leaf, hub, cloneAttr(attr)); err != nil {
			return fmt.Errorf("AddStar: AddEdge(%v, %v): %w", leaf, hub, err)
		}
	}

	return nil
}

// AddPath adds every node in nodes, then an arc from each node to the
// next. Returns ErrBadEdgeTuple if nodes has fewer than two elements.
func (g *DiGraph[N]) AddPath(nodes []N, attr AttrRecord) error {
	if len(nodes) < minPathNodes {
		return fmt.Errorf("AddPath: %d nodes < min=%d: %w", len(nodes), minPathNodes, ErrBadEdgeTuple)
	}
	for i := 1; i < len(nodes); i++ {
		if err := g.AddEdge(nodes[i-1], nodes[i], cloneAttr(attr)); err != nil {
			return fmt.Errorf("AddPath: AddEdge(%v, %v): %w", nodes[i-1], nodes[i], err)
		}
	}

	return nil
}

// AddCycle adds every node in nodes, then an arc i -> i+1 for each
// consecutive pair and one closing the ring from the last back to the
// first. Returns ErrBadEdgeTuple if nodes has fewer than three elements.
func (g *DiGraph[N]) AddCycle(nodes []N, attr AttrRecord) error {
	if len(nodes) < minCycleNodes {
		return fmt.Errorf("AddCycle: %d nodes < min=%d: %w", len(nodes), minCycleNodes, ErrBadEdgeTuple)
	}
	for i := 0; i < len(nodes); i++ {
		u := nodes[i]
		v := nodes[(i+1)%len(nodes)]
		if err := g.AddEdge(u, v, cloneAttr(attr)); err != nil {
			return fmt.Errorf("AddCycle: AddEdge(%v, %v): %w", u, v, err)
		}
	}

	return nil
}
