// File: toposort.go
// Role: topological sort over the small digraph induced by a relabel
// mapping — white/gray/black DFS with post-order reversal, over a plain
// adjacency map.
package relabel

const (
	white = 0
	gray  = 1
	black = 2
)

// topoSort returns a topological order of the nodes reachable through
// adj's keys and values (edges out[u] -> v), or ErrCycle if adj contains
// a cycle.
func topoSort[N comparable](nodes []N, adj map[N][]N) ([]N, error) {
	state := make(map[N]int, len(nodes))
	order := make([]N, 0, len(nodes))

	var visit func(n N) error
	visit = func(n N) error {
		switch state[n] {
		case gray:
			return ErrCycle
		case black:
			return nil
		}
		state[n] = gray
		for _, next := range adj[n] {
			if err := visit(next); err != nil {
				return err
			}
		}
		state[n] = black
		order = append(order, n)

		return nil
	}

	for _, n := range nodes {
		if state[n] == white {
			if err := visit(n); err != nil {
				return nil, err
			}
		}
	}

	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
