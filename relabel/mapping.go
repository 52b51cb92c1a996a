// File: mapping.go
// Role: shared mapping-safety analysis used by every variant's in-place
// rewrite path.
package relabel

// normalizeKeys returns mapping's old labels in a deterministic caller-
// supplied order when keys is non-nil (entries absent from mapping are
// dropped), or in map iteration order when keys is nil. Rewrite safety
// never depends on this order — the disjoint case is order-free and the
// topological case derives its own — only determinism does.
func normalizeKeys[N comparable](mapping map[N]N, keys []N) []N {
	if keys == nil {
		out := make([]N, 0, len(mapping))
		for old := range mapping {
			out = append(out, old)
		}

		return out
	}
	out := make([]N, 0, len(keys))
	for _, old := range keys {
		if _, ok := mapping[old]; ok {
			out = append(out, old)
		}
	}

	return out
}

// rewriteOrder returns the order in which mapping's old labels must be
// rewritten for an in-place relabel to be safe, or ErrCycle if no such
// order exists.
//
// When old_labels and new_labels never overlap, any order works and the
// normalized key order is used. Otherwise the order is the reverse
// topological order of the digraph whose edges are the mapping pairs
// (self-loops excluded), restricted to the old labels.
func rewriteOrder[N comparable](mapping map[N]N, keys []N) ([]N, error) {
	keys = normalizeKeys(mapping, keys)
	newSet := make(map[N]bool, len(mapping))
	for _, nw := range mapping {
		newSet[nw] = true
	}

	disjoint := true
	for _, old := range keys {
		if newSet[old] {
			disjoint = false
			break
		}
	}
	if disjoint {
		return keys, nil
	}

	nodeSet := make(map[N]bool, 2*len(mapping))
	for _, old := range keys {
		nodeSet[old] = true
	}
	for nw := range newSet {
		nodeSet[nw] = true
	}
	nodes := make([]N, 0, len(nodeSet))
	for n := range nodeSet {
		nodes = append(nodes, n)
	}

	adj := make(map[N][]N, len(mapping))
	for _, old := range keys {
		nw := mapping[old]
		if old == nw {
			continue
		}
		adj[old] = append(adj[old], nw)
	}

	topo, err := topoSort(nodes, adj)
	if err != nil {
		return nil, err
	}

	oldSet := make(map[N]bool, len(keys))
	for _, old := range keys {
		oldSet[old] = true
	}
	out := make([]N, 0, len(keys))
	for i := len(topo) - 1; i >= 0; i-- {
		if oldSet[topo[i]] {
			out = append(out, topo[i])
		}
	}

	return out, nil
}

// materialize applies f to every node in nodes, building a partial
// mapping old->new.
func materialize[N comparable](nodes []N, f func(N) N) map[N]N {
	out := make(map[N]N, len(nodes))
	for _, n := range nodes {
		out[n] = f(n)
	}

	return out
}
