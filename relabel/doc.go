// Package relabel renames the nodes of a graph, either by constructing a
// copy with the new labels or by rewriting the graph in place.
//
// In-place rewrite is only attempted when it is safe: either the old and
// new label sets never overlap, or the mapping's induced digraph (edges
// old->new, self-loops removed) admits a topological order. When neither
// holds, in-place rewrite fails with ErrCycle and the caller is expected
// to fall back to copy mode.
//
// Every function here takes a node type N that is comparable, narrower
// than the graph package's own N (any), because the mapping is a native
// Go map[N]N — node identifiers being relabeled must support == directly.
package relabel
