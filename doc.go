// Package netx is an in-memory graph data-structure library modeled
// after a mature network-analysis toolkit: arbitrary hashable node
// identifiers, arbitrary attribute maps on nodes/edges/graph, four graph
// variants, and a node-relabeling subsystem.
//
// Under the hood, everything is organized under three subpackages:
//
//	kmap/    — Map, a hash map keyed by an arbitrary type with pluggable
//	           hash/equality, insertion-order iteration, and iterator
//	           invalidation on structural mutation.
//	graph/   — Graph (simple undirected), DiGraph (simple directed),
//	           MultiGraph and MultiDiGraph (their parallel-edge variants),
//	           all built on kmap so node identifiers need not be
//	           comparable.
//	relabel/ — renaming a graph's nodes, in place (with cycle detection)
//	           or by copy, and converting node labels to integers under
//	           several orderings.
//
// The library is single-threaded and synchronous by design: no operation
// blocks or yields, and a graph is owned by a single logical caller.
// External synchronization is required for concurrent access. Graph
// drawing, serialization, algorithms beyond topological sort, and
// numerical linear-algebra views are out of scope; they are expected to
// consume this package's public mutation and query API.
package netx
