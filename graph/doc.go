// Package graph provides four in-memory graph variants — Graph (simple
// undirected), DiGraph (simple directed), MultiGraph (undirected with
// parallel edges) and MultiDiGraph (directed with parallel edges) — over
// arbitrary hashable node identifiers.
//
// Every variant keeps a graph-level attribute record, a node-attribute
// record per node, and an adjacency structure whose mirrored entries
// (adj[u][v] / adj[v][u] for undirected graphs, succ[u][v] / pred[v][u]
// for directed ones) share the *same* underlying attribute map: editing
// the edge's attributes from either endpoint's view is visible from the
// other, since both entries hold one and the same map value. Multi
// variants replace the per-neighbor attribute record with a key-map from
// an EdgeKey to an attribute record, so parallel edges between the same
// pair of nodes are distinguished by key.
//
// Self-loops are permitted in every variant. Parallel edges are rejected
// by the simple variants and embraced by the multi variants.
//
// Under the hood:
//
//	kmap/     — the insertion-ordered, pluggable-hash associative
//	            container every node/adjacency/attribute map is built on.
//	graph/    — this package.
//	relabel/  — node renaming (in-place and copy), built only against
//	            this package's public mutation API.
//
// This package has no third-party dependencies; construction is
// configured through functional options (Option).
package graph
