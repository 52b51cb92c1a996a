// File: graph.go
// Role: Graph — the simple undirected variant. Construction, node/edge
// lifecycle, and the core queries.
package graph

import "github.com/nx-graph/netx/kmap"

// Graph is a simple (no parallel edges) undirected graph over nodes of
// type N. adj[u][v] and adj[v][u] always hold the same AttrRecord value
// for a given edge {u,v} — see the package doc for why that requires no
// extra indirection.
type Graph[N any] struct {
	attr     AttrRecord
	nodeAttr *kmap.Map[N, AttrRecord]
	adj      *kmap.Map[N, *kmap.Map[N, AttrRecord]]
	keyOpts  []kmap.Option[N]
}

// Option configures a Graph (or DiGraph/MultiGraph/MultiDiGraph) at
// construction time.
type Option[N any] func(*buildConfig[N])

type buildConfig[N any] struct {
	attr    AttrRecord
	keyOpts []kmap.Option[N]
}

// WithGraphAttr seeds the graph-level attribute record.
func WithGraphAttr[N any](attr AttrRecord) Option[N] {
	return func(c *buildConfig[N]) { c.attr = cloneAttr(attr) }
}

// WithName sets the graph's "name" attribute.
func WithName[N any](name string) Option[N] {
	return func(c *buildConfig[N]) {
		if c.attr == nil {
			c.attr = AttrRecord{}
		}
		c.attr[NameKey] = name
	}
}

// WithKeyOptions forwards kmap.Option values (e.g. kmap.WithIdentity[N]())
// to every internal node-keyed container, for node types that need a
// non-default hash/equality policy.
func WithKeyOptions[N any](opts ...kmap.Option[N]) Option[N] {
	return func(c *buildConfig[N]) { c.keyOpts = append(c.keyOpts, opts...) }
}

func resolveConfig[N any](opts []Option[N]) buildConfig[N] {
	var c buildConfig[N]
	for _, opt := range opts {
		opt(&c)
	}
	if c.attr == nil {
		c.attr = AttrRecord{}
	}

	return c
}

// NewGraph constructs an empty Graph.
//
// Complexity: O(1).
func NewGraph[N any](opts ...Option[N]) *Graph[N] {
	c := resolveConfig(opts)

	return &Graph[N]{
		attr:     c.attr,
		nodeAttr: kmap.New[N, AttrRecord](c.keyOpts...),
		adj:      kmap.New[N, *kmap.Map[N, AttrRecord]](c.keyOpts...),
		keyOpts:  c.keyOpts,
	}
}

// NewGraphFromEdges constructs a Graph equal to an empty construction
// followed by AddEdgesFrom(edges, nil).
//
// Complexity: O(E).
func NewGraphFromEdges[N any](edges []EdgeTuple[N], opts ...Option[N]) (*Graph[N], error) {
	g := NewGraph(opts...)
	if err := g.AddEdgesFrom(edges, nil); err != nil {
		return nil, err
	}

	return g, nil
}

// NewGraphFromGraph copy-constructs a Graph from any other variant's
// current nodes and edges (parallel edges collapse to one, direction is
// discarded). Graph-level attributes are copied from src.
//
// Complexity: O(V + E).
func NewGraphFromGraph[N any](src GraphLike[N], opts ...Option[N]) *Graph[N] {
	g := NewGraph(opts...)
	mergeInto(g.attr, src.GraphAttr())
	for _, n := range src.Nodes() {
		a, _ := src.NodeAttr(n)
		g.AddNode(n, a)
	}
	for _, e := range src.EdgeTuples() {
		_ = g.AddEdge(e.U, e.V, e.Attr)
	}

	return g
}

// Name returns the graph's "name" attribute, or "" if unset.
func (g *Graph[N]) Name() string {
	if v, ok := g.attr[NameKey]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}

	return ""
}

// SetName sets the graph's "name" attribute.
func (g *Graph[N]) SetName(name string) { g.attr[NameKey] = name }

// GraphAttr returns the live graph-level attribute record.
func (g *Graph[N]) GraphAttr() AttrRecord { return g.attr }

// IsDirected reports false: Graph is always undirected.
func (g *Graph[N]) IsDirected() bool { return false }

// IsMulti reports false: Graph never allows parallel edges.
func (g *Graph[N]) IsMulti() bool { return false }
