package graph

import "errors"

// Lookup errors: a referenced node or edge does not exist.
var (
	// ErrNodeNotFound indicates an operation referenced a node absent
	// from the graph (RemoveNode, Neighbors, Predecessors, Degree...).
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrEdgeNotFound indicates an operation referenced an edge (or, for
	// multi variants, an edge key) absent from the graph.
	ErrEdgeNotFound = errors.New("graph: edge not found")
)

// Structural errors: malformed caller input.
var (
	// ErrBadAttr indicates an attribute argument was not a record
	// (e.g. a nil map was expected to already be validated by the caller
	// before reaching internal merge helpers).
	ErrBadAttr = errors.New("graph: attribute argument is not a valid record")

	// ErrBadEdgeTuple indicates malformed edge-building input. AddStar,
	// AddPath and AddCycle return it when given too few nodes to form
	// their topology; EdgeTuple itself cannot carry a wrong arity.
	ErrBadEdgeTuple = errors.New("graph: edge tuple has invalid arity")

	// ErrMissingWeight indicates a weighted-edge tuple omitted its weight.
	ErrMissingWeight = errors.New("graph: weighted edge tuple missing weight")

	// ErrUnknownOrdering indicates an unrecognized ordering name was
	// passed to a labeling or iteration helper that takes one.
	ErrUnknownOrdering = errors.New("graph: unknown ordering")
)
