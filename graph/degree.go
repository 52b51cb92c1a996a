// File: degree.go
// Role: degree queries for Graph, including the self-loop-counts-twice
// convention.
package graph

// Degree returns n's degree: the number of incident edges, with a
// self-loop on n counted twice. Returns ErrNodeNotFound if n is absent.
//
// Complexity: O(deg(n)).
func (g *Graph[N]) Degree(n N) (int, error) {
	nbrs, ok := g.adj.Get(n)
	if !ok {
		return 0, ErrNodeNotFound
	}
	d := nbrs.Len()
	if nbrs.Has(n) {
		d++ // the self-loop's single map entry counts as two incidences
	}

	return d, nil
}

// WeightedDegree returns the sum of weightName (default "weight") over
// n's incident edges, weight defaulting to 1 when absent or non-numeric;
// a self-loop's weight is counted twice. Returns ErrNodeNotFound if n is
// absent.
//
// Complexity: O(deg(n)).
func (g *Graph[N]) WeightedDegree(n N, weightName string) (float64, error) {
	if weightName == "" {
		weightName = "weight"
	}
	nbrs, ok := g.adj.Get(n)
	if !ok {
		return 0, ErrNodeNotFound
	}

	var sum float64
	for _, e := range nbrs.Entries() {
		w := attrWeight(e.Val, weightName)
		sum += w
		if g.nodeAttr.KeysEqual(n, e.Key) {
			sum += w
		}
	}

	return sum, nil
}

// attrWeight extracts a float64 weight from rec[name], defaulting to 1
// when the key is absent or not a numeric type.
func attrWeight(rec AttrRecord, name string) float64 {
	v, ok := rec[name]
	if !ok {
		return 1
	}
	switch w := v.(type) {
	case float64:
		return w
	case float32:
		return float64(w)
	case int:
		return float64(w)
	case int64:
		return float64(w)
	default:
		return 1
	}
}

// DegreeIter returns every node's degree as a slice of (node, degree)
// pairs, in node order.
//
// Complexity: O(V + E).
func (g *Graph[N]) DegreeIter() []NodeDegree[N] {
	out := make([]NodeDegree[N], 0, g.Order())
	for _, n := range g.Nodes() {
		d, _ := g.Degree(n)
		out = append(out, NodeDegree[N]{Node: n, Degree: d})
	}

	return out
}

// NodeDegree pairs a node with its degree, as returned by DegreeIter.
type NodeDegree[N any] struct {
	Node   N
	Degree int
}
