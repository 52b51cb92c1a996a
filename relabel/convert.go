// File: convert.go
// Role: integer relabeling for every variant: builds an old-label ->
// integer assignment under one of four orderings and performs the
// copy-mode rewrite into a fresh [int]-labeled graph. Because the node
// type changes (N -> int), the rewrite is expressed directly against the
// target variant's public mutation API rather than through Relabel*'s
// same-type mapping.
package relabel

import (
	"fmt"
	"sort"

	"github.com/nx-graph/netx/graph"
)

// AttrOldLabels is the well-known graph attribute key holding the
// original old-label -> integer mapping, attached to the result when
// discardOld is false.
const AttrOldLabels = "old_labels"

// Ordering selects how the Convert*LabelsToIntegers functions assign
// integers to a graph's current nodes.
type Ordering string

const (
	// OrderingDefault assigns integers in the graph's node insertion
	// order.
	OrderingDefault Ordering = "default"
	// OrderingSorted assigns integers by sorting nodes on their %v
	// representation.
	OrderingSorted Ordering = "sorted"
	// OrderingIncreasingDegree assigns integers in non-decreasing degree
	// order, ties broken by insertion order.
	OrderingIncreasingDegree Ordering = "increasing degree"
	// OrderingDecreasingDegree assigns integers in non-increasing degree
	// order, ties broken by insertion order.
	OrderingDecreasingDegree Ordering = "decreasing degree"
)

// orderNodes returns nodes sorted per ordering. The sorts are stable, so
// equal-degree nodes keep their original relative order.
func orderNodes[N any](nodes []N, degree func(N) int, ordering Ordering) ([]N, error) {
	out := make([]N, len(nodes))
	copy(out, nodes)

	switch ordering {
	case OrderingDefault, "":
		return out, nil
	case OrderingSorted:
		sort.SliceStable(out, func(i, j int) bool {
			return fmt.Sprintf("%v", out[i]) < fmt.Sprintf("%v", out[j])
		})
		return out, nil
	case OrderingIncreasingDegree:
		sort.SliceStable(out, func(i, j int) bool { return degree(out[i]) < degree(out[j]) })
		return out, nil
	case OrderingDecreasingDegree:
		sort.SliceStable(out, func(i, j int) bool { return degree(out[i]) > degree(out[j]) })
		return out, nil
	default:
		return nil, graph.ErrUnknownOrdering
	}
}

// intMapping assigns first, first+1, ... to ordered.
func intMapping[N comparable](ordered []N, first int) map[N]int {
	mapping := make(map[N]int, len(ordered))
	for i, n := range ordered {
		mapping[n] = first + i
	}

	return mapping
}

// finishConvert applies the post-rewrite steps shared by every variant:
// copying the graph-level attributes, the "_with_int_labels" name
// suffix, and (unless discardOld) attaching the mapping under
// AttrOldLabels.
func finishConvert[N comparable](dst graph.AttrRecord, setName func(string), src graph.AttrRecord, oldName string, mapping map[N]int, discardOld bool) {
	for k, v := range src {
		dst[k] = v
	}
	setName(oldName + "_with_int_labels")
	if !discardOld {
		dst[AttrOldLabels] = mapping
	}
}

// ConvertGraphLabelsToIntegers builds an integer labeling of g's current
// nodes under ordering and rewrites g into a fresh Graph[int], copy
// mode: g is untouched, attribute records are deep-copied.
func ConvertGraphLabelsToIntegers[N comparable](g *graph.Graph[N], first int, ordering Ordering, discardOld bool) (*graph.Graph[int], error) {
	ordered, err := orderNodes(g.Nodes(), func(n N) int { d, _ := g.Degree(n); return d }, ordering)
	if err != nil {
		return nil, err
	}
	mapping := intMapping(ordered, first)

	h := graph.NewGraph[int]()
	for _, e := range g.Edges() {
		_ = h.AddEdge(mapping[e.U], mapping[e.V], cloneRecord(e.Attr))
	}
	for _, n := range g.Nodes() {
		a, _ := g.NodeAttr(n)
		h.AddNode(mapping[n], cloneRecord(a))
	}
	finishConvert(h.GraphAttr(), h.SetName, g.GraphAttr(), g.Name(), mapping, discardOld)

	return h, nil
}

// ConvertDiGraphLabelsToIntegers is the directed-variant equivalent of
// ConvertGraphLabelsToIntegers.
func ConvertDiGraphLabelsToIntegers[N comparable](g *graph.DiGraph[N], first int, ordering Ordering, discardOld bool) (*graph.DiGraph[int], error) {
	ordered, err := orderNodes(g.Nodes(), func(n N) int { d, _ := g.Degree(n); return d }, ordering)
	if err != nil {
		return nil, err
	}
	mapping := intMapping(ordered, first)

	h := graph.NewDiGraph[int]()
	for _, e := range g.Edges() {
		_ = h.AddEdge(mapping[e.U], mapping[e.V], cloneRecord(e.Attr))
	}
	for _, n := range g.Nodes() {
		a, _ := g.NodeAttr(n)
		h.AddNode(mapping[n], cloneRecord(a))
	}
	finishConvert(h.GraphAttr(), h.SetName, g.GraphAttr(), g.Name(), mapping, discardOld)

	return h, nil
}

// ConvertMultiGraphLabelsToIntegers is the multi-undirected-variant
// equivalent of ConvertGraphLabelsToIntegers; parallel edges keep their
// keys.
func ConvertMultiGraphLabelsToIntegers[N comparable](g *graph.MultiGraph[N], first int, ordering Ordering, discardOld bool) (*graph.MultiGraph[int], error) {
	ordered, err := orderNodes(g.Nodes(), func(n N) int { d, _ := g.Degree(n); return d }, ordering)
	if err != nil {
		return nil, err
	}
	mapping := intMapping(ordered, first)

	h := graph.NewMultiGraph[int]()
	for _, e := range g.EdgesKeyed() {
		_ = h.AddEdgeKeyed(mapping[e.U], mapping[e.V], e.Key, cloneRecord(e.Attr))
	}
	for _, n := range g.Nodes() {
		a, _ := g.NodeAttr(n)
		h.AddNode(mapping[n], cloneRecord(a))
	}
	finishConvert(h.GraphAttr(), h.SetName, g.GraphAttr(), g.Name(), mapping, discardOld)

	return h, nil
}

// ConvertMultiDiGraphLabelsToIntegers is the multi-directed-variant
// equivalent of ConvertGraphLabelsToIntegers; parallel arcs keep their
// keys.
func ConvertMultiDiGraphLabelsToIntegers[N comparable](g *graph.MultiDiGraph[N], first int, ordering Ordering, discardOld bool) (*graph.MultiDiGraph[int], error) {
	ordered, err := orderNodes(g.Nodes(), func(n N) int { d, _ := g.Degree(n); return d }, ordering)
	if err != nil {
		return nil, err
	}
	mapping := intMapping(ordered, first)

	h := graph.NewMultiDiGraph[int]()
	for _, e := range g.EdgesKeyed() {
		_ = h.AddEdgeKeyed(mapping[e.U], mapping[e.V], e.Key, cloneRecord(e.Attr))
	}
	for _, n := range g.Nodes() {
		a, _ := g.NodeAttr(n)
		h.AddNode(mapping[n], cloneRecord(a))
	}
	finishConvert(h.GraphAttr(), h.SetName, g.GraphAttr(), g.Name(), mapping, discardOld)

	return h, nil
}
