// File: helpers.go
// Role: small constructors for the nested kmap.Map layers every variant
// builds on, kept in one place so the key-policy options (keyOpts) are
// threaded consistently.
package graph

import "github.com/nx-graph/netx/kmap"

func newNodeMap[N any](keyOpts []kmap.Option[N]) *kmap.Map[N, AttrRecord] {
	return kmap.New[N, AttrRecord](keyOpts...)
}

func newAdjMap[N any](keyOpts []kmap.Option[N]) *kmap.Map[N, *kmap.Map[N, AttrRecord]] {
	return kmap.New[N, *kmap.Map[N, AttrRecord]](keyOpts...)
}

func newNeighborMap[N any](keyOpts []kmap.Option[N]) *kmap.Map[N, AttrRecord] {
	return kmap.New[N, AttrRecord](keyOpts...)
}

func newMultiAdjMap[N any](keyOpts []kmap.Option[N]) *kmap.Map[N, *kmap.Map[N, *kmap.Map[EdgeKey, AttrRecord]]] {
	return kmap.New[N, *kmap.Map[N, *kmap.Map[EdgeKey, AttrRecord]]](keyOpts...)
}

func newMultiNeighborMap[N any](keyOpts []kmap.Option[N]) *kmap.Map[N, *kmap.Map[EdgeKey, AttrRecord]] {
	return kmap.New[N, *kmap.Map[EdgeKey, AttrRecord]](keyOpts...)
}

func newKeyMap() *kmap.Map[EdgeKey, AttrRecord] {
	return kmap.New[EdgeKey, AttrRecord]()
}

// nextFreeKey returns the smallest non-negative integer not already a
// key in km.
func nextFreeKey(km *kmap.Map[EdgeKey, AttrRecord]) EdgeKey {
	for i := 0; ; i++ {
		if !km.Has(EdgeKey(i)) {
			return EdgeKey(i)
		}
	}
}
