// File: types.go
// Role: Map type, entry storage, and construction options.
package kmap

// entry holds one key/value pair. Map keeps entries in two places: a
// hash bucket (for O(1) expected lookup) and the order slice (for
// insertion-order iteration); both reference the same *entry so an
// update to val is visible from either path.
type entry[K any, V any] struct {
	key K
	val V
}

// policy bundles the pluggable hash/equality pair consulted by a Map.
// It is a separate type from Map so Option values do not need to close
// over the map's value type V.
type policy[K any] struct {
	hash HashFunc[K]
	eq   EqualFunc[K]
}

// Option configures a Map's key policy before first use.
type Option[K any] func(*policy[K])

// WithHash overrides the map's hash function.
func WithHash[K any](fn HashFunc[K]) Option[K] {
	return func(p *policy[K]) { p.hash = fn }
}

// WithEqual overrides the map's equality function.
func WithEqual[K any](fn EqualFunc[K]) Option[K] {
	return func(p *policy[K]) { p.eq = fn }
}

// WithIdentity selects the identity policy: pointer-kind keys compare by
// reference, everything else compares by value.
func WithIdentity[K any]() Option[K] {
	return func(p *policy[K]) {
		p.hash = identityHash[K]
		p.eq = identityEqual[K]
	}
}

// WithStructural selects the structural policy (the default): keys
// compare via their own Equal method when present, else
// reflect.DeepEqual, with a matching structural hash.
func WithStructural[K any]() Option[K] {
	return func(p *policy[K]) {
		p.hash = defaultHash[K]
		p.eq = defaultEqual[K]
	}
}

// Map is a generic associative container keyed by an arbitrary hashable
// value, iterating in insertion order. See the package doc for the
// iterator-invalidation and equality-policy contracts.
type Map[K any, V any] struct {
	hash    HashFunc[K]
	eq      EqualFunc[K]
	buckets map[uint64][]*entry[K, V]
	order   []*entry[K, V]
	version uint64
}

// New constructs an empty Map with the structural policy by default;
// pass WithIdentity[K]() or WithHash/WithEqual to override it.
//
// Complexity: O(1).
func New[K any, V any](opts ...Option[K]) *Map[K, V] {
	p := policy[K]{hash: defaultHash[K], eq: defaultEqual[K]}
	for _, opt := range opts {
		opt(&p)
	}

	return &Map[K, V]{
		hash:    p.hash,
		eq:      p.eq,
		buckets: make(map[uint64][]*entry[K, V]),
	}
}

// bucketFind returns the entry matching key within its hash bucket, if any.
func (m *Map[K, V]) bucketFind(key K) *entry[K, V] {
	h := m.hash(key)
	for _, e := range m.buckets[h] {
		if m.eq(e.key, key) {
			return e
		}
	}

	return nil
}
