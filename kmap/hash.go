package kmap

import (
	"fmt"
	"hash/fnv"
	"math"
	"reflect"
)

// HashFunc computes a hash code for a key. Two keys that the map's
// EqualFunc considers equal MUST produce the same HashFunc result.
type HashFunc[K any] func(key K) uint64

// EqualFunc reports whether two keys are considered the same map key.
type EqualFunc[K any] func(a, b K) bool

// hasher is implemented by key types that want to supply their own hash
// instead of the structural fallback (e.g. to hash only a subset of
// fields, or to hash cheaply for large records).
type hasher interface {
	HashKey() uint64
}

// equaler is implemented by key types that carry their own notion of
// equality, consulted before falling back to reflect.DeepEqual.
type equaler[K any] interface {
	Equal(other K) bool
}

// defaultHash is the structural hashing fallback used by the "structural"
// equality policy: primitive kinds hash by value, everything else hashes
// its %#v representation. Two structurally-equal values always render the
// same %#v string, so the hash stays consistent with defaultEqual's
// reflect.DeepEqual fallback.
func defaultHash[K any](key K) uint64 {
	if h, ok := any(key).(hasher); ok {
		return h.HashKey()
	}

	switch v := any(key).(type) {
	case string:
		return hashBytes([]byte(v))
	case int:
		return hashUint(uint64(v))
	case int8:
		return hashUint(uint64(v))
	case int16:
		return hashUint(uint64(v))
	case int32:
		return hashUint(uint64(v))
	case int64:
		return hashUint(uint64(v))
	case uint:
		return hashUint(uint64(v))
	case uint8:
		return hashUint(uint64(v))
	case uint16:
		return hashUint(uint64(v))
	case uint32:
		return hashUint(uint64(v))
	case uint64:
		return hashUint(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case float32:
		if v == 0 {
			v = 0 // -0 equals +0, so both must hash alike
		}
		return hashUint(math.Float64bits(float64(v)))
	case float64:
		if v == 0 {
			v = 0 // -0 equals +0, so both must hash alike
		}
		return hashUint(math.Float64bits(v))
	default:
		return hashBytes([]byte(fmt.Sprintf("%#v", v)))
	}
}

// defaultEqual is the structural equality fallback: it prefers a key's
// own Equal method when present, else reflect.DeepEqual.
func defaultEqual[K any](a, b K) bool {
	if eq, ok := any(a).(equaler[K]); ok {
		return eq.Equal(b)
	}

	return reflect.DeepEqual(a, b)
}

// identityHash hashes pointer-kind keys by address and falls back to
// defaultHash otherwise, pairing with identityEqual for the "identity"
// equality policy.
func identityHash[K any](key K) uint64 {
	rv := reflect.ValueOf(key)
	if rv.Kind() == reflect.Ptr && !rv.IsNil() {
		return hashUint(uint64(rv.Pointer()))
	}

	return defaultHash(key)
}

// identityEqual compares pointer-kind keys by reference and falls back to
// reflect.DeepEqual for primitives and other value types.
func identityEqual[K any](a, b K) bool {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Kind() == reflect.Ptr && rb.Kind() == reflect.Ptr {
		return ra.Pointer() == rb.Pointer()
	}

	return reflect.DeepEqual(a, b)
}

func hashBytes(b []byte) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(b)
	return h.Sum64()
}

func hashUint(v uint64) uint64 {
	// Thomas Wang's 64-bit integer mix; cheap avalanche for small ints so
	// that sequential keys (0,1,2,...) don't cluster in the same bucket.
	v = (^v) + (v << 21)
	v = v ^ (v >> 24)
	v = v + (v << 3) + (v << 8)
	v = v ^ (v >> 14)
	v = v + (v << 2) + (v << 4)
	v = v ^ (v >> 28)
	v = v + (v << 31)
	return v
}
