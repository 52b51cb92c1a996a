// Package kmap provides Map, a generic associative container keyed by
// arbitrary hashable values with insertion-order iteration.
//
// Unlike a native Go map, Map does not require its key type to satisfy
// the `comparable` constraint: equality and hashing are supplied by a
// pluggable policy (HashFunc/EqualFunc), so keys may be structural
// records, slices, or anything a caller can meaningfully compare. Two
// keys that compare equal under the map's policy MUST hash identically;
// callers that violate this contract will see lookups silently miss.
//
// Iteration order is insertion order, not hash-bucket order: Keys(),
// Values(), Entries() and Iter() all walk entries in the order they were
// first Set. Re-setting an existing key updates its value in place
// without moving it.
//
// Iterators are lazy and capture the map's version at creation. Any
// structural mutation (Set of a new key, Delete) bumps the version; the
// next Next() call on a stale iterator returns ErrMapChanged.
//
// This package has no third-party dependencies.
package kmap
