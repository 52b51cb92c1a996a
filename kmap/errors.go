package kmap

import "errors"

// ErrMapChanged is returned by Iterator.Next when the Map was structurally
// mutated (a new key Set, or a key Delete) after the iterator was created.
// Updating the value of an already-present key does not count as a
// structural mutation and does not invalidate live iterators.
var ErrMapChanged = errors.New("kmap: map changed during iteration")
