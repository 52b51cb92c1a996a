package relabel

import "errors"

// ErrCycle indicates in-place relabel could not complete: the mapping's
// induced digraph (self-loops excluded) contains a cycle, so no order of
// rewrites avoids colliding with a label still in use. Callers should
// retry with copy mode.
var ErrCycle = errors.New("relabel: mapping induces a cycle, use copy mode")
