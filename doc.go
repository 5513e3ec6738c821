/*
Package hybridvec implements a growable sequence container with a
small-buffer optimization.

# Hybrid vectors

A hybrid vector keeps the first N elements of a sequence in a fixed inline
region, allocated once at construction time, and transparently spills any
elements beyond N into a dynamically growing backing store. For workloads
where element counts stay small most of the time, this avoids the repeated
reallocation churn of a plain growing slice, while still supporting
unbounded growth.

Both regions form a single logical index space: indices below the inline
capacity live in the inline region, all others in the spill region. A single
length counter spans both regions and is the only state deciding which
operations are legal.

	Operation     |   Vector        |  Slice
	--------------+-----------------+--------
	Push          |   O(1) am.      |   O(1) am.
	Get           |   O(1)          |   O(1)
	Pop           |   O(1)          |   O(1)
	Remove        |   O(n)          |   O(n)

The container is a single-owner, single-threaded data structure. There is no
internal synchronization; clients needing concurrent access have to wrap it.

Element types are constrained to comparable, Go's closest approximation of
"trivially copyable": numerics, strings, booleans and plain structs are fine,
while slices, maps and functions are rejected at compile time. The zero value
of the element type serves as its default.

_________________________________________________________________________

# BSD 3-Clause License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package hybridvec

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hybridvec'
func tracer() tracing.Trace {
	return tracing.Select("hybridvec")
}

// assert guards internal invariants. Broken assertions are implementation
// bugs, never a reaction to client input.
func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
