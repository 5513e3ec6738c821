package hybridvec

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// DefaultSpillReserve is the spill capacity reserved by New.
//
// Vectors created without an explicit reserve pre-allocate this many spill
// slots, so that the first pushes beyond the inline capacity do not trigger
// a reallocation. It is a process-wide tunable, not an environment setting.
var DefaultSpillReserve = 1024

// Vector is a growable ordered sequence of elements with a small-buffer
// optimization.
//
// The first elements, up to a fixed inline capacity chosen at construction
// time, live in an inline region allocated exactly once. Elements beyond the
// inline capacity spill into a dynamically growing backing slice. Both
// regions form one logical index space; a single length counter spans them.
//
// Invariants, with N the inline capacity and len the element count:
//
//	for all i < min(len, N), inline slot i holds a live value
//	for all N <= i < len, spill[i-N] holds the logical element i
//	no logical index >= len is ever read
//
// Inline slots at or past the live prefix are dead storage and are never
// read; mutating operations clear vacated slots to the zero value.
//
// A Vector is a single-owner, single-threaded container. It must be created
// through New, NewWithReserve or FromSlice.
type Vector[T comparable] struct {
	inline []T // fixed region, length == inline capacity, never resized
	spill  []T // dynamic region for logical indices >= inline capacity
	count  int // total logical element count over both regions
}

// New creates an empty vector with the given inline capacity and the
// default spill reserve.
//
// The inline region is allocated here and never again; inlineCap must be
// positive.
func New[T comparable](inlineCap int) (*Vector[T], error) {
	return NewWithReserve[T](inlineCap, DefaultSpillReserve)
}

// NewWithReserve creates an empty vector with the given inline capacity and
// a custom spill reserve.
//
// A reserve of 0 defers all spill allocation until the inline region
// overflows.
func NewWithReserve[T comparable](inlineCap int, reserve int) (*Vector[T], error) {
	if inlineCap <= 0 {
		return nil, ErrInvalidCapacity
	}
	if reserve < 0 {
		return nil, ErrInvalidReserve
	}
	tracer().Debugf("new hybrid vector, inline capacity %d, spill reserve %d", inlineCap, reserve)
	return &Vector[T]{
		inline: make([]T, inlineCap),
		spill:  make([]T, 0, reserve),
	}, nil
}

// Len returns the total number of elements, spanning both regions.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.count
}

// IsEmpty reports whether the vector has no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.Len() == 0
}

// Capacity returns the fixed inline capacity and the currently reserved
// (not necessarily used) spill capacity. Purely informational.
func (v *Vector[T]) Capacity() (int, int) {
	if v == nil {
		return 0, 0
	}
	return len(v.inline), cap(v.spill)
}

// Get returns a copy of the element at logical index i.
//
// The boolean is false if i is out of bounds; this bounds check is the
// primary safety contract of the API and precedes every region access.
func (v *Vector[T]) Get(i int) (T, bool) {
	var none T
	if v == nil || i < 0 || i >= v.count {
		return none, false
	}
	if i < len(v.inline) {
		return v.inline[i], true
	}
	return v.spill[i-len(v.inline)], true
}

// Set overwrites the element at logical index i.
//
// Returns false, without mutating, if i is out of bounds.
func (v *Vector[T]) Set(i int, value T) bool {
	if v == nil || i < 0 || i >= v.count {
		return false
	}
	if i < len(v.inline) {
		v.inline[i] = value
		return true
	}
	v.spill[i-len(v.inline)] = value
	return true
}

// Summary holds aggregate layout counts for a vector.
type Summary struct {
	Len            int // total element count
	Inline         int // live slots in the inline region
	Spilled        int // elements in the spill region
	InlineCapacity int
	SpillCapacity  int
}

// Summary returns aggregate layout counts. Purely informational.
func (v *Vector[T]) Summary() Summary {
	if v == nil {
		return Summary{}
	}
	return Summary{
		Len:            v.count,
		Inline:         v.liveInline(),
		Spilled:        len(v.spill),
		InlineCapacity: len(v.inline),
		SpillCapacity:  cap(v.spill),
	}
}

// Reset drops all elements but keeps both storage regions for reuse.
func (v *Vector[T]) Reset() {
	if v == nil {
		return
	}
	var none T
	for i := 0; i < v.liveInline(); i++ {
		v.inline[i] = none
	}
	for i := range v.spill {
		v.spill[i] = none
	}
	v.spill = v.spill[:0]
	v.count = 0
}

// Clone returns an independent deep copy of the vector.
func (v *Vector[T]) Clone() *Vector[T] {
	if v == nil {
		return nil
	}
	cloned := &Vector[T]{
		inline: make([]T, len(v.inline)),
		spill:  make([]T, len(v.spill), cap(v.spill)),
		count:  v.count,
	}
	copy(cloned.inline, v.inline)
	copy(cloned.spill, v.spill)
	return cloned
}

// liveInline returns the number of live slots in the inline region.
func (v *Vector[T]) liveInline() int {
	if v.count < len(v.inline) {
		return v.count
	}
	return len(v.inline)
}
