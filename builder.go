package hybridvec

// Builder incrementally stages values and finalizes them into a Vector.
//
// Builder collects values at both ends and materializes the vector only when
// Vector() is called. This keeps batch construction in one place: the inline
// region fills from the final logical order, not from staging order.
//
// The empty instance is not a valid builder, clients must use NewBuilder.
type Builder[T comparable] struct {
	// front keeps prepended values in reverse logical order.
	front []T
	// back keeps appended values in logical order.
	back []T

	inlineCap int
	reserve   int
	done      bool
	dirty     bool
	vec       *Vector[T]
}

// NewBuilder creates a new and empty vector builder. The resulting vector
// will have the given inline capacity and the default spill reserve.
func NewBuilder[T comparable](inlineCap int) (*Builder[T], error) {
	return NewBuilderWithReserve[T](inlineCap, DefaultSpillReserve)
}

// NewBuilderWithReserve creates a builder producing vectors with a custom
// spill reserve.
func NewBuilderWithReserve[T comparable](inlineCap int, reserve int) (*Builder[T], error) {
	if inlineCap <= 0 {
		return nil, ErrInvalidCapacity
	}
	if reserve < 0 {
		return nil, ErrInvalidReserve
	}
	return &Builder[T]{inlineCap: inlineCap, reserve: reserve}, nil
}

// Vector returns the vector built from all staged values.
//
// It is illegal to continue staging values after Vector has been called, but
// Vector may be called multiple times.
func (b *Builder[T]) Vector() *Vector[T] {
	if b == nil {
		return nil
	}
	if b.dirty || b.vec == nil {
		b.vec = b.buildVector()
		b.dirty = false
	}
	b.done = true
	if b.vec.IsEmpty() {
		tracer().Debugf("vector builder: vector is empty")
	}
	return b.vec
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder[T]) Reset() {
	b.front = nil
	b.back = nil
	b.done = false
	b.dirty = false
	b.vec = nil
}

// Append appends values to the staged build.
func (b *Builder[T]) Append(values ...T) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrBuilderCompleted
	}
	b.back = append(b.back, values...)
	if len(values) > 0 {
		b.dirty = true
	}
	return nil
}

// Prepend prepends values to the staged build, keeping their order.
func (b *Builder[T]) Prepend(values ...T) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrBuilderCompleted
	}
	// front is stored in reverse logical order.
	for i := len(values) - 1; i >= 0; i-- {
		b.front = append(b.front, values[i])
	}
	if len(values) > 0 {
		b.dirty = true
	}
	return nil
}

func (b *Builder[T]) buildVector() *Vector[T] {
	vec, err := NewWithReserve[T](b.inlineCap, b.reserve)
	assert(err == nil, "builder: NewWithReserve failed on validated arguments")
	for i := len(b.front) - 1; i >= 0; i-- {
		vec.Push(b.front[i])
	}
	vec.Extend(b.back)
	return vec
}
