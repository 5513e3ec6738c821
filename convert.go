package hybridvec

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// FromSlice creates a vector with the given inline capacity, pre-filled with
// values in order.
func FromSlice[T comparable](inlineCap int, values []T) (*Vector[T], error) {
	v, err := New[T](inlineCap)
	if err != nil {
		return nil, err
	}
	v.Extend(values)
	return v, nil
}

// Slice returns a copy of all elements as a plain Go slice, in logical
// order. The result does not alias either storage region.
func (v *Vector[T]) Slice() []T {
	if v.Len() == 0 {
		return nil
	}
	return v.AppendTo(make([]T, 0, v.Len()))
}

// AppendTo appends all elements in logical order to dst and returns the
// extended slice.
func (v *Vector[T]) AppendTo(dst []T) []T {
	if v == nil {
		return dst
	}
	dst = append(dst, v.inline[:v.liveInline()]...)
	dst = append(dst, v.spill...)
	return dst
}
