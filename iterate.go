package hybridvec

import "iter"

// Values returns an iterator over all elements in logical order.
//
// The traversal is stateless with respect to the vector: it holds its own
// position and may be restarted any number of times. Mutating the vector
// while ranging is not supported.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.Len(); i++ {
			value, ok := v.Get(i)
			assert(ok, "hybridvec iteration: index below Len must be live")
			if !yield(value) {
				return
			}
		}
	}
}

// All returns an iterator over index/element pairs in logical order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.Len(); i++ {
			value, ok := v.Get(i)
			assert(ok, "hybridvec iteration: index below Len must be live")
			if !yield(i, value) {
				return
			}
		}
	}
}

// Each visits all elements in logical order.
//
// The callback receives each element and its logical index. Iteration stops
// at the first callback error and returns that error to the caller.
func (v *Vector[T]) Each(f func(i int, value T) error) error {
	if f == nil {
		return ErrIllegalArguments
	}
	for i, value := range v.All() {
		if err := f(i, value); err != nil {
			return err
		}
	}
	return nil
}
