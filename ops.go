package hybridvec

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Push appends value as the new last element.
//
// The value goes into the next inline slot while the inline region has room,
// otherwise to the end of the spill region. Spill growth follows the usual
// amortized doubling policy; an exhausted spill reserve is re-allocated by
// the runtime, never by clients.
func (v *Vector[T]) Push(value T) {
	if v.count < len(v.inline) {
		v.inline[v.count] = value
	} else {
		before := cap(v.spill)
		v.spill = append(v.spill, value)
		if cap(v.spill) != before {
			tracer().Debugf("hybrid vector spill region grown from %d to %d", before, cap(v.spill))
		}
	}
	v.count++
}

// Pop removes and returns the last logical element.
//
// The boolean is false if the vector is empty; the count stays at 0 in that
// case. Only the tail is touched, no elements shift.
func (v *Vector[T]) Pop() (T, bool) {
	var none T
	if v == nil || v.count == 0 {
		return none, false
	}
	if len(v.spill) > 0 {
		last := len(v.spill) - 1
		value := v.spill[last]
		v.spill[last] = none // do not keep dead values alive
		v.spill = v.spill[:last]
		v.count--
		return value, true
	}
	value := v.inline[v.count-1]
	v.inline[v.count-1] = none
	v.count--
	return value, true
}

// Remove removes and returns the element at logical index i, shifting all
// later elements down by one position.
//
// The boolean is false, and nothing mutates, if i is out of bounds.
//
// Removal is order-preserving and O(n) in the worst case. When an inline
// index is removed while the spill region is non-empty, the first spill
// element migrates into the vacated last inline slot, keeping the live
// inline prefix gapless.
func (v *Vector[T]) Remove(i int) (T, bool) {
	var none T
	if v == nil || i < 0 || i >= v.count {
		return none, false
	}
	n := len(v.inline)
	if i >= n {
		at := i - n
		value := v.spill[at]
		copy(v.spill[at:], v.spill[at+1:])
		last := len(v.spill) - 1
		v.spill[last] = none
		v.spill = v.spill[:last]
		v.count--
		return value, true
	}
	value := v.inline[i]
	live := v.liveInline()
	copy(v.inline[i:], v.inline[i+1:live])
	if len(v.spill) > 0 {
		// pull the spill head into the vacated last inline slot
		tracer().Debugf("hybrid vector remove(%d) migrates spill head to inline slot %d", i, n-1)
		v.inline[n-1] = v.spill[0]
		copy(v.spill, v.spill[1:])
		last := len(v.spill) - 1
		v.spill[last] = none
		v.spill = v.spill[:last]
	} else {
		v.inline[live-1] = none
	}
	v.count--
	return value, true
}

// Extend pushes each element of values in order, equivalent to repeated
// Push. There is no atomicity across the batch.
func (v *Vector[T]) Extend(values []T) {
	for _, value := range values {
		v.Push(value)
	}
}
