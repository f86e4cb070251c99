package sparsevec

import "iter"

// Push appends value at logical index Len. Default values extend the
// logical length without touching physical storage.
func (v *Vector[T]) Push(value T) {
	if value != v.def {
		v.store.Append(v.length, value)
	}
	v.length++
}

// Pop removes and returns the last logical element. The second result is
// false when the vector is logically empty.
func (v *Vector[T]) Pop() (T, bool) {
	if v.length == 0 {
		var zero T
		return zero, false
	}
	v.length--
	// The popped slot was physically stored only if the last stored entry
	// sits at the old tail index.
	if n := v.store.Len(); n > 0 && v.store.Indices()[n-1] == v.length {
		_, val := v.store.PopLast()
		return val, true
	}
	return v.def, true
}

// Insert splices value in at logical index i, moving every element at or
// after i one logical position up. i == Len appends. Panics when i is
// outside [0, Len].
//
// When an entry is already stored at i, the new element displaces it one
// position to the right rather than overwriting it.
func (v *Vector[T]) Insert(i int, value T) {
	if i < 0 || i > v.length {
		panic(outOfRange("Insert", i, v.length))
	}
	v.length++

	p, _ := v.locate(i)
	// Everything logically at or after i moves up by one, stored or not.
	if value != v.def {
		v.store.InsertAt(p, i, value)
		v.store.ShiftIndices(p+1, 1)
	} else {
		// A default value is never materialized; renumbering the stored
		// tail is the whole insertion.
		v.store.ShiftIndices(p, 1)
	}
}

// Remove deletes the element at logical index i, moving every element after
// it one logical position down, and returns the removed value. Panics when
// i is outside [0, Len).
func (v *Vector[T]) Remove(i int) T {
	if i < 0 || i >= v.length {
		panic(outOfRange("Remove", i, v.length))
	}
	v.length--

	p, found := v.locate(i)
	if found {
		_, val := v.store.RemoveAt(p)
		v.store.ShiftIndices(p, -1)
		return val
	}
	// Nothing stored at i; the stored tail still shifts down one logical
	// position.
	v.store.ShiftIndices(p, -1)
	return v.def
}

// Append concatenates other onto v and consumes it: on success other is
// drained to an empty vector and its buffers are released. Appending a
// logically empty vector is a no-op. Returns ErrDefaultMismatch (leaving
// both vectors unchanged) when the two vectors elide different defaults,
// and ErrSelfAppend when other is v itself (doubling a vector is
// v.Append(v.Clone())).
func (v *Vector[T]) Append(other *Vector[T]) error {
	if other == v {
		return ErrSelfAppend
	}
	if other == nil || other.length == 0 {
		return nil
	}
	if v.def != other.def {
		return ErrDefaultMismatch
	}

	v.store.AppendPair(other.store, v.length)
	v.length += other.length

	other.store.Release()
	other.length = 0

	return nil
}

// Extend pushes each value in order.
func (v *Vector[T]) Extend(values ...T) {
	v.store.Reserve(len(values))
	for _, val := range values {
		v.Push(val)
	}
}

// ExtendSeq pushes each value produced by seq in iteration order.
func (v *Vector[T]) ExtendSeq(seq iter.Seq[T]) {
	for val := range seq {
		v.Push(val)
	}
}

// Clear drains all logical elements. Capacity is retained.
func (v *Vector[T]) Clear() {
	v.store.Truncate(0)
	v.length = 0
}

// Reserve ensures capacity for additional more stored entries beyond NNZ.
func (v *Vector[T]) Reserve(additional int) {
	v.store.Reserve(additional)
}

// ShrinkToFit reduces the physical capacity to NNZ.
func (v *Vector[T]) ShrinkToFit() {
	v.store.ShrinkToFit()
}

// Compact physically removes stored entries whose value equals the default,
// restoring the sparsity contract after GetMut writes. Logical contents are
// unchanged.
func (v *Vector[T]) Compact() {
	indices, values := v.store.Indices(), v.store.Values()
	k := 0
	for p := range values {
		if values[p] != v.def {
			indices[k], values[k] = indices[p], values[p]
			k++
		}
	}
	v.store.Truncate(k)
}
