package sparsevec

import "iter"

// Entries returns a sparse iterator over the physically stored entries as
// (logical index, value) pairs in increasing index order. Default-valued
// positions are not synthesized. The sequence is finite and restartable;
// the vector must not be mutated while iterating.
func (v *Vector[T]) Entries() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		indices, values := v.store.Indices(), v.store.Values()
		for p := range indices {
			if !yield(indices[p], values[p]) {
				return
			}
		}
	}
}

// All returns a dense iterator over every logical position as
// (index, value) pairs, synthesizing the default for unstored positions.
// The vector must not be mutated while iterating.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		indices, values := v.store.Indices(), v.store.Values()
		p := 0
		for i := 0; i < v.length; i++ {
			val := v.def
			if p < len(indices) && indices[p] == i {
				val = values[p]
				p++
			}
			if !yield(i, val) {
				return
			}
		}
	}
}
