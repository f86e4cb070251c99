package sparsevec

import (
	"fmt"
	"slices"

	"github.com/hupe1980/sparsevec/internal/store"
)

// FromDense builds a Vector from a dense sequence, scanning it once and
// eliding every element equal to the default.
func FromDense[T comparable](dense []T, optFns ...func(o *Options[T])) *Vector[T] {
	v := New[T](optFns...)
	v.Extend(dense...)
	v.ShrinkToFit()
	return v
}

// FromMap builds a Vector from a logical-index to value mapping. The
// logical length becomes the largest key plus one; keys bound to the
// default value are elided. Iteration order of the map does not affect the
// final state. Returns ErrNegativeIndex when a key is negative.
func FromMap[T comparable](m map[int]T, optFns ...func(o *Options[T])) (*Vector[T], error) {
	v := New[T](optFns...)
	if len(m) == 0 {
		return v, nil
	}

	keys := make([]int, 0, len(m))
	for k := range m {
		if k < 0 {
			return nil, fmt.Errorf("%w: %d", ErrNegativeIndex, k)
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)

	v.length = keys[len(keys)-1] + 1
	v.store.Reserve(len(keys))
	for _, k := range keys {
		if val := m[k]; val != v.def {
			v.store.Append(k, val)
		}
	}
	v.ShrinkToFit()

	return v, nil
}

// FromRaw reconstructs a Vector from its physical representation: a logical
// length, a default value, and the parallel index/value arrays. The input
// slices are copied. Returns ErrInvalidEntries unless the indices are
// strictly increasing within [0, length), the slices have equal length, and
// no value equals the default.
//
// FromRaw is the restore path for snapshots and other external
// serializations.
func FromRaw[T comparable](length int, def T, indices []int, values []T) (*Vector[T], error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrInvalidEntries, length)
	}
	if len(indices) != len(values) {
		return nil, fmt.Errorf("%w: %d indices vs %d values", ErrInvalidEntries, len(indices), len(values))
	}
	prev := -1
	for p, i := range indices {
		if i < 0 || i >= length {
			return nil, fmt.Errorf("%w: index %d outside [0, %d)", ErrInvalidEntries, i, length)
		}
		if i <= prev {
			return nil, fmt.Errorf("%w: indices not strictly increasing at position %d", ErrInvalidEntries, p)
		}
		if values[p] == def {
			return nil, fmt.Errorf("%w: stored value at index %d equals the default", ErrInvalidEntries, i)
		}
		prev = i
	}

	pair := store.WithCapacity[T](len(indices))
	for p, i := range indices {
		pair.Append(i, values[p])
	}

	return &Vector[T]{store: pair, length: length, def: def}, nil
}

// ToDense materializes every logical position, synthesizing the default for
// unstored ones.
func (v *Vector[T]) ToDense() []T {
	dense := make([]T, v.length)
	if v.def != *new(T) {
		for i := range dense {
			dense[i] = v.def
		}
	}
	for p, i := range v.store.Indices() {
		dense[i] = v.store.Values()[p]
	}
	return dense
}

// ToMap returns the non-default positions as a logical-index to value map.
func (v *Vector[T]) ToMap() map[int]T {
	m := make(map[int]T, v.store.Len())
	for p, i := range v.store.Indices() {
		m[i] = v.store.Values()[p]
	}
	return m
}

// Indices returns the physical index array, length NNZ and strictly
// increasing. The slice aliases internal storage and is invalidated by any
// mutating call; callers must not modify it.
func (v *Vector[T]) Indices() []int { return v.store.Indices() }

// Values returns the physical value array, positionally paired with
// Indices. The slice aliases internal storage and is invalidated by any
// mutating call.
func (v *Vector[T]) Values() []T { return v.store.Values() }
