package sparsevec

import (
	"fmt"
	"slices"

	"github.com/hupe1980/sparsevec/internal/store"
)

// Vector is a sparse dynamic array of T. It reports a logical length via
// Len but physically stores only the entries whose value differs from the
// configured default. The zero default for T is used unless overridden at
// construction time.
//
// Vector is not safe for concurrent mutation; see the package documentation
// for the ownership model.
type Vector[T comparable] struct {
	store  *store.Pair[T]
	length int
	def    T
}

// Options configures a Vector constructor.
type Options[T comparable] struct {
	// Default is the elided value. Positions holding it cost no memory.
	Default T

	// Capacity pre-sizes the physical buffers for that many stored
	// (non-default) entries. Zero means allocate lazily.
	Capacity int
}

// New creates an empty Vector.
//
//	v := sparsevec.New[int](func(o *sparsevec.Options[int]) {
//	    o.Default = -1
//	    o.Capacity = 64
//	})
func New[T comparable](optFns ...func(o *Options[T])) *Vector[T] {
	var opts Options[T]

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Vector[T]{
		store: store.WithCapacity[T](opts.Capacity),
		def:   opts.Default,
	}
}

// Len returns the logical length, including elided default-valued positions.
func (v *Vector[T]) Len() int { return v.length }

// NNZ returns the number of physically stored (non-default) entries.
func (v *Vector[T]) NNZ() int { return v.store.Len() }

// Cap returns the physical capacity of the backing buffers.
func (v *Vector[T]) Cap() int { return v.store.Cap() }

// IsEmpty reports whether the logical length is zero.
func (v *Vector[T]) IsEmpty() bool { return v.length == 0 }

// DefaultValue returns the elided value configured at construction.
func (v *Vector[T]) DefaultValue() T { return v.def }

// locate binary-searches the physical index array for logical index i.
// It returns the physical position and whether an entry is stored there;
// on a miss the position is where such an entry would be inserted.
func (v *Vector[T]) locate(i int) (int, bool) {
	return slices.BinarySearch(v.store.Indices(), i)
}

// Get returns the logical value at index i. The second result is false when
// i is outside [0, Len); an in-range position that holds the default value
// reports the default with ok=true, without materializing storage.
func (v *Vector[T]) Get(i int) (T, bool) {
	if i < 0 || i >= v.length {
		var zero T
		return zero, false
	}
	if p, found := v.locate(i); found {
		return v.store.Values()[p], true
	}
	return v.def, true
}

// GetMut returns a pointer to the stored slot for logical index i, or
// (nil, false) when i is outside [0, Len).
//
/// Discouraged: when position i is not physically stored, GetMut materializes
// a slot holding a copy of the default value so it has something to hand
// out. That pays the full O(nnz) shift cost up front, and if the caller
// never overwrites the slot with a non-default value the sparsity contract
// is weakened until Compact is called. Prefer Set, which keeps the
// container compacted on every write.
//
// The returned pointer is invalidated by any subsequent mutating call.
func (v *Vector[T]) GetMut(i int) (*T, bool) {
	if i < 0 || i >= v.length {
		return nil, false
	}
	p, found := v.locate(i)
	if !found {
		v.store.InsertAt(p, i, v.def)
	}
	return &v.store.Values()[p], true
}

// Set writes value at logical index i while maintaining the sparsity
/// contract: writing the default value removes any stored entry, writing a
// non-default value stores or overwrites one. Panics when i is outside
// [0, Len).
func (v *Vector[T]) Set(i int, value T) {
	if i < 0 || i >= v.length {
		panic(outOfRange("Set", i, v.length))
	}
	p, found := v.locate(i)
	switch {
	case found && value == v.def:
		v.store.RemoveAt(p)
	case found:
		v.store.Values()[p] = value
	case value != v.def:
		v.store.InsertAt(p, i, value)
	}
}

// Clone returns a deep copy of the vector.
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{
		store:  v.store.Clone(),
		length: v.length,
		def:    v.def,
	}
}

// Equal reports whether two vectors have the same default, logical length,
// and stored entries. Two vectors that render the same dense view can still
// differ here when one carries a materialized default slot from GetMut;
// Compact both before comparing if that distinction does not matter.
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	if other == nil {
		return false
	}
	return v.def == other.def &&
		v.length == other.length &&
		slices.Equal(v.store.Indices(), other.store.Indices()) &&
		slices.Equal(v.store.Values(), other.store.Values())
}

func outOfRange(op string, i, length int) string {
	return fmt.Sprintf("sparsevec: %s: index out of range [%d] with length %d", op, i, length)
}
