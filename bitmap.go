package sparsevec

import "github.com/RoaringBitmap/roaring/v2"

// Bitmap returns the set of stored (non-default) logical positions as a
// Roaring bitmap, enabling cheap set algebra over the occupancy of several
// vectors (intersection of supports, union, difference).
//
// Positions are represented as uint32; vectors longer than 2^32 are not
// supported by this view. The bitmap is a copy and does not alias the
// vector.
func (v *Vector[T]) Bitmap() *roaring.Bitmap {
	rb := roaring.New()
	for _, i := range v.store.Indices() {
		rb.Add(uint32(i))
	}
	return rb
}
