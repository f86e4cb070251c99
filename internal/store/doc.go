// Package store owns the physical backing buffers of a sparse vector.
//
// A Pair keeps two parallel buffers, one for logical indices and one for
// values, and is the sole authority for allocating, growing, and releasing
// them. The two buffers always have the same capacity; callers never see
// them diverge. The package knows nothing about sparsity semantics, it
// only moves bytes.
package store
