// Package sparsevec provides a generic sparse vector: a sequence container
// that behaves like an ordinary dynamic array of logical length Len, but
// physically stores only the elements that differ from a designated default
// value. Runs of default-valued slots cost O(1) memory instead of O(n).
//
// # Data Model
//
// A Vector keeps two parallel physical arrays: the compacted values and
// their logical indices, sorted by logical index and searched by binary
// search. Every mutator preserves the core sparsity contract: no stored
// value ever equals the default, the index array is strictly increasing,
// and position p of one array always corresponds to position p of the
// other.
//
// # Quick Start
//
//	v := sparsevec.New[int]()
//	v.Push(10)
//	v.Push(0) // default, not stored physically
//	v.Push(30)
//
//	v.Len() // 3
//	v.NNZ() // 2 stored entries
//	v.Get(1) // 0, true
//
// Sparse iteration visits only the stored entries:
//
//	for i, val := range v.Entries() {
//	    fmt.Println(i, val)
//	}
//
// # Complexity
//
// Positional lookup is O(log nnz); insert and remove are O(nnz) worst case
// because they shift the physical arrays and renumber the indices that
// follow the affected position. Push and Pop are amortized O(1).
//
// # Concurrency
//
// A Vector is a single-owner value type. It is safe to hand exclusive
// ownership across goroutines, but concurrent mutation requires external
// locking. References returned by GetMut, Indices, or Values are
// invalidated by any subsequent mutating call.
package sparsevec
