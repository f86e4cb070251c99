package sparsevec

import (
	"errors"
	"fmt"
)

var (
	// ErrDefaultMismatch is returned by Append when the two vectors elide
	// different default values. Concatenating containers with different
	// sparsity baselines would corrupt the index array, so it is rejected
	// and the receiver is left unchanged.
	ErrDefaultMismatch = errors.New("sparsevec: default value mismatch")

	// ErrInvalidEntries is returned by FromRaw when the supplied physical
	// entries violate a container invariant (unsorted or duplicate
	// indices, an index outside [0, length), or a value equal to the
	// default).
	ErrInvalidEntries = errors.New("sparsevec: invalid physical entries")

	// ErrNegativeIndex is returned by FromMap when a key is negative.
	ErrNegativeIndex = errors.New("sparsevec: negative logical index")

	// ErrSelfAppend is returned by Append when a vector is appended to
	// itself. Append consumes its argument, which cannot be reconciled
	// with the receiver being the same vector; append a Clone instead.
	ErrSelfAppend = errors.New("sparsevec: cannot append a vector to itself")
)

// ErrDimensionMismatch indicates that two vectors of different logical
// lengths were combined where equal lengths are required (Dot, BatchDot).
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("sparsevec: dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }
