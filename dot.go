package sparsevec

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Number is the constraint for element types that support the arithmetic
// the dot product needs: multiplication and summation.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Dot computes the dot product of two sparse vectors with a merge-style
// sweep over their stored entries: matching logical indices contribute
// a*b, the iterator with the smaller index advances otherwise. Only
// positions stored in both vectors are touched, so the cost is
// O(nnz(a) + nnz(b)) regardless of logical length.
//
// Precondition: both defaults must be the additive identity (zero).
// Implicit default-valued positions contribute nothing to the sum, which
// is only correct when the default is zero. This is not verified.
//
// Returns ErrDimensionMismatch when the logical lengths differ.
func Dot[T Number](a, b *Vector[T]) (T, error) {
	var sum T
	if a.Len() != b.Len() {
		return sum, &ErrDimensionMismatch{Expected: a.Len(), Actual: b.Len()}
	}

	ai, av := a.store.Indices(), a.store.Values()
	bi, bv := b.store.Indices(), b.store.Values()

	p, q := 0, 0
	for p < len(ai) && q < len(bi) {
		switch {
		case ai[p] < bi[q]:
			p++
		case ai[p] > bi[q]:
			q++
		default:
			sum += av[p] * bv[q]
			p++
			q++
		}
	}

	return sum, nil
}

// BatchDot computes the dot product of query against every vector in batch
// concurrently and returns the results in batch order. The vectors are only
// read; per the ownership model, read-only sharing without mutation is
// safe.
func BatchDot[T Number](query *Vector[T], batch []*Vector[T]) ([]T, error) {
	results := make([]T, len(batch))

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, other := range batch {
		g.Go(func() error {
			r, err := Dot(query, other)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
