package sparsevec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func denseDot(a, b []int) int {
	sum := 0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func TestDot(t *testing.T) {
	t.Run("MatchesDense", func(t *testing.T) {
		cases := [][2][]int{
			{{1, 2, 3}, {4, 5, 6}},
			{{1, 0, 3, 0}, {0, 2, 3, 4}},
			{{0, 0, 0}, {1, 2, 3}},
			{{5}, {7}},
		}
		for _, tc := range cases {
			got, err := Dot(FromDense(tc[0]), FromDense(tc[1]))
			require.NoError(t, err)
			assert.Equal(t, denseDot(tc[0], tc[1]), got)
		}
	})

	t.Run("EmptyVectors", func(t *testing.T) {
		got, err := Dot(New[int](), New[int]())
		require.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		_, err := Dot(FromDense([]int{1, 2}), FromDense([]int{1, 2, 3}))
		require.Error(t, err)

		var dm *ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
		assert.Equal(t, 2, dm.Expected)
		assert.Equal(t, 3, dm.Actual)
	})

	t.Run("Float", func(t *testing.T) {
		a := FromDense([]float64{0.5, 0, 2})
		b := FromDense([]float64{4, 1, 0.25})
		got, err := Dot(a, b)
		require.NoError(t, err)
		assert.InDelta(t, 2.5, got, 1e-12)
	})

	t.Run("SkipsNonMatchingSupports", func(t *testing.T) {
		// Disjoint supports contribute nothing.
		a := FromDense([]int{1, 0, 1, 0})
		b := FromDense([]int{0, 1, 0, 1})
		got, err := Dot(a, b)
		require.NoError(t, err)
		assert.Equal(t, 0, got)
	})
}

func TestBatchDot(t *testing.T) {
	t.Run("ResultsInBatchOrder", func(t *testing.T) {
		query := FromDense([]int{1, 2, 3})
		batch := []*Vector[int]{
			FromDense([]int{1, 0, 0}),
			FromDense([]int{0, 1, 0}),
			FromDense([]int{0, 0, 1}),
			FromDense([]int{1, 1, 1}),
		}

		results, err := BatchDot(query, batch)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 6}, results)
	})

	t.Run("PropagatesMismatch", func(t *testing.T) {
		query := FromDense([]int{1, 2})
		batch := []*Vector[int]{
			FromDense([]int{1, 1}),
			FromDense([]int{1, 1, 1}),
		}

		_, err := BatchDot(query, batch)
		var dm *ErrDimensionMismatch
		assert.ErrorAs(t, err, &dm)
	})

	t.Run("EmptyBatch", func(t *testing.T) {
		results, err := BatchDot(FromDense([]int{1}), nil)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func BenchmarkDot(b *testing.B) {
	a := New[int]()
	c := New[int]()
	for i := 0; i < 100000; i++ {
		if i%13 == 0 {
			a.Push(i % 97)
		} else {
			a.Push(0)
		}
		if i%7 == 0 {
			c.Push(i % 89)
		} else {
			c.Push(0)
		}
	}

	b.ResetTimer()
	for b.Loop() {
		_, _ = Dot(a, c)
	}
}
