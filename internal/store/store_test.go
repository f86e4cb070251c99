package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairGrowth(t *testing.T) {
	t.Run("LazyAllocation", func(t *testing.T) {
		p := New[string]()
		assert.Equal(t, 0, p.Len())
		assert.Equal(t, 0, p.Cap())
	})

	t.Run("FirstGrowAllocatesOne", func(t *testing.T) {
		p := New[string]()
		p.Grow()
		assert.Equal(t, 1, p.Cap())
		p.Grow()
		assert.Equal(t, 2, p.Cap())
		p.Grow()
		assert.Equal(t, 4, p.Cap())
	})

	t.Run("CapacitiesNeverDiverge", func(t *testing.T) {
		p := New[float64]()
		for i := 0; i < 100; i++ {
			p.Append(i, float64(i))
			require.Equal(t, cap(p.Indices()), cap(p.Values()))
		}
		p.ShrinkToFit()
		assert.Equal(t, 100, p.Cap())
		assert.Equal(t, cap(p.Indices()), cap(p.Values()))
	})

	t.Run("WithCapacity", func(t *testing.T) {
		p := WithCapacity[int](8)
		assert.Equal(t, 8, p.Cap())
		assert.Equal(t, 0, p.Len())
	})

	t.Run("Reserve", func(t *testing.T) {
		p := New[int]()
		p.Append(0, 1)
		p.Reserve(9)
		assert.Equal(t, 10, p.Cap())
		// No-op when capacity already suffices.
		p.Reserve(2)
		assert.Equal(t, 10, p.Cap())
	})
}

func TestPairMutation(t *testing.T) {
	t.Run("AppendKeepsLockstep", func(t *testing.T) {
		p := New[string]()
		p.Append(3, "c")
		p.Append(7, "g")
		assert.Equal(t, []int{3, 7}, p.Indices())
		assert.Equal(t, []string{"c", "g"}, p.Values())
	})

	t.Run("InsertAt", func(t *testing.T) {
		p := New[string]()
		p.Append(1, "b")
		p.Append(5, "f")
		p.InsertAt(1, 3, "d")
		assert.Equal(t, []int{1, 3, 5}, p.Indices())
		assert.Equal(t, []string{"b", "d", "f"}, p.Values())
		p.InsertAt(0, 0, "a")
		assert.Equal(t, []int{0, 1, 3, 5}, p.Indices())
	})

	t.Run("RemoveAt", func(t *testing.T) {
		p := New[string]()
		p.Append(0, "a")
		p.Append(2, "c")
		p.Append(4, "e")
		idx, val := p.RemoveAt(1)
		assert.Equal(t, 2, idx)
		assert.Equal(t, "c", val)
		assert.Equal(t, []int{0, 4}, p.Indices())
		assert.Equal(t, []string{"a", "e"}, p.Values())
	})

	t.Run("PopLast", func(t *testing.T) {
		p := New[int]()
		p.Append(1, 10)
		p.Append(2, 20)
		idx, val := p.PopLast()
		assert.Equal(t, 2, idx)
		assert.Equal(t, 20, val)
		assert.Equal(t, 1, p.Len())
	})

	t.Run("ShiftIndices", func(t *testing.T) {
		p := New[int]()
		p.Append(1, 10)
		p.Append(4, 40)
		p.Append(9, 90)
		p.ShiftIndices(1, 1)
		assert.Equal(t, []int{1, 5, 10}, p.Indices())
		p.ShiftIndices(0, -1)
		assert.Equal(t, []int{0, 4, 9}, p.Indices())
	})

	t.Run("AppendPairOffsetsIndices", func(t *testing.T) {
		a := New[int]()
		a.Append(0, 1)
		a.Append(2, 3)
		b := New[int]()
		b.Append(1, 5)
		b.Append(3, 7)
		a.AppendPair(b, 10)
		assert.Equal(t, []int{0, 2, 11, 13}, a.Indices())
		assert.Equal(t, []int{1, 3, 5, 7}, a.Values())
		// Source is untouched.
		assert.Equal(t, []int{1, 3}, b.Indices())
	})

	t.Run("Truncate", func(t *testing.T) {
		p := New[int]()
		for i := 0; i < 5; i++ {
			p.Append(i, i)
		}
		c := p.Cap()
		p.Truncate(2)
		assert.Equal(t, 2, p.Len())
		assert.Equal(t, c, p.Cap())
	})
}

func TestPairCloneAndRelease(t *testing.T) {
	p := New[int]()
	p.Append(1, 10)
	p.Append(3, 30)

	c := p.Clone()
	require.Equal(t, p.Indices(), c.Indices())
	require.Equal(t, p.Values(), c.Values())
	assert.Equal(t, p.Cap(), c.Cap())

	// Mutating the clone must not touch the original.
	c.Append(5, 50)
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, 3, c.Len())

	p.Release()
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, 0, p.Cap())
	// Release on an unallocated pair is a no-op.
	p.Release()
}
