package sparsevec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntries(t *testing.T) {
	v := FromDense([]int{10, 0, 30, 0, 100})

	t.Run("VisitsOnlyStored", func(t *testing.T) {
		var indices []int
		var values []int
		for i, val := range v.Entries() {
			indices = append(indices, i)
			values = append(values, val)
		}
		assert.Equal(t, []int{0, 2, 4}, indices)
		assert.Equal(t, []int{10, 30, 100}, values)
	})

	t.Run("Restartable", func(t *testing.T) {
		for pass := 0; pass < 2; pass++ {
			count := 0
			for range v.Entries() {
				count++
			}
			assert.Equal(t, 3, count)
		}
	})

	t.Run("EarlyBreak", func(t *testing.T) {
		count := 0
		for range v.Entries() {
			count++
			break
		}
		assert.Equal(t, 1, count)
	})
}

func TestAll(t *testing.T) {
	v := FromDense([]int{10, 0, 30})

	var got []int
	for i, val := range v.All() {
		assert.Equal(t, len(got), i)
		got = append(got, val)
	}
	assert.Equal(t, []int{10, 0, 30}, got)

	t.Run("EarlyBreak", func(t *testing.T) {
		count := 0
		for range v.All() {
			count++
			if count == 2 {
				break
			}
		}
		assert.Equal(t, 2, count)
	})
}

func TestFormat(t *testing.T) {
	v := FromDense([]int{10, 0, 30})

	assert.Equal(t, "[10 0 30]", v.String())
	assert.Equal(t, "sparsevec.Vector{0:10, 2:30}", v.GoString())
	assert.Contains(t, v.DebugString(), "len:3")
	assert.Contains(t, v.DebugString(), "nnz:2")

	empty := New[int]()
	assert.Equal(t, "[]", empty.String())
	assert.Equal(t, "sparsevec.Vector{}", empty.GoString())
}
