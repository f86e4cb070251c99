package sparsevec_test

import (
	"fmt"

	"github.com/hupe1980/sparsevec"
)

// Example demonstrates the basic push/insert/remove lifecycle.
func Example() {
	v := sparsevec.New[int]()
	v.Push(10)
	v.Push(0) // default, costs no memory
	v.Push(30)

	fmt.Println(v)
	fmt.Println("len:", v.Len(), "stored:", v.NNZ())

	v.Insert(1, 20)
	fmt.Println(v)

	removed := v.Remove(0)
	fmt.Println("removed:", removed, "->", v)

	// Output:
	// [10 0 30]
	// len: 3 stored: 2
	// [10 20 0 30]
	// removed: 10 -> [20 0 30]
}

// Example_customDefault elides a value other than the zero value.
func Example_customDefault() {
	v := sparsevec.FromDense([]string{"-", "a", "-", "-", "b"}, func(o *sparsevec.Options[string]) {
		o.Default = "-"
	})

	fmt.Println("len:", v.Len(), "stored:", v.NNZ())
	for i, val := range v.Entries() {
		fmt.Println(i, val)
	}

	// Output:
	// len: 5 stored: 2
	// 1 a
	// 4 b
}

// Example_dot computes a sparse dot product with a merge sweep over the
// stored entries of both operands.
func Example_dot() {
	a := sparsevec.FromDense([]int{1, 0, 3, 0, 5})
	b := sparsevec.FromDense([]int{0, 2, 3, 0, 2})

	sum, err := sparsevec.Dot(a, b)
	if err != nil {
		panic(err)
	}
	fmt.Println(sum)

	// Output: 19
}
