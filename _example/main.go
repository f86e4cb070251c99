package main

import (
	"bytes"
	"fmt"
	"log"

	"github.com/hupe1980/sparsevec"
	"github.com/hupe1980/sparsevec/snapshot"
)

func main() {
	v := sparsevec.New[int]()

	v.Push(10)
	v.Push(0)
	v.Push(30)
	v.Remove(1)
	v.Push(0)
	v.Push(0)
	v.Push(0)
	v.Insert(4, 100)

	first, _ := v.Get(0)
	fmt.Println("v[0] =", first)

	if p, ok := v.GetMut(2); ok {
		*p = 100
	}

	v.Extend(1, 2, 3, 4, 5)

	fmt.Println("dense:   ", v)
	fmt.Println("physical:", v.GoString())
	fmt.Printf("len=%d nnz=%d cap=%d\n", v.Len(), v.NNZ(), v.Cap())

	// Dot product against a second vector of the same length.
	w := sparsevec.New[int]()
	for i := 0; i < v.Len(); i++ {
		w.Push(i % 2)
	}
	sum, err := sparsevec.Dot(v, w)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("dot:", sum)

	// Snapshot round trip with zstd compression.
	var buf bytes.Buffer
	if err := snapshot.Save(&buf, v, func(o *snapshot.Options) {
		o.Compression = snapshot.CompressionZSTD
	}); err != nil {
		log.Fatal(err)
	}
	restored, err := snapshot.Load[int](&buf)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("restored:", restored, "equal:", v.Equal(restored))
}
