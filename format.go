package sparsevec

import (
	"fmt"
	"strings"
)

// String renders the dense logical view, including synthesized defaults,
// in the style of a plain Go slice.
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, val := range v.All() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", val)
	}
	sb.WriteByte(']')
	return sb.String()
}

// GoString renders the physical view: the stored (index, value) pairs.
// Used by the %#v verb.
func (v *Vector[T]) GoString() string {
	var sb strings.Builder
	sb.WriteString("sparsevec.Vector{")
	first := true
	for i, val := range v.Entries() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%d:%v", i, val)
	}
	sb.WriteByte('}')
	return sb.String()
}

// DebugString renders the full internal state, counters included, for
// diagnostics.
func (v *Vector[T]) DebugString() string {
	return fmt.Sprintf("sparsevec.Vector{len:%d, nnz:%d, cap:%d, default:%v, indices:%v, values:%v}",
		v.length, v.store.Len(), v.store.Cap(), v.def, v.store.Indices(), v.store.Values())
}
