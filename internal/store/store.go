package store

// Pair is a growable pair of parallel buffers: one holding logical indices,
// one holding values of type T. Element p of one buffer corresponds to
// element p of the other; every operation keeps the two in lock-step and at
// identical capacity.
//
// A zero-capacity Pair holds no allocation at all; the first Grow allocates
// capacity 1 and each further Grow doubles. Allocation failure is not a
// recoverable path: the Go runtime aborts the process when a make cannot be
// satisfied, and Pair never performs partial growth that could leave the
// buffers at different capacities.
//
// Values of zero-sized types need no special casing: a Go slice of a
// zero-sized type carries no element storage, while the index buffer still
// grows normally.
type Pair[T any] struct {
	indices []int
	values  []T
}

// New returns an unallocated Pair. Memory is reserved lazily on first growth.
func New[T any]() *Pair[T] {
	return &Pair[T]{}
}

// WithCapacity returns a Pair with both buffers pre-sized to n elements.
// n <= 0 behaves like New.
func WithCapacity[T any](n int) *Pair[T] {
	p := &Pair[T]{}
	if n > 0 {
		p.setCap(n)
	}
	return p
}

// Len returns the number of live element pairs.
func (p *Pair[T]) Len() int { return len(p.indices) }

// Cap returns the shared capacity of both buffers.
func (p *Pair[T]) Cap() int { return cap(p.indices) }

// Indices returns the live region of the index buffer. The slice aliases
// the buffer and is invalidated by any mutating call.
func (p *Pair[T]) Indices() []int { return p.indices }

// Values returns the live region of the value buffer. The slice aliases
// the buffer and is invalidated by any mutating call.
func (p *Pair[T]) Values() []T { return p.values }

// setCap reallocates both buffers to capacity c, moving the live elements.
// The live length is preserved; c must be >= Len.
func (p *Pair[T]) setCap(c int) {
	indices := make([]int, len(p.indices), c)
	values := make([]T, len(p.values), c)
	copy(indices, p.indices)
	copy(values, p.values)
	p.indices = indices
	p.values = values
}

// Grow doubles the capacity of both buffers. The first growth allocates
// capacity 1.
func (p *Pair[T]) Grow() {
	newCap := 1
	if cap(p.indices) > 0 {
		newCap = cap(p.indices) * 2
	}
	p.setCap(newCap)
}

// Reserve ensures room for additional more element pairs beyond the current
// length, reallocating exactly once if needed.
func (p *Pair[T]) Reserve(additional int) {
	if need := len(p.indices) + additional; need > cap(p.indices) {
		p.setCap(need)
	}
}

// ShrinkToFit reallocates both buffers down to the live length.
func (p *Pair[T]) ShrinkToFit() {
	if len(p.indices) < cap(p.indices) {
		p.setCap(len(p.indices))
	}
}

// ensure makes room for one more element pair.
func (p *Pair[T]) ensure() {
	if len(p.indices) == cap(p.indices) {
		p.Grow()
	}
}

// Append writes (idx, val) after the last live pair, growing if needed.
func (p *Pair[T]) Append(idx int, val T) {
	p.ensure()
	p.indices = append(p.indices, idx)
	p.values = append(p.values, val)
}

// InsertAt shifts the pairs in [pos, Len) one slot to the right and writes
// (idx, val) at pos, growing if needed.
func (p *Pair[T]) InsertAt(pos int, idx int, val T) {
	p.ensure()
	n := len(p.indices)
	p.indices = p.indices[:n+1]
	p.values = p.values[:n+1]
	copy(p.indices[pos+1:], p.indices[pos:n])
	copy(p.values[pos+1:], p.values[pos:n])
	p.indices[pos] = idx
	p.values[pos] = val
}

// RemoveAt removes the pair at pos, shifting the tail one slot to the left,
// and returns the removed value.
func (p *Pair[T]) RemoveAt(pos int) (int, T) {
	idx, val := p.indices[pos], p.values[pos]
	n := len(p.indices)
	copy(p.indices[pos:], p.indices[pos+1:])
	copy(p.values[pos:], p.values[pos+1:])
	p.truncate(n - 1)
	return idx, val
}

// PopLast removes and returns the last live pair.
func (p *Pair[T]) PopLast() (int, T) {
	n := len(p.indices)
	idx, val := p.indices[n-1], p.values[n-1]
	p.truncate(n - 1)
	return idx, val
}

// Truncate drops all pairs at positions >= n. Capacity is unchanged.
func (p *Pair[T]) Truncate(n int) {
	p.truncate(n)
}

func (p *Pair[T]) truncate(n int) {
	// Zero the abandoned value slots so the buffer does not pin pointers.
	var zero T
	for i := n; i < len(p.values); i++ {
		p.values[i] = zero
	}
	p.indices = p.indices[:n]
	p.values = p.values[:n]
}

// ShiftIndices adds delta to every stored index at position >= from.
func (p *Pair[T]) ShiftIndices(from, delta int) {
	for i := from; i < len(p.indices); i++ {
		p.indices[i] += delta
	}
}

// AppendPair bulk-copies all pairs of other after p's live region, adding
// offset to every copied index. other is left untouched.
func (p *Pair[T]) AppendPair(other *Pair[T], offset int) {
	p.Reserve(other.Len())
	start := len(p.indices)
	p.indices = append(p.indices, other.indices...)
	p.values = append(p.values, other.values...)
	for i := start; i < len(p.indices); i++ {
		p.indices[i] += offset
	}
}

// Clone returns a deep copy with the same live pairs and capacity.
func (p *Pair[T]) Clone() *Pair[T] {
	c := WithCapacity[T](cap(p.indices))
	c.indices = c.indices[:len(p.indices)]
	c.values = c.values[:len(p.values)]
	copy(c.indices, p.indices)
	copy(c.values, p.values)
	return c
}

// Release frees both buffers. A no-op if never allocated.
func (p *Pair[T]) Release() {
	p.indices = nil
	p.values = nil
}
