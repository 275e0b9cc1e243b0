package vec

// Mask is the result of a lane-wise vector comparison. Comparisons evaluate
// in registers on the vectorized path; the combinators below operate on the
// extracted lane bits.
type Mask[T Elem] struct {
	dim  int
	lane [MaxDim]bool
}

// NewMask returns a mask with the given lanes.
func NewMask[T Elem](lanes ...bool) Mask[T] {
	checkDim(len(lanes))
	m := Mask[T]{dim: len(lanes)}
	copy(m.lane[:], lanes)
	return m
}

// Dim returns the dimension of the mask.
func (m Mask[T]) Dim() int {
	return m.dim
}

// Bit reports whether lane i is set.
func (m Mask[T]) Bit(i int) bool {
	if i < 0 || i >= m.dim {
		panic("vec: mask index out of range")
	}
	return m.lane[i]
}

// Not returns the lane-wise complement of m.
func (m Mask[T]) Not() Mask[T] {
	r := Mask[T]{dim: m.dim}
	for i := 0; i < m.dim; i++ {
		r.lane[i] = !m.lane[i]
	}
	return r
}

// And returns the lane-wise conjunction of m and n.
func (m Mask[T]) And(n Mask[T]) Mask[T] {
	checkSameDim(m.dim, n.dim)
	r := Mask[T]{dim: m.dim}
	for i := 0; i < m.dim; i++ {
		r.lane[i] = m.lane[i] && n.lane[i]
	}
	return r
}

// Or returns the lane-wise disjunction of m and n.
func (m Mask[T]) Or(n Mask[T]) Mask[T] {
	checkSameDim(m.dim, n.dim)
	r := Mask[T]{dim: m.dim}
	for i := 0; i < m.dim; i++ {
		r.lane[i] = m.lane[i] || n.lane[i]
	}
	return r
}

// Eq returns the lane-wise equivalence of m and n.
func (m Mask[T]) Eq(n Mask[T]) Mask[T] {
	checkSameDim(m.dim, n.dim)
	r := Mask[T]{dim: m.dim}
	for i := 0; i < m.dim; i++ {
		r.lane[i] = m.lane[i] == n.lane[i]
	}
	return r
}

// Ne returns the lane-wise difference of m and n.
func (m Mask[T]) Ne(n Mask[T]) Mask[T] {
	checkSameDim(m.dim, n.dim)
	r := Mask[T]{dim: m.dim}
	for i := 0; i < m.dim; i++ {
		r.lane[i] = m.lane[i] != n.lane[i]
	}
	return r
}

// Any reports whether any lane is set.
func (m Mask[T]) Any() bool {
	for i := 0; i < m.dim; i++ {
		if m.lane[i] {
			return true
		}
	}
	return false
}

// All reports whether every lane is set.
func (m Mask[T]) All() bool {
	for i := 0; i < m.dim; i++ {
		if !m.lane[i] {
			return false
		}
	}
	return true
}

// CountTrue returns the number of set lanes.
func (m Mask[T]) CountTrue() int {
	n := 0
	for i := 0; i < m.dim; i++ {
		if m.lane[i] {
			n++
		}
	}
	return n
}

// FindTrue returns the index of the first set lane, or -1 when none is set.
func (m Mask[T]) FindTrue() int {
	for i := 0; i < m.dim; i++ {
		if m.lane[i] {
			return i
		}
	}
	return -1
}
