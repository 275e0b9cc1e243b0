package simd

import (
	"github.com/ajroetker/go-highway/hwy"
)

// Mask is a lane predicate produced by register comparisons. The underlying
// mask type carries no boolean algebra, so the combinators below blend each
// operand to 0/1 lane values and compare; the round trip is exact for both
// lane types.
type Mask[T Scalar] struct {
	m hwy.Mask[T]
}

// TailMask returns a mask with the first n lanes set.
func TailMask[T Scalar](n int) Mask[T] {
	return Mask[T]{m: hwy.TailMask[T](n)}
}

func (m Mask[T]) toVec() hwy.Vec[T] {
	return hwy.IfThenElseZero(m.m, hwy.Set(T(1)))
}

// Not returns the lane-wise complement of m.
func (m Mask[T]) Not() Mask[T] {
	return Mask[T]{m: hwy.Equal(m.toVec(), hwy.Zero[T]())}
}

// And returns the lane-wise conjunction of m and n.
func (m Mask[T]) And(n Mask[T]) Mask[T] {
	return Mask[T]{m: hwy.NotEqual(hwy.Min(m.toVec(), n.toVec()), hwy.Zero[T]())}
}

// Or returns the lane-wise disjunction of m and n.
func (m Mask[T]) Or(n Mask[T]) Mask[T] {
	return Mask[T]{m: hwy.NotEqual(hwy.Max(m.toVec(), n.toVec()), hwy.Zero[T]())}
}

// Eq returns the lane-wise equivalence of m and n.
func (m Mask[T]) Eq(n Mask[T]) Mask[T] {
	return Mask[T]{m: hwy.Equal(m.toVec(), n.toVec())}
}

// Ne returns the lane-wise difference of m and n.
func (m Mask[T]) Ne(n Mask[T]) Mask[T] {
	return Mask[T]{m: hwy.NotEqual(m.toVec(), n.toVec())}
}

// Bit reports whether lane i is set.
func (m Mask[T]) Bit(i int) bool {
	return m.m.GetBit(i)
}

// Any reports whether any lane is set.
func (m Mask[T]) Any() bool {
	return m.m.AnyTrue()
}

// All reports whether every lane is set.
func (m Mask[T]) All() bool {
	return m.m.AllTrue()
}

// CountTrue returns the number of set lanes.
func (m Mask[T]) CountTrue() int {
	return m.m.CountTrue()
}

// FindTrue returns the index of the first set lane, or -1 when none is set.
func (m Mask[T]) FindTrue() int {
	return hwy.FindFirstTrue(m.m)
}
