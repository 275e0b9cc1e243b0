// Package vec implements small fixed-dimension algebraic vectors for
// particle simulations. A vector carries its dimension (1 to MaxDim) at
// runtime and stores its elements in an inline array; lanes past the
// dimension are always zero, which lets the register paths load and reduce
// full registers without scatter fixups.
//
// Arithmetic runs on SIMD registers for the concrete float32 and float64
// element types and falls back to plain scalar loops for named wrapper
// types, producing identical results on both paths.
package vec

import (
	"fmt"
	"strings"
)

// MaxDim is the largest supported vector dimension.
const MaxDim = 8

// Elem is the set of vector element types.
type Elem interface {
	~float32 | ~float64
}

// Vec is a dense vector of dim elements. The zero value has dimension zero
// and is not usable; construct vectors with New, Zero, Fill or Unit.
type Vec[T Elem] struct {
	dim int
	el  [MaxDim]T
}

func checkDim(dim int) {
	if dim < 1 || dim > MaxDim {
		panic(fmt.Sprintf("vec: dimension %d out of range [1, %d]", dim, MaxDim))
	}
}

func checkSameDim(a, b int) {
	if a != b {
		panic(fmt.Sprintf("vec: dimension mismatch: %d != %d", a, b))
	}
}

// New returns a vector with the given elements.
func New[T Elem](elems ...T) Vec[T] {
	checkDim(len(elems))
	v := Vec[T]{dim: len(elems)}
	copy(v.el[:], elems)
	return v
}

// Zero returns the zero vector of the given dimension.
func Zero[T Elem](dim int) Vec[T] {
	checkDim(dim)
	return Vec[T]{dim: dim}
}

// Fill returns a vector with every element set to q.
func Fill[T Elem](dim int, q T) Vec[T] {
	checkDim(dim)
	v := Vec[T]{dim: dim}
	for i := 0; i < dim; i++ {
		v.el[i] = q
	}
	return v
}

// Unit returns the unit vector along the given axis.
func Unit[T Elem](dim, axis int) Vec[T] {
	return UnitScaled[T](dim, axis, 1)
}

// UnitScaled returns a vector with q along the given axis and zero elsewhere.
func UnitScaled[T Elem](dim, axis int, q T) Vec[T] {
	v := Zero[T](dim)
	v.Set(axis, q)
	return v
}

// Cat concatenates two vectors.
func Cat[T Elem](a, b Vec[T]) Vec[T] {
	checkDim(a.dim + b.dim)
	v := Vec[T]{dim: a.dim + b.dim}
	copy(v.el[:], a.el[:a.dim])
	copy(v.el[a.dim:], b.el[:b.dim])
	return v
}

// Head returns the first n elements of a.
func Head[T Elem](a Vec[T], n int) Vec[T] {
	if n < 1 || n > a.dim {
		panic(fmt.Sprintf("vec: head size %d out of range [1, %d]", n, a.dim))
	}
	v := Vec[T]{dim: n}
	copy(v.el[:], a.el[:n])
	return v
}

// Tail returns the elements of a past the first n.
func Tail[T Elem](a Vec[T], n int) Vec[T] {
	if n < 0 || n >= a.dim {
		panic(fmt.Sprintf("vec: tail offset %d out of range [0, %d)", n, a.dim))
	}
	v := Vec[T]{dim: a.dim - n}
	copy(v.el[:], a.el[n:a.dim])
	return v
}

// Cast converts the elements of a to a different element type.
func Cast[To, From Elem](a Vec[From]) Vec[To] {
	v := Vec[To]{dim: a.dim}
	for i := 0; i < a.dim; i++ {
		v.el[i] = To(a.el[i])
	}
	return v
}

// Dim returns the dimension of the vector.
func (v Vec[T]) Dim() int {
	return v.dim
}

// At returns element i.
func (v Vec[T]) At(i int) T {
	if i < 0 || i >= v.dim {
		panic(fmt.Sprintf("vec: index %d out of range [0, %d)", i, v.dim))
	}
	return v.el[i]
}

// Set assigns element i.
func (v *Vec[T]) Set(i int, q T) {
	if i < 0 || i >= v.dim {
		panic(fmt.Sprintf("vec: index %d out of range [0, %d)", i, v.dim))
	}
	v.el[i] = q
}

// Elems returns a copy of the elements.
func (v Vec[T]) Elems() []T {
	out := make([]T, v.dim)
	copy(out, v.el[:v.dim])
	return out
}

// String formats the vector as space-separated elements.
func (v Vec[T]) String() string {
	var sb strings.Builder
	for i := 0; i < v.dim; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", v.el[i])
	}
	return sb.String()
}
