// Package simd wraps the go-highway register and mask primitives behind a
// small fixed-width layer sized for short, fixed-dimension vectors. Register
// width selection starts from the 128-bit baseline and doubles until the
// requested dimension fits, never exceeding what the hardware offers; loops
// over vector storage run one masked remainder after the full registers.
package simd

import (
	"unsafe"

	"github.com/ajroetker/go-highway/hwy"
)

// Scalar is the set of lane element types.
type Scalar interface {
	~float32 | ~float64
}

// Lanes returns the lane count of the widest available register for T.
func Lanes[T Scalar]() int {
	return hwy.MaxLanes[T]()
}

// MinLanes returns the lane count of the narrowest (128-bit) register for T.
func MinLanes[T Scalar]() int {
	var zero T
	return 16 / int(unsafe.Sizeof(zero))
}

// DeduceLanes returns the register width used for vectors of dim elements.
// Starting from the 128-bit baseline, the width is doubled until it covers
// dim, and clamped to the widest register the hardware offers.
func DeduceLanes[T Scalar](dim int) int {
	w := MinLanes[T]()
	max := Lanes[T]()
	for w < dim && w < max {
		w *= 2
	}
	if w > max {
		w = max
	}
	return w
}

// DeduceCount returns the number of DeduceLanes-wide registers that cover a
// vector of dim elements.
func DeduceCount[T Scalar](dim int) int {
	w := DeduceLanes[T](dim)
	return (dim + w - 1) / w
}
