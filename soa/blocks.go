// Package soa provides batched SIMD kernels over structure-of-arrays
// particle fields. Each coordinate or field lives in its own slice; the
// kernels process full registers and a masked tail.
package soa

import (
	"github.com/cwbudde/algo-vecmath"
)

// ApplyWeights multiplies a particle field by per-particle weights in place.
func ApplyWeights(values, weights []float64) {
	vecmath.MulBlockInPlace(values, weights)
}

// WeightedField computes dst = values*weights elementwise.
func WeightedField(dst, values, weights []float64) {
	vecmath.MulBlock(dst, values, weights)
}

// PlaneNormSq computes dst = x*x + y*y per particle for planar fields.
func PlaneNormSq(dst, xs, ys []float64) {
	vecmath.Power(dst, xs, ys)
}

// PlaneNorm computes dst = sqrt(x*x + y*y) per particle for planar fields.
func PlaneNorm(dst, xs, ys []float64) {
	vecmath.Magnitude(dst, xs, ys)
}
