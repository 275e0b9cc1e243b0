// Package kernel implements SPH smoothing kernels: the Gaussian, the cubic,
// quartic and quintic B-splines, and Wendland's quartic kernel.
//
// A kernel is described by its unit support radius, a dimension-dependent
// normalization weight and a pair of unit functions of q = |x|/h. The free
// functions below assemble the dimensional value, spatial gradient and
// width derivative from those pieces. The B-splines evaluate their piecewise
// polynomials as filtered sums over breakpoint vectors, so a single
// branch-free register pass covers all segments.
package kernel

import (
	"math"

	"github.com/spume-sim/spume/vec"
	"github.com/spume-sim/spume/xmath"
)

// Kernel is a smoothing kernel in its dimensionless form.
type Kernel[T vec.Elem] interface {
	// UnitRadius returns the support radius of the unit kernel.
	UnitRadius() T
	// Weight returns the normalization weight for the given dimension.
	Weight(dim int) T
	// UnitValue returns the unit kernel value at q = |x|/h.
	UnitValue(q T) T
	// UnitDeriv returns the derivative of the unit kernel at q.
	UnitDeriv(q T) T
}

func checkWidth[T vec.Elem](h T) {
	if h <= 0 {
		panic("kernel: width must be positive")
	}
}

// Radius returns the support radius of the kernel at width h.
func Radius[T vec.Elem](k Kernel[T], h T) T {
	checkWidth(h)
	return k.UnitRadius() * h
}

// Value returns the kernel value at point x with width h.
func Value[T vec.Elem](k Kernel[T], x vec.Vec[T], h T) T {
	checkWidth(h)
	hInv := xmath.Inverse(h)
	w := k.Weight(x.Dim()) * xmath.Pow(hInv, T(x.Dim()))
	q := hInv * vec.Norm(x)
	return w * k.UnitValue(q)
}

// Grad returns the spatial gradient of the kernel at point x with width h.
func Grad[T vec.Elem](k Kernel[T], x vec.Vec[T], h T) vec.Vec[T] {
	checkWidth(h)
	hInv := xmath.Inverse(h)
	w := k.Weight(x.Dim()) * xmath.Pow(hInv, T(x.Dim()))
	q := hInv * vec.Norm(x)
	gradQ := vec.Scale(vec.Normalize(x), hInv)
	return vec.Scale(gradQ, w*k.UnitDeriv(q))
}

// WidthDeriv returns the derivative of the kernel value at point x with
// respect to the width h.
func WidthDeriv[T vec.Elem](k Kernel[T], x vec.Vec[T], h T) T {
	checkWidth(h)
	hInv := xmath.Inverse(h)
	w := k.Weight(x.Dim()) * xmath.Pow(hInv, T(x.Dim()))
	dwdh := -T(x.Dim()) * w * hInv
	q := hInv * vec.Norm(x)
	dqdh := -q * hInv
	return dwdh*k.UnitValue(q) + w*k.UnitDeriv(q)*dqdh
}

// splineSum evaluates Σ wi * (qi - q)^p over the breakpoints with qi > q:
// the shared piecewise form of the B-spline kernels.
func splineSum[T vec.Elem](q T, qi, wi vec.Vec[T], p int) T {
	qv := vec.Fill(qi.Dim(), q)
	d := vec.Sub(qi, qv)
	pw := d
	for i := 1; i < p; i++ {
		pw = vec.Mul(pw, d)
	}
	return vec.Sum(vec.Filter(vec.Less(qv, qi), vec.Mul(wi, pw)))
}

// Gaussian is the Gaussian smoothing kernel (Monaghan, 1992). Its support
// is cut off where the unit value drops below the tiny number.
type Gaussian[T vec.Elem] struct{}

func (Gaussian[T]) UnitRadius() T {
	return -xmath.Log(xmath.Tiny[T]())
}

func (Gaussian[T]) Weight(dim int) T {
	checkKernelDim(dim)
	return T(math.Pow(1/math.Sqrt(math.Pi), float64(dim)))
}

func (Gaussian[T]) UnitValue(q T) T {
	return unitExp(-xmath.Pow2(q))
}

func (Gaussian[T]) UnitDeriv(q T) T {
	return -2 * q * unitExp(-xmath.Pow2(q))
}

// CubicSpline is the cubic B-spline (M4) smoothing kernel.
type CubicSpline[T vec.Elem] struct{}

func (CubicSpline[T]) UnitRadius() T {
	return 2
}

func (CubicSpline[T]) Weight(dim int) T {
	switch dim {
	case 1:
		return T(2.0 / 3.0)
	case 2:
		return T(10.0 / 7.0 / math.Pi)
	case 3:
		return T(1.0 / math.Pi)
	}
	panic("kernel: unsupported dimension")
}

func (CubicSpline[T]) UnitValue(q T) T {
	return splineSum(q, vec.New[T](2, 1), vec.New[T](0.25, -1), 3)
}

func (CubicSpline[T]) UnitDeriv(q T) T {
	return splineSum(q, vec.New[T](2, 1), vec.New[T](-0.75, 3), 2)
}

// QuarticSpline is the quartic B-spline (M5) smoothing kernel.
type QuarticSpline[T vec.Elem] struct{}

func (QuarticSpline[T]) UnitRadius() T {
	return 2.5
}

func (QuarticSpline[T]) Weight(dim int) T {
	switch dim {
	case 1:
		return T(1.0 / 24.0)
	case 2:
		return T(96.0 / 1199.0 / math.Pi)
	case 3:
		return T(1.0 / 20.0 / math.Pi)
	}
	panic("kernel: unsupported dimension")
}

func (QuarticSpline[T]) UnitValue(q T) T {
	return splineSum(q, vec.New[T](2.5, 1.5, 0.5), vec.New[T](1, -5, 10), 4)
}

func (QuarticSpline[T]) UnitDeriv(q T) T {
	return splineSum(q, vec.New[T](2.5, 1.5, 0.5), vec.New[T](-4, 20, -40), 3)
}

// QuinticSpline is the quintic B-spline (M6) smoothing kernel.
type QuinticSpline[T vec.Elem] struct{}

func (QuinticSpline[T]) UnitRadius() T {
	return 3
}

func (QuinticSpline[T]) Weight(dim int) T {
	switch dim {
	case 1:
		return T(1.0 / 120.0)
	case 2:
		return T(7.0 / 478.0 / math.Pi)
	case 3:
		return T(1.0 / 120.0 / math.Pi)
	}
	panic("kernel: unsupported dimension")
}

func (QuinticSpline[T]) UnitValue(q T) T {
	return splineSum(q, vec.New[T](3, 2, 1), vec.New[T](1, -6, 15), 5)
}

func (QuinticSpline[T]) UnitDeriv(q T) T {
	return splineSum(q, vec.New[T](3, 2, 1), vec.New[T](-5, 30, -75), 4)
}

// QuarticWendland is Wendland's quartic (C2) smoothing kernel
// (Wendland, 1995).
type QuarticWendland[T vec.Elem] struct{}

func (QuarticWendland[T]) UnitRadius() T {
	return 2
}

func (QuarticWendland[T]) Weight(dim int) T {
	switch dim {
	case 1:
		return T(3.0 / 4.0)
	case 2:
		return T(7.0 / 4.0 / math.Pi)
	case 3:
		return T(21.0 / 16.0 / math.Pi)
	}
	panic("kernel: unsupported dimension")
}

func (QuarticWendland[T]) UnitValue(q T) T {
	if q >= 2 {
		return 0
	}
	return (1 + 2*q) * xmath.Pow4(1-q/2)
}

func (QuarticWendland[T]) UnitDeriv(q T) T {
	if q >= 2 {
		return 0
	}
	// dW/dq = -5q(1 - q/2)³, folded to one less multiplication.
	return T(5.0/8.0) * q * xmath.Pow3(q-2)
}

func checkKernelDim(dim int) {
	if dim < 1 {
		panic("kernel: unsupported dimension")
	}
}
