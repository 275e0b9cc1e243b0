// Package xmath provides the scalar building blocks shared by the
// fixed-dimension linear algebra packages: sign and small integer powers,
// Horner-scheme polynomial evaluation, averaging, and the tiny-number
// tolerance used for approximate comparisons and singularity checks.
package xmath

import (
	"math"
	"unsafe"
)

// Real is the set of floating-point element types.
type Real interface {
	~float32 | ~float64
}

// Tiny number tolerances, cube roots of the machine epsilons.
var (
	tiny32 = float32(math.Cbrt(0x1p-23))
	tiny64 = math.Cbrt(0x1p-52)
)

// Tiny returns the tiny-number tolerance for T: the cube root of the
// machine epsilon.
func Tiny[T Real]() T {
	if unsafe.Sizeof(T(0)) == 4 {
		return T(tiny32)
	}
	return T(tiny64)
}

// IsTiny reports whether a is indistinguishable from zero within Tiny.
func IsTiny[T Real](a T) bool {
	return Abs(a) <= Tiny[T]()
}

// ApproxEqual reports whether a and b are within Tiny of each other.
func ApproxEqual[T Real](a, b T) bool {
	return IsTiny(a - b)
}

// Abs returns the absolute value of a.
func Abs[T Real](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

// Sign returns +1, -1 or 0 matching the sign of a.
func Sign[T Real](a T) T {
	switch {
	case a > 0:
		return 1
	case a < 0:
		return -1
	}
	return 0
}

// Inverse returns the reciprocal of a.
func Inverse[T Real](a T) T {
	return 1 / a
}

// Pow2 returns a².
func Pow2[T Real](a T) T { return a * a }

// Pow3 returns a³.
func Pow3[T Real](a T) T { return a * a * a }

// Pow4 returns a⁴.
func Pow4[T Real](a T) T {
	s := a * a
	return s * s
}

// Pow5 returns a⁵.
func Pow5[T Real](a T) T {
	s := a * a
	return s * s * a
}

// Pow6 returns a⁶.
func Pow6[T Real](a T) T {
	c := a * a * a
	return c * c
}

// Pow raises a to an arbitrary power.
func Pow[T Real](a, power T) T {
	return T(math.Pow(float64(a), float64(power)))
}

// Horner evaluates a polynomial with the given coefficients (lowest order
// first) at x using the Horner scheme.
func Horner[T Real](x T, coeffs ...T) T {
	var r T
	for i := len(coeffs) - 1; i >= 0; i-- {
		r = r*x + coeffs[i]
	}
	return r
}

// Avg returns the mean of its arguments.
func Avg[T Real](vals ...T) T {
	var sum T
	for _, v := range vals {
		sum += v
	}
	return sum / T(len(vals))
}

// Sqrt returns the square root of a.
func Sqrt[T Real](a T) T {
	return T(math.Sqrt(float64(a)))
}

// Rsqrt returns the reciprocal square root of a.
func Rsqrt[T Real](a T) T {
	return T(1 / math.Sqrt(float64(a)))
}

// Cbrt returns the cube root of a.
func Cbrt[T Real](a T) T {
	return T(math.Cbrt(float64(a)))
}

// Exp returns e**a.
func Exp[T Real](a T) T {
	return T(math.Exp(float64(a)))
}

// Log returns the natural logarithm of a.
func Log[T Real](a T) T {
	return T(math.Log(float64(a)))
}

// Atan2 returns the angle of the point (x, y) in radians.
func Atan2[T Real](y, x T) T {
	return T(math.Atan2(float64(y), float64(x)))
}

// Sin returns the sine of a.
func Sin[T Real](a T) T {
	return T(math.Sin(float64(a)))
}

// Cos returns the cosine of a.
func Cos[T Real](a T) T {
	return T(math.Cos(float64(a)))
}
