package vec

import (
	"github.com/spume-sim/spume/simd"
	"github.com/spume-sim/spume/xmath"
)

// Sum returns the sum of the elements of a. Zero padding past the dimension
// makes the masked tail register safe to fold into the accumulator.
func Sum[T Elem](a Vec[T]) T {
	if !simdOK[T]() {
		var s T
		for i := 0; i < a.dim; i++ {
			s += a.el[i]
		}
		return s
	}
	w := simd.DeduceLanes[T](a.dim)
	full, rem := a.dim/w, a.dim%w
	if full == 0 {
		return simd.Sum(simd.LoadN(rem, a.el[:a.dim]))
	}
	acc := simd.Load(a.el[0:w])
	for k := 1; k < full; k++ {
		off := k * w
		acc = simd.Add(acc, simd.Load(a.el[off:off+w]))
	}
	if rem > 0 {
		acc = simd.Add(acc, simd.LoadN(rem, a.el[full*w:a.dim]))
	}
	return simd.Sum(acc)
}

// Prod returns the product of the elements of a.
func Prod[T Elem](a Vec[T]) T {
	p := T(1)
	for i := 0; i < a.dim; i++ {
		p *= a.el[i]
	}
	return p
}

// MinValue returns the smallest element of a. Padding lanes of partial
// registers are repaired with accumulator lanes before reducing.
func MinValue[T Elem](a Vec[T]) T {
	return foldValue(a, simd.Min[T], simd.MinValue[T], func(x, y T) bool { return y < x })
}

// MaxValue returns the largest element of a.
func MaxValue[T Elem](a Vec[T]) T {
	return foldValue(a, simd.Max[T], simd.MaxValue[T], func(x, y T) bool { return y > x })
}

func foldValue[T Elem](a Vec[T],
	fold func(simd.Reg[T], simd.Reg[T]) simd.Reg[T],
	reduce func(simd.Reg[T]) T,
	better func(cur, cand T) bool,
) T {
	if !simdOK[T]() {
		best := a.el[0]
		for i := 1; i < a.dim; i++ {
			if better(best, a.el[i]) {
				best = a.el[i]
			}
		}
		return best
	}
	w := simd.DeduceLanes[T](a.dim)
	full, rem := a.dim/w, a.dim%w
	if full == 0 {
		r := simd.LoadN(rem, a.el[:a.dim])
		// Fill inactive lanes with lane 0 so they cannot win the reduction.
		r = simd.MergeN(rem, r, simd.BroadcastLane(r, 0))
		return reduce(r)
	}
	acc := simd.Load(a.el[0:w])
	for k := 1; k < full; k++ {
		off := k * w
		acc = fold(acc, simd.Load(a.el[off:off+w]))
	}
	if rem > 0 {
		tail := simd.LoadN(rem, a.el[full*w:a.dim])
		acc = fold(acc, simd.MergeN(rem, tail, acc))
	}
	return reduce(acc)
}

// MinValueIndex returns the index of the first occurrence of the smallest
// element of a.
func MinValueIndex[T Elem](a Vec[T]) int {
	idx := 0
	for i := 1; i < a.dim; i++ {
		if a.el[i] < a.el[idx] {
			idx = i
		}
	}
	return idx
}

// MaxValueIndex returns the index of the first occurrence of the largest
// element of a.
func MaxValueIndex[T Elem](a Vec[T]) int {
	idx := 0
	for i := 1; i < a.dim; i++ {
		if a.el[i] > a.el[idx] {
			idx = i
		}
	}
	return idx
}

// Dot returns the inner product of a and b, accumulated with fused
// multiply-adds on the register path.
func Dot[T Elem](a, b Vec[T]) T {
	checkSameDim(a.dim, b.dim)
	if !simdOK[T]() {
		var s T
		for i := 0; i < a.dim; i++ {
			s += a.el[i] * b.el[i]
		}
		return s
	}
	w := simd.DeduceLanes[T](a.dim)
	full, rem := a.dim/w, a.dim%w
	if full == 0 {
		return simd.Sum(simd.Mul(simd.LoadN(rem, a.el[:a.dim]), simd.LoadN(rem, b.el[:b.dim])))
	}
	acc := simd.Mul(simd.Load(a.el[0:w]), simd.Load(b.el[0:w]))
	for k := 1; k < full; k++ {
		off := k * w
		acc = simd.FMA(simd.Load(a.el[off:off+w]), simd.Load(b.el[off:off+w]), acc)
	}
	if rem > 0 {
		off := full * w
		acc = simd.Add(acc, simd.Mul(simd.LoadN(rem, a.el[off:a.dim]), simd.LoadN(rem, b.el[off:b.dim])))
	}
	return simd.Sum(acc)
}

// Norm2 returns the squared Euclidean norm of a.
func Norm2[T Elem](a Vec[T]) T {
	return Dot(a, a)
}

// Norm returns the Euclidean norm of a. One-dimensional vectors take the
// absolute value directly.
func Norm[T Elem](a Vec[T]) T {
	if a.dim == 1 {
		return xmath.Abs(a.el[0])
	}
	return xmath.Sqrt(Norm2(a))
}

// Normalize returns a scaled to unit length. Vectors whose norm falls below
// the tiny-number threshold normalize to zero; one-dimensional vectors above
// it normalize to the exact sign.
func Normalize[T Elem](a Vec[T]) Vec[T] {
	n2 := Norm2(a)
	if n2 < xmath.Pow2(xmath.Tiny[T]()) {
		return Zero[T](a.dim)
	}
	if a.dim == 1 {
		return New(xmath.Sign(a.el[0]))
	}
	return Scale(a, xmath.Rsqrt(n2))
}

// ApproxEqual reports whether a and b lie within the tiny-number ball of
// each other, measured by the squared Euclidean distance.
func ApproxEqual[T Elem](a, b Vec[T]) bool {
	return Norm2(Sub(a, b)) <= xmath.Pow2(xmath.Tiny[T]())
}

// Cross returns the cross product of a and b. Vectors of dimension 1 to 3
// are accepted; the result always has dimension 3, with zero padding
// collapsing the formula for the lower dimensions.
func Cross[T Elem](a, b Vec[T]) Vec[T] {
	checkSameDim(a.dim, b.dim)
	if a.dim > 3 {
		panic("vec: cross product requires dimension 1 to 3")
	}
	return New(
		a.el[1]*b.el[2]-a.el[2]*b.el[1],
		a.el[2]*b.el[0]-a.el[0]*b.el[2],
		a.el[0]*b.el[1]-a.el[1]*b.el[0],
	)
}
