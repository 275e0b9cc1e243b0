package vec

import (
	"math"

	"github.com/spume-sim/spume/simd"
	"github.com/spume-sim/spume/xmath"
)

// simdOK reports whether T takes the register path. Named wrapper types
// fall back to the scalar loops; the comparison folds away per
// instantiation.
func simdOK[T Elem]() bool {
	switch any(T(0)).(type) {
	case float32, float64:
		return true
	}
	return false
}

// binOp applies a lane-wise binary operation: full registers over the
// leading lanes, one masked register over the remainder. Masked stores
// never touch the zero padding past the dimension.
func binOp[T Elem](a, b Vec[T], reg func(simd.Reg[T], simd.Reg[T]) simd.Reg[T], scal func(T, T) T) Vec[T] {
	checkSameDim(a.dim, b.dim)
	r := Vec[T]{dim: a.dim}
	if simdOK[T]() {
		w := simd.DeduceLanes[T](a.dim)
		full, rem := a.dim/w, a.dim%w
		for k := 0; k < full; k++ {
			off := k * w
			reg(simd.Load(a.el[off:off+w]), simd.Load(b.el[off:off+w])).Store(r.el[off : off+w])
		}
		if rem > 0 {
			off := full * w
			res := reg(simd.LoadN(rem, a.el[off:a.dim]), simd.LoadN(rem, b.el[off:b.dim]))
			res.StoreN(rem, r.el[off:r.dim])
		}
		return r
	}
	for i := 0; i < a.dim; i++ {
		r.el[i] = scal(a.el[i], b.el[i])
	}
	return r
}

func unOp[T Elem](a Vec[T], reg func(simd.Reg[T]) simd.Reg[T], scal func(T) T) Vec[T] {
	r := Vec[T]{dim: a.dim}
	if simdOK[T]() {
		w := simd.DeduceLanes[T](a.dim)
		full, rem := a.dim/w, a.dim%w
		for k := 0; k < full; k++ {
			off := k * w
			reg(simd.Load(a.el[off:off+w])).Store(r.el[off : off+w])
		}
		if rem > 0 {
			off := full * w
			reg(simd.LoadN(rem, a.el[off:a.dim])).StoreN(rem, r.el[off:r.dim])
		}
		return r
	}
	for i := 0; i < a.dim; i++ {
		r.el[i] = scal(a.el[i])
	}
	return r
}

// Add returns a + b.
func Add[T Elem](a, b Vec[T]) Vec[T] {
	return binOp(a, b, simd.Add[T], func(x, y T) T { return x + y })
}

// Sub returns a - b.
func Sub[T Elem](a, b Vec[T]) Vec[T] {
	return binOp(a, b, simd.Sub[T], func(x, y T) T { return x - y })
}

// Mul returns the element-wise product of a and b.
func Mul[T Elem](a, b Vec[T]) Vec[T] {
	return binOp(a, b, simd.Mul[T], func(x, y T) T { return x * y })
}

// Div returns the element-wise quotient of a and b.
func Div[T Elem](a, b Vec[T]) Vec[T] {
	return binOp(a, b, simd.Div[T], func(x, y T) T { return x / y })
}

// Neg returns -a.
func Neg[T Elem](a Vec[T]) Vec[T] {
	return unOp(a, simd.Neg[T], func(x T) T { return -x })
}

// Abs returns the element-wise absolute value of a.
func Abs[T Elem](a Vec[T]) Vec[T] {
	return unOp(a, simd.Abs[T], xmath.Abs[T])
}

// Sqrt returns the element-wise square root of a.
func Sqrt[T Elem](a Vec[T]) Vec[T] {
	return unOp(a, simd.Sqrt[T], xmath.Sqrt[T])
}

// Scale returns q * a.
func Scale[T Elem](a Vec[T], q T) Vec[T] {
	return unOp(a,
		func(r simd.Reg[T]) simd.Reg[T] { return simd.Mul(r, simd.Set(q)) },
		func(x T) T { return x * q })
}

// DivScalar returns a / q. One-dimensional vectors divide directly; larger
// dimensions multiply by the reciprocal once.
func DivScalar[T Elem](a Vec[T], q T) Vec[T] {
	if a.dim == 1 {
		return New(a.el[0] / q)
	}
	return Scale(a, xmath.Inverse(q))
}

// Min returns the element-wise minimum of a and b.
func Min[T Elem](a, b Vec[T]) Vec[T] {
	return binOp(a, b, simd.Min[T], func(x, y T) T {
		if y < x {
			return y
		}
		return x
	})
}

// Max returns the element-wise maximum of a and b.
func Max[T Elem](a, b Vec[T]) Vec[T] {
	return binOp(a, b, simd.Max[T], func(x, y T) T {
		if y > x {
			return y
		}
		return x
	})
}

// Floor returns the element-wise floor of a.
func Floor[T Elem](a Vec[T]) Vec[T] {
	return unOp(a, simd.Floor[T], func(x T) T { return T(math.Floor(float64(x))) })
}

// Ceil returns the element-wise ceiling of a.
func Ceil[T Elem](a Vec[T]) Vec[T] {
	return unOp(a, simd.Ceil[T], func(x T) T { return T(math.Ceil(float64(x))) })
}

// Round returns a rounded element-wise to the nearest integer.
func Round[T Elem](a Vec[T]) Vec[T] {
	return unOp(a, simd.Round[T], func(x T) T { return T(math.Round(float64(x))) })
}

// Filter returns a where the mask is set and zero elsewhere.
func Filter[T Elem](m Mask[T], a Vec[T]) Vec[T] {
	checkSameDim(m.dim, a.dim)
	r := Vec[T]{dim: a.dim}
	for i := 0; i < a.dim; i++ {
		if m.lane[i] {
			r.el[i] = a.el[i]
		}
	}
	return r
}

// Select returns a where the mask is set and b elsewhere.
func Select[T Elem](m Mask[T], a, b Vec[T]) Vec[T] {
	checkSameDim(m.dim, a.dim)
	checkSameDim(a.dim, b.dim)
	r := Vec[T]{dim: a.dim}
	for i := 0; i < a.dim; i++ {
		if m.lane[i] {
			r.el[i] = a.el[i]
		} else {
			r.el[i] = b.el[i]
		}
	}
	return r
}

// cmpOp evaluates a lane-wise comparison, extracting the mask bits from the
// register masks on the vectorized path.
func cmpOp[T Elem](a, b Vec[T], reg func(simd.Reg[T], simd.Reg[T]) simd.Mask[T], scal func(T, T) bool) Mask[T] {
	checkSameDim(a.dim, b.dim)
	m := Mask[T]{dim: a.dim}
	if simdOK[T]() {
		w := simd.DeduceLanes[T](a.dim)
		full, rem := a.dim/w, a.dim%w
		for k := 0; k < full; k++ {
			off := k * w
			rm := reg(simd.Load(a.el[off:off+w]), simd.Load(b.el[off:off+w]))
			for i := 0; i < w; i++ {
				m.lane[off+i] = rm.Bit(i)
			}
		}
		if rem > 0 {
			off := full * w
			rm := reg(simd.LoadN(rem, a.el[off:a.dim]), simd.LoadN(rem, b.el[off:b.dim]))
			for i := 0; i < rem; i++ {
				m.lane[off+i] = rm.Bit(i)
			}
		}
		return m
	}
	for i := 0; i < a.dim; i++ {
		m.lane[i] = scal(a.el[i], b.el[i])
	}
	return m
}

// Equal returns the lane-wise a == b mask.
func Equal[T Elem](a, b Vec[T]) Mask[T] {
	return cmpOp(a, b, simd.Equal[T], func(x, y T) bool { return x == y })
}

// NotEqual returns the lane-wise a != b mask.
func NotEqual[T Elem](a, b Vec[T]) Mask[T] {
	return cmpOp(a, b, simd.NotEqual[T], func(x, y T) bool { return x != y })
}

// Less returns the lane-wise a < b mask.
func Less[T Elem](a, b Vec[T]) Mask[T] {
	return cmpOp(a, b, simd.Less[T], func(x, y T) bool { return x < y })
}

// LessEqual returns the lane-wise a <= b mask.
func LessEqual[T Elem](a, b Vec[T]) Mask[T] {
	return cmpOp(a, b, simd.LessEqual[T], func(x, y T) bool { return x <= y })
}

// Greater returns the lane-wise a > b mask.
func Greater[T Elem](a, b Vec[T]) Mask[T] {
	return cmpOp(a, b, simd.Greater[T], func(x, y T) bool { return x > y })
}

// GreaterEqual returns the lane-wise a >= b mask.
func GreaterEqual[T Elem](a, b Vec[T]) Mask[T] {
	return cmpOp(a, b, simd.GreaterEqual[T], func(x, y T) bool { return x >= y })
}
