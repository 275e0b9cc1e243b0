package mat

import (
	"errors"

	"github.com/spume-sim/spume/vec"
	"github.com/spume-sim/spume/xmath"
)

// ErrNotConverged is returned when the eigensolver exhausts its iteration
// budget before the off-diagonal magnitude drops below the threshold.
var ErrNotConverged = errors.New("mat: eigensolver failed to converge")

// Eig holds the eigendecomposition of a symmetric matrix: the rows of Vecs
// are the eigenvectors of the corresponding entries of Vals, so that
// Vecs * A == Diag(Vals) * Vecs.
type Eig[T Elem] struct {
	Vecs Mat[T]
	Vals vec.Vec[T]
}

// Jacobi computes the eigenvectors and eigenvalues of a symmetric matrix
// with the default threshold (the tiny number for T) and iteration budget
// (32 per dimension). Only the lower triangle of A is read.
func Jacobi[T Elem](A Mat[T]) (Eig[T], error) {
	return JacobiWith(A, xmath.Tiny[T](), 32*A.dim)
}

// JacobiWith is Jacobi with an explicit convergence threshold and iteration
// budget. Each iteration zeroes the largest off-diagonal element with a
// Givens rotation; the matrix counts as diagonal once that element falls to
// eps or below.
func JacobiWith[T Elem](A Mat[T], eps T, maxIter int) (Eig[T], error) {
	n := A.dim
	V := Eye[T](n)
	if n == 1 {
		return Eig[T]{Vecs: V, Vals: vec.New(A.At(0, 0))}, nil
	}

	// Mirror the lower triangle so the rotations can read either half.
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			A.Set(j, i, A.At(i, j))
		}
	}

	for iter := 0; iter < maxIter; iter++ {
		p, q := 1, 0
		for i := 2; i < n; i++ {
			for j := 0; j < i; j++ {
				if xmath.Abs(A.At(i, j)) > xmath.Abs(A.At(p, q)) {
					p, q = i, j
				}
			}
		}
		if xmath.Abs(A.At(p, q)) <= eps {
			return Eig[T]{Vecs: V, Vals: DiagOf(A)}, nil
		}

		theta := T(0.5) * xmath.Atan2(T(2)*A.At(p, q), A.At(q, q)-A.At(p, p))
		c := xmath.Cos(theta)
		s := xmath.Sin(theta)

		for i := 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			api := A.At(p, i)
			aqi := A.At(q, i)
			A.Set(p, i, c*api-s*aqi)
			A.Set(i, p, c*api-s*aqi)
			A.Set(q, i, s*api+c*aqi)
			A.Set(i, q, s*api+c*aqi)
		}
		app := A.At(p, p)
		apq := A.At(p, q)
		aqq := A.At(q, q)
		A.Set(p, p, c*(c*app-s*apq)-s*(c*apq-s*aqq))
		A.Set(q, q, s*(s*app+c*apq)+c*(s*apq+c*aqq))
		A.Set(p, q, 0)
		A.Set(q, p, 0)

		for i := 0; i < n; i++ {
			vpi := V.At(p, i)
			vqi := V.At(q, i)
			V.Set(p, i, c*vpi-s*vqi)
			V.Set(q, i, s*vpi+c*vqi)
		}
	}

	return Eig[T]{}, ErrNotConverged
}
