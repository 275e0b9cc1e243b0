package mat

import (
	"errors"

	"github.com/spume-sim/spume/vec"
	"github.com/spume-sim/spume/xmath"
)

// Factorization errors.
var (
	// ErrNearSingular is returned when a pivot falls below the tiny-number
	// threshold.
	ErrNearSingular = errors.New("mat: matrix is nearly singular")
	// ErrNotPositiveDefinite is returned by Chol when a diagonal square
	// turns negative.
	ErrNotPositiveDefinite = errors.New("mat: matrix is not positive definite")
)

// FactLU is an LU factorization A = L * U with a unit lower-triangular L,
// both factors packed into one matrix.
type FactLU[T Elem] struct {
	lu Mat[T]
}

// LU computes the LU factorization of A without pivoting (Doolittle).
// Returns ErrNearSingular when a pivot is tiny.
func LU[T Elem](A Mat[T]) (FactLU[T], error) {
	n := A.dim
	lu := Zero[T](n)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			l := A.At(i, j)
			for k := 0; k < j; k++ {
				l -= lu.At(i, k) * lu.At(k, j)
			}
			lu.Set(i, j, l/lu.At(j, j))
		}
		for j := i; j < n; j++ {
			u := A.At(i, j)
			for k := 0; k < i; k++ {
				u -= lu.At(i, k) * lu.At(k, j)
			}
			lu.Set(i, j, u)
		}
		if xmath.IsTiny(lu.At(i, i)) {
			return FactLU[T]{}, ErrNearSingular
		}
	}
	return FactLU[T]{lu: lu}, nil
}

// L returns the unit lower-triangular factor.
func (f FactLU[T]) L() Mat[T] {
	return CopyPart(PartLowerUnit, f.lu)
}

// U returns the upper-triangular factor.
func (f FactLU[T]) U() Mat[T] {
	return CopyPart(PartUpperDiag, f.lu)
}

// Det returns the determinant of the factored matrix.
func (f FactLU[T]) Det() T {
	return ProdDiag(f.lu)
}

// Solve returns the solution of A * x = b.
func (f FactLU[T]) Solve(b vec.Vec[T]) vec.Vec[T] {
	return PartSolveVec(f.lu, b, PartLowerUnit, PartUpperDiag)
}

// SolveMat returns the solution of A * X = B.
func (f FactLU[T]) SolveMat(B Mat[T]) Mat[T] {
	return PartSolveMat(f.lu, B, PartLowerUnit, PartUpperDiag)
}

// Inverse returns the inverse of the factored matrix.
func (f FactLU[T]) Inverse() Mat[T] {
	return f.SolveMat(Eye[T](f.lu.dim))
}

// FactChol is a Cholesky factorization A = L * Lᵀ with a lower-triangular L.
type FactChol[T Elem] struct {
	l Mat[T]
}

// Chol computes the Cholesky factorization of a symmetric positive definite
// matrix. Only the lower triangle of A is read. Returns
// ErrNotPositiveDefinite when a diagonal square turns negative and
// ErrNearSingular when its root is tiny.
func Chol[T Elem](A Mat[T]) (FactChol[T], error) {
	n := A.dim
	l := Zero[T](n)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			v := A.At(i, j)
			for k := 0; k < j; k++ {
				v -= l.At(i, k) * l.At(j, k)
			}
			l.Set(i, j, v/l.At(j, j))
		}
		d := A.At(i, i)
		for k := 0; k < i; k++ {
			d -= xmath.Pow2(l.At(i, k))
		}
		if d < 0 {
			return FactChol[T]{}, ErrNotPositiveDefinite
		}
		l.Set(i, i, xmath.Sqrt(d))
		if xmath.IsTiny(l.At(i, i)) {
			return FactChol[T]{}, ErrNearSingular
		}
	}
	return FactChol[T]{l: l}, nil
}

// L returns the lower-triangular factor.
func (f FactChol[T]) L() Mat[T] {
	return CopyPart(PartLowerDiag, f.l)
}

// Det returns the determinant of the factored matrix.
func (f FactChol[T]) Det() T {
	return xmath.Pow2(ProdDiag(f.l))
}

// Solve returns the solution of A * x = b.
func (f FactChol[T]) Solve(b vec.Vec[T]) vec.Vec[T] {
	return PartSolveVec(f.l, b, PartLowerDiag, PartUpperDiag|PartTransposed)
}

// SolveMat returns the solution of A * X = B.
func (f FactChol[T]) SolveMat(B Mat[T]) Mat[T] {
	return PartSolveMat(f.l, B, PartLowerDiag, PartUpperDiag|PartTransposed)
}

// Inverse returns the inverse of the factored matrix.
func (f FactChol[T]) Inverse() Mat[T] {
	return f.SolveMat(Eye[T](f.l.dim))
}

// FactLDL is a square-root-free Cholesky factorization A = L * D * Lᵀ with
// a unit lower-triangular L and a diagonal D, packed into one matrix.
type FactLDL[T Elem] struct {
	ld Mat[T]
}

// LDL computes the LDL factorization of a symmetric matrix. Only the lower
// triangle of A is read. Returns ErrNearSingular when a diagonal entry is
// tiny.
func LDL[T Elem](A Mat[T]) (FactLDL[T], error) {
	n := A.dim
	ld := Zero[T](n)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			v := A.At(i, j)
			for k := 0; k < j; k++ {
				v -= ld.At(i, k) * ld.At(k, k) * ld.At(j, k)
			}
			ld.Set(i, j, v/ld.At(j, j))
		}
		d := A.At(i, i)
		for k := 0; k < i; k++ {
			d -= xmath.Pow2(ld.At(i, k)) * ld.At(k, k)
		}
		ld.Set(i, i, d)
		if xmath.IsTiny(d) {
			return FactLDL[T]{}, ErrNearSingular
		}
	}
	return FactLDL[T]{ld: ld}, nil
}

// L returns the unit lower-triangular factor.
func (f FactLDL[T]) L() Mat[T] {
	return CopyPart(PartLowerUnit, f.ld)
}

// D returns the diagonal factor.
func (f FactLDL[T]) D() Mat[T] {
	return CopyPart(PartDiag, f.ld)
}

// Det returns the determinant of the factored matrix.
func (f FactLDL[T]) Det() T {
	return ProdDiag(f.ld)
}

// Solve returns the solution of A * x = b.
func (f FactLDL[T]) Solve(b vec.Vec[T]) vec.Vec[T] {
	return PartSolveVec(f.ld, b, PartLowerUnit, PartDiag, PartUpperUnit|PartTransposed)
}

// SolveMat returns the solution of A * X = B.
func (f FactLDL[T]) SolveMat(B Mat[T]) Mat[T] {
	return PartSolveMat(f.ld, B, PartLowerUnit, PartDiag, PartUpperUnit|PartTransposed)
}

// Inverse returns the inverse of the factored matrix.
func (f FactLDL[T]) Inverse() Mat[T] {
	return f.SolveMat(Eye[T](f.ld.dim))
}
