// Package mat implements small square matrices over the fixed-dimension
// vector type, triangular matrix parts, LU / Cholesky / LDL factorizations
// and a Jacobi eigensolver for symmetric matrices.
//
// Matrices store their rows as vectors, so row-oriented arithmetic rides the
// vector register paths. Factorization and eigensolver failures are reported
// as sentinel errors, never panics; dimension mismatches panic.
package mat

import (
	"strings"

	"github.com/spume-sim/spume/vec"
	"github.com/spume-sim/spume/xmath"
)

// MaxDim is the largest supported matrix dimension.
const MaxDim = vec.MaxDim

// Elem is the set of matrix element types.
type Elem = vec.Elem

// Mat is a dense square matrix of dim rows. The zero value has dimension
// zero and is not usable; construct matrices with FromRows, Zero, Eye,
// Scalar or Diag.
type Mat[T Elem] struct {
	dim  int
	rows [MaxDim]vec.Vec[T]
}

// FromRows returns a matrix with the given rows. Every row must have as
// many elements as there are rows.
func FromRows[T Elem](rows ...vec.Vec[T]) Mat[T] {
	dim := len(rows)
	m := Zero[T](dim)
	for i, r := range rows {
		checkSameDim(r.Dim(), dim)
		m.rows[i] = r
	}
	return m
}

// Zero returns the zero matrix of the given dimension.
func Zero[T Elem](dim int) Mat[T] {
	m := Mat[T]{dim: dim}
	for i := 0; i < dim; i++ {
		m.rows[i] = vec.Zero[T](dim)
	}
	return m
}

// Eye returns the identity matrix of the given dimension.
func Eye[T Elem](dim int) Mat[T] {
	return Scalar(dim, T(1))
}

// Scalar returns q times the identity matrix.
func Scalar[T Elem](dim int, q T) Mat[T] {
	m := Zero[T](dim)
	for i := 0; i < dim; i++ {
		m.rows[i].Set(i, q)
	}
	return m
}

// Diag returns the diagonal matrix with d on the diagonal.
func Diag[T Elem](d vec.Vec[T]) Mat[T] {
	m := Zero[T](d.Dim())
	for i := 0; i < d.Dim(); i++ {
		m.rows[i].Set(i, d.At(i))
	}
	return m
}

// DiagOf returns the diagonal of A as a vector.
func DiagOf[T Elem](A Mat[T]) vec.Vec[T] {
	d := vec.Zero[T](A.dim)
	for i := 0; i < A.dim; i++ {
		d.Set(i, A.At(i, i))
	}
	return d
}

// Tr returns the trace of A.
func Tr[T Elem](A Mat[T]) T {
	return vec.Sum(DiagOf(A))
}

// ProdDiag returns the product of the diagonal elements of A.
func ProdDiag[T Elem](A Mat[T]) T {
	return vec.Prod(DiagOf(A))
}

// Outer returns the outer product of a and b.
func Outer[T Elem](a, b vec.Vec[T]) Mat[T] {
	checkSameDim(a.Dim(), b.Dim())
	m := Mat[T]{dim: a.Dim()}
	for i := 0; i < a.Dim(); i++ {
		m.rows[i] = vec.Scale(b, a.At(i))
	}
	return m
}

// OuterSqr returns the outer product of a with itself.
func OuterSqr[T Elem](a vec.Vec[T]) Mat[T] {
	return Outer(a, a)
}

func checkSameDim(a, b int) {
	if a != b {
		panic("mat: dimension mismatch")
	}
}

// Dim returns the dimension of the matrix.
func (m Mat[T]) Dim() int {
	return m.dim
}

// At returns element (i, j).
func (m Mat[T]) At(i, j int) T {
	if i < 0 || i >= m.dim {
		panic("mat: row index out of range")
	}
	return m.rows[i].At(j)
}

// Set assigns element (i, j).
func (m *Mat[T]) Set(i, j int, q T) {
	if i < 0 || i >= m.dim {
		panic("mat: row index out of range")
	}
	m.rows[i].Set(j, q)
}

// Row returns row i.
func (m Mat[T]) Row(i int) vec.Vec[T] {
	if i < 0 || i >= m.dim {
		panic("mat: row index out of range")
	}
	return m.rows[i]
}

// SetRow assigns row i.
func (m *Mat[T]) SetRow(i int, r vec.Vec[T]) {
	if i < 0 || i >= m.dim {
		panic("mat: row index out of range")
	}
	checkSameDim(r.Dim(), m.dim)
	m.rows[i] = r
}

// String formats the matrix row-major with space-separated elements.
func (m Mat[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.dim; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(m.rows[i].String())
	}
	return sb.String()
}

// Add returns A + B.
func Add[T Elem](A, B Mat[T]) Mat[T] {
	checkSameDim(A.dim, B.dim)
	r := Mat[T]{dim: A.dim}
	for i := 0; i < A.dim; i++ {
		r.rows[i] = vec.Add(A.rows[i], B.rows[i])
	}
	return r
}

// Sub returns A - B.
func Sub[T Elem](A, B Mat[T]) Mat[T] {
	checkSameDim(A.dim, B.dim)
	r := Mat[T]{dim: A.dim}
	for i := 0; i < A.dim; i++ {
		r.rows[i] = vec.Sub(A.rows[i], B.rows[i])
	}
	return r
}

// Neg returns -A.
func Neg[T Elem](A Mat[T]) Mat[T] {
	r := Mat[T]{dim: A.dim}
	for i := 0; i < A.dim; i++ {
		r.rows[i] = vec.Neg(A.rows[i])
	}
	return r
}

// Scale returns q * A.
func Scale[T Elem](A Mat[T], q T) Mat[T] {
	r := Mat[T]{dim: A.dim}
	for i := 0; i < A.dim; i++ {
		r.rows[i] = vec.Scale(A.rows[i], q)
	}
	return r
}

// DivScalar returns A / q.
func DivScalar[T Elem](A Mat[T], q T) Mat[T] {
	if A.dim == 1 {
		return FromRows(vec.New(A.At(0, 0) / q))
	}
	return Scale(A, xmath.Inverse(q))
}

// MulVec returns A * b, accumulated column by column so the products run on
// vector registers.
func MulVec[T Elem](A Mat[T], b vec.Vec[T]) vec.Vec[T] {
	checkSameDim(A.dim, b.Dim())
	t := Transpose(A)
	r := vec.Scale(t.rows[0], b.At(0))
	for i := 1; i < A.dim; i++ {
		r = vec.Add(r, vec.Scale(t.rows[i], b.At(i)))
	}
	return r
}

// Mul returns the matrix product A * B as linear combinations of the rows
// of B.
func Mul[T Elem](A, B Mat[T]) Mat[T] {
	checkSameDim(A.dim, B.dim)
	r := Mat[T]{dim: A.dim}
	for i := 0; i < A.dim; i++ {
		row := vec.Scale(B.rows[0], A.At(i, 0))
		for k := 1; k < A.dim; k++ {
			row = vec.Add(row, vec.Scale(B.rows[k], A.At(i, k)))
		}
		r.rows[i] = row
	}
	return r
}

// Equal reports whether A and B are exactly equal.
func Equal[T Elem](A, B Mat[T]) bool {
	if A.dim != B.dim {
		return false
	}
	for i := 0; i < A.dim; i++ {
		for j := 0; j < A.dim; j++ {
			if A.At(i, j) != B.At(i, j) {
				return false
			}
		}
	}
	return true
}

// ApproxEqual reports whether every row of A lies within the tiny-number
// ball of the matching row of B. Unlike the vector comparison this is
// row-wise, not a single whole-matrix ball.
func ApproxEqual[T Elem](A, B Mat[T]) bool {
	if A.dim != B.dim {
		return false
	}
	for i := 0; i < A.dim; i++ {
		if !vec.ApproxEqual(A.rows[i], B.rows[i]) {
			return false
		}
	}
	return true
}
