package mat

import (
	"github.com/spume-sim/spume/vec"
)

// Part selects a triangular or diagonal part of a matrix as a bit set.
// PartDiag and PartUnit are mutually exclusive: the first reads the stored
// diagonal, the second substitutes an implicit unit diagonal. PartTransposed
// reads the mirrored element, selecting a part of the transpose.
type Part uint8

const (
	// PartDiag selects the stored diagonal.
	PartDiag Part = 1 << 0
	// PartUnit selects an implicit all-ones diagonal.
	PartUnit Part = 1 << 1
	// PartLower selects the strictly lower triangle.
	PartLower Part = 1 << 2
	// PartUpper selects the strictly upper triangle.
	PartUpper Part = 1 << 3
	// PartTransposed mirrors the selected part across the diagonal.
	PartTransposed Part = 1 << 7
)

// Composite parts of the factorization solvers.
const (
	PartLowerDiag = PartLower | PartDiag
	PartLowerUnit = PartLower | PartUnit
	PartUpperDiag = PartUpper | PartDiag
	PartUpperUnit = PartUpper | PartUnit
)

func (p Part) validate() {
	const known = PartDiag | PartUnit | PartLower | PartUpper | PartTransposed
	switch {
	case p&^known != 0:
		panic("mat: unknown part flag")
	case p&(PartDiag|PartUnit) == PartDiag|PartUnit:
		panic("mat: diagonal and unit-diagonal parts are mutually exclusive")
	case p&(PartDiag|PartUnit|PartLower|PartUpper) == 0:
		panic("mat: empty part")
	}
}

// PartAt reads element (i, j) of the selected part of A: elements inside
// the part come from A (or are 1 on a unit diagonal), elements outside are
// zero.
func PartAt[T Elem](part Part, A Mat[T], i, j int) T {
	if part&PartUnit != 0 && i == j {
		return 1
	}
	switch {
	case part&PartDiag != 0 && i == j,
		part&PartLower != 0 && i > j,
		part&PartUpper != 0 && i < j:
		if part&PartTransposed != 0 {
			return A.At(j, i)
		}
		return A.At(i, j)
	}
	return 0
}

// CopyPart materializes the selected part of A as a full matrix.
func CopyPart[T Elem](part Part, A Mat[T]) Mat[T] {
	part.validate()
	r := Zero[T](A.dim)
	for i := 0; i < A.dim; i++ {
		for j := 0; j < A.dim; j++ {
			r.Set(i, j, PartAt(part, A, i, j))
		}
	}
	return r
}

// Transpose returns the transpose of A.
func Transpose[T Elem](A Mat[T]) Mat[T] {
	return CopyPart(PartLower|PartDiag|PartUpper|PartTransposed, A)
}

// PartSolveVec solves the chain of part systems against b: for each part P
// in order, the current solution is replaced by the solution of
// P(A) * x = x. Lower parts run forward substitution, upper parts backward,
// a bare diagonal divides.
func PartSolveVec[T Elem](A Mat[T], b vec.Vec[T], parts ...Part) vec.Vec[T] {
	checkSameDim(A.dim, b.Dim())
	x := b
	for _, p := range parts {
		p.validate()
		solveVecPart(p, A, &x)
	}
	return x
}

func solveVecPart[T Elem](p Part, A Mat[T], x *vec.Vec[T]) {
	n := A.dim
	switch {
	case p&PartLower != 0:
		for i := 0; i < n; i++ {
			xi := x.At(i)
			for j := 0; j < i; j++ {
				xi -= PartAt(p, A, i, j) * x.At(j)
			}
			x.Set(i, divDiag(p, A, i, xi))
		}
	case p&PartUpper != 0:
		for i := n - 1; i >= 0; i-- {
			xi := x.At(i)
			for j := i + 1; j < n; j++ {
				xi -= PartAt(p, A, i, j) * x.At(j)
			}
			x.Set(i, divDiag(p, A, i, xi))
		}
	default:
		for i := 0; i < n; i++ {
			x.Set(i, divDiag(p, A, i, x.At(i)))
		}
	}
}

func divDiag[T Elem](p Part, A Mat[T], i int, v T) T {
	if p&PartDiag != 0 {
		return v / A.At(i, i)
	}
	return v
}

// PartSolveMat is PartSolveVec with a matrix right hand side, solving every
// column simultaneously by operating on the rows of B.
func PartSolveMat[T Elem](A Mat[T], B Mat[T], parts ...Part) Mat[T] {
	checkSameDim(A.dim, B.dim)
	x := B
	for _, p := range parts {
		p.validate()
		solveMatPart(p, A, &x)
	}
	return x
}

func solveMatPart[T Elem](p Part, A Mat[T], x *Mat[T]) {
	n := A.dim
	switch {
	case p&PartLower != 0:
		for i := 0; i < n; i++ {
			ri := x.rows[i]
			for j := 0; j < i; j++ {
				ri = vec.Sub(ri, vec.Scale(x.rows[j], PartAt(p, A, i, j)))
			}
			x.rows[i] = divDiagRow(p, A, i, ri)
		}
	case p&PartUpper != 0:
		for i := n - 1; i >= 0; i-- {
			ri := x.rows[i]
			for j := i + 1; j < n; j++ {
				ri = vec.Sub(ri, vec.Scale(x.rows[j], PartAt(p, A, i, j)))
			}
			x.rows[i] = divDiagRow(p, A, i, ri)
		}
	default:
		for i := 0; i < n; i++ {
			x.rows[i] = divDiagRow(p, A, i, x.rows[i])
		}
	}
}

func divDiagRow[T Elem](p Part, A Mat[T], i int, r vec.Vec[T]) vec.Vec[T] {
	if p&PartDiag != 0 {
		return vec.DivScalar(r, A.At(i, i))
	}
	return r
}
