package mat

import (
	"testing"

	"github.com/spume-sim/spume/vec"
)

func testMatrix3() Mat[float64] {
	return FromRows(
		vec.New(1.0, 2, 3),
		vec.New(4.0, 5, 6),
		vec.New(7.0, 8, 9),
	)
}

func TestPartAt(t *testing.T) {
	A := testMatrix3()
	tests := []struct {
		name string
		part Part
		i, j int
		want float64
	}{
		{"diag on diagonal", PartDiag, 1, 1, 5},
		{"diag off diagonal", PartDiag, 1, 0, 0},
		{"unit diagonal", PartUnit, 2, 2, 1},
		{"lower inside", PartLower, 2, 0, 7},
		{"lower outside", PartLower, 0, 2, 0},
		{"upper inside", PartUpper, 0, 2, 3},
		{"upper outside", PartUpper, 2, 0, 0},
		{"lower transposed", PartLower | PartTransposed, 2, 0, 3},
		{"upper diag transposed", PartUpperDiag | PartTransposed, 0, 1, 4},
		{"unit wins on diagonal", PartLowerUnit, 1, 1, 1},
	}
	for _, tt := range tests {
		if got := PartAt(tt.part, A, tt.i, tt.j); got != tt.want {
			t.Errorf("%s: PartAt = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCopyPart(t *testing.T) {
	A := testMatrix3()

	lower := CopyPart(PartLowerDiag, A)
	want := FromRows(
		vec.New(1.0, 0, 0),
		vec.New(4.0, 5, 0),
		vec.New(7.0, 8, 9),
	)
	if !Equal(lower, want) {
		t.Errorf("CopyPart(lower+diag) = %v, want %v", lower, want)
	}

	unit := CopyPart(PartUpperUnit, A)
	want = FromRows(
		vec.New(1.0, 2, 3),
		vec.New(0.0, 1, 6),
		vec.New(0.0, 0, 1),
	)
	if !Equal(unit, want) {
		t.Errorf("CopyPart(upper+unit) = %v, want %v", unit, want)
	}

	// Lower and upper together yield the off-diagonal entries.
	offDiag := CopyPart(PartLower|PartUpper, A)
	want = FromRows(
		vec.New(0.0, 2, 3),
		vec.New(4.0, 0, 6),
		vec.New(7.0, 8, 0),
	)
	if !Equal(offDiag, want) {
		t.Errorf("CopyPart(lower+upper) = %v, want %v", offDiag, want)
	}

	// Lower and upper parts with the stored diagonal partition the matrix.
	sum := Add(CopyPart(PartLowerDiag, A), CopyPart(PartUpper, A))
	if !Equal(sum, A) {
		t.Errorf("lower+diag plus upper = %v, want %v", sum, A)
	}
}

func TestPartValidation(t *testing.T) {
	A := testMatrix3()
	for _, p := range []Part{PartDiag | PartUnit, 0, Part(1 << 5)} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("CopyPart(%08b) did not panic", p)
				}
			}()
			CopyPart(p, A)
		}()
	}
}

func TestPartSolveVecForward(t *testing.T) {
	// L * x = b with L unit lower-triangular.
	L := FromRows(
		vec.New(9.0, 9, 9), // junk outside the part must be ignored
		vec.New(2.0, 9, 9),
		vec.New(3.0, 4, 9),
	)
	b := vec.New(1.0, 4, 16)
	x := PartSolveVec(L, b, PartLowerUnit)
	// x0 = 1, x1 = 4 - 2*1 = 2, x2 = 16 - 3*1 - 4*2 = 5.
	if want := vec.New(1.0, 2, 5); !vec.ApproxEqual(x, want) {
		t.Errorf("forward substitution = %v, want %v", x, want)
	}
}

func TestPartSolveVecBackward(t *testing.T) {
	U := FromRows(
		vec.New(2.0, 1, 1),
		vec.New(0.0, 4, 2),
		vec.New(0.0, 0, 8),
	)
	b := vec.New(5.0, 12, 16)
	x := PartSolveVec(U, b, PartUpperDiag)
	// x2 = 2, x1 = (12 - 2*2)/4 = 2, x0 = (5 - 2 - 2)/2 = 0.5.
	if want := vec.New(0.5, 2, 2); !vec.ApproxEqual(x, want) {
		t.Errorf("backward substitution = %v, want %v", x, want)
	}
}

func TestPartSolveVecDiag(t *testing.T) {
	D := Diag(vec.New(2.0, 4, 8))
	x := PartSolveVec(D, vec.New(2.0, 2, 2), PartDiag)
	if want := vec.New(1.0, 0.5, 0.25); !vec.ApproxEqual(x, want) {
		t.Errorf("diagonal solve = %v, want %v", x, want)
	}
}

func TestPartSolveChain(t *testing.T) {
	// Solving against L then Lᵀ must equal solving L*Lᵀ directly.
	L := FromRows(
		vec.New(2.0, 0, 0),
		vec.New(6.0, 1, 0),
		vec.New(-8.0, 5, 3),
	)
	A := Mul(L, Transpose(L))
	b := vec.New(1.0, 2, 3)
	got := PartSolveVec(L, b, PartLowerDiag, PartUpperDiag|PartTransposed)
	if want := MulVec(A, got); !vec.ApproxEqual(want, b) {
		t.Errorf("A * x = %v, want %v", want, b)
	}
}

func TestPartSolveMat(t *testing.T) {
	L := FromRows(
		vec.New(2.0, 0),
		vec.New(1.0, 4),
	)
	X := PartSolveMat(L, Eye[float64](2), PartLowerDiag)
	if got := Mul(L, X); !ApproxEqual(got, Eye[float64](2)) {
		t.Errorf("L * inv(L) = %v, want identity", got)
	}
}
