package vec

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// strict is a named wrapper type: it satisfies Elem but takes the scalar
// loops, which the parity tests below compare against the register path.
type strict float64

func TestNew(t *testing.T) {
	v := New(1.0, 2.0, 3.0)
	if v.Dim() != 3 {
		t.Fatalf("Dim() = %d, want 3", v.Dim())
	}
	if diff := cmp.Diff([]float64{1, 2, 3}, v.Elems()); diff != "" {
		t.Errorf("Elems() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewPanicsOnBadDim(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New with 9 elements did not panic")
		}
	}()
	New(1.0, 2, 3, 4, 5, 6, 7, 8, 9)
}

func TestZeroFillUnit(t *testing.T) {
	if got := Zero[float64](4).Elems(); !cmp.Equal(got, []float64{0, 0, 0, 0}) {
		t.Errorf("Zero(4) = %v", got)
	}
	if got := Fill(3, 2.5).Elems(); !cmp.Equal(got, []float64{2.5, 2.5, 2.5}) {
		t.Errorf("Fill(3, 2.5) = %v", got)
	}
	if got := Unit[float64](3, 1).Elems(); !cmp.Equal(got, []float64{0, 1, 0}) {
		t.Errorf("Unit(3, 1) = %v", got)
	}
	if got := UnitScaled(2, 0, -4.0).Elems(); !cmp.Equal(got, []float64{-4, 0}) {
		t.Errorf("UnitScaled(2, 0, -4) = %v", got)
	}
}

func TestAtSet(t *testing.T) {
	v := Zero[float64](2)
	v.Set(1, 7)
	if got := v.At(1); got != 7 {
		t.Errorf("At(1) = %v, want 7", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("At(2) on a 2-vector did not panic")
		}
	}()
	v.At(2)
}

func TestCatHeadTail(t *testing.T) {
	a := New(1.0, 2)
	b := New(3.0, 4, 5)
	c := Cat(a, b)
	if diff := cmp.Diff([]float64{1, 2, 3, 4, 5}, c.Elems()); diff != "" {
		t.Errorf("Cat mismatch (-want +got):\n%s", diff)
	}
	if got := Head(c, 2).Elems(); !cmp.Equal(got, []float64{1, 2}) {
		t.Errorf("Head(c, 2) = %v", got)
	}
	if got := Tail(c, 2).Elems(); !cmp.Equal(got, []float64{3, 4, 5}) {
		t.Errorf("Tail(c, 2) = %v", got)
	}
}

func TestCast(t *testing.T) {
	v := New(1.5, -2.25)
	w := Cast[float32](v)
	if got := w.Elems(); !cmp.Equal(got, []float32{1.5, -2.25}) {
		t.Errorf("Cast = %v", got)
	}
}

func TestString(t *testing.T) {
	if got := New(1.0, -2.5, 3.0).String(); got != "1 -2.5 3" {
		t.Errorf("String() = %q, want %q", got, "1 -2.5 3")
	}
}

func TestArithmetic(t *testing.T) {
	a := New(1.0, -2, 3)
	b := New(4.0, 5, -6)
	tests := []struct {
		name string
		got  Vec[float64]
		want []float64
	}{
		{"Add", Add(a, b), []float64{5, 3, -3}},
		{"Sub", Sub(a, b), []float64{-3, -7, 9}},
		{"Mul", Mul(a, b), []float64{4, -10, -18}},
		{"Div", Div(b, a), []float64{4, -2.5, -2}},
		{"Neg", Neg(a), []float64{-1, 2, -3}},
		{"Abs", Abs(a), []float64{1, 2, 3}},
		{"Scale", Scale(a, 2), []float64{2, -4, 6}},
		{"DivScalar", DivScalar(Scale(a, 2), 2), []float64{1, -2, 3}},
		{"Min", Min(a, b), []float64{1, -2, -6}},
		{"Max", Max(a, b), []float64{4, 5, 3}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, tt.got.Elems()); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestRounding(t *testing.T) {
	v := New(1.5, -1.5, 2.3)
	if got := Floor(v).Elems(); !cmp.Equal(got, []float64{1, -2, 2}) {
		t.Errorf("Floor = %v", got)
	}
	if got := Ceil(v).Elems(); !cmp.Equal(got, []float64{2, -1, 3}) {
		t.Errorf("Ceil = %v", got)
	}
}

func TestDivisionKeepsPaddingClean(t *testing.T) {
	// The masked tail divides inactive zero lanes by zero; the quotient NaN
	// must never reach the padding, or register reductions would see it.
	for dim := 1; dim <= MaxDim; dim++ {
		a := Fill(dim, 6.0)
		b := Fill(dim, 3.0)
		q := Div(a, b)
		if got, want := Sum(q), float64(2*dim); got != want {
			t.Errorf("dim %d: Sum(Div) = %v, want %v", dim, got, want)
		}
		if math.IsNaN(Sum(q)) {
			t.Errorf("dim %d: padding contaminated by masked division", dim)
		}
	}
}

func TestScalarParity(t *testing.T) {
	// Every lane-wise operation must agree between the register path
	// (float64) and the scalar fallback (the strict wrapper).
	for dim := 1; dim <= MaxDim; dim++ {
		af := make([]float64, dim)
		bf := make([]float64, dim)
		as := make([]strict, dim)
		bs := make([]strict, dim)
		for i := 0; i < dim; i++ {
			af[i] = float64(i+1) * 1.25
			bf[i] = float64(dim-i) * -0.5
			as[i] = strict(af[i])
			bs[i] = strict(bf[i])
		}
		a, b := New(af...), New(bf...)
		sa, sb := New(as...), New(bs...)

		pairs := []struct {
			name string
			fast Vec[float64]
			slow Vec[strict]
		}{
			{"Add", Add(a, b), Add(sa, sb)},
			{"Sub", Sub(a, b), Sub(sa, sb)},
			{"Mul", Mul(a, b), Mul(sa, sb)},
			{"Div", Div(a, b), Div(sa, sb)},
			{"Neg", Neg(a), Neg(sa)},
			{"Abs", Abs(b), Abs(sb)},
			{"Min", Min(a, b), Min(sa, sb)},
			{"Max", Max(a, b), Max(sa, sb)},
			{"Scale", Scale(a, 3), Scale(sa, 3)},
		}
		for _, p := range pairs {
			for i := 0; i < dim; i++ {
				if float64(p.slow.At(i)) != p.fast.At(i) {
					t.Errorf("dim %d: %s lane %d: scalar %v != register %v",
						dim, p.name, i, p.slow.At(i), p.fast.At(i))
				}
			}
		}

		if got, want := float64(Sum(sa)), Sum(a); math.Abs(got-want) > 1e-12 {
			t.Errorf("dim %d: Sum parity: scalar %v, register %v", dim, got, want)
		}
		if got, want := float64(Dot(sa, sb)), Dot(a, b); math.Abs(got-want) > 1e-12 {
			t.Errorf("dim %d: Dot parity: scalar %v, register %v", dim, got, want)
		}
		if got, want := float64(MinValue(sa)), MinValue(a); got != want {
			t.Errorf("dim %d: MinValue parity: scalar %v, register %v", dim, got, want)
		}
		if got, want := float64(MaxValue(sb)), MaxValue(b); got != want {
			t.Errorf("dim %d: MaxValue parity: scalar %v, register %v", dim, got, want)
		}
	}
}

func TestDimensionMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Add with mismatched dimensions did not panic")
		}
	}()
	Add(New(1.0, 2), New(1.0, 2, 3))
}
