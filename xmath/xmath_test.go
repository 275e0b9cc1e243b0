package xmath

import (
	"math"
	"testing"
)

func TestTiny(t *testing.T) {
	if got, want := Tiny[float64](), math.Cbrt(0x1p-52); got != want {
		t.Errorf("Tiny[float64]() = %v, want %v", got, want)
	}
	if got, want := Tiny[float32](), float32(math.Cbrt(0x1p-23)); got != want {
		t.Errorf("Tiny[float32]() = %v, want %v", got, want)
	}
	// The tolerance must be representable and strictly positive.
	if Tiny[float32]() <= 0 || Tiny[float64]() <= 0 {
		t.Error("Tiny() must be positive")
	}
}

func TestIsTiny(t *testing.T) {
	if !IsTiny(0.0) {
		t.Error("IsTiny(0) = false, want true")
	}
	if !IsTiny(Tiny[float64]()) {
		t.Error("IsTiny(Tiny) = false, want true")
	}
	if !IsTiny(-Tiny[float64]()) {
		t.Error("IsTiny(-Tiny) = false, want true")
	}
	if IsTiny(2 * Tiny[float64]()) {
		t.Error("IsTiny(2*Tiny) = true, want false")
	}
	if IsTiny(1.0) {
		t.Error("IsTiny(1) = true, want false")
	}
}

func TestApproxEqual(t *testing.T) {
	if !ApproxEqual(1.0, 1.0) {
		t.Error("ApproxEqual(1, 1) = false")
	}
	if !ApproxEqual(1.0, 1.0+1e-10) {
		t.Error("ApproxEqual(1, 1+1e-10) = false")
	}
	if ApproxEqual(1.0, 1.001) {
		t.Error("ApproxEqual(1, 1.001) = true")
	}
}

func TestSign(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{2.5, 1},
		{-0.1, -1},
		{0, 0},
		{math.Inf(1), 1},
		{math.Inf(-1), -1},
	}
	for _, tt := range tests {
		if got := Sign(tt.in); got != tt.want {
			t.Errorf("Sign(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPowers(t *testing.T) {
	const a = -1.5
	if got, want := Pow2(a), a*a; got != want {
		t.Errorf("Pow2(%v) = %v, want %v", a, got, want)
	}
	if got, want := Pow3(a), a*a*a; got != want {
		t.Errorf("Pow3(%v) = %v, want %v", a, got, want)
	}
	if got, want := Pow4(a), (a*a)*(a*a); got != want {
		t.Errorf("Pow4(%v) = %v, want %v", a, got, want)
	}
	if got, want := Pow5(a), (a*a)*(a*a)*a; got != want {
		t.Errorf("Pow5(%v) = %v, want %v", a, got, want)
	}
	if got, want := Pow6(a), (a*a*a)*(a*a*a); got != want {
		t.Errorf("Pow6(%v) = %v, want %v", a, got, want)
	}
}

func TestHorner(t *testing.T) {
	// 1 + 2x + 3x² at x = 2 is 17.
	if got := Horner(2.0, 1, 2, 3); got != 17 {
		t.Errorf("Horner(2; 1,2,3) = %v, want 17", got)
	}
	// Constant polynomial.
	if got := Horner(100.0, 4); got != 4 {
		t.Errorf("Horner(100; 4) = %v, want 4", got)
	}
}

func TestAvg(t *testing.T) {
	if got := Avg(1.0, 2.0, 3.0); got != 2 {
		t.Errorf("Avg(1,2,3) = %v, want 2", got)
	}
	if got := Avg(5.0); got != 5 {
		t.Errorf("Avg(5) = %v, want 5", got)
	}
}

func TestInverseRsqrt(t *testing.T) {
	if got := Inverse(4.0); got != 0.25 {
		t.Errorf("Inverse(4) = %v, want 0.25", got)
	}
	if got := Rsqrt(4.0); got != 0.5 {
		t.Errorf("Rsqrt(4) = %v, want 0.5", got)
	}
}
